package http

import (
	"context"
	"log/slog"
	"net/http"

	"fleetdispatch/internal/core/application/tenancy"
	"fleetdispatch/internal/core/application/usecases/commands"
	"fleetdispatch/internal/core/application/usecases/queries"
	"fleetdispatch/internal/core/domain/model/driver"
	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/core/domain/model/order"
	"fleetdispatch/internal/core/domain/model/tenant"
	"fleetdispatch/internal/core/domain/model/vehicle"
	"fleetdispatch/internal/generated/servers"
	"fleetdispatch/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Use case ports of the HTTP adapter. The application handlers satisfy them.
type (
	ScopeResolver interface {
		Resolve(ctx context.Context) (tenant.Scope, error)
	}

	CreateVehicleHandler interface {
		Handle(ctx context.Context, cmd commands.CreateVehicleCommand) (*vehicle.Vehicle, error)
	}
	DeleteVehicleHandler interface {
		Handle(ctx context.Context, cmd commands.DeleteVehicleCommand) error
	}
	CreateDriverHandler interface {
		Handle(ctx context.Context, cmd commands.CreateDriverCommand) (*driver.Driver, error)
	}
	UpdateDriverHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateDriverCommand) (*driver.Driver, error)
	}
	DeleteDriverHandler interface {
		Handle(ctx context.Context, cmd commands.DeleteDriverCommand) error
	}
	CreateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error)
	}
	DeleteOrderHandler interface {
		Handle(ctx context.Context, cmd commands.DeleteOrderCommand) error
	}
	MarkDeliveredHandler interface {
		Handle(ctx context.Context, cmd commands.MarkDeliveredCommand) (*order.Order, error)
	}
	ReconcileRoutesHandler interface {
		Handle(ctx context.Context, cmd commands.ReconcileRoutesCommand) (commands.ReconcileRoutesResult, error)
	}

	ListVehiclesHandler interface {
		Handle(ctx context.Context, query queries.ListVehiclesQuery) ([]queries.VehicleView, error)
	}
	ListDriversHandler interface {
		Handle(ctx context.Context, query queries.ListDriversQuery) ([]queries.DriverView, error)
	}
	ListOrdersHandler interface {
		Handle(ctx context.Context, query queries.ListOrdersQuery) ([]queries.OrderView, error)
	}
	ListRoutesHandler interface {
		Handle(ctx context.Context, query queries.ListRoutesQuery) ([]queries.RouteView, error)
	}
	GetDriverRouteHandler interface {
		Handle(ctx context.Context, query queries.GetDriverRouteQuery) (queries.GetDriverRouteQueryResponse, error)
	}
)

// Handlers bundles the use cases served over HTTP.
type Handlers struct {
	CreateVehicle   CreateVehicleHandler
	DeleteVehicle   DeleteVehicleHandler
	CreateDriver    CreateDriverHandler
	UpdateDriver    UpdateDriverHandler
	DeleteDriver    DeleteDriverHandler
	CreateOrder     CreateOrderHandler
	DeleteOrder     DeleteOrderHandler
	MarkDelivered   MarkDeliveredHandler
	ReconcileRoutes ReconcileRoutesHandler

	ListVehicles   ListVehiclesHandler
	ListDrivers    ListDriversHandler
	ListOrders     ListOrdersHandler
	ListRoutes     ListRoutesHandler
	GetDriverRoute GetDriverRouteHandler
}

// Server implements servers.ServerInterface. Every operation resolves the
// caller's organization first and runs the use case in that scope.
type Server struct {
	resolver ScopeResolver
	handlers Handlers
	logger   *slog.Logger
}

var _ servers.ServerInterface = (*Server)(nil)

func NewServer(resolver ScopeResolver, handlers Handlers, logger *slog.Logger) *Server {
	return &Server{
		resolver: resolver,
		handlers: handlers,
		logger:   logger.With("component", "http"),
	}
}

// GetOrganization handles GET /api/v1/organization.
func (s *Server) GetOrganization(ctx echo.Context) error {
	scope, err := s.scope(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, servers.Organization{OrganizationId: scope.OrgID().Bytes()})
}

// ListVehicles handles GET /api/v1/vehicles.
func (s *Server) ListVehicles(ctx echo.Context) error {
	scope, err := s.scope(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewListVehiclesQuery(scope)
	if err != nil {
		return s.fail(ctx, err)
	}

	views, err := s.handlers.ListVehicles.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.Vehicle, 0, len(views))
	for _, v := range views {
		response = append(response, vehicleViewResponse(v))
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateVehicle handles POST /api/v1/vehicles.
func (s *Server) CreateVehicle(ctx echo.Context) error {
	var body servers.CreateVehicleJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.badBody(ctx, err)
	}

	scope, err := s.scope(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	start, err := optionalLocation(body.Start, "start")
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewCreateVehicleCommand(
		scope, kernel.NewUUID(), body.Name, body.CapacityKg, start, deref(body.Address))
	if err != nil {
		return s.fail(ctx, err)
	}

	v, err := s.handlers.CreateVehicle.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, vehicleResponse(v))
}

// DeleteVehicle handles DELETE /api/v1/vehicles/{vehicleId}.
func (s *Server) DeleteVehicle(ctx echo.Context, vehicleID servers.VehicleId) error {
	scope, err := s.scope(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	id, err := pathID(vehicleID, "vehicleId")
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewDeleteVehicleCommand(scope, id)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.DeleteVehicle.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// ListDrivers handles GET /api/v1/drivers.
func (s *Server) ListDrivers(ctx echo.Context) error {
	scope, err := s.scope(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewListDriversQuery(scope)
	if err != nil {
		return s.fail(ctx, err)
	}

	views, err := s.handlers.ListDrivers.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.Driver, 0, len(views))
	for _, d := range views {
		response = append(response, driverViewResponse(d))
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateDriver handles POST /api/v1/drivers.
func (s *Server) CreateDriver(ctx echo.Context) error {
	var body servers.CreateDriverJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.badBody(ctx, err)
	}

	scope, err := s.scope(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	vehicleID, err := optionalID(body.AssignedVehicleId, "assignedVehicleId")
	if err != nil {
		return s.fail(ctx, err)
	}

	profile := driver.Profile{
		Email:     deref(body.Email),
		LicenseID: deref(body.LicenseId),
		Phone:     deref(body.Phone),
		HomeBase:  deref(body.HomeBase),
		Status:    deref(body.Status),
	}

	cmd, err := commands.NewCreateDriverCommand(
		scope, kernel.NewUUID(), body.Name, profile, deref(body.LastCheckIn), vehicleID)
	if err != nil {
		return s.fail(ctx, err)
	}

	d, err := s.handlers.CreateDriver.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, driverResponse(d))
}

// UpdateDriver handles PATCH /api/v1/drivers/{driverId}.
func (s *Server) UpdateDriver(ctx echo.Context, driverID servers.DriverId) error {
	var body servers.UpdateDriverJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.badBody(ctx, err)
	}

	scope, err := s.scope(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	id, err := pathID(driverID, "driverId")
	if err != nil {
		return s.fail(ctx, err)
	}

	vehicleID, err := optionalID(body.AssignedVehicleId, "assignedVehicleId")
	if err != nil {
		return s.fail(ctx, err)
	}

	patch := commands.DriverPatch{
		Name:                 body.Name,
		Email:                body.Email,
		LicenseID:            body.LicenseId,
		Phone:                body.Phone,
		HomeBase:             body.HomeBase,
		Status:               body.Status,
		LastCheckIn:          body.LastCheckIn,
		AssignedVehicleID:    vehicleID,
		ClearAssignedVehicle: deref(body.ClearAssignedVehicle),
	}

	cmd, err := commands.NewUpdateDriverCommand(scope, id, patch)
	if err != nil {
		return s.fail(ctx, err)
	}

	d, err := s.handlers.UpdateDriver.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, driverResponse(d))
}

// DeleteDriver handles DELETE /api/v1/drivers/{driverId}.
func (s *Server) DeleteDriver(ctx echo.Context, driverID servers.DriverId) error {
	scope, err := s.scope(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	id, err := pathID(driverID, "driverId")
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewDeleteDriverCommand(scope, id)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.DeleteDriver.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// ListOrders handles GET /api/v1/orders.
func (s *Server) ListOrders(ctx echo.Context, params servers.ListOrdersParams) error {
	scope, err := s.scope(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewListOrdersQuery(scope, deref(params.Status))
	if err != nil {
		return s.fail(ctx, err)
	}

	views, err := s.handlers.ListOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.Order, 0, len(views))
	for _, o := range views {
		response = append(response, orderViewResponse(o))
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body servers.CreateOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.badBody(ctx, err)
	}

	scope, err := s.scope(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	location, err := optionalLocation(body.Location, "location")
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(
		scope,
		kernel.NewUUID(),
		deref(body.Address),
		location,
		body.WeightKg,
		deref(body.ServiceDurationMin),
		deref(body.Status),
	)
	if err != nil {
		return s.fail(ctx, err)
	}

	o, err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, orderResponse(o))
}

// DeleteOrder handles DELETE /api/v1/orders/{orderId}.
func (s *Server) DeleteOrder(ctx echo.Context, orderID servers.OrderId) error {
	scope, err := s.scope(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	id, err := pathID(orderID, "orderId")
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewDeleteOrderCommand(scope, id)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.DeleteOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// ListRoutes handles GET /api/v1/routes.
func (s *Server) ListRoutes(ctx echo.Context) error {
	scope, err := s.scope(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewListRoutesQuery(scope)
	if err != nil {
		return s.fail(ctx, err)
	}

	views, err := s.handlers.ListRoutes.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.Route, 0, len(views))
	for _, r := range views {
		response = append(response, routeViewResponse(r))
	}
	return ctx.JSON(http.StatusOK, response)
}

// ReconcileRoutes handles POST /api/v1/routes/reconcile.
func (s *Server) ReconcileRoutes(ctx echo.Context) error {
	scope, err := s.scope(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewReconcileRoutesCommand(scope)
	if err != nil {
		return s.fail(ctx, err)
	}

	result, err := s.handlers.ReconcileRoutes.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, reconcileResponse(result))
}

// GetDriverRoute handles GET /api/v1/driver/route for the calling driver.
func (s *Server) GetDriverRoute(ctx echo.Context) error {
	scope, err := s.scope(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	subject, _ := tenancy.SubjectFrom(ctx.Request().Context())
	query, err := queries.NewGetDriverRouteQuery(scope, subject)
	if err != nil {
		return s.fail(ctx, err)
	}

	route, err := s.handlers.GetDriverRoute.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, driverRouteResponse(route))
}

// MarkOrderDelivered handles POST /api/v1/driver/orders/{orderId}/delivered.
func (s *Server) MarkOrderDelivered(ctx echo.Context, orderID servers.OrderId) error {
	scope, err := s.scope(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	id, err := pathID(orderID, "orderId")
	if err != nil {
		return s.fail(ctx, err)
	}

	subject, _ := tenancy.SubjectFrom(ctx.Request().Context())
	cmd, err := commands.NewMarkDeliveredCommand(scope, subject, id)
	if err != nil {
		return s.fail(ctx, err)
	}

	o, err := s.handlers.MarkDelivered.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, orderResponse(o))
}

func (s *Server) scope(ctx echo.Context) (tenant.Scope, error) {
	return s.resolver.Resolve(ctx.Request().Context())
}

func (s *Server) badBody(ctx echo.Context, err error) error {
	return s.fail(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
}
