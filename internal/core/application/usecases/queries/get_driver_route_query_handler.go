package queries

import (
	"context"
	"errors"

	"fleetdispatch/internal/core/domain/model/driver"
	"fleetdispatch/internal/core/domain/model/order"
	"fleetdispatch/internal/core/domain/model/route"
	"fleetdispatch/internal/core/domain/model/vehicle"
	"fleetdispatch/internal/core/domain/services"
	"fleetdispatch/internal/core/ports"
	"fleetdispatch/internal/pkg/errs"
)

// GetDriverRouteQueryHandler reads the driver, vehicle, route and stops in one
// read-only snapshot and estimates the remaining time after the snapshot is
// released, so no transaction stays open during travel-time lookups.
type GetDriverRouteQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
	eta        services.ETAEstimator
}

func NewGetDriverRouteQueryHandler(
	uowFactory ports.UnitOfWorkFactory,
	eta services.ETAEstimator,
) GetDriverRouteQueryHandler {
	return GetDriverRouteQueryHandler{uowFactory: uowFactory, eta: eta}
}

type driverRouteSnapshot struct {
	driver  *driver.Driver
	vehicle *vehicle.Vehicle
	route   *route.Route
	stops   []*order.Order
}

func (h GetDriverRouteQueryHandler) Handle(
	ctx context.Context,
	query GetDriverRouteQuery,
) (GetDriverRouteQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDriverRouteQueryResponse{}, err
	}

	snap, err := h.load(ctx, query)
	if err != nil {
		return GetDriverRouteQueryResponse{}, err
	}

	response := GetDriverRouteQueryResponse{
		DriverName: snap.driver.Name(),
		Stops:      make([]DriverRouteStop, 0, len(snap.stops)),
	}

	if snap.vehicle != nil {
		response.VehicleName = snap.vehicle.Name()
	}

	if snap.route == nil {
		return response, nil
	}

	routeID := snap.route.ID()
	response.RouteID = &routeID
	response.RouteStatus = snap.route.Status().String()
	for _, o := range snap.stops {
		response.Stops = append(response.Stops, DriverRouteStop{
			ID:                 o.ID(),
			Address:            o.Address(),
			Location:           o.Location(),
			Status:             o.Status().String(),
			ServiceDurationMin: o.ServiceDurationMin(),
		})
	}
	response.EstimatedRemainingMinutes = h.eta.RemainingMinutes(ctx, snap.stops)

	return response, nil
}

func (h GetDriverRouteQueryHandler) load(ctx context.Context, query GetDriverRouteQuery) (driverRouteSnapshot, error) {
	uow := h.uowFactory.Create(query.Scope())
	if err := uow.BeginReadOnly(ctx); err != nil {
		return driverRouteSnapshot{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	d, err := uow.DriverRepository().GetByEmail(ctx, query.DriverEmail())
	if err != nil {
		return driverRouteSnapshot{}, err
	}

	snap := driverRouteSnapshot{driver: d}
	if !d.HasVehicle() {
		return snap, nil
	}

	v, err := uow.VehicleRepository().Get(ctx, *d.VehicleID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return snap, nil
		}
		return driverRouteSnapshot{}, err
	}
	snap.vehicle = v

	routes, err := uow.RouteRepository().ListByVehicle(ctx, v.ID())
	if err != nil {
		return driverRouteSnapshot{}, err
	}
	if len(routes) == 0 {
		return snap, nil
	}
	snap.route = routes[0]

	snap.stops, err = uow.OrderRepository().ListByRoute(ctx, snap.route.ID())
	if err != nil {
		return driverRouteSnapshot{}, err
	}

	return snap, nil
}
