package cmd

import (
	"fmt"
	"log/slog"

	httpin "fleetdispatch/internal/adapters/in/http"
	"fleetdispatch/internal/adapters/out/httpclient"
	"fleetdispatch/internal/adapters/out/metrics"
	"fleetdispatch/internal/adapters/out/nominatim"
	"fleetdispatch/internal/adapters/out/osrm"
	"fleetdispatch/internal/adapters/out/postgres"
	"fleetdispatch/internal/adapters/out/postgres/geocodecache"
	"fleetdispatch/internal/adapters/out/postgres/membershiprepo"
	"fleetdispatch/internal/adapters/out/solver"
	"fleetdispatch/internal/core/application/tenancy"
	"fleetdispatch/internal/core/application/usecases/commands"
	"fleetdispatch/internal/core/application/usecases/queries"
	"fleetdispatch/internal/core/domain/model/tenant"
	"fleetdispatch/internal/core/domain/services"
	"fleetdispatch/internal/core/ports"
	"fleetdispatch/internal/jobs"
	"fleetdispatch/internal/pkg/keylock"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	logger     *slog.Logger

	registry *prometheus.Registry
	metrics  *metrics.PromSink
	runLocks *keylock.Locker

	geocoder   ports.Geocoder
	travelTime ports.TravelTimeEstimator
	solver     ports.Solver
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	sink, err := metrics.NewPromSink(registry)
	if err != nil {
		return nil, fmt.Errorf("register metrics: %w", err)
	}

	nominatimClient := httpclient.New(config.Geocoding.BaseURL, config.Geocoding.Timeout,
		httpclient.WithHeader("User-Agent", config.Geocoding.UserAgent))
	osrmClient := httpclient.New(config.Routing.BaseURL, config.Routing.Timeout)
	solverClient := httpclient.New(config.Solver.BaseURL, config.Solver.Timeout,
		httpclient.WithRetry(config.Solver.Attempts, 0))

	return &CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
		registry:   registry,
		metrics:    sink,
		runLocks:   keylock.New(),
		geocoder:   geocodecache.New(gormDB, nominatim.New(nominatimClient, logger), logger),
		travelTime: osrm.New(osrmClient, logger),
		solver:     solver.New(solverClient, logger),
	}, nil
}

func (c *CompositionRoot) CreateCreateVehicleCommandHandler() *commands.CreateVehicleCommandHandler {
	var f commands.VehicleUoWFactory = FuncVehicleUoWFactory(func(scope tenant.Scope) commands.VehicleUoW {
		return c.uowFactory.Create(scope)
	})
	h := commands.NewCreateVehicleCommandHandler(f, c.geocoder)
	return &h
}

func (c *CompositionRoot) CreateDeleteVehicleCommandHandler() *commands.DeleteVehicleCommandHandler {
	h := commands.NewDeleteVehicleCommandHandler(c.fullUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateCreateDriverCommandHandler() *commands.CreateDriverCommandHandler {
	h := commands.NewCreateDriverCommandHandler(c.driverUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateUpdateDriverCommandHandler() *commands.UpdateDriverCommandHandler {
	h := commands.NewUpdateDriverCommandHandler(c.driverUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateDeleteDriverCommandHandler() *commands.DeleteDriverCommandHandler {
	h := commands.NewDeleteDriverCommandHandler(c.driverUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() *commands.CreateOrderCommandHandler {
	h := commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.geocoder)
	return &h
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() *commands.DeleteOrderCommandHandler {
	h := commands.NewDeleteOrderCommandHandler(c.orderUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateMarkDeliveredCommandHandler() *commands.MarkDeliveredCommandHandler {
	h := commands.NewMarkDeliveredCommandHandler(c.fullUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateReconcileRoutesCommandHandler() *commands.ReconcileRoutesCommandHandler {
	h := commands.NewReconcileRoutesCommandHandler(
		c.fullUoWFactory(), c.solver, c.metrics, c.runLocks, c.config.Solver.Timeout, c.logger)
	return &h
}

func (c *CompositionRoot) CreateListVehiclesQueryHandler() queries.ListVehiclesQueryHandler {
	return queries.NewListVehiclesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListDriversQueryHandler() queries.ListDriversQueryHandler {
	return queries.NewListDriversQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListRoutesQueryHandler() queries.ListRoutesQueryHandler {
	return queries.NewListRoutesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDriverRouteQueryHandler() queries.GetDriverRouteQueryHandler {
	return queries.NewGetDriverRouteQueryHandler(c.uowFactory, services.NewETAEstimator(c.travelTime))
}

func (c *CompositionRoot) CreateScopeResolver() *tenancy.Resolver {
	return tenancy.NewResolver(membershiprepo.NewGormMembershipRepository(c.gormDB), c.logger)
}

// CreateRouter wires every use case into the HTTP API.
func (c *CompositionRoot) CreateRouter() (*echo.Echo, error) {
	server := httpin.NewServer(c.CreateScopeResolver(), httpin.Handlers{
		CreateVehicle:   c.CreateCreateVehicleCommandHandler(),
		DeleteVehicle:   c.CreateDeleteVehicleCommandHandler(),
		CreateDriver:    c.CreateCreateDriverCommandHandler(),
		UpdateDriver:    c.CreateUpdateDriverCommandHandler(),
		DeleteDriver:    c.CreateDeleteDriverCommandHandler(),
		CreateOrder:     c.CreateCreateOrderCommandHandler(),
		DeleteOrder:     c.CreateDeleteOrderCommandHandler(),
		MarkDelivered:   c.CreateMarkDeliveredCommandHandler(),
		ReconcileRoutes: c.CreateReconcileRoutesCommandHandler(),
		ListVehicles:    c.CreateListVehiclesQueryHandler(),
		ListDrivers:     c.CreateListDriversQueryHandler(),
		ListOrders:      c.CreateListOrdersQueryHandler(),
		ListRoutes:      c.CreateListRoutesQueryHandler(),
		GetDriverRoute:  c.CreateGetDriverRouteQueryHandler(),
	}, c.logger)

	return httpin.NewRouter(server, c.registry, c.logger)
}

func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, error) {
	scopes, err := c.config.Dispatch.Scopes()
	if err != nil {
		return nil, err
	}
	return jobs.NewJobManager(c.CreateReconcileRoutesCommandHandler(), jobs.ScheduleConfig{
		Schedule:      c.config.Dispatch.Schedule,
		Organizations: scopes,
	}, c.logger), nil
}

func (c *CompositionRoot) fullUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func(scope tenant.Scope) ports.UnitOfWork {
		return c.uowFactory.Create(scope)
	})
}

func (c *CompositionRoot) driverUoWFactory() commands.DriverUoWFactory {
	return FuncDriverUoWFactory(func(scope tenant.Scope) commands.DriverUoW {
		return c.uowFactory.Create(scope)
	})
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func(scope tenant.Scope) commands.OrderUoW {
		return c.uowFactory.Create(scope)
	})
}

type FuncVehicleUoWFactory func(scope tenant.Scope) commands.VehicleUoW

func (f FuncVehicleUoWFactory) Create(scope tenant.Scope) commands.VehicleUoW {
	return f(scope)
}

type FuncDriverUoWFactory func(scope tenant.Scope) commands.DriverUoW

func (f FuncDriverUoWFactory) Create(scope tenant.Scope) commands.DriverUoW {
	return f(scope)
}

type FuncOrderUoWFactory func(scope tenant.Scope) commands.OrderUoW

func (f FuncOrderUoWFactory) Create(scope tenant.Scope) commands.OrderUoW {
	return f(scope)
}

type FuncUoWFactory func(scope tenant.Scope) ports.UnitOfWork

func (f FuncUoWFactory) Create(scope tenant.Scope) ports.UnitOfWork {
	return f(scope)
}
