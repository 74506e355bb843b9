package commands_test

import (
	"context"
	"time"

	"fleetdispatch/internal/core/application/usecases/commands"
	"fleetdispatch/internal/core/domain/model/driver"
	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/core/domain/model/order"
	"fleetdispatch/internal/core/domain/model/plan"
	"fleetdispatch/internal/core/domain/model/route"
	"fleetdispatch/internal/core/domain/model/tenant"
	"fleetdispatch/internal/core/domain/model/vehicle"
	"fleetdispatch/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockVehicleRepository struct{ mock.Mock }

func (m *MockVehicleRepository) Add(ctx context.Context, v *vehicle.Vehicle) error {
	return m.Called(ctx, v).Error(0)
}

func (m *MockVehicleRepository) Get(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error) {
	args := m.Called(ctx, id)
	v, _ := args.Get(0).(*vehicle.Vehicle)
	return v, args.Error(1)
}

func (m *MockVehicleRepository) List(ctx context.Context) ([]*vehicle.Vehicle, error) {
	args := m.Called(ctx)
	v, _ := args.Get(0).([]*vehicle.Vehicle)
	return v, args.Error(1)
}

func (m *MockVehicleRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockDriverRepository struct{ mock.Mock }

func (m *MockDriverRepository) Add(ctx context.Context, d *driver.Driver) error {
	return m.Called(ctx, d).Error(0)
}

func (m *MockDriverRepository) Update(ctx context.Context, d *driver.Driver) error {
	return m.Called(ctx, d).Error(0)
}

func (m *MockDriverRepository) Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error) {
	args := m.Called(ctx, id)
	d, _ := args.Get(0).(*driver.Driver)
	return d, args.Error(1)
}

func (m *MockDriverRepository) GetByEmail(ctx context.Context, email string) (*driver.Driver, error) {
	args := m.Called(ctx, email)
	d, _ := args.Get(0).(*driver.Driver)
	return d, args.Error(1)
}

func (m *MockDriverRepository) List(ctx context.Context) ([]*driver.Driver, error) {
	args := m.Called(ctx)
	d, _ := args.Get(0).([]*driver.Driver)
	return d, args.Error(1)
}

func (m *MockDriverRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockDriverRepository) ClearVehicle(ctx context.Context, vehicleID kernel.UUID) error {
	return m.Called(ctx, vehicleID).Error(0)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) List(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	o, _ := args.Get(0).([]*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) ListByRoute(ctx context.Context, routeID kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, routeID)
	o, _ := args.Get(0).([]*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockOrderRepository) UnassignAll(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type MockRouteRepository struct{ mock.Mock }

func (m *MockRouteRepository) Add(ctx context.Context, r *route.Route) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockRouteRepository) Update(ctx context.Context, r *route.Route) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockRouteRepository) Get(ctx context.Context, id kernel.UUID) (*route.Route, error) {
	args := m.Called(ctx, id)
	r, _ := args.Get(0).(*route.Route)
	return r, args.Error(1)
}

func (m *MockRouteRepository) List(ctx context.Context) ([]*route.Route, error) {
	args := m.Called(ctx)
	r, _ := args.Get(0).([]*route.Route)
	return r, args.Error(1)
}

func (m *MockRouteRepository) ListByVehicle(ctx context.Context, vehicleID kernel.UUID) ([]*route.Route, error) {
	args := m.Called(ctx, vehicleID)
	r, _ := args.Get(0).([]*route.Route)
	return r, args.Error(1)
}

func (m *MockRouteRepository) DeleteAll(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// MockUoW satisfies every unit of work interface of the package.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) BeginReadOnly(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) LockDispatch(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) VehicleRepository() ports.VehicleRepository {
	return m.Called().Get(0).(ports.VehicleRepository)
}

func (m *MockUoW) DriverRepository() ports.DriverRepository {
	return m.Called().Get(0).(ports.DriverRepository)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}

func (m *MockUoW) RouteRepository() ports.RouteRepository {
	return m.Called().Get(0).(ports.RouteRepository)
}

type MockVehicleUoWFactory struct{ mock.Mock }

func (m *MockVehicleUoWFactory) Create(scope tenant.Scope) commands.VehicleUoW {
	return m.Called(scope).Get(0).(commands.VehicleUoW)
}

type MockDriverUoWFactory struct{ mock.Mock }

func (m *MockDriverUoWFactory) Create(scope tenant.Scope) commands.DriverUoW {
	return m.Called(scope).Get(0).(commands.DriverUoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create(scope tenant.Scope) commands.OrderUoW {
	return m.Called(scope).Get(0).(commands.OrderUoW)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create(scope tenant.Scope) ports.UnitOfWork {
	return m.Called(scope).Get(0).(ports.UnitOfWork)
}

type MockGeocoder struct{ mock.Mock }

func (m *MockGeocoder) ReverseGeocode(ctx context.Context, location kernel.Location) string {
	return m.Called(ctx, location).String(0)
}

func (m *MockGeocoder) ForwardGeocode(ctx context.Context, address string) (ports.GeocodeResult, error) {
	args := m.Called(ctx, address)
	return args.Get(0).(ports.GeocodeResult), args.Error(1)
}

type MockSolver struct{ mock.Mock }

func (m *MockSolver) Solve(ctx context.Context, request plan.Request) (plan.Plan, error) {
	args := m.Called(ctx, request)
	return args.Get(0).(plan.Plan), args.Error(1)
}

type MockMetrics struct{ mock.Mock }

func (m *MockMetrics) ObserveSolverLatency(d time.Duration) { m.Called(d) }

func (m *MockMetrics) RecordRun(outcome ports.ReconcileOutcome, routes int) { m.Called(outcome, routes) }
