package commands_test

import (
	"context"
	"errors"
	"maps"
	"slices"
	"sync"

	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/core/domain/model/order"
	"fleetdispatch/internal/core/domain/model/route"
	"fleetdispatch/internal/core/domain/model/tenant"
	"fleetdispatch/internal/core/domain/model/vehicle"
	"fleetdispatch/internal/core/ports"
	"fleetdispatch/internal/pkg/errs"
)

var errNoTx = errors.New("no active transaction")

type routeRow struct {
	id        kernel.UUID
	orgID     kernel.UUID
	status    route.Status
	vehicleID *kernel.UUID
}

type memState struct {
	vehicles map[kernel.UUID]*vehicle.Vehicle
	orders   map[kernel.UUID]*order.Order
	routes   map[kernel.UUID]routeRow
}

func (s memState) clone() memState {
	c := memState{
		vehicles: maps.Clone(s.vehicles),
		orders:   make(map[kernel.UUID]*order.Order, len(s.orders)),
		routes:   maps.Clone(s.routes),
	}
	for id, o := range s.orders {
		c.orders[id] = copyOrder(o)
	}
	return c
}

// memStore is an in-memory database with snapshot transactions.
type memStore struct {
	mu    sync.Mutex
	state memState

	failUpdate bool
}

func newMemStore() *memStore {
	return &memStore{state: memState{
		vehicles: map[kernel.UUID]*vehicle.Vehicle{},
		orders:   map[kernel.UUID]*order.Order{},
		routes:   map[kernel.UUID]routeRow{},
	}}
}

func (s *memStore) Create(scope tenant.Scope) ports.UnitOfWork {
	return &memUoW{store: s, scope: scope}
}

func (s *memStore) seedVehicle(v *vehicle.Vehicle) {
	s.state.vehicles[v.ID()] = v
}

func (s *memStore) seedOrder(o *order.Order) {
	s.state.orders[o.ID()] = copyOrder(o)
}

func (s *memStore) seedRoute(id, orgID kernel.UUID, vehicleID *kernel.UUID) {
	s.state.routes[id] = routeRow{id: id, orgID: orgID, status: route.Planned, vehicleID: vehicleID}
}

// remove deletes committed rows the way a concurrent request would.
func (s *memStore) remove(ids ...kernel.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range ids {
		delete(s.state.orders, id)
		delete(s.state.vehicles, id)
	}
}

func (s *memStore) order(id kernel.UUID) *order.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyOrder(s.state.orders[id])
}

func (s *memStore) routesOf(orgID kernel.UUID) []routeRow {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []routeRow
	for _, r := range s.state.routes {
		if r.orgID.IsEqual(orgID) {
			out = append(out, r)
		}
	}
	return out
}

func copyOrder(o *order.Order) *order.Order {
	if o == nil {
		return nil
	}
	c, err := order.RestoreOrder(o.ID(), o.OrgID(), o.Address(), o.Location(), o.WeightKg(),
		o.ServiceDurationMin(), o.Status(), o.RouteID(), o.StopIndex())
	if err != nil {
		panic(err)
	}
	return c
}

type memUoW struct {
	store *memStore
	scope tenant.Scope
	tx    *memState
}

func (u *memUoW) Begin(_ context.Context) error {
	u.store.mu.Lock()
	defer u.store.mu.Unlock()
	tx := u.store.state.clone()
	u.tx = &tx
	return nil
}

func (u *memUoW) BeginReadOnly(ctx context.Context) error {
	return u.Begin(ctx)
}

func (u *memUoW) Commit(_ context.Context) error {
	if u.tx == nil {
		return errNoTx
	}
	u.store.mu.Lock()
	defer u.store.mu.Unlock()
	u.store.state = *u.tx
	u.tx = nil
	return nil
}

func (u *memUoW) Rollback(_ context.Context) error {
	if u.tx == nil {
		return errNoTx
	}
	u.tx = nil
	return nil
}

func (u *memUoW) LockDispatch(_ context.Context) error {
	if u.tx == nil {
		return errNoTx
	}
	return nil
}

func (u *memUoW) VehicleRepository() ports.VehicleRepository {
	return memVehicles{u}
}

func (u *memUoW) DriverRepository() ports.DriverRepository {
	return nil
}

func (u *memUoW) OrderRepository() ports.OrderRepository {
	return memOrders{u}
}

func (u *memUoW) RouteRepository() ports.RouteRepository {
	return memRoutes{u}
}

func (u *memUoW) state() *memState {
	if u.tx == nil {
		panic(errNoTx)
	}
	return u.tx
}

type memVehicles struct{ u *memUoW }

func (r memVehicles) Add(_ context.Context, v *vehicle.Vehicle) error {
	r.u.state().vehicles[v.ID()] = v
	return nil
}

func (r memVehicles) Get(_ context.Context, id kernel.UUID) (*vehicle.Vehicle, error) {
	v, ok := r.u.state().vehicles[id]
	if !ok || !v.BelongsTo(r.u.scope) {
		return nil, errs.NewObjectNotFoundError("vehicle", id.String())
	}
	return v, nil
}

func (r memVehicles) List(_ context.Context) ([]*vehicle.Vehicle, error) {
	var out []*vehicle.Vehicle
	for _, v := range r.u.state().vehicles {
		if v.BelongsTo(r.u.scope) {
			out = append(out, v)
		}
	}
	slices.SortFunc(out, func(a, b *vehicle.Vehicle) int { return compareIDs(a.ID(), b.ID()) })
	return out, nil
}

func (r memVehicles) Delete(ctx context.Context, id kernel.UUID) error {
	if _, err := r.Get(ctx, id); err != nil {
		return err
	}
	delete(r.u.state().vehicles, id)
	return nil
}

type memOrders struct{ u *memUoW }

func (r memOrders) Add(_ context.Context, o *order.Order) error {
	r.u.state().orders[o.ID()] = copyOrder(o)
	return nil
}

func (r memOrders) Update(_ context.Context, o *order.Order) error {
	if r.u.store.failUpdate {
		return errors.New("update failed")
	}
	if _, ok := r.u.state().orders[o.ID()]; !ok {
		return errs.NewObjectNotFoundError("order", o.ID().String())
	}
	r.u.state().orders[o.ID()] = copyOrder(o)
	return nil
}

func (r memOrders) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	o, ok := r.u.state().orders[id]
	if !ok || !r.u.scope.Owns(o.OrgID()) {
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}
	return copyOrder(o), nil
}

func (r memOrders) List(_ context.Context) ([]*order.Order, error) {
	var out []*order.Order
	for _, o := range r.u.state().orders {
		if r.u.scope.Owns(o.OrgID()) {
			out = append(out, copyOrder(o))
		}
	}
	slices.SortFunc(out, func(a, b *order.Order) int { return compareIDs(a.ID(), b.ID()) })
	return out, nil
}

func (r memOrders) ListByRoute(ctx context.Context, routeID kernel.UUID) ([]*order.Order, error) {
	all, _ := r.List(ctx)
	var out []*order.Order
	for _, o := range all {
		if o.RouteID() != nil && o.RouteID().IsEqual(routeID) {
			out = append(out, o)
		}
	}
	slices.SortFunc(out, func(a, b *order.Order) int { return a.StopIndex() - b.StopIndex() })
	return out, nil
}

func (r memOrders) Delete(ctx context.Context, id kernel.UUID) error {
	if _, err := r.Get(ctx, id); err != nil {
		return err
	}
	delete(r.u.state().orders, id)
	return nil
}

func (r memOrders) UnassignAll(_ context.Context) error {
	for _, o := range r.u.state().orders {
		if r.u.scope.Owns(o.OrgID()) {
			o.Unassign()
		}
	}
	return nil
}

type memRoutes struct{ u *memUoW }

func (r memRoutes) Add(_ context.Context, rt *route.Route) error {
	r.u.state().routes[rt.ID()] = routeRow{id: rt.ID(), orgID: rt.OrgID(), status: rt.Status(), vehicleID: rt.VehicleID()}
	return nil
}

func (r memRoutes) Update(ctx context.Context, rt *route.Route) error {
	if _, err := r.Get(ctx, rt.ID()); err != nil {
		return err
	}
	return r.Add(ctx, rt)
}

func (r memRoutes) Get(ctx context.Context, id kernel.UUID) (*route.Route, error) {
	row, ok := r.u.state().routes[id]
	if !ok || !r.u.scope.Owns(row.orgID) {
		return nil, errs.NewObjectNotFoundError("route", id.String())
	}
	return r.restore(ctx, row)
}

func (r memRoutes) List(ctx context.Context) ([]*route.Route, error) {
	var out []*route.Route
	for _, row := range r.u.state().routes {
		if !r.u.scope.Owns(row.orgID) {
			continue
		}
		rt, err := r.restore(ctx, row)
		if err != nil {
			return nil, err
		}
		out = append(out, rt)
	}
	return out, nil
}

func (r memRoutes) ListByVehicle(ctx context.Context, vehicleID kernel.UUID) ([]*route.Route, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	var out []*route.Route
	for _, rt := range all {
		if rt.IsServedBy(vehicleID) {
			out = append(out, rt)
		}
	}
	return out, nil
}

func (r memRoutes) DeleteAll(_ context.Context) error {
	for id, row := range r.u.state().routes {
		if r.u.scope.Owns(row.orgID) {
			delete(r.u.state().routes, id)
		}
	}
	return nil
}

func (r memRoutes) restore(ctx context.Context, row routeRow) (*route.Route, error) {
	stops, err := memOrders(r).ListByRoute(ctx, row.id)
	if err != nil {
		return nil, err
	}
	ids := make([]kernel.UUID, 0, len(stops))
	for _, o := range stops {
		ids = append(ids, o.ID())
	}
	return route.RestoreRoute(row.id, row.orgID, row.status, row.vehicleID, ids)
}

func compareIDs(a, b kernel.UUID) int {
	switch {
	case a.String() < b.String():
		return -1
	case a.String() > b.String():
		return 1
	}
	return 0
}
