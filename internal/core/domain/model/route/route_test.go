package route_test

import (
	"testing"

	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/core/domain/model/order"
	"fleetdispatch/internal/core/domain/model/route"
	"fleetdispatch/internal/core/domain/model/tenant"
	"fleetdispatch/internal/core/domain/model/vehicle"
	"fleetdispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	scope   tenant.Scope
	vehicle *vehicle.Vehicle
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	scope, err := tenant.NewScope(kernel.NewUUID())
	require.NoError(t, err)
	start, _ := kernel.NewLocation(0, 0)
	v, err := vehicle.NewVehicle(scope, kernel.NewUUID(), "v1", 100, start, "Depot")
	require.NoError(t, err)
	return fixture{scope: scope, vehicle: v}
}

func (f fixture) order(t *testing.T) *order.Order {
	t.Helper()
	loc, _ := kernel.NewLocation(10, 10)
	o, err := order.NewOrder(f.scope, kernel.NewUUID(), "Stop", loc, 5, 10)
	require.NoError(t, err)
	return o
}

func TestNewRoute(t *testing.T) {
	f := newFixture(t)

	r, err := route.NewRoute(f.scope, kernel.NewUUID(), f.vehicle)

	require.NoError(t, err)
	require.NoError(t, r.Validate())
	assert.Equal(t, route.Planned, r.Status())
	assert.Equal(t, "PLANNED", r.Status().String())
	assert.True(t, r.IsServedBy(f.vehicle.ID()))
	assert.True(t, r.OrgID().IsEqual(f.scope.OrgID()))
	assert.Empty(t, r.Stops())
}

func TestNewRoute_RejectsForeignVehicle(t *testing.T) {
	f := newFixture(t)
	other := newFixture(t)

	_, err := route.NewRoute(f.scope, kernel.NewUUID(), other.vehicle)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Equal(t, route.ErrForeignEntity, err)
}

func TestRoute_AddStop(t *testing.T) {
	f := newFixture(t)
	r, err := route.NewRoute(f.scope, kernel.NewUUID(), f.vehicle)
	require.NoError(t, err)
	first, second := f.order(t), f.order(t)

	require.NoError(t, r.AddStop(first))
	require.NoError(t, r.AddStop(second))

	assert.Equal(t, []kernel.UUID{first.ID(), second.ID()}, r.Stops())
	assert.Equal(t, order.Assigned, first.Status())
	assert.True(t, first.RouteID().IsEqual(r.ID()))
	assert.Equal(t, 0, first.StopIndex())
	assert.Equal(t, 1, second.StopIndex())

	t.Run("duplicate stop", func(t *testing.T) {
		require.Equal(t, route.ErrDuplicateStop, r.AddStop(first))
		assert.Len(t, r.Stops(), 2)
	})

	t.Run("foreign order", func(t *testing.T) {
		foreign := newFixture(t).order(t)

		require.Equal(t, route.ErrForeignEntity, r.AddStop(foreign))
		assert.Equal(t, order.Unassigned, foreign.Status())
	})

	t.Run("stops are copied", func(t *testing.T) {
		stops := r.Stops()
		stops[0] = kernel.NewUUID()

		assert.True(t, r.HasStop(first.ID()))
	})
}

func TestRoute_DetachVehicle(t *testing.T) {
	f := newFixture(t)
	r, _ := route.NewRoute(f.scope, kernel.NewUUID(), f.vehicle)

	r.DetachVehicle()

	assert.Nil(t, r.VehicleID())
	assert.False(t, r.IsServedBy(f.vehicle.ID()))
}

func TestRestoreRoute(t *testing.T) {
	stop := kernel.NewUUID()

	r, err := route.RestoreRoute(kernel.NewUUID(), kernel.NewUUID(), route.Planned, nil, []kernel.UUID{stop})
	require.NoError(t, err)
	assert.Nil(t, r.VehicleID())
	assert.True(t, r.HasStop(stop))

	_, err = route.RestoreRoute(kernel.NewUUID(), kernel.NewUUID(), route.Planned, nil, []kernel.UUID{stop, stop})
	require.Equal(t, route.ErrDuplicateStop, err)

	_, err = route.RestoreRoute(kernel.NewUUID(), kernel.NewUUID(), route.UnknownStatus, nil, nil)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	var nilRoute *route.Route
	assert.Equal(t, route.ErrRouteIsNotConstructed, nilRoute.Validate())
}
