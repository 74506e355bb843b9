package commands_test

import (
	"testing"

	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/core/domain/model/order"
	"fleetdispatch/internal/core/domain/model/tenant"
	"fleetdispatch/internal/core/domain/model/vehicle"

	"github.com/stretchr/testify/require"
)

func newScope(t *testing.T) tenant.Scope {
	t.Helper()
	scope, err := tenant.NewScope(kernel.NewUUID())
	require.NoError(t, err)
	return scope
}

func newLocation(t *testing.T, lat, lon float64) kernel.Location {
	t.Helper()
	loc, err := kernel.NewLocation(lat, lon)
	require.NoError(t, err)
	return loc
}

func newVehicle(t *testing.T, scope tenant.Scope) *vehicle.Vehicle {
	t.Helper()
	v, err := vehicle.NewVehicle(scope, kernel.NewUUID(), "Van", 100, newLocation(t, 0, 0), "Depot")
	require.NoError(t, err)
	return v
}

func newOrder(t *testing.T, scope tenant.Scope) *order.Order {
	t.Helper()
	o, err := order.NewOrder(scope, kernel.NewUUID(), "Stop", newLocation(t, 10, 10), 5, 10)
	require.NoError(t, err)
	return o
}

func routedOrder(t *testing.T, scope tenant.Scope, routeID kernel.UUID, status order.Status) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(kernel.NewUUID(), scope.OrgID(), "Stop", newLocation(t, 10, 10), 5, 10,
		status, &routeID, 0)
	require.NoError(t, err)
	return o
}
