package plan_test

import (
	"testing"

	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/core/domain/model/order"
	"fleetdispatch/internal/core/domain/model/plan"
	"fleetdispatch/internal/core/domain/model/tenant"
	"fleetdispatch/internal/core/domain/model/vehicle"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequest(t *testing.T) {
	scope, err := tenant.NewScope(kernel.NewUUID())
	require.NoError(t, err)

	dropOff, _ := kernel.NewLocation(10, 10)
	o, err := order.NewOrder(scope, kernel.NewUUID(), "Stop", dropOff, 5, 10)
	require.NoError(t, err)

	depot, _ := kernel.NewLocation(0, 0)
	v, err := vehicle.NewVehicle(scope, kernel.NewUUID(), "v1", 100, depot, "Depot")
	require.NoError(t, err)

	req := plan.NewRequest([]*order.Order{o}, []*vehicle.Vehicle{v})

	assert.Equal(t, []plan.OrderInput{{
		ID: o.ID().String(), Lat: 10, Lon: 10, WeightKg: 5, ServiceDurationMin: 10,
	}}, req.Orders)
	assert.Equal(t, []plan.VehicleInput{{
		ID: v.ID().String(), CapacityKg: 100, StartLat: 0, StartLon: 0,
	}}, req.Vehicles)
}

func TestPlan_IsEmpty(t *testing.T) {
	assert.True(t, plan.Plan{}.IsEmpty())

	p := plan.Plan{Assignments: []plan.Assignment{{VehicleID: "v1", StopIDs: []string{"a", "b"}}, {VehicleID: "v2"}}}
	assert.False(t, p.IsEmpty())
	assert.Equal(t, 2, p.StopCount())
}
