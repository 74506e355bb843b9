package vehicle_test

import (
	"testing"

	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/core/domain/model/tenant"
	"fleetdispatch/internal/core/domain/model/vehicle"
	"fleetdispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScope(t *testing.T) tenant.Scope {
	t.Helper()
	scope, err := tenant.NewScope(kernel.NewUUID())
	require.NoError(t, err)
	return scope
}

func TestNewVehicle(t *testing.T) {
	scope := newScope(t)
	start, _ := kernel.NewLocation(52.52, 13.405)
	id := kernel.NewUUID()

	t.Run("should create vehicle stamped with the scope", func(t *testing.T) {
		v, err := vehicle.NewVehicle(scope, id, "  Van 1 ", 500, start, " Alexanderplatz 1, Berlin ")

		require.NoError(t, err)
		require.NoError(t, v.Validate())
		assert.True(t, v.ID().IsEqual(id))
		assert.True(t, v.OrgID().IsEqual(scope.OrgID()))
		assert.True(t, v.BelongsTo(scope))
		assert.Equal(t, "Van 1", v.Name())
		assert.Equal(t, 500, v.CapacityKg())
		assert.Equal(t, start, v.Start())
		assert.Equal(t, "Alexanderplatz 1, Berlin", v.Address())
	})

	t.Run("should not belong to another scope", func(t *testing.T) {
		v, err := vehicle.NewVehicle(scope, id, "Van 1", 500, start, "Berlin")
		require.NoError(t, err)

		assert.False(t, v.BelongsTo(newScope(t)))
	})

	t.Run("should fail without a scope", func(t *testing.T) {
		v, err := vehicle.NewVehicle(tenant.Scope{}, id, "Van 1", 500, start, "Berlin")

		require.ErrorIs(t, err, tenant.ErrScopeIsNotConstructed)
		assert.Nil(t, v)
	})

	t.Run("should join every validation error", func(t *testing.T) {
		v, err := vehicle.NewVehicle(scope, kernel.UUID{}, " ", 0, kernel.Location{}, "")

		require.Error(t, err)
		assert.Nil(t, v)
		assert.True(t, errs.IsValidation(err))
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "name")
		assert.Contains(t, err.Error(), "capacityKg")
		assert.Contains(t, err.Error(), "location must be created")
		assert.Contains(t, err.Error(), "address")
	})

	t.Run("should reject negative capacity", func(t *testing.T) {
		_, err := vehicle.NewVehicle(scope, id, "Van 1", -10, start, "Berlin")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "-10 is not greater than 0")
	})
}

func TestVehicle_Validate(t *testing.T) {
	var nilVehicle *vehicle.Vehicle
	assert.Equal(t, vehicle.ErrVehicleIsNotConstructed, nilVehicle.Validate())
	assert.Equal(t, vehicle.ErrVehicleIsNotConstructed, (&vehicle.Vehicle{}).Validate())
}

func TestRestoreVehicle(t *testing.T) {
	start, _ := kernel.NewLocation(1, 2)
	orgID := kernel.NewUUID()

	v, err := vehicle.RestoreVehicle(kernel.NewUUID(), orgID, "Truck", 1200, start, "1.00000, 2.00000")

	require.NoError(t, err)
	assert.True(t, v.OrgID().IsEqual(orgID))

	_, err = vehicle.RestoreVehicle(kernel.NewUUID(), kernel.UUID{}, "Truck", 1200, start, "x")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}
