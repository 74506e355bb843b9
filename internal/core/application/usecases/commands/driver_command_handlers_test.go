package commands_test

import (
	"testing"
	"time"

	"fleetdispatch/internal/core/application/usecases/commands"
	"fleetdispatch/internal/core/domain/model/driver"
	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/core/domain/model/tenant"
	"fleetdispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type driverUoWMocks struct {
	uow      *MockUoW
	drivers  *MockDriverRepository
	vehicles *MockVehicleRepository
	factory  *MockDriverUoWFactory
}

func newDriverUoWMocks(t *testing.T, scope tenant.Scope) driverUoWMocks {
	t.Helper()
	m := driverUoWMocks{
		uow:      new(MockUoW),
		drivers:  new(MockDriverRepository),
		vehicles: new(MockVehicleRepository),
		factory:  new(MockDriverUoWFactory),
	}
	m.factory.On("Create", scope).Return(m.uow).Once()
	m.uow.On("Begin", mock.Anything).Return(nil).Once()
	m.uow.On("Rollback", mock.Anything).Return(nil).Once()
	m.uow.On("DriverRepository").Return(m.drivers).Maybe()
	m.uow.On("VehicleRepository").Return(m.vehicles).Maybe()
	return m
}

func existingDriver(t *testing.T, scope tenant.Scope) *driver.Driver {
	t.Helper()
	d, err := driver.NewDriver(scope, kernel.NewUUID(), "Dana", driver.Profile{Email: "dana@example.com"}, time.Time{})
	require.NoError(t, err)
	return d
}

func TestCreateDriverCommandHandler_WithVehicle(t *testing.T) {
	ctx := t.Context()
	scope := newScope(t)
	v := newVehicle(t, scope)
	vehicleID := v.ID()
	cmd, err := commands.NewCreateDriverCommand(scope, kernel.NewUUID(), "Dana",
		driver.Profile{Email: "dana@example.com"}, time.Time{}, &vehicleID)
	require.NoError(t, err)

	m := newDriverUoWMocks(t, scope)
	m.vehicles.On("Get", ctx, v.ID()).Return(v, nil).Once()
	m.drivers.On("Add", ctx, mock.AnythingOfType("*driver.Driver")).Return(nil).Once()
	m.uow.On("Commit", ctx).Return(nil).Once()

	h := commands.NewCreateDriverCommandHandler(m.factory)
	d, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, d.Drives(v.ID()))
	assert.Equal(t, driver.DefaultStatus, d.Status())
	assert.False(t, d.LastCheckIn().IsZero())
	m.uow.AssertExpectations(t)
	m.drivers.AssertExpectations(t)
}

func TestCreateDriverCommandHandler_UnknownVehicle(t *testing.T) {
	ctx := t.Context()
	scope := newScope(t)
	vehicleID := kernel.NewUUID()
	cmd, err := commands.NewCreateDriverCommand(scope, kernel.NewUUID(), "Dana", driver.Profile{}, time.Time{}, &vehicleID)
	require.NoError(t, err)

	m := newDriverUoWMocks(t, scope)
	m.vehicles.On("Get", ctx, vehicleID).Return(nil, errs.NewObjectNotFoundError("vehicle", vehicleID)).Once()

	h := commands.NewCreateDriverCommandHandler(m.factory)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	m.drivers.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestNewCreateDriverCommand_RequiresName(t *testing.T) {
	_, err := commands.NewCreateDriverCommand(newScope(t), kernel.NewUUID(), " ", driver.Profile{}, time.Time{}, nil)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestUpdateDriverCommandHandler_PartialUpdate(t *testing.T) {
	ctx := t.Context()
	scope := newScope(t)
	d := existingDriver(t, scope)
	phone := "+49 30 1234"
	cmd, err := commands.NewUpdateDriverCommand(scope, d.ID(), commands.DriverPatch{Phone: &phone})
	require.NoError(t, err)

	m := newDriverUoWMocks(t, scope)
	m.drivers.On("Get", ctx, d.ID()).Return(d, nil).Once()
	m.drivers.On("Update", ctx, d).Return(nil).Once()
	m.uow.On("Commit", ctx).Return(nil).Once()

	h := commands.NewUpdateDriverCommandHandler(m.factory)
	updated, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, phone, updated.Phone())
	assert.Equal(t, "Dana", updated.Name())
	assert.Equal(t, "dana@example.com", updated.Email())
	m.vehicles.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestUpdateDriverCommandHandler_VehicleAssignment(t *testing.T) {
	scope := newScope(t)
	v := newVehicle(t, scope)
	vehicleID := v.ID()

	testCases := []struct {
		name       string
		patch      commands.DriverPatch
		preassign  bool
		hasVehicle bool
	}{
		{"absent leaves assignment", commands.DriverPatch{}, true, true},
		{"assign", commands.DriverPatch{AssignedVehicleID: &vehicleID}, false, true},
		{"clear", commands.DriverPatch{ClearAssignedVehicle: true}, true, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := t.Context()
			d := existingDriver(t, scope)
			if tc.preassign {
				require.NoError(t, d.AssignVehicle(v))
			}
			cmd, err := commands.NewUpdateDriverCommand(scope, d.ID(), tc.patch)
			require.NoError(t, err)

			m := newDriverUoWMocks(t, scope)
			m.drivers.On("Get", ctx, d.ID()).Return(d, nil).Once()
			m.vehicles.On("Get", ctx, v.ID()).Return(v, nil).Maybe()
			m.drivers.On("Update", ctx, d).Return(nil).Once()
			m.uow.On("Commit", ctx).Return(nil).Once()

			h := commands.NewUpdateDriverCommandHandler(m.factory)
			updated, err := h.Handle(ctx, cmd)

			require.NoError(t, err)
			assert.Equal(t, tc.hasVehicle, updated.HasVehicle())
		})
	}
}

func TestUpdateDriverCommandHandler_ForeignVehicle(t *testing.T) {
	ctx := t.Context()
	scope := newScope(t)
	d := existingDriver(t, scope)
	foreignID := kernel.NewUUID()
	cmd, err := commands.NewUpdateDriverCommand(scope, d.ID(), commands.DriverPatch{AssignedVehicleID: &foreignID})
	require.NoError(t, err)

	m := newDriverUoWMocks(t, scope)
	m.drivers.On("Get", ctx, d.ID()).Return(d, nil).Once()
	m.vehicles.On("Get", ctx, foreignID).Return(nil, errs.NewObjectNotFoundError("vehicle", foreignID)).Once()

	h := commands.NewUpdateDriverCommandHandler(m.factory)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	m.drivers.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateDriverCommandHandler_NotFound(t *testing.T) {
	ctx := t.Context()
	scope := newScope(t)
	id := kernel.NewUUID()
	cmd, err := commands.NewUpdateDriverCommand(scope, id, commands.DriverPatch{})
	require.NoError(t, err)

	m := newDriverUoWMocks(t, scope)
	m.drivers.On("Get", ctx, id).Return(nil, errs.NewObjectNotFoundError("driver", id)).Once()

	h := commands.NewUpdateDriverCommandHandler(m.factory)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestNewUpdateDriverCommand_AssignAndClearConflict(t *testing.T) {
	id := kernel.NewUUID()
	_, err := commands.NewUpdateDriverCommand(newScope(t), kernel.NewUUID(),
		commands.DriverPatch{AssignedVehicleID: &id, ClearAssignedVehicle: true})
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestUpdateDriverCommandHandler_BlankNameRejected(t *testing.T) {
	ctx := t.Context()
	scope := newScope(t)
	d := existingDriver(t, scope)
	blank := " "
	cmd, err := commands.NewUpdateDriverCommand(scope, d.ID(), commands.DriverPatch{Name: &blank})
	require.NoError(t, err)

	m := newDriverUoWMocks(t, scope)
	m.drivers.On("Get", ctx, d.ID()).Return(d, nil).Once()

	h := commands.NewUpdateDriverCommandHandler(m.factory)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestDeleteDriverCommandHandler(t *testing.T) {
	scope := newScope(t)
	id := kernel.NewUUID()

	testCases := []struct {
		name      string
		deleteErr error
		commit    bool
	}{
		{"deleted", nil, true},
		{"not found", errs.NewObjectNotFoundError("driver", id), false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := t.Context()
			cmd, err := commands.NewDeleteDriverCommand(scope, id)
			require.NoError(t, err)

			m := newDriverUoWMocks(t, scope)
			m.drivers.On("Delete", ctx, id).Return(tc.deleteErr).Once()
			if tc.commit {
				m.uow.On("Commit", ctx).Return(nil).Once()
			}

			h := commands.NewDeleteDriverCommandHandler(m.factory)
			err = h.Handle(ctx, cmd)

			if tc.deleteErr != nil {
				require.ErrorIs(t, err, errs.ErrObjectNotFound)
			} else {
				require.NoError(t, err)
			}
			m.uow.AssertExpectations(t)
		})
	}
}
