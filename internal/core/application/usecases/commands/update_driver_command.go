package commands

import (
	"errors"
	"time"

	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/core/domain/model/tenant"
	"fleetdispatch/internal/pkg/errs"
	"fleetdispatch/internal/pkg/guard"
)

var ErrUpdateDriverCommandIsNotConstructed = errors.New(
	"UpdateDriverCommand must be created via NewUpdateDriverCommand constructor",
)

// DriverPatch lists the driver fields to change. A nil field is left untouched.
type DriverPatch struct {
	Name              *string
	Email             *string
	LicenseID         *string
	Phone             *string
	HomeBase          *string
	Status            *string
	LastCheckIn       *time.Time
	AssignedVehicleID *kernel.UUID

	// ClearAssignedVehicle unassigns the current vehicle.
	ClearAssignedVehicle bool
}

// UpdateDriverCommand applies a partial update to a driver.
//
// Example:
//
//	status := "ON_BREAK"
//	cmd, err := NewUpdateDriverCommand(scope, driverID, DriverPatch{Status: &status})
type UpdateDriverCommand struct { //nolint:recvcheck //using for validation
	scope    tenant.Scope
	driverID kernel.UUID
	patch    DriverPatch

	guard guard.ConstructorGuard
}

func NewUpdateDriverCommand(scope tenant.Scope, driverID kernel.UUID, patch DriverPatch) (UpdateDriverCommand, error) {
	var patchErr error
	switch {
	case patch.AssignedVehicleID != nil && patch.ClearAssignedVehicle:
		patchErr = errs.NewValueIsInvalidErrorWithCause("assignedVehicleId",
			errors.New("cannot assign and clear the vehicle at once"))
	case patch.AssignedVehicleID != nil:
		patchErr = patch.AssignedVehicleID.Validate()
	}

	if err := errors.Join(scope.Validate(), driverID.Validate(), patchErr); err != nil {
		return UpdateDriverCommand{}, err
	}

	return UpdateDriverCommand{
		scope:    scope,
		driverID: driverID,
		patch:    patch,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateDriverCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDriverCommandIsNotConstructed)
}

func (c UpdateDriverCommand) Scope() tenant.Scope {
	return c.scope
}

func (c UpdateDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

func (c UpdateDriverCommand) Patch() DriverPatch {
	return c.patch
}
