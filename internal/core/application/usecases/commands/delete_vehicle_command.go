package commands

import (
	"errors"

	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/core/domain/model/tenant"
	"fleetdispatch/internal/pkg/guard"
)

var ErrDeleteVehicleCommandIsNotConstructed = errors.New(
	"DeleteVehicleCommand must be created via NewDeleteVehicleCommand constructor",
)

// DeleteVehicleCommand removes a vehicle after detaching everything that references it.
type DeleteVehicleCommand struct { //nolint:recvcheck //using for validation
	scope     tenant.Scope
	vehicleID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteVehicleCommand(scope tenant.Scope, vehicleID kernel.UUID) (DeleteVehicleCommand, error) {
	if err := errors.Join(scope.Validate(), vehicleID.Validate()); err != nil {
		return DeleteVehicleCommand{}, err
	}

	return DeleteVehicleCommand{
		scope:     scope,
		vehicleID: vehicleID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteVehicleCommand) Validate() error {
	return c.guard.Validate(ErrDeleteVehicleCommandIsNotConstructed)
}

func (c DeleteVehicleCommand) Scope() tenant.Scope {
	return c.scope
}

func (c DeleteVehicleCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}
