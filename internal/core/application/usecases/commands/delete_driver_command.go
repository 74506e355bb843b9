package commands

import (
	"errors"

	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/core/domain/model/tenant"
	"fleetdispatch/internal/pkg/guard"
)

var ErrDeleteDriverCommandIsNotConstructed = errors.New(
	"DeleteDriverCommand must be created via NewDeleteDriverCommand constructor",
)

type DeleteDriverCommand struct { //nolint:recvcheck //using for validation
	scope    tenant.Scope
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteDriverCommand(scope tenant.Scope, driverID kernel.UUID) (DeleteDriverCommand, error) {
	if err := errors.Join(scope.Validate(), driverID.Validate()); err != nil {
		return DeleteDriverCommand{}, err
	}

	return DeleteDriverCommand{scope: scope, driverID: driverID, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteDriverCommand) Validate() error {
	return c.guard.Validate(ErrDeleteDriverCommandIsNotConstructed)
}

func (c DeleteDriverCommand) Scope() tenant.Scope {
	return c.scope
}

func (c DeleteDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}
