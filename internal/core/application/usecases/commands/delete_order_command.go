package commands

import (
	"errors"

	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/core/domain/model/tenant"
	"fleetdispatch/internal/pkg/guard"
)

var ErrDeleteOrderCommandIsNotConstructed = errors.New(
	"DeleteOrderCommand must be created via NewDeleteOrderCommand constructor",
)

type DeleteOrderCommand struct { //nolint:recvcheck //using for validation
	scope   tenant.Scope
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteOrderCommand(scope tenant.Scope, orderID kernel.UUID) (DeleteOrderCommand, error) {
	if err := errors.Join(scope.Validate(), orderID.Validate()); err != nil {
		return DeleteOrderCommand{}, err
	}

	return DeleteOrderCommand{scope: scope, orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrderCommandIsNotConstructed)
}

func (c DeleteOrderCommand) Scope() tenant.Scope {
	return c.scope
}

func (c DeleteOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}
