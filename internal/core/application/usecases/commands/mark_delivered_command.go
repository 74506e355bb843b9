package commands

import (
	"errors"
	"strings"

	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/core/domain/model/tenant"
	"fleetdispatch/internal/pkg/errs"
	"fleetdispatch/internal/pkg/guard"
)

var ErrMarkDeliveredCommandIsNotConstructed = errors.New(
	"MarkDeliveredCommand must be created via NewMarkDeliveredCommand constructor",
)

// MarkDeliveredCommand is a driver confirming a stop of their route.
type MarkDeliveredCommand struct { //nolint:recvcheck //using for validation
	scope       tenant.Scope
	driverEmail string
	orderID     kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkDeliveredCommand takes the calling driver's portal identity.
func NewMarkDeliveredCommand(scope tenant.Scope, driverEmail string, orderID kernel.UUID) (MarkDeliveredCommand, error) {
	driverEmail = strings.TrimSpace(driverEmail)

	var emailErr error
	if driverEmail == "" {
		emailErr = errs.NewValueIsRequiredError("driverEmail")
	}

	if err := errors.Join(scope.Validate(), emailErr, orderID.Validate()); err != nil {
		return MarkDeliveredCommand{}, err
	}

	return MarkDeliveredCommand{
		scope:       scope,
		driverEmail: driverEmail,
		orderID:     orderID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c MarkDeliveredCommand) Validate() error {
	return c.guard.Validate(ErrMarkDeliveredCommandIsNotConstructed)
}

func (c MarkDeliveredCommand) Scope() tenant.Scope {
	return c.scope
}

func (c MarkDeliveredCommand) DriverEmail() string {
	return c.driverEmail
}

func (c MarkDeliveredCommand) OrderID() kernel.UUID {
	return c.orderID
}
