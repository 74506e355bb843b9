package commands

import (
	"errors"
	"fmt"
	"strings"

	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/core/domain/model/order"
	"fleetdispatch/internal/core/domain/model/tenant"
	"fleetdispatch/internal/pkg/errs"
	"fleetdispatch/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrWeightIsInvalid          = errs.NewValueIsInvalidErrorWithCause("weightKg", errors.New("must be greater than 0"))
	ErrServiceDurationIsInvalid = errs.NewValueIsInvalidErrorWithCause(
		"serviceDurationMin", errors.New("must not be negative"))
)

// CreateOrderCommand represents a request to create a new delivery order.
// Coordinates are optional when the address can be geocoded.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(scope, kernel.NewUUID(), "Alexanderplatz 1, Berlin", nil, 5, 10, "")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, geocoder)
//	o, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	scope              tenant.Scope
	orderID            kernel.UUID
	address            string
	location           *kernel.Location
	weightKg           int
	serviceDurationMin int

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the request. A new order always starts
// Unassigned; status may be blank or UNASSIGNED.
func NewCreateOrderCommand(
	scope tenant.Scope,
	orderID kernel.UUID,
	address string,
	location *kernel.Location,
	weightKg int,
	serviceDurationMin int,
	status string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		scope:              scope,
		address:            strings.TrimSpace(address),
		location:           location,
		weightKg:           weightKg,
		serviceDurationMin: serviceDurationMin,
		guard:              guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		scope.Validate(),
		cmd.setOrderID(orderID),
		cmd.checkWeight(),
		cmd.checkServiceDuration(),
		cmd.checkPlace(),
		checkInitialStatus(status),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) Scope() tenant.Scope {
	return c.scope
}

func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateOrderCommand) Address() string {
	return c.address
}

// Location returns the explicit coordinates, nil when they must be geocoded.
func (c CreateOrderCommand) Location() *kernel.Location {
	return c.location
}

func (c CreateOrderCommand) WeightKg() int {
	return c.weightKg
}

func (c CreateOrderCommand) ServiceDurationMin() int {
	return c.serviceDurationMin
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) checkWeight() error {
	if c.weightKg <= 0 {
		return ErrWeightIsInvalid
	}
	return nil
}

func (c *CreateOrderCommand) checkServiceDuration() error {
	if c.serviceDurationMin < 0 {
		return ErrServiceDurationIsInvalid
	}
	return nil
}

func (c *CreateOrderCommand) checkPlace() error {
	if c.location == nil && c.address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	return nil
}

func checkInitialStatus(status string) error {
	if strings.TrimSpace(status) == "" {
		return nil
	}
	s, err := order.ParseStatus(status)
	if err != nil {
		return err
	}
	if s != order.Unassigned {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("a new order cannot be %s", s))
	}
	return nil
}
