package commands

import (
	"errors"
	"strings"

	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/core/domain/model/tenant"
	"fleetdispatch/internal/pkg/errs"
	"fleetdispatch/internal/pkg/guard"
)

var ErrCreateVehicleCommandIsNotConstructed = errors.New(
	"CreateVehicleCommand must be created via NewCreateVehicleCommand constructor",
)

// CreateVehicleCommand registers a vehicle. Either the start location or the
// address must be given; the missing half is resolved by the handler.
//
// Example:
//
//	start, _ := kernel.NewLocation(52.52, 13.40)
//	cmd, err := NewCreateVehicleCommand(scope, kernel.NewUUID(), "Van 1", 800, &start, "")
//	if err != nil {
//	    return fmt.Errorf("invalid vehicle: %w", err)
//	}
type CreateVehicleCommand struct { //nolint:recvcheck //using for validation
	scope      tenant.Scope
	vehicleID  kernel.UUID
	name       string
	capacityKg int
	start      *kernel.Location
	address    string

	guard guard.ConstructorGuard
}

func NewCreateVehicleCommand(
	scope tenant.Scope,
	vehicleID kernel.UUID,
	name string,
	capacityKg int,
	start *kernel.Location,
	address string,
) (CreateVehicleCommand, error) {
	cmd := CreateVehicleCommand{
		scope:      scope,
		capacityKg: capacityKg,
		start:      start,
		address:    strings.TrimSpace(address),
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		scope.Validate(),
		cmd.setVehicleID(vehicleID),
		cmd.setName(name),
		cmd.checkCapacity(),
		cmd.checkPlace(),
	); err != nil {
		return CreateVehicleCommand{}, err
	}

	return cmd, nil
}

func (c CreateVehicleCommand) Validate() error {
	return c.guard.Validate(ErrCreateVehicleCommandIsNotConstructed)
}

func (c CreateVehicleCommand) Scope() tenant.Scope {
	return c.scope
}

func (c CreateVehicleCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}

func (c CreateVehicleCommand) Name() string {
	return c.name
}

func (c CreateVehicleCommand) CapacityKg() int {
	return c.capacityKg
}

// Start returns the explicit start location, nil when it must be geocoded.
func (c CreateVehicleCommand) Start() *kernel.Location {
	return c.start
}

func (c CreateVehicleCommand) Address() string {
	return c.address
}

func (c *CreateVehicleCommand) setVehicleID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.vehicleID = id
	return nil
}

func (c *CreateVehicleCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *CreateVehicleCommand) checkCapacity() error {
	if c.capacityKg <= 0 {
		return errs.NewValueIsInvalidError("capacityKg")
	}
	return nil
}

func (c *CreateVehicleCommand) checkPlace() error {
	if c.start == nil && c.address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	return nil
}
