package commands

import (
	"errors"
	"strings"
	"time"

	"fleetdispatch/internal/core/domain/model/driver"
	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/core/domain/model/tenant"
	"fleetdispatch/internal/pkg/errs"
	"fleetdispatch/internal/pkg/guard"
)

var ErrCreateDriverCommandIsNotConstructed = errors.New(
	"CreateDriverCommand must be created via NewCreateDriverCommand constructor",
)

// CreateDriverCommand registers a driver, optionally assigned to a vehicle right away.
type CreateDriverCommand struct { //nolint:recvcheck //using for validation
	scope       tenant.Scope
	driverID    kernel.UUID
	name        string
	profile     driver.Profile
	lastCheckIn time.Time
	vehicleID   *kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateDriverCommand validates the request. A zero lastCheckIn means now.
func NewCreateDriverCommand(
	scope tenant.Scope,
	driverID kernel.UUID,
	name string,
	profile driver.Profile,
	lastCheckIn time.Time,
	vehicleID *kernel.UUID,
) (CreateDriverCommand, error) {
	cmd := CreateDriverCommand{
		scope:       scope,
		driverID:    driverID,
		name:        strings.TrimSpace(name),
		profile:     profile,
		lastCheckIn: lastCheckIn,
		guard:       guard.NewConstructorGuard(),
	}

	var nameErr error
	if cmd.name == "" {
		nameErr = errs.NewValueIsRequiredError("name")
	}

	var vehicleErr error
	if vehicleID != nil {
		vehicleErr = vehicleID.Validate()
		vid := *vehicleID
		cmd.vehicleID = &vid
	}

	if err := errors.Join(scope.Validate(), driverID.Validate(), nameErr, vehicleErr); err != nil {
		return CreateDriverCommand{}, err
	}

	return cmd, nil
}

func (c CreateDriverCommand) Validate() error {
	return c.guard.Validate(ErrCreateDriverCommandIsNotConstructed)
}

func (c CreateDriverCommand) Scope() tenant.Scope {
	return c.scope
}

func (c CreateDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

func (c CreateDriverCommand) Name() string {
	return c.name
}

func (c CreateDriverCommand) Profile() driver.Profile {
	return c.profile
}

func (c CreateDriverCommand) LastCheckIn() time.Time {
	return c.lastCheckIn
}

// VehicleID returns the vehicle to assign, nil when the driver starts unassigned.
func (c CreateDriverCommand) VehicleID() *kernel.UUID {
	return c.vehicleID
}
