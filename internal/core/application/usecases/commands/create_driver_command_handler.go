package commands

import (
	"context"
	"errors"

	"fleetdispatch/internal/core/domain/model/driver"
	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/core/ports"
	"fleetdispatch/internal/pkg/errs"
)

type CreateDriverCommandHandler struct {
	uowFactory DriverUoWFactory
}

func NewCreateDriverCommandHandler(uowFactory DriverUoWFactory) CreateDriverCommandHandler {
	return CreateDriverCommandHandler{uowFactory: uowFactory}
}

// Handle stores the driver. A vehicle id that does not resolve inside the
// organization is a validation error.
func (h *CreateDriverCommandHandler) Handle(ctx context.Context, cmd CreateDriverCommand) (*driver.Driver, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	d, err := driver.NewDriver(cmd.Scope(), cmd.DriverID(), cmd.Name(), cmd.Profile(), cmd.LastCheckIn())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create(cmd.Scope())
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if cmd.VehicleID() != nil {
		if err = assignVehicle(ctx, uow.VehicleRepository(), d, *cmd.VehicleID()); err != nil {
			return nil, err
		}
	}

	if err = uow.DriverRepository().Add(ctx, d); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return d, nil
}

func assignVehicle(
	ctx context.Context,
	vehicles ports.VehicleRepository,
	d *driver.Driver,
	vehicleID kernel.UUID,
) error {
	v, err := vehicles.Get(ctx, vehicleID)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return errs.NewValueIsInvalidErrorWithCause("assignedVehicleId", err)
		}
		return err
	}
	return d.AssignVehicle(v)
}
