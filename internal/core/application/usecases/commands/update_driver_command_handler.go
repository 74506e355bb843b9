package commands

import (
	"context"
	"errors"

	"fleetdispatch/internal/core/domain/model/driver"
)

type UpdateDriverCommandHandler struct {
	uowFactory DriverUoWFactory
}

func NewUpdateDriverCommandHandler(uowFactory DriverUoWFactory) UpdateDriverCommandHandler {
	return UpdateDriverCommandHandler{uowFactory: uowFactory}
}

// Handle loads the driver, applies the present fields of the patch and stores it.
func (h *UpdateDriverCommandHandler) Handle(ctx context.Context, cmd UpdateDriverCommand) (*driver.Driver, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create(cmd.Scope())
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	driverRepo := uow.DriverRepository()
	d, err := driverRepo.Get(ctx, cmd.DriverID())
	if err != nil {
		return nil, err
	}

	patch := cmd.Patch()
	if err = applyDriverPatch(d, patch); err != nil {
		return nil, err
	}

	switch {
	case patch.ClearAssignedVehicle:
		d.UnassignVehicle()
	case patch.AssignedVehicleID != nil:
		if err = assignVehicle(ctx, uow.VehicleRepository(), d, *patch.AssignedVehicleID); err != nil {
			return nil, err
		}
	}

	if err = driverRepo.Update(ctx, d); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return d, nil
}

func applyDriverPatch(d *driver.Driver, patch DriverPatch) error {
	var errList []error

	if patch.Name != nil {
		errList = append(errList, d.Rename(*patch.Name))
	}
	if patch.Email != nil {
		d.ChangeEmail(*patch.Email)
	}
	if patch.LicenseID != nil {
		d.ChangeLicenseID(*patch.LicenseID)
	}
	if patch.Phone != nil {
		d.ChangePhone(*patch.Phone)
	}
	if patch.HomeBase != nil {
		d.ChangeHomeBase(*patch.HomeBase)
	}
	if patch.Status != nil {
		errList = append(errList, d.ChangeStatus(*patch.Status))
	}
	if patch.LastCheckIn != nil {
		d.CheckIn(*patch.LastCheckIn)
	}

	return errors.Join(errList...)
}
