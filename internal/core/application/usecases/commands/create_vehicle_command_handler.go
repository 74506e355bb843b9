package commands

import (
	"context"

	"fleetdispatch/internal/core/domain/model/vehicle"
	"fleetdispatch/internal/core/ports"
)

// CreateVehicleCommandHandler resolves the vehicle's start place and persists it.
// Geocoding happens before the transaction starts.
type CreateVehicleCommandHandler struct {
	uowFactory VehicleUoWFactory
	places     placeResolver
}

func NewCreateVehicleCommandHandler(
	uowFactory VehicleUoWFactory,
	geocoder ports.Geocoder,
) CreateVehicleCommandHandler {
	return CreateVehicleCommandHandler{
		uowFactory: uowFactory,
		places:     placeResolver{geocoder: geocoder},
	}
}

// Handle returns the stored vehicle. An address that cannot be geocoded is a
// validation error and nothing is persisted.
func (h *CreateVehicleCommandHandler) Handle(
	ctx context.Context,
	cmd CreateVehicleCommand,
) (*vehicle.Vehicle, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	start, address, err := h.places.resolve(ctx, cmd.Address(), cmd.Start())
	if err != nil {
		return nil, err
	}

	v, err := vehicle.NewVehicle(cmd.Scope(), cmd.VehicleID(), cmd.Name(), cmd.CapacityKg(), start, address)
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

	if err = uow.VehicleRepository().Add(ctx, v); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return v, nil
}
