package commands

import (
	"context"
	"fmt"
)

// DeleteVehicleCommandHandler deletes a vehicle without leaving dangling references.
//
// Every route served by the vehicle keeps existing as a vehicle-less shell;
// its orders go back to Unassigned, and drivers assigned to the vehicle are
// unassigned. The next reconciliation run purges the shells.
type DeleteVehicleCommandHandler struct {
	uowFactory UoWFactory
}

func NewDeleteVehicleCommandHandler(uowFactory UoWFactory) DeleteVehicleCommandHandler {
	return DeleteVehicleCommandHandler{uowFactory: uowFactory}
}

func (h *DeleteVehicleCommandHandler) Handle(ctx context.Context, cmd DeleteVehicleCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create(cmd.Scope())
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	// Serialised with reconciliation so a run never plans onto a vehicle being removed.
	if err := uow.LockDispatch(ctx); err != nil {
		return err
	}

	vehicleRepo := uow.VehicleRepository()
	if _, err := vehicleRepo.Get(ctx, cmd.VehicleID()); err != nil {
		return err
	}

	routeRepo := uow.RouteRepository()
	orderRepo := uow.OrderRepository()

	routes, err := routeRepo.ListByVehicle(ctx, cmd.VehicleID())
	if err != nil {
		return err
	}

	for _, r := range routes {
		stops, listErr := orderRepo.ListByRoute(ctx, r.ID())
		if listErr != nil {
			return listErr
		}
		for _, o := range stops {
			o.Unassign()
			if err = orderRepo.Update(ctx, o); err != nil {
				return fmt.Errorf("unassign order %s: %w", o.ID(), err)
			}
		}

		r.DetachVehicle()
		if err = routeRepo.Update(ctx, r); err != nil {
			return fmt.Errorf("detach route %s: %w", r.ID(), err)
		}
	}

	if err = uow.DriverRepository().ClearVehicle(ctx, cmd.VehicleID()); err != nil {
		return err
	}

	if err = vehicleRepo.Delete(ctx, cmd.VehicleID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
