package commands

import (
	"context"
	"errors"

	"fleetdispatch/internal/core/domain/model/order"
	"fleetdispatch/internal/pkg/errs"
)

// ErrStopNotOnDriverRoute is returned when a driver confirms an order routed to another vehicle.
var ErrStopNotOnDriverRoute = errs.NewForbiddenError("order is not on the driver's route")

// MarkDeliveredCommandHandler is the only path moving an order to Delivered.
type MarkDeliveredCommandHandler struct {
	uowFactory UoWFactory
}

func NewMarkDeliveredCommandHandler(uowFactory UoWFactory) MarkDeliveredCommandHandler {
	return MarkDeliveredCommandHandler{uowFactory: uowFactory}
}

// Handle checks, in order: the driver exists, the order exists, the order is
// routed to a vehicle, and that vehicle is the driver's. Confirming an
// already delivered order succeeds.
func (h *MarkDeliveredCommandHandler) Handle(ctx context.Context, cmd MarkDeliveredCommand) (*order.Order, error) {
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

	d, err := uow.DriverRepository().GetByEmail(ctx, cmd.DriverEmail())
	if err != nil {
		return nil, err
	}

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if o.RouteID() == nil {
		return nil, order.ErrOrderIsNotRouted
	}

	r, err := uow.RouteRepository().Get(ctx, *o.RouteID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, order.ErrOrderIsNotRouted
		}
		return nil, err
	}
	if r.VehicleID() == nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("order", errors.New("route has no vehicle"))
	}

	if !d.Drives(*r.VehicleID()) {
		return nil, ErrStopNotOnDriverRoute
	}

	if err = o.MarkDelivered(); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
