package commands

import (
	"context"

	"fleetdispatch/internal/core/domain/model/order"
	"fleetdispatch/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for order intake.
// Every order leaves intake with resolved coordinates.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, geocoder)
//	cmd, _ := NewCreateOrderCommand(scope, kernel.NewUUID(), "456 Oak Avenue", nil, 15, 5, "")
//
//	o, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	// o is Unassigned and waits for the next reconciliation run
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	places     placeResolver
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, geocoder ports.Geocoder) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		places:     placeResolver{geocoder: geocoder},
	}
}

// Handle resolves the order's place and persists it as Unassigned.
// An address that cannot be geocoded fails with a validation error before
// the transaction begins.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	location, address, err := h.places.resolve(ctx, cmd.Address(), cmd.Location())
	if err != nil {
		return nil, err
	}

	o, err := order.NewOrder(
		cmd.Scope(), cmd.OrderID(), address, location, cmd.WeightKg(), cmd.ServiceDurationMin(),
	)
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

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
