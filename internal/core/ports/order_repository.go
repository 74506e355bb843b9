package ports

import (
	"context"

	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for delivery orders.
// Every method operates inside the organization the repository was created for;
// orders of other organizations behave as if they did not exist.
type OrderRepository interface {
	// Add persists a new order.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the status, route and stop position of an existing order.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by identifier.
	// Returns errs.ErrObjectNotFound when the order is absent or belongs to another organization.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// List returns every order of the organization ordered by identifier.
	List(ctx context.Context) ([]*order.Order, error)

	// ListByRoute returns the stops of a route in visit order.
	ListByRoute(ctx context.Context, routeID kernel.UUID) ([]*order.Order, error)

	// Delete removes an order.
	// Returns errs.ErrObjectNotFound when nothing was deleted.
	Delete(ctx context.Context, id kernel.UUID) error

	// UnassignAll detaches every order of the organization from its route and
	// resets it to Unassigned.
	UnassignAll(ctx context.Context) error
}
