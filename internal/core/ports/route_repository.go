package ports

import (
	"context"

	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/core/domain/model/route"
)

// RouteRepository defines the persistence contract for routes of one organization.
//
// A route's stop sequence is owned by its orders (route reference plus stop
// index), so Add and Update only persist the route header. Routes returned by
// the repository carry their stops in visit order.
type RouteRepository interface {
	Add(ctx context.Context, aggregate *route.Route) error

	// Update persists the status and vehicle reference of an existing route.
	Update(ctx context.Context, aggregate *route.Route) error

	Get(ctx context.Context, id kernel.UUID) (*route.Route, error)

	// List returns every route of the organization, vehicle-less shells included.
	List(ctx context.Context) ([]*route.Route, error)

	// ListByVehicle returns the routes served by the vehicle.
	ListByVehicle(ctx context.Context, vehicleID kernel.UUID) ([]*route.Route, error)

	// DeleteAll removes every route of the organization.
	DeleteAll(ctx context.Context) error
}
