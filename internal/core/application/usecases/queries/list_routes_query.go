package queries

import (
	"errors"

	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/core/domain/model/tenant"
	"fleetdispatch/internal/pkg/guard"
)

var ErrListRoutesQueryIsNotConstructed = errors.New(
	"ListRoutesQuery must be created via NewListRoutesQuery constructor",
)

// ListRoutesQuery lists the current plan of an organization, vehicle-less shells included.
type ListRoutesQuery struct {
	scope tenant.Scope
	guard guard.ConstructorGuard
}

func NewListRoutesQuery(scope tenant.Scope) (ListRoutesQuery, error) {
	if err := scope.Validate(); err != nil {
		return ListRoutesQuery{}, err
	}
	return ListRoutesQuery{scope: scope, guard: guard.NewConstructorGuard()}, nil
}

func (q ListRoutesQuery) Validate() error {
	return q.guard.Validate(ErrListRoutesQueryIsNotConstructed)
}

func (q ListRoutesQuery) Scope() tenant.Scope {
	return q.scope
}

// RouteView is a route with its stops in visit order.
type RouteView struct {
	ID          kernel.UUID
	Status      string
	VehicleID   *kernel.UUID
	VehicleName string
	Stops       []RouteStopView
}

type RouteStopView struct {
	OrderID  kernel.UUID
	Address  string
	Location kernel.Location
	Status   string
}
