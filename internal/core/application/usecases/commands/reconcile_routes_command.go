package commands

import (
	"errors"

	"fleetdispatch/internal/core/domain/model/order"
	"fleetdispatch/internal/core/domain/model/route"
	"fleetdispatch/internal/core/domain/model/tenant"
	"fleetdispatch/internal/core/domain/services"
	"fleetdispatch/internal/pkg/guard"
)

var ErrReconcileRoutesCommandIsNotConstructed = errors.New(
	"ReconcileRoutesCommand must be created via NewReconcileRoutesCommand constructor",
)

// ReconcileRoutesCommand asks for a fresh dispatch plan for one organization.
type ReconcileRoutesCommand struct {
	scope tenant.Scope
	guard guard.ConstructorGuard
}

func NewReconcileRoutesCommand(scope tenant.Scope) (ReconcileRoutesCommand, error) {
	if err := scope.Validate(); err != nil {
		return ReconcileRoutesCommand{}, err
	}
	return ReconcileRoutesCommand{scope: scope, guard: guard.NewConstructorGuard()}, nil
}

func (c ReconcileRoutesCommand) Validate() error {
	return c.guard.Validate(ErrReconcileRoutesCommandIsNotConstructed)
}

func (c ReconcileRoutesCommand) Scope() tenant.Scope {
	return c.scope
}

// PlannedRoute is a created route with its orders in visit order.
type PlannedRoute struct {
	Route *route.Route
	Stops []*order.Order
}

// ReconcileRoutesResult is the outcome of a reconciliation run. An empty
// result means nothing was written.
type ReconcileRoutesResult struct {
	Routes  []PlannedRoute
	Skipped []services.SkippedStop
}
