package queries

import (
	"errors"
	"strings"

	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/core/domain/model/order"
	"fleetdispatch/internal/core/domain/model/tenant"
	"fleetdispatch/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery lists the orders of an organization, optionally restricted
// to one status.
type ListOrdersQuery struct {
	scope  tenant.Scope
	status *order.Status

	guard guard.ConstructorGuard
}

// NewListOrdersQuery accepts a blank status for all orders.
func NewListOrdersQuery(scope tenant.Scope, status string) (ListOrdersQuery, error) {
	if err := scope.Validate(); err != nil {
		return ListOrdersQuery{}, err
	}

	q := ListOrdersQuery{scope: scope, guard: guard.NewConstructorGuard()}
	if status = strings.TrimSpace(status); status != "" {
		parsed, err := order.ParseStatus(status)
		if err != nil {
			return ListOrdersQuery{}, err
		}
		q.status = &parsed
	}

	return q, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) Scope() tenant.Scope {
	return q.scope
}

// Status is nil when every status is requested.
func (q ListOrdersQuery) Status() *order.Status {
	return q.status
}

type OrderView struct {
	ID                 kernel.UUID
	Address            string
	Location           kernel.Location
	WeightKg           int
	ServiceDurationMin int
	Status             string
	RouteID            *kernel.UUID
	StopIndex          int
}
