package queries

import (
	"errors"

	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/core/domain/model/tenant"
	"fleetdispatch/internal/pkg/guard"
)

var ErrListVehiclesQueryIsNotConstructed = errors.New(
	"ListVehiclesQuery must be created via NewListVehiclesQuery constructor",
)

// ListVehiclesQuery lists the fleet of an organization.
type ListVehiclesQuery struct {
	scope tenant.Scope
	guard guard.ConstructorGuard
}

func NewListVehiclesQuery(scope tenant.Scope) (ListVehiclesQuery, error) {
	if err := scope.Validate(); err != nil {
		return ListVehiclesQuery{}, err
	}
	return ListVehiclesQuery{scope: scope, guard: guard.NewConstructorGuard()}, nil
}

func (q ListVehiclesQuery) Validate() error {
	return q.guard.Validate(ErrListVehiclesQueryIsNotConstructed)
}

func (q ListVehiclesQuery) Scope() tenant.Scope {
	return q.scope
}

// VehicleView is a vehicle in the fleet listing. DriverID is one of the drivers
// assigned to the vehicle, nil when nobody drives it.
type VehicleView struct {
	ID         kernel.UUID
	Name       string
	CapacityKg int
	Start      kernel.Location
	Address    string
	DriverID   *kernel.UUID
}
