package queries

import (
	"errors"
	"time"

	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/core/domain/model/tenant"
	"fleetdispatch/internal/pkg/guard"
)

var ErrListDriversQueryIsNotConstructed = errors.New(
	"ListDriversQuery must be created via NewListDriversQuery constructor",
)

// ListDriversQuery lists the drivers of an organization.
type ListDriversQuery struct {
	scope tenant.Scope
	guard guard.ConstructorGuard
}

func NewListDriversQuery(scope tenant.Scope) (ListDriversQuery, error) {
	if err := scope.Validate(); err != nil {
		return ListDriversQuery{}, err
	}
	return ListDriversQuery{scope: scope, guard: guard.NewConstructorGuard()}, nil
}

func (q ListDriversQuery) Validate() error {
	return q.guard.Validate(ErrListDriversQueryIsNotConstructed)
}

func (q ListDriversQuery) Scope() tenant.Scope {
	return q.scope
}

type DriverView struct {
	ID          kernel.UUID
	Name        string
	Email       string
	LicenseID   string
	Phone       string
	HomeBase    string
	Status      string
	LastCheckIn time.Time
	VehicleID   *kernel.UUID
}
