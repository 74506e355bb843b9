// Package queries contains read operations for retrieving dispatch state.
// Every query carries the organization scope it is answered in.
package queries

import (
	"errors"
	"strings"

	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/core/domain/model/tenant"
	"fleetdispatch/internal/pkg/errs"
	"fleetdispatch/internal/pkg/guard"
)

var ErrGetDriverRouteQueryIsNotConstructed = errors.New(
	"GetDriverRouteQuery must be created via NewGetDriverRouteQuery constructor",
)

// GetDriverRouteQuery asks for the current route of the calling driver.
type GetDriverRouteQuery struct {
	scope       tenant.Scope
	driverEmail string

	guard guard.ConstructorGuard
}

// NewGetDriverRouteQuery takes the portal identity of the driver.
//
// Example:
//
//	query, err := NewGetDriverRouteQuery(scope, "dana@example.com")
//	if err != nil {
//	    return err
//	}
//	view, err := handler.Handle(ctx, query)
func NewGetDriverRouteQuery(scope tenant.Scope, driverEmail string) (GetDriverRouteQuery, error) {
	driverEmail = strings.TrimSpace(driverEmail)

	var emailErr error
	if driverEmail == "" {
		emailErr = errs.NewValueIsRequiredError("driverEmail")
	}

	if err := errors.Join(scope.Validate(), emailErr); err != nil {
		return GetDriverRouteQuery{}, err
	}

	return GetDriverRouteQuery{
		scope:       scope,
		driverEmail: driverEmail,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (q GetDriverRouteQuery) Validate() error {
	return q.guard.Validate(ErrGetDriverRouteQueryIsNotConstructed)
}

func (q GetDriverRouteQuery) Scope() tenant.Scope {
	return q.scope
}

func (q GetDriverRouteQuery) DriverEmail() string {
	return q.driverEmail
}

// DriverRouteStop is one stop of the driver's route in visit order.
type DriverRouteStop struct {
	ID                 kernel.UUID
	Address            string
	Location           kernel.Location
	Status             string
	ServiceDurationMin int
}

// GetDriverRouteQueryResponse is the driver-facing route view. VehicleName and
// RouteStatus are blank when the driver has no vehicle or the vehicle no route.
type GetDriverRouteQueryResponse struct {
	DriverName                string
	VehicleName               string
	RouteID                   *kernel.UUID
	RouteStatus               string
	Stops                     []DriverRouteStop
	EstimatedRemainingMinutes int
}
