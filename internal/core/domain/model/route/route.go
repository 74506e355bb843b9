package route

import (
	"errors"
	"fmt"

	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/core/domain/model/order"
	"fleetdispatch/internal/core/domain/model/tenant"
	"fleetdispatch/internal/core/domain/model/vehicle"
	"fleetdispatch/internal/pkg/errs"
)

// Status is the operational state of a route.
type Status int

const (
	// UnknownStatus is the invalid zero value.
	UnknownStatus Status = iota
	// Planned routes were produced by reconciliation and not yet started.
	Planned
)

func (s Status) String() string {
	if s == Planned {
		return "PLANNED"
	}
	return "UNKNOWN"
}

// Validate accepts Planned only.
func (s Status) Validate() error {
	if s != Planned {
		return errs.NewValueIsInvalidErrorWithCause("route status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

var (
	// ErrRouteIsNotConstructed is returned when a Route was not created via NewRoute or RestoreRoute.
	ErrRouteIsNotConstructed = errors.New("Route must be created via NewRoute constructor")
	// ErrForeignEntity is returned when a vehicle or order of another organization is linked to a route.
	ErrForeignEntity = errs.NewValueIsInvalidErrorWithCause("route", errors.New("entity belongs to another organization"))
	// ErrDuplicateStop is returned when the same order is added twice.
	ErrDuplicateStop = errs.NewValueIsInvalidErrorWithCause("stops", errors.New("order is already a stop of this route"))
)

// Route is a planned visit sequence.
//
// Invariants:
//   - the vehicle, if any, belongs to the route's organization
//   - every stop belongs to the route's organization and appears once
type Route struct {
	id        kernel.UUID
	orgID     kernel.UUID
	status    Status
	vehicleID *kernel.UUID
	stops     []kernel.UUID

	isConstructed bool
}

// NewRoute creates an empty Planned route for a vehicle of the same scope.
func NewRoute(scope tenant.Scope, id kernel.UUID, v *vehicle.Vehicle) (*Route, error) {
	if err := scope.Validate(); err != nil {
		return nil, err
	}
	if err := v.Validate(); err != nil {
		return nil, err
	}
	if !v.BelongsTo(scope) {
		return nil, ErrForeignEntity
	}

	vehicleID := v.ID()
	return RestoreRoute(id, scope.OrgID(), Planned, &vehicleID, nil)
}

// RestoreRoute rebuilds a persisted route with its ordered stops.
func RestoreRoute(
	id kernel.UUID,
	orgID kernel.UUID,
	status Status,
	vehicleID *kernel.UUID,
	stops []kernel.UUID,
) (*Route, error) {
	if err := errors.Join(id.Validate(), orgID.Validate(), status.Validate()); err != nil {
		return nil, err
	}

	r := &Route{
		id:            id,
		orgID:         orgID,
		status:        status,
		stops:         make([]kernel.UUID, 0, len(stops)),
		isConstructed: true,
	}

	if vehicleID != nil {
		if err := vehicleID.Validate(); err != nil {
			return nil, err
		}
		vid := *vehicleID
		r.vehicleID = &vid
	}

	for _, stop := range stops {
		if err := stop.Validate(); err != nil {
			return nil, err
		}
		if r.HasStop(stop) {
			return nil, ErrDuplicateStop
		}
		r.stops = append(r.stops, stop)
	}

	return r, nil
}

// Validate ensures the route was built by a constructor.
func (r *Route) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRouteIsNotConstructed
	}
	return nil
}

// ID returns the route identifier.
func (r *Route) ID() kernel.UUID {
	return r.id
}

// OrgID returns the owning organization.
func (r *Route) OrgID() kernel.UUID {
	return r.orgID
}

// Status returns the route status.
func (r *Route) Status() Status {
	return r.status
}

// VehicleID returns the vehicle serving the route, nil once detached.
func (r *Route) VehicleID() *kernel.UUID {
	return r.vehicleID
}

// Stops returns the order identities in visit order.
func (r *Route) Stops() []kernel.UUID {
	out := make([]kernel.UUID, len(r.stops))
	copy(out, r.stops)
	return out
}

// HasStop reports whether the order is already a stop of this route.
func (r *Route) HasStop(orderID kernel.UUID) bool {
	for _, s := range r.stops {
		if s.IsEqual(orderID) {
			return true
		}
	}
	return false
}

// AddStop appends an order to the visit sequence and assigns it to the route.
func (r *Route) AddStop(o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if !o.OrgID().IsEqual(r.orgID) {
		return ErrForeignEntity
	}
	if r.HasStop(o.ID()) {
		return ErrDuplicateStop
	}
	if err := o.AssignToRoute(r.id, len(r.stops)); err != nil {
		return err
	}

	r.stops = append(r.stops, o.ID())
	return nil
}

// DetachVehicle clears the vehicle reference, leaving an orphaned route shell.
func (r *Route) DetachVehicle() {
	r.vehicleID = nil
}

// IsServedBy reports whether the route belongs to the given vehicle.
func (r *Route) IsServedBy(vehicleID kernel.UUID) bool {
	return r.vehicleID != nil && r.vehicleID.IsEqual(vehicleID)
}
