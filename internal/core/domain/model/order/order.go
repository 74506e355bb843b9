package order

import (
	"errors"
	"fmt"
	"strings"

	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/core/domain/model/tenant"
	"fleetdispatch/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderIsNotRouted is returned when a route-bound operation is applied to an order without route.
	ErrOrderIsNotRouted = errs.NewValueIsInvalidErrorWithCause("order", errors.New("order is not assigned to a route"))
)

// Order is a delivery order: a weight to drop at a resolved location, taking
// some minutes of service time on site.
//
// Invariants:
//   - identity, organization and location are valid
//   - weight is positive and service duration is not negative
//   - an order with a route is Assigned or Delivered, an order without one is Unassigned
type Order struct {
	id                 kernel.UUID
	orgID              kernel.UUID
	address            string
	location           kernel.Location
	weightKg           int
	serviceDurationMin int
	status             Status

	// routeID is the owning route, nil when unassigned
	routeID *kernel.UUID

	// stopIndex is the zero-based position inside the owning route
	stopIndex int

	isConstructed bool
}

// NewOrder creates an Unassigned order in the given scope.
//
// Example:
//
//	loc, _ := kernel.NewLocation(10, 10)
//	o, err := order.NewOrder(scope, kernel.NewUUID(), "10.00000, 10.00000", loc, 5, 10)
//	if err != nil {
//	    // validation error
//	}
func NewOrder(
	scope tenant.Scope,
	id kernel.UUID,
	address string,
	location kernel.Location,
	weightKg int,
	serviceDurationMin int,
) (*Order, error) {
	if err := scope.Validate(); err != nil {
		return nil, err
	}
	return RestoreOrder(id, scope.OrgID(), address, location, weightKg, serviceDurationMin, Unassigned, nil, 0)
}

// RestoreOrder rebuilds a persisted order and checks the route/status consistency.
func RestoreOrder(
	id kernel.UUID,
	orgID kernel.UUID,
	address string,
	location kernel.Location,
	weightKg int,
	serviceDurationMin int,
	status Status,
	routeID *kernel.UUID,
	stopIndex int,
) (*Order, error) {
	o := &Order{isConstructed: true}

	if err := errors.Join(
		o.setID(id),
		o.setOrgID(orgID),
		o.setAddress(address),
		o.setLocation(location),
		o.setWeight(weightKg),
		o.setServiceDuration(serviceDurationMin),
		o.setState(status, routeID, stopIndex),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OrgID returns the owning organization.
func (o *Order) OrgID() kernel.UUID {
	return o.orgID
}

// Address returns the display address of the drop-off.
func (o *Order) Address() string {
	return o.address
}

// Location returns the drop-off coordinates.
func (o *Order) Location() kernel.Location {
	return o.location
}

// WeightKg returns the load of the order in kilograms.
func (o *Order) WeightKg() int {
	return o.weightKg
}

// ServiceDurationMin returns the time spent on site in minutes.
func (o *Order) ServiceDurationMin() int {
	return o.serviceDurationMin
}

// Status returns the current dispatch status.
func (o *Order) Status() Status {
	return o.status
}

// RouteID returns the owning route, nil when the order is unassigned.
func (o *Order) RouteID() *kernel.UUID {
	return o.routeID
}

// StopIndex returns the position of the order in its route.
func (o *Order) StopIndex() int {
	return o.stopIndex
}

// IsDelivered reports whether the order was confirmed as delivered.
func (o *Order) IsDelivered() bool {
	return o.status == Delivered
}

// AssignToRoute makes the order the stopIndex-th stop of a route.
func (o *Order) AssignToRoute(routeID kernel.UUID, stopIndex int) error {
	if err := routeID.Validate(); err != nil {
		return err
	}
	if stopIndex < 0 {
		return errs.NewValueIsOutOfRangeError("stopIndex", stopIndex, 0, "unbounded")
	}

	newStatus, err := o.status.Assign()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.routeID = &routeID
	o.stopIndex = stopIndex
	return nil
}

// Unassign detaches the order from its route and resets it to Unassigned,
// whatever its current status.
func (o *Order) Unassign() {
	o.status = Unassigned
	o.routeID = nil
	o.stopIndex = 0
}

// MarkDelivered confirms delivery. Delivering an already Delivered order is a no-op.
func (o *Order) MarkDelivered() error {
	if o.routeID == nil {
		return ErrOrderIsNotRouted
	}

	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOrgID(orgID kernel.UUID) error {
	if err := orgID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("organizationId", err)
	}
	o.orgID = orgID
	return nil
}

func (o *Order) setAddress(address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	o.address = address
	return nil
}

func (o *Order) setLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}
	o.location = location
	return nil
}

func (o *Order) setWeight(weightKg int) error {
	if weightKg <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("weightKg is invalid", fmt.Errorf("%d is not greater than 0", weightKg))
	}
	o.weightKg = weightKg
	return nil
}

func (o *Order) setServiceDuration(minutes int) error {
	if minutes < 0 {
		return errs.NewValueIsInvalidErrorWithCause("serviceDurationMin is invalid", fmt.Errorf("%d is negative", minutes))
	}
	o.serviceDurationMin = minutes
	return nil
}

func (o *Order) setState(status Status, routeID *kernel.UUID, stopIndex int) error {
	if err := status.Validate(); err != nil {
		return err
	}
	if err := status.ValidateCanHaveRoute(routeID != nil); err != nil {
		return err
	}
	if routeID != nil {
		if err := routeID.Validate(); err != nil {
			return err
		}
		id := *routeID
		o.routeID = &id
		o.stopIndex = stopIndex
	}
	o.status = status
	return nil
}
