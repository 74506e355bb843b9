package services

import (
	"errors"
	"fmt"

	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/core/domain/model/order"
	"fleetdispatch/internal/core/domain/model/plan"
	"fleetdispatch/internal/core/domain/model/route"
	"fleetdispatch/internal/core/domain/model/tenant"
	"fleetdispatch/internal/core/domain/model/vehicle"
	"fleetdispatch/internal/pkg/errs"
)

var (
	// ErrUnknownPlanVehicle is returned when the plan names a vehicle absent from the snapshot.
	ErrUnknownPlanVehicle = errors.New("plan references an unknown vehicle")
	// ErrDuplicatePlanVehicle is returned when the plan gives one vehicle more than one route.
	ErrDuplicatePlanVehicle = errors.New("plan assigns a vehicle more than once")
)

// SkipReason explains why a stop of the plan was not applied.
type SkipReason string

const (
	SkipMalformedID  SkipReason = "malformed order id"
	SkipUnknownOrder SkipReason = "unknown order"
	SkipDuplicate    SkipReason = "order already planned"
)

// SkippedStop is a plan stop that could not be resolved against the snapshot.
type SkippedStop struct {
	VehicleID string
	StopID    string
	Reason    SkipReason
}

// Reconciliation is the in-memory outcome of applying a plan.
type Reconciliation struct {
	// Routes are the new routes in solver order.
	Routes []*route.Route
	// Orders is the whole snapshot after reset and assignment.
	Orders []*order.Order
	// Skipped lists stops dropped while applying the plan.
	Skipped []SkippedStop
}

// AssignedCount returns how many orders ended up on a route.
func (r Reconciliation) AssignedCount() int {
	n := 0
	for _, o := range r.Orders {
		if o.RouteID() != nil {
			n++
		}
	}
	return n
}

// RouteReconciler applies a solver plan to a snapshot of an organization's
// orders and vehicles.
//
// The new plan always fully supersedes the old assignment: every order of the
// snapshot is reset to Unassigned before the plan is applied, so the outcome only
// depends on the snapshot and the plan.
//
// Example:
//
//	rec, err := services.NewRouteReconciler().Reconcile(scope, orders, vehicles, p)
//	if err != nil {
//	    // the plan was rejected, nothing was mutated
//	}
//	// persist rec.Routes and rec.Orders in one transaction
type RouteReconciler struct {
	newID func() kernel.UUID
}

// NewRouteReconciler creates a reconciler generating random route identities.
func NewRouteReconciler() RouteReconciler {
	return RouteReconciler{newID: kernel.NewUUID}
}

// NewRouteReconcilerWithIDs creates a reconciler with a custom route identity source.
func NewRouteReconcilerWithIDs(newID func() kernel.UUID) RouteReconciler {
	return RouteReconciler{newID: newID}
}

// Reconcile validates the plan's vehicles, resets every order and builds one
// Planned route per assignment.
//
// A vehicle id that is malformed, unknown or repeated rejects the whole plan as
// an external service failure before any aggregate is touched. Stop ids that
// cannot be resolved, or that name an order already placed on an earlier stop,
// are skipped and reported.
func (rr RouteReconciler) Reconcile(
	scope tenant.Scope,
	orders []*order.Order,
	vehicles []*vehicle.Vehicle,
	p plan.Plan,
) (Reconciliation, error) {
	if err := scope.Validate(); err != nil {
		return Reconciliation{}, err
	}

	planVehicles, err := rr.resolveVehicles(scope, vehicles, p)
	if err != nil {
		return Reconciliation{}, errs.NewExternalServiceError("solver", err)
	}

	orderMap := make(map[kernel.UUID]*order.Order, len(orders))
	for _, o := range orders {
		if err = o.Validate(); err != nil {
			return Reconciliation{}, err
		}
		if !scope.Owns(o.OrgID()) {
			return Reconciliation{}, route.ErrForeignEntity
		}
		orderMap[o.ID()] = o
	}

	for _, o := range orders {
		o.Unassign()
	}

	result := Reconciliation{
		Routes: make([]*route.Route, 0, len(p.Assignments)),
		Orders: orders,
	}

	for i, assignment := range p.Assignments {
		r, routeErr := route.NewRoute(scope, rr.newID(), planVehicles[i])
		if routeErr != nil {
			return Reconciliation{}, routeErr
		}

		for _, stopID := range assignment.StopIDs {
			o, reason := resolveStop(stopID, orderMap)
			if reason != "" {
				result.Skipped = append(result.Skipped, SkippedStop{
					VehicleID: assignment.VehicleID,
					StopID:    stopID,
					Reason:    reason,
				})
				continue
			}

			if err = r.AddStop(o); err != nil {
				return Reconciliation{}, err
			}
		}

		result.Routes = append(result.Routes, r)
	}

	return result, nil
}

func (rr RouteReconciler) resolveVehicles(
	scope tenant.Scope,
	vehicles []*vehicle.Vehicle,
	p plan.Plan,
) ([]*vehicle.Vehicle, error) {
	byID := make(map[kernel.UUID]*vehicle.Vehicle, len(vehicles))
	for _, v := range vehicles {
		if err := v.Validate(); err != nil {
			return nil, err
		}
		if v.BelongsTo(scope) {
			byID[v.ID()] = v
		}
	}

	used := make(map[kernel.UUID]struct{}, len(p.Assignments))
	resolved := make([]*vehicle.Vehicle, 0, len(p.Assignments))
	for _, a := range p.Assignments {
		id, err := kernel.UUIDFromString(a.VehicleID)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrUnknownPlanVehicle, a.VehicleID)
		}
		v, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownPlanVehicle, a.VehicleID)
		}
		if _, dup := used[id]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicatePlanVehicle, a.VehicleID)
		}
		used[id] = struct{}{}
		resolved = append(resolved, v)
	}

	return resolved, nil
}

func resolveStop(stopID string, orders map[kernel.UUID]*order.Order) (*order.Order, SkipReason) {
	id, err := kernel.UUIDFromString(stopID)
	if err != nil || id.Validate() != nil {
		return nil, SkipMalformedID
	}
	o, ok := orders[id]
	if !ok {
		return nil, SkipUnknownOrder
	}
	if o.RouteID() != nil {
		return nil, SkipDuplicate
	}
	return o, ""
}
