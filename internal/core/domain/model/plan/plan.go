// Package plan describes the exchange with the external route solver: the
// request projected from the organization's orders and vehicles, and the
// assignment plan the solver answers with.
//
// Identities cross the boundary as opaque strings. Nothing in a Plan is trusted
// until the reconciler resolves it against the snapshot the request was built from.
package plan

import (
	"fleetdispatch/internal/core/domain/model/order"
	"fleetdispatch/internal/core/domain/model/vehicle"
)

// OrderInput is the solver's view of a delivery order.
type OrderInput struct {
	ID                 string
	Lat                float64
	Lon                float64
	WeightKg           float64
	ServiceDurationMin float64
}

// VehicleInput is the solver's view of a vehicle.
type VehicleInput struct {
	ID         string
	CapacityKg float64
	StartLat   float64
	StartLon   float64
}

// Request is the complete solver input.
type Request struct {
	Orders   []OrderInput
	Vehicles []VehicleInput
}

// NewRequest projects a snapshot into a solver request, preserving snapshot order.
func NewRequest(orders []*order.Order, vehicles []*vehicle.Vehicle) Request {
	req := Request{
		Orders:   make([]OrderInput, 0, len(orders)),
		Vehicles: make([]VehicleInput, 0, len(vehicles)),
	}

	for _, o := range orders {
		req.Orders = append(req.Orders, OrderInput{
			ID:                 o.ID().String(),
			Lat:                o.Location().Lat(),
			Lon:                o.Location().Lon(),
			WeightKg:           float64(o.WeightKg()),
			ServiceDurationMin: float64(o.ServiceDurationMin()),
		})
	}

	for _, v := range vehicles {
		req.Vehicles = append(req.Vehicles, VehicleInput{
			ID:         v.ID().String(),
			CapacityKg: float64(v.CapacityKg()),
			StartLat:   v.Start().Lat(),
			StartLon:   v.Start().Lon(),
		})
	}

	return req
}

// Assignment is one vehicle's ordered stop list as returned by the solver.
// StopIDs holds the raw "id" value of every stop; stops without a string id
// are kept as empty strings so that positions stay aligned with the response.
type Assignment struct {
	VehicleID string
	StopIDs   []string
}

// Plan is the solver answer. An empty plan means "no assignment".
type Plan struct {
	Assignments []Assignment
}

// IsEmpty reports whether the solver proposed no routes at all.
func (p Plan) IsEmpty() bool {
	return len(p.Assignments) == 0
}

// StopCount returns the number of stops across all assignments.
func (p Plan) StopCount() int {
	n := 0
	for _, a := range p.Assignments {
		n += len(a.StopIDs)
	}
	return n
}
