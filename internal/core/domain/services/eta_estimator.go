package services

import (
	"context"

	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/core/domain/model/order"
)

// LegEstimator returns the driving time between two points in whole minutes,
// or false when the time is unknown.
type LegEstimator interface {
	EstimateMinutes(ctx context.Context, from, to kernel.Location) (int, bool)
}

// ETAEstimator estimates how long a driver still needs for the rest of a route.
//
// Only stops that are not yet delivered count: their service durations are summed
// and one travel leg is added per consecutive pair of them. Legs with an unknown
// duration contribute nothing, so the estimate never fails.
type ETAEstimator struct {
	legs LegEstimator
}

// NewETAEstimator creates an estimator backed by the given leg estimator.
func NewETAEstimator(legs LegEstimator) ETAEstimator {
	return ETAEstimator{legs: legs}
}

// RemainingMinutes returns the estimate for the stops in visit order.
// It returns 0 when every stop is delivered.
func (e ETAEstimator) RemainingMinutes(ctx context.Context, stops []*order.Order) int {
	remaining := make([]*order.Order, 0, len(stops))
	for _, o := range stops {
		if o != nil && !o.IsDelivered() {
			remaining = append(remaining, o)
		}
	}

	if len(remaining) == 0 {
		return 0
	}

	total := 0
	for _, o := range remaining {
		total += o.ServiceDurationMin()
	}

	if e.legs == nil {
		return total
	}

	for i := 0; i+1 < len(remaining); i++ {
		from, to := remaining[i].Location(), remaining[i+1].Location()
		if from.Validate() != nil || to.Validate() != nil {
			continue
		}
		if minutes, ok := e.legs.EstimateMinutes(ctx, from, to); ok && minutes > 0 {
			total += minutes
		}
	}

	return total
}
