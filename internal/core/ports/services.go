package ports

import (
	"context"
	"time"

	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/core/domain/model/plan"
)

// GeocodeResult is a successful forward lookup.
type GeocodeResult struct {
	Location kernel.Location
	Address  string
}

// Geocoder resolves addresses to coordinates and back.
type Geocoder interface {
	// ReverseGeocode returns a display address for the location. It never
	// fails: on any lookup problem it returns the formatted coordinates.
	ReverseGeocode(ctx context.Context, location kernel.Location) string

	// ForwardGeocode resolves a free-text address.
	// Returns errs.ErrObjectNotFound when the address cannot be resolved.
	ForwardGeocode(ctx context.Context, address string) (GeocodeResult, error)
}

// TravelTimeEstimator estimates a single point-to-point driving leg.
type TravelTimeEstimator interface {
	// EstimateMinutes returns the rounded leg duration and true, or false when
	// the duration is unknown.
	EstimateMinutes(ctx context.Context, from, to kernel.Location) (int, bool)
}

// Solver is the external route optimizer.
type Solver interface {
	// Solve submits the request and returns the plan. An empty plan is a valid
	// answer. Transport and decoding problems are errs.ErrExternalService.
	Solve(ctx context.Context, request plan.Request) (plan.Plan, error)
}

// OrganizationDirectory maps caller identities to organizations.
type OrganizationDirectory interface {
	// FindOrganization returns errs.ErrNoOrganization when the subject has no membership.
	FindOrganization(ctx context.Context, subject string) (kernel.UUID, error)

	// BindOrganization stores orgID for subject unless a membership exists and
	// returns the organization that is bound afterwards.
	BindOrganization(ctx context.Context, subject string, orgID kernel.UUID) (kernel.UUID, error)
}

// ReconcileOutcome classifies a finished reconciliation run.
type ReconcileOutcome string

const (
	OutcomePlanned     ReconcileOutcome = "planned"
	OutcomeEmpty       ReconcileOutcome = "empty"
	OutcomeSolverError ReconcileOutcome = "solver_error"
	OutcomeRejected    ReconcileOutcome = "rejected"
	OutcomeFailed      ReconcileOutcome = "failed"
)

// DispatchMetrics records reconciliation telemetry.
type DispatchMetrics interface {
	ObserveSolverLatency(d time.Duration)
	RecordRun(outcome ReconcileOutcome, routes int)
}
