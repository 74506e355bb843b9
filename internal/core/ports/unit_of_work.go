// Package ports defines the contracts between the dispatch core and its
// infrastructure: scoped repositories, the unit of work and the external
// geocoding, travel-time and solver services.
package ports

import (
	"context"

	"fleetdispatch/internal/core/domain/model/tenant"
)

// UnitOfWorkFactory creates a UnitOfWork bound to one organization.
// The scope is the single point where tenant filtering is decided; every
// repository obtained from the unit of work inherits it.
type UnitOfWorkFactory interface {
	Create(scope tenant.Scope) UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// Client code must explicitly manage the transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a read-write transaction.
	Begin(ctx context.Context) error

	// BeginReadOnly starts a read-only transaction with a stable snapshot,
	// so that multi-table reads never observe a half-applied change.
	BeginReadOnly(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// LockDispatch takes the organization's dispatch lock until the
	// current transaction ends. Requires an active transaction.
	LockDispatch(ctx context.Context) error

	VehicleRepository() VehicleRepository
	DriverRepository() DriverRepository
	OrderRepository() OrderRepository
	RouteRepository() RouteRepository
}
