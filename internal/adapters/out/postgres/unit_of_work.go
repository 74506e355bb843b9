// Package postgres provides the GORM-based unit of work and schema migration.
//
// Every unit of work is bound to one organization scope at creation, and all
// repositories handed out by it filter and stamp rows with that scope.
//
//	uow := factory.Create(scope)
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	if err := uow.OrderRepository().Add(ctx, o); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
package postgres

import (
	"context"
	"database/sql"

	"fleetdispatch/internal/adapters/out/postgres/driverrepo"
	"fleetdispatch/internal/adapters/out/postgres/orderrepo"
	"fleetdispatch/internal/adapters/out/postgres/routerepo"
	"fleetdispatch/internal/adapters/out/postgres/vehiclerepo"
	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/core/domain/model/tenant"
	"fleetdispatch/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory creates scoped UnitOfWork instances sharing one connection pool.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a fresh unit of work for the organization.
func (f *GormUnitOfWorkFactory) Create(scope tenant.Scope) ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		scope:             scope,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction for one organization.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	scope             tenant.Scope
	trackedAggregates []trackedAggregate
}

// Begin starts a read-write transaction. Calling it again while a transaction
// is active does nothing.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	return uow.begin(ctx)
}

// BeginReadOnly starts a repeatable-read, read-only transaction so that every
// statement sees the same snapshot.
func (uow *GormUnitOfWork) BeginReadOnly(ctx context.Context) error {
	return uow.begin(ctx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true})
}

func (uow *GormUnitOfWork) begin(ctx context.Context, opts ...*sql.TxOptions) error {
	if uow.tx != nil {
		return nil
	}
	if err := uow.scope.Validate(); err != nil {
		return err
	}

	tx := uow.db.WithContext(ctx).Begin(opts...)
	if tx.Error != nil {
		return tx.Error
	}

	uow.tx = tx
	return nil
}

// Commit returns gorm.ErrInvalidTransaction when no transaction is active.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback returns gorm.ErrInvalidTransaction when no transaction is active,
// which makes a deferred rollback after Commit harmless.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// LockDispatch takes a transaction-level advisory lock keyed by the
// organization. It serialises reconciliation writes and vehicle deletion
// across processes and is released on commit or rollback.
func (uow *GormUnitOfWork) LockDispatch(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	return uow.tx.WithContext(ctx).
		Exec("SELECT pg_advisory_xact_lock(hashtext(?))", "dispatch:"+uow.scope.String()).
		Error
}

func (uow *GormUnitOfWork) VehicleRepository() ports.VehicleRepository {
	return vehiclerepo.NewGormVehicleRepository(uow.conn(), uow.scope, uow)
}

func (uow *GormUnitOfWork) DriverRepository() ports.DriverRepository {
	return driverrepo.NewGormDriverRepository(uow.conn(), uow.scope, uow)
}

// OrderRepository executes within the current transaction if one is active,
// otherwise directly on the pool.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow.scope, uow)
}

func (uow *GormUnitOfWork) RouteRepository() ports.RouteRepository {
	return routerepo.NewGormRouteRepository(uow.conn(), uow.scope, uow)
}

// TrackAggregate registers an aggregate written within this unit of work.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// TrackedCount reports how many aggregate writes were recorded.
func (uow *GormUnitOfWork) TrackedCount() int {
	return len(uow.trackedAggregates)
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
