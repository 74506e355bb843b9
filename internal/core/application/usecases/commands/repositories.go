// Package commands contains business operations that modify dispatch state.
// Every command carries the organization scope it runs in, and every unit of
// work is created for that scope, so repositories never see foreign rows.
package commands

import (
	"context"

	"fleetdispatch/internal/core/domain/model/tenant"
	"fleetdispatch/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	VehicleRepoFactory interface {
		VehicleRepository() ports.VehicleRepository
	}

	DriverRepoFactory interface {
		DriverRepository() ports.DriverRepository
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// VehicleUoW manages transactions for vehicle-only operations.
	VehicleUoW interface {
		TxManager
		VehicleRepoFactory
	}

	VehicleUoWFactory interface {
		Create(scope tenant.Scope) VehicleUoW
	}

	// DriverUoW manages driver changes that may look up vehicles to assign.
	DriverUoW interface {
		TxManager
		DriverRepoFactory
		VehicleRepoFactory
	}

	DriverUoWFactory interface {
		Create(scope tenant.Scope) DriverUoW
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	OrderUoWFactory interface {
		Create(scope tenant.Scope) OrderUoW
	}

	// UoWFactory creates full units of work for operations that coordinate
	// vehicles, drivers, orders and routes.
	//
	// Example:
	//   uow := factory.Create(scope)
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   if err = uow.LockDispatch(ctx); err != nil { ... }
	//   orderRepo := uow.OrderRepository()
	//   routeRepo := uow.RouteRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoWFactory interface {
		Create(scope tenant.Scope) ports.UnitOfWork
	}
)
