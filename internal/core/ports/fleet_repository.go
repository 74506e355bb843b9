package ports

import (
	"context"

	"fleetdispatch/internal/core/domain/model/driver"
	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/core/domain/model/vehicle"
)

// VehicleRepository defines the persistence contract for vehicles of one organization.
type VehicleRepository interface {
	Add(ctx context.Context, aggregate *vehicle.Vehicle) error

	// Get returns errs.ErrObjectNotFound for absent and foreign vehicles alike.
	Get(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error)

	// List returns every vehicle ordered by identifier.
	List(ctx context.Context) ([]*vehicle.Vehicle, error)

	Delete(ctx context.Context, id kernel.UUID) error
}

// DriverRepository defines the persistence contract for drivers of one organization.
type DriverRepository interface {
	Add(ctx context.Context, aggregate *driver.Driver) error
	Update(ctx context.Context, aggregate *driver.Driver) error
	Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error)

	// GetByEmail resolves the driver behind a portal identity.
	GetByEmail(ctx context.Context, email string) (*driver.Driver, error)

	List(ctx context.Context) ([]*driver.Driver, error)
	Delete(ctx context.Context, id kernel.UUID) error

	// ClearVehicle unassigns the vehicle from every driver that references it.
	ClearVehicle(ctx context.Context, vehicleID kernel.UUID) error
}
