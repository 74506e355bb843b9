package vehiclerepo

import (
	"context"
	"errors"

	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/core/domain/model/tenant"
	"fleetdispatch/internal/core/domain/model/vehicle"
	"fleetdispatch/internal/pkg/errs"
	"fleetdispatch/internal/pkg/tenantscope"

	"gorm.io/gorm"
)

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormVehicleRepository reads and writes the vehicles of one organization.
type GormVehicleRepository struct {
	db      *gorm.DB
	scope   tenant.Scope
	tracker aggregateTracker
}

func NewGormVehicleRepository(db *gorm.DB, scope tenant.Scope, tracker aggregateTracker) *GormVehicleRepository {
	return &GormVehicleRepository{
		db:      db,
		scope:   scope,
		tracker: tracker,
	}
}

func (r *GormVehicleRepository) Add(ctx context.Context, aggregate *vehicle.Vehicle) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if err := tenantscope.Check(r.scope, aggregate.OrgID()); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormVehicleRepository) Get(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto VehicleDTO
	if err := r.scoped(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("vehicle", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormVehicleRepository) List(ctx context.Context) ([]*vehicle.Vehicle, error) {
	var dtos []VehicleDTO
	if err := r.scoped(ctx).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	vehicles := make([]*vehicle.Vehicle, 0, len(dtos))
	for _, dto := range dtos {
		v, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		vehicles = append(vehicles, v)
	}

	return vehicles, nil
}

func (r *GormVehicleRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.scoped(ctx).Delete(&VehicleDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("vehicle", id.String())
	}

	return nil
}

func (r *GormVehicleRepository) scoped(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Scopes(tenantscope.Of(r.scope))
}
