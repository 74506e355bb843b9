package driverrepo

import (
	"context"
	"errors"
	"strings"

	"fleetdispatch/internal/adapters/out/postgres/pgerrs"
	"fleetdispatch/internal/core/domain/model/driver"
	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/core/domain/model/tenant"
	"fleetdispatch/internal/pkg/errs"
	"fleetdispatch/internal/pkg/tenantscope"

	"gorm.io/gorm"
)

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormDriverRepository reads and writes the drivers of one organization.
type GormDriverRepository struct {
	db      *gorm.DB
	scope   tenant.Scope
	tracker aggregateTracker
}

func NewGormDriverRepository(db *gorm.DB, scope tenant.Scope, tracker aggregateTracker) *GormDriverRepository {
	return &GormDriverRepository{
		db:      db,
		scope:   scope,
		tracker: tracker,
	}
}

// Add fails with errs.ErrValueIsInvalid when the email is taken in the organization.
func (r *GormDriverRepository) Add(ctx context.Context, aggregate *driver.Driver) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if err := tenantscope.Check(r.scope, aggregate.OrgID()); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerrs.Translate(err, "email")
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes every column, so cleared fields and a removed vehicle are persisted too.
func (r *GormDriverRepository) Update(ctx context.Context, aggregate *driver.Driver) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if err := tenantscope.Check(r.scope, aggregate.OrgID()); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.scoped(ctx).
		Model(&DriverDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id", "organization_id").
		Updates(&dto)
	if result.Error != nil {
		return pgerrs.Translate(result.Error, "email")
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("driver", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormDriverRepository) Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DriverDTO
	if err := r.scoped(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("driver", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormDriverRepository) GetByEmail(ctx context.Context, email string) (*driver.Driver, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, errs.NewObjectNotFoundError("driver", "blank email")
	}

	var dto DriverDTO
	if err := r.scoped(ctx).First(&dto, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("driver", email)
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormDriverRepository) List(ctx context.Context) ([]*driver.Driver, error) {
	var dtos []DriverDTO
	if err := r.scoped(ctx).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	drivers := make([]*driver.Driver, 0, len(dtos))
	for _, dto := range dtos {
		d, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		drivers = append(drivers, d)
	}

	return drivers, nil
}

func (r *GormDriverRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.scoped(ctx).Delete(&DriverDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("driver", id.String())
	}

	return nil
}

func (r *GormDriverRepository) ClearVehicle(ctx context.Context, vehicleID kernel.UUID) error {
	if err := vehicleID.Validate(); err != nil {
		return err
	}

	return r.scoped(ctx).
		Model(&DriverDTO{}).
		Where("vehicle_id = ?", vehicleID.Bytes()).
		Update("vehicle_id", nil).Error
}

func (r *GormDriverRepository) scoped(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Scopes(tenantscope.Of(r.scope))
}
