package orderrepo

import (
	"context"
	"errors"

	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/core/domain/model/order"
	"fleetdispatch/internal/core/domain/model/tenant"
	"fleetdispatch/internal/pkg/errs"
	"fleetdispatch/internal/pkg/tenantscope"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	scope   tenant.Scope
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a repository bound to one organization.
func NewGormOrderRepository(db *gorm.DB, scope tenant.Scope, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		scope:   scope,
		tracker: tracker,
	}
}

// Add saves a new order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
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

// Update saves the whole row, so a cleared route reference is written as NULL.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if err := tenantscope.Check(r.scope, aggregate.OrgID()); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.scoped(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id", "organization_id").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.scoped(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormOrderRepository) List(ctx context.Context) ([]*order.Order, error) {
	return r.find(r.scoped(ctx).Order("id"))
}

// ListByRoute returns the stops of a route in visit order.
func (r *GormOrderRepository) ListByRoute(ctx context.Context, routeID kernel.UUID) ([]*order.Order, error) {
	if err := routeID.Validate(); err != nil {
		return nil, err
	}

	return r.find(r.scoped(ctx).Where("route_id = ?", routeID.Bytes()).Order("stop_index, id"))
}

func (r *GormOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.scoped(ctx).Delete(&OrderDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", id.String())
	}

	return nil
}

// UnassignAll resets every routed or non-unassigned order of the organization in one statement.
func (r *GormOrderRepository) UnassignAll(ctx context.Context) error {
	return r.scoped(ctx).
		Model(&OrderDTO{}).
		Where("route_id IS NOT NULL OR status <> ?", order.Unassigned.String()).
		Updates(map[string]any{
			"route_id":   nil,
			"status":     order.Unassigned.String(),
			"stop_index": 0,
		}).Error
}

func (r *GormOrderRepository) find(query *gorm.DB) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := query.Find(&dtos).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

func (r *GormOrderRepository) scoped(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Scopes(tenantscope.Of(r.scope))
}
