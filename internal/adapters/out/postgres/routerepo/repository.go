package routerepo

import (
	"context"
	"errors"

	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/core/domain/model/route"
	"fleetdispatch/internal/core/domain/model/tenant"
	"fleetdispatch/internal/pkg/errs"
	"fleetdispatch/internal/pkg/tenantscope"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const ordersTable = "orders"

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormRouteRepository reads and writes the routes of one organization.
type GormRouteRepository struct {
	db      *gorm.DB
	scope   tenant.Scope
	tracker aggregateTracker
}

func NewGormRouteRepository(db *gorm.DB, scope tenant.Scope, tracker aggregateTracker) *GormRouteRepository {
	return &GormRouteRepository{
		db:      db,
		scope:   scope,
		tracker: tracker,
	}
}

// Add inserts the route row. Its stops are persisted by updating the orders.
func (r *GormRouteRepository) Add(ctx context.Context, aggregate *route.Route) error {
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

func (r *GormRouteRepository) Update(ctx context.Context, aggregate *route.Route) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if err := tenantscope.Check(r.scope, aggregate.OrgID()); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.scoped(ctx).
		Model(&RouteDTO{}).
		Where("id = ?", dto.ID).
		Select("status", "vehicle_id").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("route", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormRouteRepository) Get(ctx context.Context, id kernel.UUID) (*route.Route, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RouteDTO
	if err := r.scoped(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("route", id.String())
		}
		return nil, err
	}

	routes, err := r.withStops(ctx, []RouteDTO{dto})
	if err != nil {
		return nil, err
	}

	return routes[0], nil
}

func (r *GormRouteRepository) List(ctx context.Context) ([]*route.Route, error) {
	var dtos []RouteDTO
	if err := r.scoped(ctx).Order("created_at, id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	return r.withStops(ctx, dtos)
}

func (r *GormRouteRepository) ListByVehicle(ctx context.Context, vehicleID kernel.UUID) ([]*route.Route, error) {
	if err := vehicleID.Validate(); err != nil {
		return nil, err
	}

	var dtos []RouteDTO
	err := r.scoped(ctx).
		Where("vehicle_id = ?", vehicleID.Bytes()).
		Order("created_at, id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return r.withStops(ctx, dtos)
}

// DeleteAll removes every route row of the organization. Orders must have been
// unassigned beforehand.
func (r *GormRouteRepository) DeleteAll(ctx context.Context) error {
	return r.scoped(ctx).Delete(&RouteDTO{}).Error
}

// withStops loads the stop sequence of every route with a single query.
func (r *GormRouteRepository) withStops(ctx context.Context, dtos []RouteDTO) ([]*route.Route, error) {
	routes := make([]*route.Route, 0, len(dtos))
	if len(dtos) == 0 {
		return routes, nil
	}

	ids := make([]uuid.UUID, 0, len(dtos))
	for _, dto := range dtos {
		ids = append(ids, dto.ID)
	}

	var rows []stopRow
	err := r.db.WithContext(ctx).
		Table(ordersTable).
		Scopes(tenantscope.Of(r.scope)).
		Select("id, route_id").
		Where("route_id IN ?", ids).
		Order("stop_index, id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	stops := make(map[uuid.UUID][]uuid.UUID, len(dtos))
	for _, row := range rows {
		stops[row.RouteID] = append(stops[row.RouteID], row.ID)
	}

	for _, dto := range dtos {
		rt, err := toDomain(dto, stops[dto.ID])
		if err != nil {
			return nil, err
		}
		routes = append(routes, rt)
	}

	return routes, nil
}

func (r *GormRouteRepository) scoped(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Scopes(tenantscope.Of(r.scope))
}
