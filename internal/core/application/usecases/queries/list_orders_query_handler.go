package queries

import (
	"context"

	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/pkg/tenantscope"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle returns the orders grouped by route in visit order, unrouted orders last.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stmt := h.db.WithContext(ctx).
		Table("orders").
		Select(`
			id,
			address,
			location_lat,
			location_lon,
			weight_kg,
			service_duration_min,
			status,
			route_id,
			stop_index`).
		Scopes(tenantscope.Of(query.Scope()))
	if status := query.Status(); status != nil {
		stmt = stmt.Where("status = ?", status.String())
	}

	rows, err := stmt.Order("route_id NULLS LAST, stop_index, id").Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderView, 0)
	for rows.Next() {
		var view OrderView
		var id uuid.UUID
		var routeID uuid.NullUUID
		var lat, lon float64

		err = rows.Scan(
			&id,
			&view.Address,
			&lat,
			&lon,
			&view.WeightKg,
			&view.ServiceDurationMin,
			&view.Status,
			&routeID,
			&view.StopIndex,
		)
		if err != nil {
			return nil, err
		}

		if view.ID, err = kernel.UUIDFromGoogle(id); err != nil {
			return nil, err
		}
		if view.Location, err = kernel.NewLocation(lat, lon); err != nil {
			return nil, err
		}
		if view.RouteID, err = optionalUUID(routeID); err != nil {
			return nil, err
		}

		orders = append(orders, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
