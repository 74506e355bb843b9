package queries

import (
	"context"
	"database/sql"

	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/pkg/tenantscope"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListRoutesQueryHandler struct {
	db *gorm.DB
}

func NewListRoutesQueryHandler(db *gorm.DB) ListRoutesQueryHandler {
	return ListRoutesQueryHandler{db: db}
}

// Handle reads routes and stops in one read-only transaction so a
// reconciliation committing in between cannot mix two plans.
func (h ListRoutesQueryHandler) Handle(ctx context.Context, query ListRoutesQuery) ([]RouteView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var routes []RouteView
	err := h.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		routes, err = h.routes(tx, query)
		if err != nil {
			return err
		}

		return h.attachStops(tx, query, routes)
	}, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true})
	if err != nil {
		return nil, err
	}

	return routes, nil
}

func (h ListRoutesQueryHandler) routes(tx *gorm.DB, query ListRoutesQuery) ([]RouteView, error) {
	rows, err := tx.
		Table("routes AS r").
		Select("r.id, r.status, r.vehicle_id, COALESCE(v.name, '')").
		Joins("LEFT JOIN vehicles v ON v.id = r.vehicle_id AND v.organization_id = r.organization_id").
		Scopes(tenantscope.OfTable("r", query.Scope())).
		Order("r.created_at, r.id").
		Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	routes := make([]RouteView, 0)
	for rows.Next() {
		var view RouteView
		var id uuid.UUID
		var vehicleID uuid.NullUUID

		if err = rows.Scan(&id, &view.Status, &vehicleID, &view.VehicleName); err != nil {
			return nil, err
		}

		if view.ID, err = kernel.UUIDFromGoogle(id); err != nil {
			return nil, err
		}
		if view.VehicleID, err = optionalUUID(vehicleID); err != nil {
			return nil, err
		}
		view.Stops = make([]RouteStopView, 0)

		routes = append(routes, view)
	}

	return routes, rows.Err()
}

func (h ListRoutesQueryHandler) attachStops(tx *gorm.DB, query ListRoutesQuery, routes []RouteView) error {
	if len(routes) == 0 {
		return nil
	}

	index := make(map[kernel.UUID]int, len(routes))
	for i, r := range routes {
		index[r.ID] = i
	}

	rows, err := tx.
		Table("orders").
		Select("route_id, id, address, location_lat, location_lon, status").
		Scopes(tenantscope.Of(query.Scope())).
		Where("route_id IS NOT NULL").
		Order("route_id, stop_index, id").
		Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var stop RouteStopView
		var routeRaw, id uuid.UUID
		var lat, lon float64

		if err = rows.Scan(&routeRaw, &id, &stop.Address, &lat, &lon, &stop.Status); err != nil {
			return err
		}

		routeID, idErr := kernel.UUIDFromGoogle(routeRaw)
		if idErr != nil {
			return idErr
		}
		i, ok := index[routeID]
		if !ok {
			continue
		}

		if stop.OrderID, err = kernel.UUIDFromGoogle(id); err != nil {
			return err
		}
		if stop.Location, err = kernel.NewLocation(lat, lon); err != nil {
			return err
		}

		routes[i].Stops = append(routes[i].Stops, stop)
	}

	return rows.Err()
}
