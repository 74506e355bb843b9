package queries

import (
	"context"

	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/pkg/tenantscope"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListVehiclesQueryHandler reads the fleet directly with SQL.
type ListVehiclesQueryHandler struct {
	db *gorm.DB
}

func NewListVehiclesQueryHandler(db *gorm.DB) ListVehiclesQueryHandler {
	return ListVehiclesQueryHandler{db: db}
}

// Handle returns the vehicles sorted by name.
func (h ListVehiclesQueryHandler) Handle(ctx context.Context, query ListVehiclesQuery) ([]VehicleView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).
		Table("vehicles AS v").
		Select(`
			v.id,
			v.name,
			v.capacity_kg,
			v.start_lat,
			v.start_lon,
			v.address,
			(SELECT d.id FROM drivers d
			  WHERE d.vehicle_id = v.id AND d.organization_id = v.organization_id
			  ORDER BY d.name, d.id LIMIT 1) AS driver_id`).
		Scopes(tenantscope.OfTable("v", query.Scope())).
		Order("v.name, v.id").
		Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	vehicles := make([]VehicleView, 0)
	for rows.Next() {
		var view VehicleView
		var id uuid.UUID
		var driverID uuid.NullUUID
		var lat, lon float64

		if err = rows.Scan(&id, &view.Name, &view.CapacityKg, &lat, &lon, &view.Address, &driverID); err != nil {
			return nil, err
		}

		if view.ID, err = kernel.UUIDFromGoogle(id); err != nil {
			return nil, err
		}
		if view.Start, err = kernel.NewLocation(lat, lon); err != nil {
			return nil, err
		}
		if view.DriverID, err = optionalUUID(driverID); err != nil {
			return nil, err
		}

		vehicles = append(vehicles, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return vehicles, nil
}
