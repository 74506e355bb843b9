package queries

import (
	"context"

	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/pkg/tenantscope"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListDriversQueryHandler struct {
	db *gorm.DB
}

func NewListDriversQueryHandler(db *gorm.DB) ListDriversQueryHandler {
	return ListDriversQueryHandler{db: db}
}

// Handle returns the drivers sorted by name.
func (h ListDriversQueryHandler) Handle(ctx context.Context, query ListDriversQuery) ([]DriverView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).
		Table("drivers").
		Select("id, name, email, license_id, phone, home_base, status, last_check_in, vehicle_id").
		Scopes(tenantscope.Of(query.Scope())).
		Order("name, id").
		Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	drivers := make([]DriverView, 0)
	for rows.Next() {
		var view DriverView
		var id uuid.UUID
		var vehicleID uuid.NullUUID

		err = rows.Scan(
			&id,
			&view.Name,
			&view.Email,
			&view.LicenseID,
			&view.Phone,
			&view.HomeBase,
			&view.Status,
			&view.LastCheckIn,
			&vehicleID,
		)
		if err != nil {
			return nil, err
		}

		if view.ID, err = kernel.UUIDFromGoogle(id); err != nil {
			return nil, err
		}
		if view.VehicleID, err = optionalUUID(vehicleID); err != nil {
			return nil, err
		}
		view.LastCheckIn = view.LastCheckIn.UTC()

		drivers = append(drivers, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return drivers, nil
}
