// Package routerepo persists routes. Stops are not stored with the route:
// they are read back from the orders that reference it.
package routerepo

import (
	"time"

	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/core/domain/model/route"

	"github.com/google/uuid"
)

// RouteDTO is the row of the routes table.
type RouteDTO struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrganizationID uuid.UUID  `gorm:"type:uuid;not null;index"`
	Status         string     `gorm:"type:varchar(16);not null"`
	VehicleID      *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt      time.Time
}

func (RouteDTO) TableName() string {
	return "routes"
}

// stopRow is one order reference read from the orders table.
type stopRow struct {
	ID      uuid.UUID
	RouteID uuid.UUID
}

func fromDomain(r *route.Route) RouteDTO {
	var vehicleID *uuid.UUID
	if id := r.VehicleID(); id != nil {
		raw := id.Bytes()
		vehicleID = &raw
	}

	return RouteDTO{
		ID:             r.ID().Bytes(),
		OrganizationID: r.OrgID().Bytes(),
		Status:         r.Status().String(),
		VehicleID:      vehicleID,
	}
}

func toDomain(dto RouteDTO, stops []uuid.UUID) (*route.Route, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}

	orgID, err := kernel.UUIDFromGoogle(dto.OrganizationID)
	if err != nil {
		return nil, err
	}

	var vehicleID *kernel.UUID
	if dto.VehicleID != nil {
		vID, vehicleErr := kernel.UUIDFromGoogle(*dto.VehicleID)
		if vehicleErr != nil {
			return nil, vehicleErr
		}
		vehicleID = &vID
	}

	stopIDs := make([]kernel.UUID, 0, len(stops))
	for _, raw := range stops {
		stopID, stopErr := kernel.UUIDFromGoogle(raw)
		if stopErr != nil {
			return nil, stopErr
		}
		stopIDs = append(stopIDs, stopID)
	}

	return route.RestoreRoute(id, orgID, parseStatus(dto.Status), vehicleID, stopIDs)
}

func parseStatus(s string) route.Status {
	if s == route.Planned.String() {
		return route.Planned
	}
	return route.UnknownStatus
}
