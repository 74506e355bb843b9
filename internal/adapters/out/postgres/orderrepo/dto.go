// Package orderrepo maps the order aggregate to the orders table. The table
// also owns route membership: a routed order carries its route and its
// position in the visit sequence.
package orderrepo

import (
	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is the row of the orders table.
type OrderDTO struct {
	ID                 uuid.UUID   `gorm:"type:uuid;primaryKey"`
	OrganizationID     uuid.UUID   `gorm:"type:uuid;not null;index"`
	Address            string
	Location           LocationDTO `gorm:"embedded;embeddedPrefix:location_"`
	WeightKg           int
	ServiceDurationMin int
	Status             string      `gorm:"type:varchar(16);not null;index"`
	RouteID            *uuid.UUID  `gorm:"type:uuid;index"`
	StopIndex          int
}

func (OrderDTO) TableName() string {
	return "orders"
}

// LocationDTO is the embedded delivery position.
type LocationDTO struct {
	Lat float64 `gorm:"type:double precision"`
	Lon float64 `gorm:"type:double precision"`
}

func fromDomain(o *order.Order) OrderDTO {
	var routeID *uuid.UUID
	if id := o.RouteID(); id != nil {
		raw := id.Bytes()
		routeID = &raw
	}

	return OrderDTO{
		ID:             o.ID().Bytes(),
		OrganizationID: o.OrgID().Bytes(),
		Address:        o.Address(),
		Location: LocationDTO{
			Lat: o.Location().Lat(),
			Lon: o.Location().Lon(),
		},
		WeightKg:           o.WeightKg(),
		ServiceDurationMin: o.ServiceDurationMin(),
		Status:             o.Status().String(),
		RouteID:            routeID,
		StopIndex:          o.StopIndex(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}

	orgID, err := kernel.UUIDFromGoogle(dto.OrganizationID)
	if err != nil {
		return nil, err
	}

	var routeID *kernel.UUID
	if dto.RouteID != nil {
		rID, routeErr := kernel.UUIDFromGoogle(*dto.RouteID)
		if routeErr != nil {
			return nil, routeErr
		}
		routeID = &rID
	}

	loc, err := kernel.NewLocation(dto.Location.Lat, dto.Location.Lon)
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, orgID, dto.Address, loc, dto.WeightKg, dto.ServiceDurationMin,
		status, routeID, dto.StopIndex)
}
