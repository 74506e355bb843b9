// Package vehiclerepo persists the vehicle aggregate.
package vehiclerepo

import (
	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/core/domain/model/vehicle"

	"github.com/google/uuid"
)

// VehicleDTO is the row of the vehicles table.
type VehicleDTO struct {
	ID             uuid.UUID   `gorm:"type:uuid;primaryKey"`
	OrganizationID uuid.UUID   `gorm:"type:uuid;not null;index"`
	Name           string      `gorm:"not null"`
	CapacityKg     int         `gorm:"not null"`
	Start          LocationDTO `gorm:"embedded;embeddedPrefix:start_"`
	Address        string
}

func (VehicleDTO) TableName() string {
	return "vehicles"
}

// LocationDTO is the embedded start position.
type LocationDTO struct {
	Lat float64 `gorm:"type:double precision"`
	Lon float64 `gorm:"type:double precision"`
}

func fromDomain(v *vehicle.Vehicle) VehicleDTO {
	return VehicleDTO{
		ID:             v.ID().Bytes(),
		OrganizationID: v.OrgID().Bytes(),
		Name:           v.Name(),
		CapacityKg:     v.CapacityKg(),
		Start: LocationDTO{
			Lat: v.Start().Lat(),
			Lon: v.Start().Lon(),
		},
		Address: v.Address(),
	}
}

func toDomain(dto VehicleDTO) (*vehicle.Vehicle, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}

	orgID, err := kernel.UUIDFromGoogle(dto.OrganizationID)
	if err != nil {
		return nil, err
	}

	start, err := kernel.NewLocation(dto.Start.Lat, dto.Start.Lon)
	if err != nil {
		return nil, err
	}

	return vehicle.RestoreVehicle(id, orgID, dto.Name, dto.CapacityKg, start, dto.Address)
}
