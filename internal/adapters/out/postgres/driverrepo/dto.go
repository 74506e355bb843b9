// Package driverrepo persists the driver aggregate.
package driverrepo

import (
	"time"

	"fleetdispatch/internal/core/domain/model/driver"
	"fleetdispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DriverDTO is the row of the drivers table. A non-blank email is unique per
// organization since it identifies the driver in the portal.
type DriverDTO struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrganizationID uuid.UUID  `gorm:"type:uuid;not null;index:idx_drivers_org_email,unique,priority:1,where:email <> ''"`
	Name           string     `gorm:"not null"`
	Email          string     `gorm:"index:idx_drivers_org_email,unique,priority:2"`
	LicenseID      string
	Phone          string
	HomeBase       string
	Status         string     `gorm:"type:varchar(32)"`
	LastCheckIn    time.Time
	VehicleID      *uuid.UUID `gorm:"type:uuid;index"`
}

func (DriverDTO) TableName() string {
	return "drivers"
}

func fromDomain(d *driver.Driver) DriverDTO {
	var vehicleID *uuid.UUID
	if id := d.VehicleID(); id != nil {
		raw := id.Bytes()
		vehicleID = &raw
	}

	return DriverDTO{
		ID:             d.ID().Bytes(),
		OrganizationID: d.OrgID().Bytes(),
		Name:           d.Name(),
		Email:          d.Email(),
		LicenseID:      d.LicenseID(),
		Phone:          d.Phone(),
		HomeBase:       d.HomeBase(),
		Status:         d.Status(),
		LastCheckIn:    d.LastCheckIn().UTC(),
		VehicleID:      vehicleID,
	}
}

func toDomain(dto DriverDTO) (*driver.Driver, error) {
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

	profile := driver.Profile{
		Email:     dto.Email,
		LicenseID: dto.LicenseID,
		Phone:     dto.Phone,
		HomeBase:  dto.HomeBase,
		Status:    dto.Status,
	}

	return driver.RestoreDriver(id, orgID, dto.Name, profile, dto.LastCheckIn.UTC(), vehicleID)
}
