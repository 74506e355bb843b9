package postgres

import (
	"fleetdispatch/internal/adapters/out/postgres/driverrepo"
	"fleetdispatch/internal/adapters/out/postgres/geocodecache"
	"fleetdispatch/internal/adapters/out/postgres/membershiprepo"
	"fleetdispatch/internal/adapters/out/postgres/orderrepo"
	"fleetdispatch/internal/adapters/out/postgres/routerepo"
	"fleetdispatch/internal/adapters/out/postgres/vehiclerepo"

	"gorm.io/gorm"
)

// Models lists every table owned by the service.
func Models() []any {
	return []any{
		&membershiprepo.MembershipDTO{},
		&vehiclerepo.VehicleDTO{},
		&driverrepo.DriverDTO{},
		&routerepo.RouteDTO{},
		&orderrepo.OrderDTO{},
		&geocodecache.EntryDTO{},
	}
}

// Migrate creates or alters the schema to match Models.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
