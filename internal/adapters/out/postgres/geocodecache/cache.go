// Package geocodecache keeps forward geocoding answers in postgres so that
// repeated addresses do not hit the public geocoder again.
package geocodecache

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/core/ports"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EntryDTO is one cached forward lookup keyed by the normalised address.
type EntryDTO struct {
	AddressKey string  `gorm:"primaryKey"`
	Lat        float64 `gorm:"type:double precision"`
	Lon        float64 `gorm:"type:double precision"`
	Address    string
	UpdatedAt  time.Time
}

func (EntryDTO) TableName() string {
	return "geocode_cache"
}

// Geocoder decorates another geocoder with the cache. Reverse lookups pass
// through. Cache read and write failures are logged and otherwise ignored.
type Geocoder struct {
	db     *gorm.DB
	next   ports.Geocoder
	logger *slog.Logger
}

var _ ports.Geocoder = (*Geocoder)(nil)

func New(db *gorm.DB, next ports.Geocoder, logger *slog.Logger) *Geocoder {
	return &Geocoder{
		db:     db,
		next:   next,
		logger: logger.With("component", "geocode-cache"),
	}
}

func (g *Geocoder) ReverseGeocode(ctx context.Context, location kernel.Location) string {
	return g.next.ReverseGeocode(ctx, location)
}

func (g *Geocoder) ForwardGeocode(ctx context.Context, address string) (ports.GeocodeResult, error) {
	key := normalize(address)
	if key == "" {
		return g.next.ForwardGeocode(ctx, address)
	}

	if cached, ok := g.get(ctx, key); ok {
		return cached, nil
	}

	result, err := g.next.ForwardGeocode(ctx, address)
	if err != nil {
		return ports.GeocodeResult{}, err
	}

	g.put(ctx, key, result)
	return result, nil
}

func (g *Geocoder) get(ctx context.Context, key string) (ports.GeocodeResult, bool) {
	var entry EntryDTO
	err := g.db.WithContext(ctx).First(&entry, "address_key = ?", key).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			g.logger.WarnContext(ctx, "geocode cache read failed", "error", err)
		}
		return ports.GeocodeResult{}, false
	}

	loc, err := kernel.NewLocation(entry.Lat, entry.Lon)
	if err != nil {
		g.logger.WarnContext(ctx, "discarding corrupt geocode cache entry", "key", key, "error", err)
		return ports.GeocodeResult{}, false
	}

	return ports.GeocodeResult{Location: loc, Address: entry.Address}, true
}

func (g *Geocoder) put(ctx context.Context, key string, result ports.GeocodeResult) {
	entry := EntryDTO{
		AddressKey: key,
		Lat:        result.Location.Lat(),
		Lon:        result.Location.Lon(),
		Address:    result.Address,
		UpdatedAt:  time.Now().UTC(),
	}

	err := g.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "address_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"lat", "lon", "address", "updated_at"}),
		}).
		Create(&entry).Error
	if err != nil {
		g.logger.WarnContext(ctx, "geocode cache write failed", "key", key, "error", err)
	}
}

// normalize collapses whitespace and case so trivially different spellings share an entry.
func normalize(address string) string {
	return strings.ToLower(strings.Join(strings.Fields(address), " "))
}
