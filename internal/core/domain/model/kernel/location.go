package kernel

import (
	"errors"
	"fmt"
	"math"

	"fleetdispatch/internal/pkg/errs"
	"fleetdispatch/internal/pkg/guard"
)

const (
	// LatitudeMin is the southern bound of a WGS84 latitude.
	LatitudeMin = -90.0
	// LatitudeMax is the northern bound of a WGS84 latitude.
	LatitudeMax = 90.0
	// LongitudeMin is the western bound of a WGS84 longitude.
	LongitudeMin = -180.0
	// LongitudeMax is the eastern bound of a WGS84 longitude.
	LongitudeMax = 180.0
)

// ErrLocationIsNotConstructed is returned when a zero-value Location is used.
var ErrLocationIsNotConstructed = errs.NewValueIsRequiredError(
	"location must be created via NewLocation constructor")

// Location is a validated latitude/longitude pair in decimal degrees.
//
// Example:
//
//	loc, err := kernel.NewLocation(52.52, 13.405)
//	if err != nil {
//	    // out of range
//	}
//	fmt.Println(loc) // 52.52000, 13.40500
type Location struct { //nolint:recvcheck //using for validation
	lat   float64
	lon   float64
	guard guard.ConstructorGuard
}

// NewLocation validates both coordinates and joins every range violation into one error.
func NewLocation(lat, lon float64) (Location, error) {
	loc := Location{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(loc.setLat(lat), loc.setLon(lon)); err != nil {
		return Location{}, err
	}

	return loc, nil
}

// Validate reports whether the Location was built by NewLocation.
func (l Location) Validate() error {
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

// Lat returns the latitude in decimal degrees.
func (l Location) Lat() float64 {
	return l.lat
}

// Lon returns the longitude in decimal degrees.
func (l Location) Lon() float64 {
	return l.lon
}

// String renders the location as "lat, lon" with five decimals. The same
// format is used as the display address when reverse geocoding is unavailable.
func (l Location) String() string {
	return FormatCoordinates(l.lat, l.lon)
}

// IsEqual compares two constructed locations.
func (l Location) IsEqual(other Location) (bool, error) {
	if err := errors.Join(l.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return l.lat == other.lat && l.lon == other.lon, nil
}

// FormatCoordinates renders a coordinate pair as "%.5f, %.5f".
func FormatCoordinates(lat, lon float64) string {
	return fmt.Sprintf("%.5f, %.5f", lat, lon)
}

func (l *Location) setLat(lat float64) error {
	if math.IsNaN(lat) || lat < LatitudeMin || lat > LatitudeMax {
		return errs.NewValueIsOutOfRangeError("latitude", lat, LatitudeMin, LatitudeMax)
	}

	l.lat = lat
	return nil
}

func (l *Location) setLon(lon float64) error {
	if math.IsNaN(lon) || lon < LongitudeMin || lon > LongitudeMax {
		return errs.NewValueIsOutOfRangeError("longitude", lon, LongitudeMin, LongitudeMax)
	}

	l.lon = lon
	return nil
}
