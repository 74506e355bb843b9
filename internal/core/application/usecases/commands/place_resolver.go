package commands

import (
	"context"
	"strings"

	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/core/ports"
	"fleetdispatch/internal/pkg/errs"
)

// OptionalLocation builds a location from optional request coordinates.
// Both absent yields nil; exactly one present is a validation error.
func OptionalLocation(lat, lon *float64) (*kernel.Location, error) {
	switch {
	case lat == nil && lon == nil:
		return nil, nil
	case lat == nil:
		return nil, errs.NewValueIsRequiredError("lat")
	case lon == nil:
		return nil, errs.NewValueIsRequiredError("lon")
	}

	location, err := kernel.NewLocation(*lat, *lon)
	if err != nil {
		return nil, err
	}
	return &location, nil
}

// placeResolver fills in whichever half of an (address, coordinates) pair is missing.
type placeResolver struct {
	geocoder ports.Geocoder
}

// resolve applies the coordinate resolution policy shared by vehicles and orders:
// known coordinates win and a blank address is backfilled by reverse lookup,
// otherwise the address is forward geocoded and must resolve.
func (r placeResolver) resolve(
	ctx context.Context,
	address string,
	location *kernel.Location,
) (kernel.Location, string, error) {
	address = strings.TrimSpace(address)

	if location != nil {
		if address == "" {
			address = r.geocoder.ReverseGeocode(ctx, *location)
		}
		return *location, address, nil
	}

	if address == "" {
		return kernel.Location{}, "", errs.NewValueIsRequiredError("address")
	}

	result, err := r.geocoder.ForwardGeocode(ctx, address)
	if err != nil {
		return kernel.Location{}, "", errs.NewValueIsInvalidErrorWithCause("address", err)
	}
	if err = result.Location.Validate(); err != nil {
		return kernel.Location{}, "", errs.NewValueIsInvalidErrorWithCause("address", err)
	}

	if resolved := strings.TrimSpace(result.Address); resolved != "" {
		address = resolved
	}
	return result.Location, address, nil
}
