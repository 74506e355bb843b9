// Package nominatim resolves addresses against an OpenStreetMap Nominatim server.
package nominatim

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"strings"

	"fleetdispatch/internal/adapters/out/httpclient"
	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/core/ports"
	"fleetdispatch/internal/pkg/errs"
)

const serviceName = "geocoding"

type place struct {
	Lat         json.Number `json:"lat"`
	Lon         json.Number `json:"lon"`
	DisplayName string      `json:"display_name"`
}

type Geocoder struct {
	client *httpclient.Client
	logger *slog.Logger
}

var _ ports.Geocoder = (*Geocoder)(nil)

// New wraps a client pointed at the Nominatim base address. The client must
// carry a User-Agent header, public instances reject anonymous traffic.
func New(client *httpclient.Client, logger *slog.Logger) *Geocoder {
	return &Geocoder{
		client: client,
		logger: logger.With("component", "nominatim"),
	}
}

// ReverseGeocode falls back to the formatted coordinates on any failure.
func (g *Geocoder) ReverseGeocode(ctx context.Context, location kernel.Location) string {
	fallback := kernel.FormatCoordinates(location.Lat(), location.Lon())

	q := url.Values{}
	q.Set("format", "json")
	q.Set("lat", strconv.FormatFloat(location.Lat(), 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(location.Lon(), 'f', -1, 64))

	var p place
	if err := g.client.GetJSON(ctx, "/reverse?"+q.Encode(), &p); err != nil {
		g.logger.WarnContext(ctx, "reverse geocoding failed", "location", fallback, "error", err)
		return fallback
	}

	if display := strings.TrimSpace(p.DisplayName); display != "" {
		return display
	}
	return fallback
}

func (g *Geocoder) ForwardGeocode(ctx context.Context, address string) (ports.GeocodeResult, error) {
	q := url.Values{}
	q.Set("format", "json")
	q.Set("limit", "1")
	q.Set("q", address)

	var places []place
	if err := g.client.GetJSON(ctx, "/search?"+q.Encode(), &places); err != nil {
		g.logger.WarnContext(ctx, "forward geocoding failed", "address", address, "error", err)
		return ports.GeocodeResult{}, errs.NewExternalServiceError(serviceName, err)
	}
	if len(places) == 0 {
		return ports.GeocodeResult{}, errs.NewObjectNotFoundError("address", address)
	}

	first := places[0]
	loc, err := first.location()
	if err != nil {
		return ports.GeocodeResult{}, errs.NewObjectNotFoundErrorWithCause("address", address, err)
	}

	display := strings.TrimSpace(first.DisplayName)
	if display == "" {
		display = address
	}
	return ports.GeocodeResult{Location: loc, Address: display}, nil
}

func (p place) location() (kernel.Location, error) {
	lat, err := p.Lat.Float64()
	if err != nil {
		return kernel.Location{}, fmt.Errorf("parse lat %q: %w", p.Lat, err)
	}
	lon, err := p.Lon.Float64()
	if err != nil {
		return kernel.Location{}, fmt.Errorf("parse lon %q: %w", p.Lon, err)
	}
	return kernel.NewLocation(lat, lon)
}
