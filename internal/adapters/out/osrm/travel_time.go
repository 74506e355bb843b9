// Package osrm estimates driving times with an OSRM routing server.
package osrm

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"fleetdispatch/internal/adapters/out/httpclient"
	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/core/ports"
)

type routeResponse struct {
	Code   string `json:"code"`
	Routes []struct {
		Duration float64 `json:"duration"`
	} `json:"routes"`
}

type TravelTime struct {
	client *httpclient.Client
	logger *slog.Logger
}

var _ ports.TravelTimeEstimator = (*TravelTime)(nil)

func New(client *httpclient.Client, logger *slog.Logger) *TravelTime {
	return &TravelTime{
		client: client,
		logger: logger.With("component", "osrm"),
	}
}

// EstimateMinutes asks for the fastest driving route and rounds its duration
// to whole minutes. Any failure yields an unknown duration.
func (t *TravelTime) EstimateMinutes(ctx context.Context, from, to kernel.Location) (int, bool) {
	// OSRM expects lon,lat pairs.
	path := fmt.Sprintf("/route/v1/driving/%f,%f;%f,%f?overview=false",
		from.Lon(), from.Lat(), to.Lon(), to.Lat())

	var resp routeResponse
	if err := t.client.GetJSON(ctx, path, &resp); err != nil {
		t.logger.WarnContext(ctx, "travel time lookup failed",
			"from", from.String(), "to", to.String(), "error", err)
		return 0, false
	}

	if resp.Code != "" && resp.Code != "Ok" {
		t.logger.WarnContext(ctx, "travel time lookup rejected", "code", resp.Code)
		return 0, false
	}
	if len(resp.Routes) == 0 {
		return 0, false
	}

	seconds := resp.Routes[0].Duration
	if math.IsNaN(seconds) || seconds < 0 {
		return 0, false
	}
	return int(math.Round(seconds / 60)), true
}
