// Package solver talks to the external route optimisation service.
package solver

import (
	"context"
	"log/slog"
	"time"

	"fleetdispatch/internal/adapters/out/httpclient"
	"fleetdispatch/internal/core/domain/model/plan"
	"fleetdispatch/internal/core/ports"
	"fleetdispatch/internal/pkg/errs"
)

const serviceName = "solver"

type orderJSON struct {
	ID                 string  `json:"id"`
	Lat                float64 `json:"lat"`
	Lon                float64 `json:"lon"`
	WeightKg           float64 `json:"weightKg"`
	ServiceDurationMin float64 `json:"serviceDurationMin"`
}

type vehicleJSON struct {
	ID         string  `json:"id"`
	CapacityKg float64 `json:"capacityKg"`
	StartLat   float64 `json:"startLat"`
	StartLon   float64 `json:"startLon"`
}

type requestJSON struct {
	Orders   []orderJSON   `json:"orders"`
	Vehicles []vehicleJSON `json:"vehicles"`
}

// Stops may carry more than the id; only the id is read. Ids of any other
// JSON type decode to "" and are skipped by the reconciler.
type stopJSON struct {
	ID any `json:"id"`
}

type routeJSON struct {
	VehicleID string     `json:"vehicleId"`
	Stops     []stopJSON `json:"stops"`
}

type responseJSON struct {
	Routes []routeJSON `json:"routes"`
}

type Client struct {
	client *httpclient.Client
	logger *slog.Logger
}

var _ ports.Solver = (*Client)(nil)

func New(client *httpclient.Client, logger *slog.Logger) *Client {
	return &Client{
		client: client,
		logger: logger.With("component", "solver"),
	}
}

// Solve posts the request to /solve. A missing body or a body without routes
// is an empty plan.
func (c *Client) Solve(ctx context.Context, request plan.Request) (plan.Plan, error) {
	started := time.Now()

	var resp responseJSON
	if err := c.client.PostJSON(ctx, "/solve", toJSON(request), &resp); err != nil {
		c.logger.ErrorContext(ctx, "solver call failed",
			"orders", len(request.Orders),
			"vehicles", len(request.Vehicles),
			"elapsed", time.Since(started),
			"error", err)
		return plan.Plan{}, errs.NewExternalServiceError(serviceName, err)
	}

	return fromJSON(resp), nil
}

func toJSON(request plan.Request) requestJSON {
	out := requestJSON{
		Orders:   make([]orderJSON, 0, len(request.Orders)),
		Vehicles: make([]vehicleJSON, 0, len(request.Vehicles)),
	}
	for _, o := range request.Orders {
		out.Orders = append(out.Orders, orderJSON(o))
	}
	for _, v := range request.Vehicles {
		out.Vehicles = append(out.Vehicles, vehicleJSON(v))
	}
	return out
}

func fromJSON(resp responseJSON) plan.Plan {
	p := plan.Plan{Assignments: make([]plan.Assignment, 0, len(resp.Routes))}
	for _, r := range resp.Routes {
		ids := make([]string, 0, len(r.Stops))
		for _, s := range r.Stops {
			id, _ := s.ID.(string)
			ids = append(ids, id)
		}
		p.Assignments = append(p.Assignments, plan.Assignment{VehicleID: r.VehicleID, StopIDs: ids})
	}
	return p
}
