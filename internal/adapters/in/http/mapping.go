package http

import (
	"fleetdispatch/internal/core/application/usecases/commands"
	"fleetdispatch/internal/core/application/usecases/queries"
	"fleetdispatch/internal/core/domain/model/driver"
	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/core/domain/model/order"
	"fleetdispatch/internal/core/domain/model/vehicle"
	"fleetdispatch/internal/generated/servers"
	"fleetdispatch/internal/pkg/errs"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

func pathID(id openapi_types.UUID, param string) (kernel.UUID, error) {
	out, err := kernel.UUIDFromGoogle(id)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(param, err)
	}
	return out, nil
}

func optionalID(id *openapi_types.UUID, param string) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil
	}
	out, err := pathID(*id, param)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func optionalLocation(l *servers.Location, param string) (*kernel.Location, error) {
	if l == nil {
		return nil, nil
	}
	loc, err := kernel.NewLocation(l.Lat, l.Lon)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause(param, err)
	}
	return &loc, nil
}

func optionalResponseID(id *kernel.UUID) *openapi_types.UUID {
	if id == nil {
		return nil
	}
	out := id.Bytes()
	return &out
}

func locationResponse(l kernel.Location) servers.Location {
	return servers.Location{Lat: l.Lat(), Lon: l.Lon()}
}

func vehicleResponse(v *vehicle.Vehicle) servers.Vehicle {
	return servers.Vehicle{
		Id:         v.ID().Bytes(),
		Name:       v.Name(),
		CapacityKg: v.CapacityKg(),
		Start:      locationResponse(v.Start()),
		Address:    v.Address(),
	}
}

func vehicleViewResponse(v queries.VehicleView) servers.Vehicle {
	return servers.Vehicle{
		Id:         v.ID.Bytes(),
		Name:       v.Name,
		CapacityKg: v.CapacityKg,
		Start:      locationResponse(v.Start),
		Address:    v.Address,
		DriverId:   optionalResponseID(v.DriverID),
	}
}

func driverResponse(d *driver.Driver) servers.Driver {
	return servers.Driver{
		Id:                d.ID().Bytes(),
		Name:              d.Name(),
		Email:             d.Email(),
		LicenseId:         d.LicenseID(),
		Phone:             d.Phone(),
		HomeBase:          d.HomeBase(),
		Status:            d.Status(),
		LastCheckIn:       d.LastCheckIn(),
		AssignedVehicleId: optionalResponseID(d.VehicleID()),
	}
}

func driverViewResponse(d queries.DriverView) servers.Driver {
	return servers.Driver{
		Id:                d.ID.Bytes(),
		Name:              d.Name,
		Email:             d.Email,
		LicenseId:         d.LicenseID,
		Phone:             d.Phone,
		HomeBase:          d.HomeBase,
		Status:            d.Status,
		LastCheckIn:       d.LastCheckIn,
		AssignedVehicleId: optionalResponseID(d.VehicleID),
	}
}

func orderResponse(o *order.Order) servers.Order {
	resp := servers.Order{
		Id:                 o.ID().Bytes(),
		Address:            o.Address(),
		Location:           locationResponse(o.Location()),
		WeightKg:           o.WeightKg(),
		ServiceDurationMin: o.ServiceDurationMin(),
		Status:             o.Status().String(),
		RouteId:            optionalResponseID(o.RouteID()),
	}
	if o.RouteID() != nil {
		idx := o.StopIndex()
		resp.StopIndex = &idx
	}
	return resp
}

func orderViewResponse(o queries.OrderView) servers.Order {
	resp := servers.Order{
		Id:                 o.ID.Bytes(),
		Address:            o.Address,
		Location:           locationResponse(o.Location),
		WeightKg:           o.WeightKg,
		ServiceDurationMin: o.ServiceDurationMin,
		Status:             o.Status,
		RouteId:            optionalResponseID(o.RouteID),
	}
	if o.RouteID != nil {
		idx := o.StopIndex
		resp.StopIndex = &idx
	}
	return resp
}

func routeViewResponse(r queries.RouteView) servers.Route {
	resp := servers.Route{
		Id:        r.ID.Bytes(),
		Status:    r.Status,
		VehicleId: optionalResponseID(r.VehicleID),
		Stops:     make([]servers.RouteStop, 0, len(r.Stops)),
	}
	if r.VehicleName != "" {
		name := r.VehicleName
		resp.VehicleName = &name
	}
	for _, s := range r.Stops {
		resp.Stops = append(resp.Stops, servers.RouteStop{
			OrderId:  s.OrderID.Bytes(),
			Address:  s.Address,
			Location: locationResponse(s.Location),
			Status:   s.Status,
		})
	}
	return resp
}

func reconcileResponse(result commands.ReconcileRoutesResult) servers.ReconcileResult {
	resp := servers.ReconcileResult{
		Routes:  make([]servers.Route, 0, len(result.Routes)),
		Skipped: make([]servers.SkippedStop, 0, len(result.Skipped)),
	}
	for _, planned := range result.Routes {
		r := servers.Route{
			Id:        planned.Route.ID().Bytes(),
			Status:    planned.Route.Status().String(),
			VehicleId: optionalResponseID(planned.Route.VehicleID()),
			Stops:     make([]servers.RouteStop, 0, len(planned.Stops)),
		}
		for _, o := range planned.Stops {
			r.Stops = append(r.Stops, servers.RouteStop{
				OrderId:  o.ID().Bytes(),
				Address:  o.Address(),
				Location: locationResponse(o.Location()),
				Status:   o.Status().String(),
			})
		}
		resp.Routes = append(resp.Routes, r)
	}
	for _, s := range result.Skipped {
		resp.Skipped = append(resp.Skipped, servers.SkippedStop{
			VehicleId: s.VehicleID,
			StopId:    s.StopID,
			Reason:    string(s.Reason),
		})
	}
	return resp
}

func driverRouteResponse(r queries.GetDriverRouteQueryResponse) servers.DriverRoute {
	resp := servers.DriverRoute{
		DriverName:                r.DriverName,
		VehicleName:               r.VehicleName,
		RouteId:                   optionalResponseID(r.RouteID),
		RouteStatus:               r.RouteStatus,
		Stops:                     make([]servers.DriverRouteStop, 0, len(r.Stops)),
		EstimatedRemainingMinutes: r.EstimatedRemainingMinutes,
	}
	for _, s := range r.Stops {
		resp.Stops = append(resp.Stops, servers.DriverRouteStop{
			Id:                 s.ID.Bytes(),
			Address:            s.Address,
			Lat:                s.Location.Lat(),
			Lon:                s.Location.Lon(),
			Status:             s.Status,
			ServiceDurationMin: s.ServiceDurationMin,
		})
	}
	return resp
}
