package vehicle

import (
	"errors"
	"fmt"
	"strings"

	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/core/domain/model/tenant"
	"fleetdispatch/internal/pkg/errs"
)

// ErrVehicleIsNotConstructed is returned when a Vehicle was not created via NewVehicle or RestoreVehicle.
var ErrVehicleIsNotConstructed = errors.New("Vehicle must be created via NewVehicle constructor")

// Vehicle is a delivery vehicle owned by one organization.
//
// Invariants:
//   - identity and organization are valid UUIDs
//   - name is not blank
//   - capacity is positive
//   - start location is a constructed Location and address is not blank
type Vehicle struct {
	id         kernel.UUID
	orgID      kernel.UUID
	name       string
	capacityKg int
	start      kernel.Location
	address    string

	isConstructed bool
}

// NewVehicle registers a vehicle in the given organization scope. The caller is
// expected to have resolved both start location and address beforehand.
func NewVehicle(
	scope tenant.Scope,
	id kernel.UUID,
	name string,
	capacityKg int,
	start kernel.Location,
	address string,
) (*Vehicle, error) {
	if err := scope.Validate(); err != nil {
		return nil, err
	}
	return RestoreVehicle(id, scope.OrgID(), name, capacityKg, start, address)
}

// RestoreVehicle rebuilds a persisted vehicle.
func RestoreVehicle(
	id kernel.UUID,
	orgID kernel.UUID,
	name string,
	capacityKg int,
	start kernel.Location,
	address string,
) (*Vehicle, error) {
	v := &Vehicle{isConstructed: true}

	if err := errors.Join(
		v.setID(id),
		v.setOrgID(orgID),
		v.setName(name),
		v.setCapacity(capacityKg),
		v.setStart(start),
		v.setAddress(address),
	); err != nil {
		return nil, err
	}

	return v, nil
}

// Validate ensures the vehicle was built by a constructor.
func (v *Vehicle) Validate() error {
	if v == nil || !v.isConstructed {
		return ErrVehicleIsNotConstructed
	}
	return nil
}

// ID returns the vehicle identifier.
func (v *Vehicle) ID() kernel.UUID {
	return v.id
}

// OrgID returns the owning organization.
func (v *Vehicle) OrgID() kernel.UUID {
	return v.orgID
}

// Name returns the display name.
func (v *Vehicle) Name() string {
	return v.name
}

// CapacityKg returns the load capacity in kilograms.
func (v *Vehicle) CapacityKg() int {
	return v.capacityKg
}

// Start returns the depot location the vehicle leaves from.
func (v *Vehicle) Start() kernel.Location {
	return v.start
}

// Address returns the resolved display address of the start location.
func (v *Vehicle) Address() string {
	return v.address
}

// BelongsTo reports whether the vehicle lives in the given scope.
func (v *Vehicle) BelongsTo(scope tenant.Scope) bool {
	return scope.Owns(v.orgID)
}

func (v *Vehicle) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	v.id = id
	return nil
}

func (v *Vehicle) setOrgID(orgID kernel.UUID) error {
	if err := orgID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("organizationId", err)
	}
	v.orgID = orgID
	return nil
}

func (v *Vehicle) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	v.name = name
	return nil
}

func (v *Vehicle) setCapacity(capacityKg int) error {
	if capacityKg <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("capacityKg", fmt.Errorf("%d is not greater than 0", capacityKg))
	}
	v.capacityKg = capacityKg
	return nil
}

func (v *Vehicle) setStart(start kernel.Location) error {
	if err := start.Validate(); err != nil {
		return err
	}
	v.start = start
	return nil
}

func (v *Vehicle) setAddress(address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	v.address = address
	return nil
}
