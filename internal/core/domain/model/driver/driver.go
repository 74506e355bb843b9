package driver

import (
	"errors"
	"strings"
	"time"

	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/core/domain/model/tenant"
	"fleetdispatch/internal/core/domain/model/vehicle"
	"fleetdispatch/internal/pkg/errs"
)

// DefaultStatus is applied when a driver is created without a status.
const DefaultStatus = "AVAILABLE"

var (
	// ErrDriverIsNotConstructed is returned when a Driver was not created via NewDriver or RestoreDriver.
	ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver constructor")
	// ErrVehicleOutsideOrganization is returned when assigning a vehicle of another organization.
	ErrVehicleOutsideOrganization = errs.NewValueIsInvalidErrorWithCause(
		"assignedVehicleId", errors.New("vehicle belongs to another organization"))
)

// Profile carries the descriptive driver attributes.
type Profile struct {
	Email     string
	LicenseID string
	Phone     string
	HomeBase  string
	Status    string
}

// Driver is a person operating a vehicle.
//
// Invariants:
//   - name is not blank
//   - the assigned vehicle, if any, belongs to the driver's organization
type Driver struct {
	id          kernel.UUID
	orgID       kernel.UUID
	name        string
	profile     Profile
	lastCheckIn time.Time
	vehicleID   *kernel.UUID

	isConstructed bool
}

// NewDriver creates an unassigned driver in the given scope. A blank status
// defaults to DefaultStatus and a zero lastCheckIn to now.
func NewDriver(
	scope tenant.Scope,
	id kernel.UUID,
	name string,
	profile Profile,
	lastCheckIn time.Time,
) (*Driver, error) {
	if err := scope.Validate(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(profile.Status) == "" {
		profile.Status = DefaultStatus
	}
	if lastCheckIn.IsZero() {
		lastCheckIn = time.Now().UTC()
	}
	return RestoreDriver(id, scope.OrgID(), name, profile, lastCheckIn, nil)
}

// RestoreDriver rebuilds a persisted driver.
func RestoreDriver(
	id kernel.UUID,
	orgID kernel.UUID,
	name string,
	profile Profile,
	lastCheckIn time.Time,
	vehicleID *kernel.UUID,
) (*Driver, error) {
	d := &Driver{isConstructed: true}

	if err := errors.Join(
		d.setID(id),
		d.setOrgID(orgID),
		d.Rename(name),
		d.setVehicleID(vehicleID),
	); err != nil {
		return nil, err
	}

	d.profile = trimProfile(profile)
	d.lastCheckIn = lastCheckIn
	return d, nil
}

// Validate ensures the driver was built by a constructor.
func (d *Driver) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDriverIsNotConstructed
	}
	return nil
}

func (d *Driver) ID() kernel.UUID {
	return d.id
}

func (d *Driver) OrgID() kernel.UUID {
	return d.orgID
}

func (d *Driver) Name() string {
	return d.name
}

func (d *Driver) Email() string {
	return d.profile.Email
}

func (d *Driver) LicenseID() string {
	return d.profile.LicenseID
}

func (d *Driver) Phone() string {
	return d.profile.Phone
}

func (d *Driver) HomeBase() string {
	return d.profile.HomeBase
}

func (d *Driver) Status() string {
	return d.profile.Status
}

func (d *Driver) LastCheckIn() time.Time {
	return d.lastCheckIn
}

// Profile returns a copy of the descriptive attributes.
func (d *Driver) Profile() Profile {
	return d.profile
}

// VehicleID returns the assigned vehicle, nil when unassigned.
func (d *Driver) VehicleID() *kernel.UUID {
	return d.vehicleID
}

func (d *Driver) HasVehicle() bool {
	return d.vehicleID != nil
}

// Rename changes the driver's display name.
func (d *Driver) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	d.name = name
	return nil
}

// ChangeEmail changes the portal identity of the driver.
func (d *Driver) ChangeEmail(email string) {
	d.profile.Email = strings.TrimSpace(email)
}

func (d *Driver) ChangeLicenseID(licenseID string) {
	d.profile.LicenseID = strings.TrimSpace(licenseID)
}

func (d *Driver) ChangePhone(phone string) {
	d.profile.Phone = strings.TrimSpace(phone)
}

func (d *Driver) ChangeHomeBase(homeBase string) {
	d.profile.HomeBase = strings.TrimSpace(homeBase)
}

// ChangeStatus sets a free-form operational status; blank values are rejected.
func (d *Driver) ChangeStatus(status string) error {
	status = strings.TrimSpace(status)
	if status == "" {
		return errs.NewValueIsRequiredError("status")
	}
	d.profile.Status = status
	return nil
}

// CheckIn records the last check-in time.
func (d *Driver) CheckIn(at time.Time) {
	d.lastCheckIn = at
}

// AssignVehicle links the driver to a vehicle of the same organization.
func (d *Driver) AssignVehicle(v *vehicle.Vehicle) error {
	if err := v.Validate(); err != nil {
		return err
	}
	if !v.OrgID().IsEqual(d.orgID) {
		return ErrVehicleOutsideOrganization
	}
	id := v.ID()
	d.vehicleID = &id
	return nil
}

// UnassignVehicle clears the vehicle assignment.
func (d *Driver) UnassignVehicle() {
	d.vehicleID = nil
}

// Drives reports whether the driver is assigned to the given vehicle.
func (d *Driver) Drives(vehicleID kernel.UUID) bool {
	return d.vehicleID != nil && d.vehicleID.IsEqual(vehicleID)
}

func (d *Driver) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Driver) setOrgID(orgID kernel.UUID) error {
	if err := orgID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("organizationId", err)
	}
	d.orgID = orgID
	return nil
}

func (d *Driver) setVehicleID(vehicleID *kernel.UUID) error {
	if vehicleID == nil {
		d.vehicleID = nil
		return nil
	}
	if err := vehicleID.Validate(); err != nil {
		return err
	}
	id := *vehicleID
	d.vehicleID = &id
	return nil
}

func trimProfile(p Profile) Profile {
	return Profile{
		Email:     strings.TrimSpace(p.Email),
		LicenseID: strings.TrimSpace(p.LicenseID),
		Phone:     strings.TrimSpace(p.Phone),
		HomeBase:  strings.TrimSpace(p.HomeBase),
		Status:    strings.TrimSpace(p.Status),
	}
}
