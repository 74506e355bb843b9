// Package tenant holds the organization scope every dispatch operation runs in.
//
// A Scope is obtained once per request from the tenancy resolver and is then
// passed to every repository and command; nothing in the core reads or writes
// an entity without one.
package tenant

import (
	"errors"

	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/pkg/errs"
	"fleetdispatch/internal/pkg/guard"
)

// ErrScopeIsNotConstructed is returned when a zero-value Scope reaches a repository.
var ErrScopeIsNotConstructed = errors.New("Scope must be created via NewScope constructor")

// Scope identifies the organization that owns every entity touched by an operation.
type Scope struct {
	orgID kernel.UUID
	guard guard.ConstructorGuard
}

// NewScope binds a scope to an organization.
func NewScope(orgID kernel.UUID) (Scope, error) {
	if err := orgID.Validate(); err != nil {
		return Scope{}, errs.NewValueIsRequiredErrorWithCause("organizationId", err)
	}
	return Scope{orgID: orgID, guard: guard.NewConstructorGuard()}, nil
}

// Validate reports whether the scope was built by NewScope.
func (s Scope) Validate() error {
	return s.guard.Validate(ErrScopeIsNotConstructed)
}

// OrgID returns the organization identifier.
func (s Scope) OrgID() kernel.UUID {
	return s.orgID
}

// Owns reports whether an entity stamped with orgID belongs to this scope.
func (s Scope) Owns(orgID kernel.UUID) bool {
	return s.Validate() == nil && s.orgID.IsEqual(orgID)
}

func (s Scope) String() string {
	return s.orgID.String()
}
