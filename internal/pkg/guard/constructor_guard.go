// Package guard provides the ConstructorGuard used by domain objects, commands and
// queries to tell values built through their constructors apart from zero values.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate for a zero-value guard when
// no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a value as built by its constructor. Embed it in a struct
// and call Validate from the struct's own Validate method:
//
//	type Scope struct {
//	    orgID kernel.UUID
//	    guard guard.ConstructorGuard
//	}
//
//	func (s Scope) Validate() error {
//	    return s.guard.Validate(ErrScopeIsNotConstructed)
//	}
//
// The zero value is "not constructed". The type is immutable and safe for
// concurrent use.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. For a zero value it returns
// validationError, or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
