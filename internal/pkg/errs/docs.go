// Package errs provides standardized error types for the dispatch application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package covers the whole error taxonomy of the service:
//   - ObjectNotFoundError: entity absent or outside the caller's organization
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: validation failures
//   - ForbiddenError: entity in scope, but the caller lacks the relationship to it
//   - ExternalServiceError: solver, geocoder or routing engine failures
//   - ErrUnauthenticated / ErrNoOrganization: tenant resolution failures
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so errors.Is classifies wrapped errors
//
// Adapters translate the sentinels into transport status codes; the core never
// inspects messages.
package errs
