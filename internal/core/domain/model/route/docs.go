// Package route provides the Route aggregate produced by dispatch reconciliation.
//
// A route is an ordered list of stops (order identities) for at most one vehicle.
// Routes are never edited: every reconciliation run deletes the organization's
// routes and creates new ones.
package route
