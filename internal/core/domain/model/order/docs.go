// Package order provides the DeliveryOrder aggregate owned by order intake.
//
// The package includes:
//   - Order: identity, drop-off address and coordinates, weight, service time and route membership
//   - Status: the Unassigned -> Assigned -> Delivered state machine
//
// Key business rules:
//   - orders always carry resolved coordinates
//   - new orders start Unassigned
//   - a route reference exists exactly when the status is Assigned or Delivered
//   - reconciliation may reset any order back to Unassigned
package order
