// Package kernel provides the value objects shared by every dispatch aggregate.
//
// The package includes:
//   - UUID: identifier used for organizations, vehicles, drivers, orders and routes
//   - Location: a validated WGS84 latitude/longitude pair
//
// Both types are immutable and their zero values are invalid: use the constructors.
package kernel
