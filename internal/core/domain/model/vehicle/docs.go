// Package vehicle provides the Vehicle aggregate of the fleet registry.
//
// A vehicle has a display name, a load capacity in kilograms and a start
// location with its resolved address. Drivers reference vehicles, vehicles never
// reference drivers. Routes reference vehicles and are detached before a vehicle
// is deleted.
package vehicle
