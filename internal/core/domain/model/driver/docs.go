// Package driver provides the Driver aggregate of the fleet registry.
//
// A driver is identified towards the driver portal by email and may be assigned
// to at most one vehicle of the same organization.
package driver
