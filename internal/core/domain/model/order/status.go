package order

import (
	"fmt"
	"strings"

	"fleetdispatch/internal/pkg/errs"
)

// Status represents the dispatch state of a delivery order.
//
// State transitions:
//
//	Unassigned ──> Assigned ──> Delivered
//	    ^             │             │
//	    └─────────────┴─────────────┘
//	         (reconciliation reset)
//
// Only reconciliation moves an order into Assigned and only the driver portal
// moves it into Delivered.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Unassigned orders are not part of any route.
	Unassigned

	// Assigned orders are a stop of a planned route.
	Assigned

	// Delivered orders were confirmed by the driver of their route's vehicle.
	Delivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "UNKNOWN",
		Unassigned: "UNASSIGNED",
		Assigned:   "ASSIGNED",
		Delivered:  "DELIVERED",
	}
}

// ParseStatus converts the external representation into a Status. Matching is
// case-insensitive; unknown names are a validation error.
func ParseStatus(s string) (Status, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for status, str := range getStatusStrings() {
		if status != Unknown && str == name {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that the status is one of Unassigned, Assigned or Delivered.
func (s Status) Validate() error {
	if s != Unassigned && s != Assigned && s != Delivered {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the upper-case wire name, "UNKNOWN" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// ValidateCanHaveRoute enforces that routed orders are Assigned or Delivered
// and unrouted orders are Unassigned.
func (s Status) ValidateCanHaveRoute(route bool) error {
	if route && s != Assigned && s != Delivered {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have a route", s.String()),
		)
	}

	if !route && s != Unassigned {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no route", s.String()),
		)
	}

	return nil
}

// Assign transitions Unassigned or Assigned to Assigned.
func (s Status) Assign() (Status, error) {
	if s != Unassigned && s != Assigned {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to assign", s.String()),
		)
	}

	return Assigned, nil
}

// Deliver transitions Assigned to Delivered. Delivered stays Delivered.
func (s Status) Deliver() (Status, error) {
	if s != Assigned && s != Delivered {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to deliver", s.String()),
		)
	}

	return Delivered, nil
}
