package driver

import (
	"fmt"

	"burritoops/internal/pkg/errs"
)

// Status represents a delivery driver's availability.
//
// Only the three enumerated values are constructible through the domain;
// StatusFromString rejects anything else, so no other value ever reaches
// storage.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// Available means the driver can be assigned an order.
	Available

	// Busy means the driver is currently delivering an order.
	Busy

	// Offline means the driver is not working and must not be assigned.
	Offline
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "unknown",
		Available:     "available",
		Busy:          "busy",
		Offline:       "offline",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		Available: "available",
		Busy:      "busy",
		Offline:   "offline",
	}
}

// Validate checks if the Status value is one of the three enumerated values.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("driver status",
			fmt.Errorf("%d is not a valid driver status", s))
	}
	return nil
}

// String returns the lower-case name of the status, as used in snapshots
// and reports. Implements fmt.Stringer and is safe on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// StatusFromString parses a status from its string form.
// Used when reconstructing drivers from persistence and when statuses
// arrive from external callers.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("driver status",
		fmt.Errorf("%q is not a valid driver status", s))
}
