package courier

import (
	"dispatch/internal/pkg/errs"
)

// Status represents a courier's standing in the roster. Only active couriers
// may take new delivery assignments.
type Status int

const (
	// StatusUnknown is the zero value and is not a valid status.
	StatusUnknown Status = iota
	// StatusActive means the courier is working and assignable.
	StatusActive
	// StatusSuspended means the courier is temporarily off the roster.
	StatusSuspended
	// StatusInactive means the courier left and will not return.
	StatusInactive
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusActive:    "active",
		StatusSuspended: "suspended",
		StatusInactive:  "inactive",
	}
}

// StatusFromString parses a courier status from its wire representation.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidError("courier status: " + s)
}

// Validate checks that the status is one of the defined values.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidError("courier status")
	}
	return nil
}

// IsAssignable reports whether a courier in this status may take deliveries.
func (s Status) IsAssignable() bool {
	return s == StatusActive
}

// String returns the wire representation of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
