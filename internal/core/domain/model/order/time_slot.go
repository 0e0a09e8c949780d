package order

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// TimeSlot is the optional part of day a delivery is promised for.
// Capacity is enforced per day, not per slot; the slot is informational for
// the courier and the customer.
type TimeSlot int

const (
	// SlotUnspecified means no particular part of day was requested.
	SlotUnspecified TimeSlot = iota

	// SlotMorning covers deliveries before noon.
	SlotMorning

	// SlotAfternoon covers deliveries between noon and early evening.
	SlotAfternoon

	// SlotEvening covers deliveries after early evening.
	SlotEvening
)

func getTimeSlotStrings() map[TimeSlot]string {
	return map[TimeSlot]string{
		SlotUnspecified: "",
		SlotMorning:     "morning",
		SlotAfternoon:   "afternoon",
		SlotEvening:     "evening",
	}
}

// TimeSlotFromString parses the wire representation of a time slot.
// The empty string parses to SlotUnspecified.
func TimeSlotFromString(s string) (TimeSlot, error) {
	for slot, str := range getTimeSlotStrings() {
		if str == s {
			return slot, nil
		}
	}
	return SlotUnspecified, errs.NewValueIsInvalidErrorWithCause(
		"timeSlot", fmt.Errorf("%q is not a valid time slot", s))
}

// Validate checks if the TimeSlot value is one of the known slots.
func (t TimeSlot) Validate() error {
	if _, ok := getTimeSlotStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"timeSlot", fmt.Errorf("%d is not a valid time slot", int(t)))
	}
	return nil
}

// String returns the wire representation of the time slot.
// SlotUnspecified renders as the empty string.
func (t TimeSlot) String() string {
	if s, ok := getTimeSlotStrings()[t]; ok {
		return s
	}
	return ""
}
