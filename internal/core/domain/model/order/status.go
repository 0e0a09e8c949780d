package order

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Status represents the delivery lifecycle state of an order.
// It implements a state machine with an explicit transition table so the
// legal lifecycle lives in one place instead of string comparisons scattered
// across callers.
//
// State transitions:
//
//	Pending ──> Scheduled ──> InTransit ──> Delivered (terminal)
//	               │  ▲           │
//	               │  └─ Delayed ◄┤   (reschedule only)
//	               │              │
//	               └── Cancelled ◄┘   (restorable to Pending)
//
// Status is a value object that validates state transitions and provides the
// wire representation used by persistence and the dashboard API.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status: the order is confirmed but not yet
	// admitted to a delivery day.
	Pending

	// Scheduled indicates the order has been admitted to a delivery day.
	Scheduled

	// InTransit indicates the order is out for delivery.
	InTransit

	// Delivered indicates the order reached the customer.
	// This is a terminal state with no further transitions allowed.
	Delivered

	// Delayed indicates a scheduled delivery fell through. The order must be
	// re-admitted through scheduling; it cannot be flipped back directly.
	Delayed

	// Cancelled indicates the delivery was called off. The only way out is a
	// restore back to Pending.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Scheduled: "scheduled",
		InTransit: "in_transit",
		Delivered: "delivered",
		Delayed:   "delayed",
		Cancelled: "cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "pending",
		Scheduled: "scheduled",
		InTransit: "in_transit",
		Delivered: "delivered",
		Delayed:   "delayed",
		Cancelled: "cancelled",
	}
}

// transitionTable returns the allowed target statuses per source status.
// This is the single authority on the delivery lifecycle.
func transitionTable() map[Status][]Status {
	return map[Status][]Status{
		Pending:   {Scheduled},
		Scheduled: {InTransit, Delivered, Delayed, Cancelled},
		InTransit: {Delivered, Delayed, Cancelled},
		Delivered: {},
		Delayed:   {Scheduled},
		Cancelled: {Pending},
	}
}

// StatusFromString parses the wire representation of a status.
// An empty string maps to Pending: upstream feeds omit the delivery status
// for orders that were never admitted.
func StatusFromString(s string) (Status, error) {
	if s == "" {
		return Pending, nil
	}
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"deliveryStatus", fmt.Errorf("%q is not a valid delivery status", s))
}

// Validate checks if the Status value is valid.
// Unknown (0) and any out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%d is not a valid status", int(s)))
	}
	return nil
}

// String returns the wire representation of the status.
// Implements the fmt.Stringer interface and is safe to call on any value,
// including invalid ones ("unknown").
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// CanTransitionTo reports whether the transition table permits moving from
// the current status to target. It performs no side effects.
func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range transitionTable()[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// TransitionTo moves the status to target if the transition table allows it.
//
// Returns:
//   - (target, nil) on a legal transition
//   - (0, *errs.IllegalTransitionError) naming the current and attempted
//     states otherwise; the caller's state is left untouched
//
// The machine never silently no-ops on an illegal request: even a
// "transition" to the current status fails unless the table lists it.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}
	if !s.CanTransitionTo(target) {
		return 0, errs.NewIllegalTransitionError(s.String(), target.String())
	}
	return target, nil
}

// IsSchedulable reports whether an order in this status may be admitted to a
// delivery day. Only Pending orders (first admission) and Delayed orders
// (reschedule path) qualify.
func (s Status) IsSchedulable() bool {
	return s == Pending || s == Delayed
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return len(transitionTable()[s]) == 0 && s.Validate() == nil
}

// HoldsScheduleDate reports whether orders in this status carry a scheduled
// delivery date. The data-model invariant is: scheduledDeliveryDate is set
// if and only if the status is one of these.
func (s Status) HoldsScheduleDate() bool {
	return s == Scheduled || s == InTransit || s == Delivered
}

// CountsTowardCapacity reports whether an order in this status occupies a
// booking slot on its scheduled day. Cancelled orders never count, and
// orders without a date cannot.
func (s Status) CountsTowardCapacity() bool {
	return s.HoldsScheduleDate()
}
