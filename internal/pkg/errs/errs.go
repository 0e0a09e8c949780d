package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the standard error kinds. Use errors.Is against these
// to classify an error without depending on the concrete struct type.
var (
	// ErrObjectNotFound indicates a requested object does not exist.
	ErrObjectNotFound = errors.New("object not found")

	// ErrValueIsInvalid indicates a value failed validation.
	ErrValueIsInvalid = errors.New("value is invalid")

	// ErrValueIsOutOfRange indicates a value is outside its allowed bounds.
	ErrValueIsOutOfRange = errors.New("value is out of range")

	// ErrValueIsRequired indicates a required value is missing.
	ErrValueIsRequired = errors.New("value is required")

	// ErrCapacityExceeded indicates a delivery day has no remaining booking slots.
	ErrCapacityExceeded = errors.New("capacity exceeded")

	// ErrInvalidState indicates an operation is not valid for the object's current state.
	ErrInvalidState = errors.New("invalid state")

	// ErrIllegalTransition indicates a delivery status transition that is not
	// permitted by the transition table.
	ErrIllegalTransition = errors.New("illegal status transition")

	// ErrCourierUnavailable indicates a courier lookup failed or the courier
	// is not in an active state.
	ErrCourierUnavailable = errors.New("courier unavailable")
)

// sanitize flattens multi-line values so error messages stay single-line
// for log pipelines.
func sanitize(v any) string {
	return strings.ReplaceAll(fmt.Sprintf("%v", v), "\n", " ")
}

// ObjectNotFoundError is returned when an object cannot be located by its identifier.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError without an underlying cause.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping an underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError is returned when a value fails validation rules.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError without an underlying cause.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping an underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError is returned when a numeric value is outside its allowed bounds.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError without an underlying cause.
func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError wrapping an underlying cause.
func NewValueIsOutOfRangeErrorWithCause(
	paramName string, value, minValue, maxValue any, cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %s is %s, min value is %v, max value is %v",
		ErrValueIsInvalid, sanitize(e.Value), e.ParamName, e.Min, e.Max)
	if e.Cause != nil {
		msg += fmt.Sprintf(" (cause: %s)", e.Cause)
	}
	return msg
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError is returned when a required value is missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError without an underlying cause.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping an underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// CapacityExceededError is returned when a delivery date cannot accept another
// booking. It carries the current and maximum booking counts so callers can
// surface the exact numbers to an operator choosing another day.
type CapacityExceededError struct {
	Date    string
	Current int
	Max     int
}

// NewCapacityExceededError creates a CapacityExceededError for the given date and counts.
func NewCapacityExceededError(date string, current, maxBookings int) *CapacityExceededError {
	return &CapacityExceededError{Date: date, Current: current, Max: maxBookings}
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("%s: %s has %d of %d deliveries booked",
		ErrCapacityExceeded, e.Date, e.Current, e.Max)
}

func (e *CapacityExceededError) Unwrap() error {
	return ErrCapacityExceeded
}

// InvalidStateError is returned when an operation is attempted against an
// order whose current status does not permit it.
type InvalidStateError struct {
	OrderID   string
	Status    string
	Operation string
}

// NewInvalidStateError creates an InvalidStateError naming the order, its
// current status, and the rejected operation.
func NewInvalidStateError(orderID, status, operation string) *InvalidStateError {
	return &InvalidStateError{OrderID: orderID, Status: status, Operation: operation}
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("%s: order %s is %s, cannot %s",
		ErrInvalidState, e.OrderID, e.Status, e.Operation)
}

func (e *InvalidStateError) Unwrap() error {
	return ErrInvalidState
}

// IllegalTransitionError is returned when a delivery status transition is not
// in the transition table. It always names both the current and the attempted
// status so the caller can render the exact conflict.
type IllegalTransitionError struct {
	From string
	To   string
}

// NewIllegalTransitionError creates an IllegalTransitionError for the given states.
func NewIllegalTransitionError(from, to string) *IllegalTransitionError {
	return &IllegalTransitionError{From: from, To: to}
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrIllegalTransition, e.From, e.To)
}

func (e *IllegalTransitionError) Unwrap() error {
	return ErrIllegalTransition
}

// CourierUnavailableError is returned when an explicitly requested courier
// cannot be used: the lookup failed, the courier does not exist, or the
// courier is not in an active state.
type CourierUnavailableError struct {
	CourierID string
	Reason    string
	Cause     error
}

// NewCourierUnavailableError creates a CourierUnavailableError without an underlying cause.
func NewCourierUnavailableError(courierID, reason string) *CourierUnavailableError {
	return &CourierUnavailableError{CourierID: courierID, Reason: reason}
}

// NewCourierUnavailableErrorWithCause creates a CourierUnavailableError wrapping an underlying cause.
func NewCourierUnavailableErrorWithCause(courierID, reason string, cause error) *CourierUnavailableError {
	return &CourierUnavailableError{CourierID: courierID, Reason: reason, Cause: cause}
}

func (e *CourierUnavailableError) Error() string {
	msg := fmt.Sprintf("%s: %s (%s)", ErrCourierUnavailable, e.CourierID, e.Reason)
	if e.Cause != nil {
		msg += fmt.Sprintf(" (cause: %s)", e.Cause)
	}
	return msg
}

func (e *CourierUnavailableError) Unwrap() error {
	return ErrCourierUnavailable
}
