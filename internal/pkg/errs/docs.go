// Package errs provides standardized error types for the dispatch engine.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes two families of error types:
//
// Value errors raised while constructing domain objects:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For when a value is outside its allowed bounds
//   - ObjectNotFoundError: For when an object cannot be found
//
// Admission and lifecycle errors raised by the scheduling core:
//   - CapacityExceededError: a delivery day has no remaining booking slots
//   - InvalidStateError: an operation is not valid for the order's current status
//   - IllegalTransitionError: a status transition outside the transition table
//   - CourierUnavailableError: a requested courier is missing or inactive
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrCapacityExceeded)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// This standardized approach lets the calling HTTP layer map error kinds onto
// distinct response codes and messages without string-matching on error text.
package errs
