// Package kernel contains shared value objects used across the domain model.
//
// The kernel provides the building blocks that aggregates are composed from:
//
//   - UUID: validated unique identifier wrapping github.com/google/uuid
//   - Date: immutable calendar-day value normalized to midnight UTC
//
// All kernel types are immutable value objects: the zero value is invalid,
// instances are created through constructor functions, and Validate reports
// improperly constructed values. This keeps invariants such as "a scheduled
// delivery date is always a whole calendar day" enforced at the type level
// rather than scattered through the services that use them.
package kernel
