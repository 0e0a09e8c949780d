// Package order contains the delivery order aggregate and its lifecycle rules.
//
// Order is the aggregate root. It is created when an upstream feed reports a
// confirmed order, mutated by the scheduling use case (date and courier
// assignment) and by status transitions, and never deleted: a cancelled order
// can only be restored back to pending.
//
// The delivery lifecycle is modeled by Status, a tagged enum implementing the
// transition table:
//
//	Pending ──> Scheduled ──> InTransit ──> Delivered (terminal)
//	               │  ▲           │
//	               │  └─ Delayed ◄┤   (reschedule only)
//	               │              │
//	               └── Cancelled ◄┘   (restorable to Pending)
//
// Every transition carries its side effects with it: delaying clears the
// scheduled date and courier, cancelling clears the date but retains the
// courier for audit, delivering stamps a completion timestamp. Illegal
// transitions fail with IllegalTransitionError naming both states - the
// machine never silently no-ops, since a swallowed rejection would let the
// dashboard drift away from true order state.
package order
