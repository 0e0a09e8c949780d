// Package courier contains the courier roster aggregate.
//
// A courier is the person a scheduled delivery is handed to. The roster
// tracks identity, contact details, and standing; only active couriers may
// take new assignments. Orders snapshot courier contact details at
// assignment time rather than referencing the roster, so suspending or
// deactivating a courier never mutates already-scheduled deliveries.
package courier
