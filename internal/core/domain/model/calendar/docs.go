// Package calendar models daily delivery capacity and availability.
//
// A calendar day has no persistent state beyond the operator blackout flag:
// its booking count is recomputed from non-cancelled orders scheduled on it,
// and its availability is derived on read. Blackouts block new bookings but
// never cancel existing ones.
package calendar
