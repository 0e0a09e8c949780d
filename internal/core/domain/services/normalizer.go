package services

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"
)

// UnknownCustomerName is substituted when no feed carries a customer name.
const UnknownCustomerName = "Unknown Customer"

// RawOrder is the wire shape of an order record as reported by an upstream
// feed. Feeds disagree on field naming and completeness: some carry a single
// customer_name, others split first/last name, some omit the delivery status
// entirely. The normalizer maps all of them onto the canonical order
// aggregate.
type RawOrder struct {
	ID                    string
	OrderNumber           string
	OrderType             string
	CustomerName          string
	FirstName             string
	LastName              string
	ShippingAddress       string
	TotalAmount           float64
	CreatedAt             time.Time
	DeliveryStatus        string
	ScheduledDeliveryDate string
	TimeSlot              string
	CourierName           string
	CourierPhone          string
}

// DuplicateEvent records one collapsed duplicate: a later feed record whose
// dedup key was already taken by an earlier one. Duplicates are discarded,
// never merged field-by-field, to keep normalization deterministic and
// auditable.
type DuplicateEvent struct {
	Key   string
	Index int
}

// InvalidRecord reports one input record that could not be normalized, with
// the position it held in the batch. One bad record never blocks the rest.
type InvalidRecord struct {
	Index int
	Err   error
}

// SuspectRecord flags probable test or demo data spotted at ingestion time.
// Flagged orders stay in the output; downstream scheduling logic never
// special-cases them.
type SuspectRecord struct {
	Key    string
	Reason string
}

// NormalizeResult carries the canonical orders plus the observability
// reports produced while normalizing a batch.
type NormalizeResult struct {
	Orders     []*order.Order
	Duplicates []DuplicateEvent
	Invalid    []InvalidRecord
	Suspects   []SuspectRecord
}

// DuplicateCount returns the number of records dropped as duplicates.
func (r NormalizeResult) DuplicateCount() int {
	return len(r.Duplicates)
}

// OrderNormalizer merges order records from multiple upstream feeds into one
// canonical list with exactly one order per (orderNumber, orderType) pair.
//
// Deduplication keeps the first-seen record for a key and logs every
// collapse. Normalizing the normalizer's own output is a no-op.
type OrderNormalizer struct {
	logger *slog.Logger
	clock  func() time.Time
}

// NewOrderNormalizer creates a normalizer logging collapses and rejected
// records through the given logger.
func NewOrderNormalizer(logger *slog.Logger) OrderNormalizer {
	return OrderNormalizer{
		logger: logger.With("component", "order_normalizer"),
		clock:  time.Now,
	}
}

// NewOrderNormalizerWithClock creates a normalizer with an injectable clock,
// used by tests and anywhere deterministic timestamps matter.
func NewOrderNormalizerWithClock(logger *slog.Logger, clock func() time.Time) OrderNormalizer {
	n := NewOrderNormalizer(logger)
	n.clock = clock
	return n
}

// Normalize maps a batch of raw feed records onto canonical order
// aggregates, in input order.
//
// Per-record behavior:
//   - a record lacking both an order number and an id has nothing to key on:
//     it is excluded and counted in the invalid report
//   - the first occurrence of a dedup key is retained; every later
//     occurrence is dropped and recorded as a duplicate event
//   - customer names are mapped from customer_name, then first+last name,
//     then the "Unknown Customer" fallback
//   - negative amounts are clamped to zero, missing created timestamps
//     default to the normalizer clock
//   - customer names matching test/demo patterns are flagged, not dropped
func (n OrderNormalizer) Normalize(rawOrders []RawOrder) NormalizeResult {
	result := NormalizeResult{
		Orders: make([]*order.Order, 0, len(rawOrders)),
	}
	seen := make(map[string]struct{}, len(rawOrders))

	for i, raw := range rawOrders {
		o, err := n.normalizeRecord(raw)
		if err != nil {
			result.Invalid = append(result.Invalid, InvalidRecord{Index: i, Err: err})
			n.logger.Warn("order record rejected", "index", i, "error", err)
			continue
		}

		key := o.DedupKey()
		if _, dup := seen[key]; dup {
			result.Duplicates = append(result.Duplicates, DuplicateEvent{Key: key, Index: i})
			n.logger.Info("duplicate order record collapsed", "key", key, "index", i)
			continue
		}
		seen[key] = struct{}{}

		if reason, suspect := suspectTestData(o.CustomerName()); suspect {
			result.Suspects = append(result.Suspects, SuspectRecord{Key: key, Reason: reason})
			n.logger.Warn("order flagged as probable test data", "key", key, "reason", reason)
		}

		result.Orders = append(result.Orders, o)
	}

	return result
}

func (n OrderNormalizer) normalizeRecord(raw RawOrder) (*order.Order, error) {
	if raw.OrderNumber == "" && raw.ID == "" {
		return nil, errs.NewValueIsRequiredError("orderNumber or id")
	}

	orderNumber := raw.OrderNumber
	if orderNumber == "" {
		orderNumber = raw.ID
	}

	orderType, err := normalizeOrderType(raw.OrderType)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(raw.DeliveryStatus)
	if err != nil {
		return nil, err
	}

	slot, err := order.TimeSlotFromString(raw.TimeSlot)
	if err != nil {
		return nil, err
	}

	id := resolveID(raw.ID, orderNumber, orderType)

	createdAt := raw.CreatedAt
	if createdAt.IsZero() {
		createdAt = n.clock()
	}

	amount := raw.TotalAmount
	if amount < 0 {
		amount = 0
	}

	var scheduledDate *kernel.Date
	if status.HoldsScheduleDate() {
		if raw.ScheduledDeliveryDate == "" {
			return nil, errs.NewValueIsRequiredErrorWithCause("scheduledDeliveryDate",
				fmt.Errorf("status %s requires a delivery date", status))
		}
		date, dateErr := kernel.DateFromString(raw.ScheduledDeliveryDate)
		if dateErr != nil {
			return nil, dateErr
		}
		scheduledDate = &date
	}

	var courier *order.CourierInfo
	if raw.CourierName != "" {
		info, courierErr := order.NewCourierInfo(raw.CourierName, raw.CourierPhone)
		if courierErr != nil {
			return nil, courierErr
		}
		courier = &info
	}

	return order.RestoreOrder(
		id,
		orderNumber,
		orderType,
		customerName(raw),
		raw.ShippingAddress,
		amount,
		createdAt,
		status,
		scheduledDate,
		slot,
		courier,
		nil,
	)
}

// normalizeOrderType parses the feed's order type, defaulting an absent type
// to regular: the regular-orders feed predates typed records and omits the
// field.
func normalizeOrderType(s string) (order.Type, error) {
	if s == "" {
		return order.TypeRegular, nil
	}
	return order.TypeFromString(s)
}

// resolveID keeps upstream UUIDs and otherwise derives a deterministic one
// from the dedup key, so the same logical order maps to the same identifier
// on every ingestion run.
func resolveID(rawID, orderNumber string, orderType order.Type) kernel.UUID {
	if rawID != "" {
		if id, err := kernel.UUIDFromString(rawID); err == nil {
			return id
		}
	}
	return kernel.DeterministicUUID(order.MakeDedupKey(orderNumber, orderType))
}

func customerName(raw RawOrder) string {
	if raw.CustomerName != "" {
		return raw.CustomerName
	}
	full := strings.TrimSpace(strings.TrimSpace(raw.FirstName) + " " + strings.TrimSpace(raw.LastName))
	if full != "" {
		return full
	}
	return UnknownCustomerName
}

func suspectTestData(name string) (string, bool) {
	lowered := strings.ToLower(name)
	for _, pattern := range []string{"test", "demo", "sample"} {
		if strings.Contains(lowered, pattern) {
			return fmt.Sprintf("customer name contains %q", pattern), true
		}
	}
	return "", false
}
