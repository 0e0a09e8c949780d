package services

import (
	"fmt"
	"strings"
	"time"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"
)

// DefaultDeliveryWindowDays is the number of days an order is expected to be
// delivered within, counted from its creation.
const DefaultDeliveryWindowDays = 7

const (
	amountComplexityDivisor = 1000.0
	amountComplexityCap     = 10.0
	amountComplexityWeight  = 0.5
)

// LaxityResult carries the urgency score together with every intermediate
// component that produced it. The dashboard must be able to show why an
// order is urgent, not only that it is.
type LaxityResult struct {
	DaysSinceOrder    int     `json:"daysSinceOrder"`
	RemainingDays     int     `json:"remainingDays"`
	AmountComplexity  float64 `json:"amountComplexity"`
	TypeComplexity    float64 `json:"typeComplexity"`
	AddressComplexity float64 `json:"addressComplexity"`
	ProcessingTime    float64 `json:"processingTime"`
	Laxity            float64 `json:"laxity"`
	UrgencyScore      float64 `json:"urgencyScore"`
}

// LaxityScorer computes delivery urgency using a least-laxity-first priority
// function adapted from real-time scheduling: laxity is the remaining
// delivery window minus the estimated processing time, and lower laxity
// means higher urgency.
//
// The scorer is a pure function of the order and the provided clock value.
// Laxity is never persisted as authoritative: it is recomputed on every read
// so it can never go stale against the fields it derives from.
type LaxityScorer struct {
	windowDays int
}

// NewLaxityScorer creates a scorer with the given delivery window in days.
// The window must be positive.
func NewLaxityScorer(windowDays int) (LaxityScorer, error) {
	if windowDays <= 0 {
		return LaxityScorer{}, errs.NewValueIsInvalidErrorWithCause("deliveryWindowDays",
			fmt.Errorf("%d is not greater than 0", windowDays))
	}
	return LaxityScorer{windowDays: windowDays}, nil
}

// WindowDays returns the configured delivery window.
func (s LaxityScorer) WindowDays() int {
	return s.windowDays
}

// Score computes the laxity of an order at the given instant.
//
// Components:
//   - daysSinceOrder: whole days since the order was created, floored at 0
//   - remainingDays: delivery window minus age, floored at 0
//   - amountComplexity: totalAmount/1000 capped at 10, so monetary outliers
//     cannot dominate; negative amounts score as 0 and never reduce urgency
//     below the type and address floor
//   - typeComplexity: custom_design 3, custom_order 2, regular 1
//   - addressComplexity: destination zone tier 1-3; a missing or
//     unrecognized address scores the most complex tier as a conservative
//     default
//
// laxity = remainingDays - (type + address + 0.5*amount); urgencyScore is
// its negation, so higher urgency sorts naturally descending.
func (s LaxityScorer) Score(o *order.Order, now time.Time) LaxityResult {
	daysSince := int(now.Sub(o.CreatedAt()).Hours() / 24)
	if daysSince < 0 {
		daysSince = 0
	}

	remaining := s.windowDays - daysSince
	if remaining < 0 {
		remaining = 0
	}

	amount := o.TotalAmount()
	if amount < 0 {
		amount = 0
	}
	amountComplexity := amount / amountComplexityDivisor
	if amountComplexity > amountComplexityCap {
		amountComplexity = amountComplexityCap
	}

	typeComplexity := typeComplexityOf(o.OrderType())
	addressComplexity := addressComplexityOf(o.ShippingAddress())

	processing := typeComplexity + addressComplexity + amountComplexityWeight*amountComplexity
	laxity := float64(remaining) - processing

	return LaxityResult{
		DaysSinceOrder:    daysSince,
		RemainingDays:     remaining,
		AmountComplexity:  amountComplexity,
		TypeComplexity:    typeComplexity,
		AddressComplexity: addressComplexity,
		ProcessingTime:    processing,
		Laxity:            laxity,
		UrgencyScore:      -laxity,
	}
}

func typeComplexityOf(t order.Type) float64 {
	switch t {
	case order.TypeCustomDesign:
		return 3
	case order.TypeCustomOrder:
		return 2
	default:
		return 1
	}
}

// Destination zone tiers, matched as case-insensitive substrings of the
// shipping address. Inner metro zones are cheapest to reach; anything
// unrecognized is treated as the most complex tier - a conservative default,
// not a guess of true distance.
func nearZones() []string { return []string{"makati", "bgc", "manila"} }
func midZones() []string  { return []string{"quezon", "pasig", "mandaluyong"} }

func addressComplexityOf(address string) float64 {
	lowered := strings.ToLower(address)
	for _, zone := range nearZones() {
		if strings.Contains(lowered, zone) {
			return 1
		}
	}
	for _, zone := range midZones() {
		if strings.Contains(lowered, zone) {
			return 2
		}
	}
	return 3
}
