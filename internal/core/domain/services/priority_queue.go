package services

import (
	"sort"
	"time"

	"dispatch/internal/core/domain/model/order"
)

// ScoredOrder pairs an order with its recomputed laxity breakdown for
// display on the delivery dashboard.
type ScoredOrder struct {
	Order  *order.Order
	Laxity LaxityResult
}

// Predicate filters orders before scoring. A nil Predicate admits everything.
type Predicate func(*order.Order) bool

// PriorityQueueView produces the sorted, searchable order list consumed by
// the dashboard. Normalization is assumed already applied upstream; this
// stage only scores and sorts.
type PriorityQueueView struct {
	scorer LaxityScorer
}

// NewPriorityQueueView creates a view over the given scorer.
func NewPriorityQueueView(scorer LaxityScorer) PriorityQueueView {
	return PriorityQueueView{scorer: scorer}
}

// View filters, scores, and sorts orders into urgency order.
//
// The sort is a stable total order: ascending laxity first (most urgent on
// top), then descending total amount, then ascending creation time. The
// three-level tie-break keeps repeated renders of the same data from
// reordering rows, which would undermine trust in the priority signal.
func (v PriorityQueueView) View(orders []*order.Order, filter Predicate, now time.Time) []ScoredOrder {
	scored := make([]ScoredOrder, 0, len(orders))
	for _, o := range orders {
		if filter != nil && !filter(o) {
			continue
		}
		scored = append(scored, ScoredOrder{Order: o, Laxity: v.scorer.Score(o, now)})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		a, b := scored[i], scored[j]
		if a.Laxity.Laxity != b.Laxity.Laxity {
			return a.Laxity.Laxity < b.Laxity.Laxity
		}
		if a.Order.TotalAmount() != b.Order.TotalAmount() {
			return a.Order.TotalAmount() > b.Order.TotalAmount()
		}
		return a.Order.CreatedAt().Before(b.Order.CreatedAt())
	})

	return scored
}
