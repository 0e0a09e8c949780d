// Package services contains stateless domain services that operate across
// aggregates.
//
// The three services form the read side of the dispatch engine:
//
//   - OrderNormalizer merges heterogeneous order feeds into canonical order
//     aggregates, collapsing duplicates and reporting malformed records
//     without aborting the batch.
//   - LaxityScorer computes an urgency score per order using a
//     least-laxity-first priority function: remaining delivery window minus
//     estimated processing complexity.
//   - PriorityQueueView composes the scorer with a deterministic three-level
//     sort to produce the dashboard's order list.
//
// All services are pure functions over explicit inputs: recomputation is the
// caller's responsibility, and repeated invocations over unchanged data
// always produce identical results.
package services
