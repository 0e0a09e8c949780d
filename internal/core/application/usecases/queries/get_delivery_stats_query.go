package queries

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var ErrGetDeliveryStatsQueryIsNotConstructed = errors.New(
	"GetDeliveryStatsQuery must be created via NewGetDeliveryStatsQuery constructor",
)

// GetDeliveryStatsQuery retrieves the per-status order counts shown in the
// dashboard header. This is a parameterless query.
type GetDeliveryStatsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetDeliveryStatsQuery creates a delivery stats query.
func NewGetDeliveryStatsQuery() GetDeliveryStatsQuery {
	return GetDeliveryStatsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetDeliveryStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryStatsQueryIsNotConstructed)
}

// GetDeliveryStatsQueryResponse carries order counts per lifecycle status.
type GetDeliveryStatsQueryResponse struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Scheduled int `json:"scheduled"`
	InTransit int `json:"inTransit"`
	Delivered int `json:"delivered"`
	Delayed   int `json:"delayed"`
	Cancelled int `json:"cancelled"`
}
