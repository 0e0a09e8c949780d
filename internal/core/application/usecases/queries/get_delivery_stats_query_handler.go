package queries

import (
	"context"

	"gorm.io/gorm"

	"dispatch/internal/core/domain/model/order"
)

// GetDeliveryStatsQueryHandler aggregates order counts per status.
type GetDeliveryStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveryStatsQueryHandler creates a handler for delivery stats.
func NewGetDeliveryStatsQueryHandler(db *gorm.DB) GetDeliveryStatsQueryHandler {
	return GetDeliveryStatsQueryHandler{db: db}
}

// Handle executes the query and returns the status breakdown.
func (h GetDeliveryStatsQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryStatsQuery,
) (GetDeliveryStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDeliveryStatsQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT status, COUNT(*)
		FROM orders
		GROUP BY status
	`).Rows()
	if err != nil {
		return GetDeliveryStatsQueryResponse{}, err
	}
	defer rows.Close()

	var stats GetDeliveryStatsQueryResponse
	for rows.Next() {
		var status string
		var count int
		if err = rows.Scan(&status, &count); err != nil {
			return GetDeliveryStatsQueryResponse{}, err
		}

		stats.Total += count
		switch status {
		case order.Pending.String():
			stats.Pending = count
		case order.Scheduled.String():
			stats.Scheduled = count
		case order.InTransit.String():
			stats.InTransit = count
		case order.Delivered.String():
			stats.Delivered = count
		case order.Delayed.String():
			stats.Delayed = count
		case order.Cancelled.String():
			stats.Cancelled = count
		}
	}

	if err = rows.Err(); err != nil {
		return GetDeliveryStatsQueryResponse{}, err
	}
	return stats, nil
}
