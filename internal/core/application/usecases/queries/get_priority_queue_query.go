// Package queries contains read operations in the CQRS architecture.
// Query handlers read the database directly and return response models
// shaped for the dashboard, bypassing the aggregate write model.
package queries

import (
	"errors"
	"strings"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/pkg/guard"
)

var ErrGetPriorityQueueQueryIsNotConstructed = errors.New(
	"GetPriorityQueueQuery must be created via NewGetPriorityQueueQuery constructor",
)

// GetPriorityQueueQuery retrieves the undelivered orders sorted by urgency
// for the dispatch dashboard. The result can be narrowed by a free-text
// search over order number and customer name, and by a status filter.
//
// Example:
//
//	query, err := NewGetPriorityQueueQuery("santos", "pending")
//	if err != nil {
//	    return fmt.Errorf("invalid queue request: %w", err)
//	}
//	rows, err := handler.Handle(ctx, query)
type GetPriorityQueueQuery struct { //nolint:recvcheck //using for validation
	search       string
	statusFilter *order.Status

	guard guard.ConstructorGuard
}

// NewGetPriorityQueueQuery creates a priority queue query. Both filters are
// optional: an empty search matches everything and an empty status string
// disables status filtering.
func NewGetPriorityQueueQuery(search string, statusFilter string) (GetPriorityQueueQuery, error) {
	query := GetPriorityQueueQuery{
		search: strings.TrimSpace(search),
		guard:  guard.NewConstructorGuard(),
	}

	if statusFilter != "" {
		status, err := order.StatusFromString(statusFilter)
		if err != nil {
			return GetPriorityQueueQuery{}, err
		}
		query.statusFilter = &status
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPriorityQueueQuery) Validate() error {
	return q.guard.Validate(ErrGetPriorityQueueQueryIsNotConstructed)
}

// Search returns the free-text filter, empty when unset.
func (q GetPriorityQueueQuery) Search() string {
	return q.search
}

// StatusFilter returns the status filter, nil when unset.
func (q GetPriorityQueueQuery) StatusFilter() *order.Status {
	return q.statusFilter
}

// GetPriorityQueueQueryResponse is one row of the dashboard's priority
// queue: the order's display fields plus the full laxity breakdown that
// produced its position.
type GetPriorityQueueQueryResponse struct {
	OrderID         string                `json:"orderId"`
	OrderNumber     string                `json:"orderNumber"`
	OrderType       string                `json:"orderType"`
	CustomerName    string                `json:"customerName"`
	ShippingAddress string                `json:"shippingAddress"`
	TotalAmount     float64               `json:"totalAmount"`
	CreatedAt       string                `json:"createdAt"`
	Status          string                `json:"status"`
	ScheduledDate   *string               `json:"scheduledDeliveryDate,omitempty"`
	TimeSlot        string                `json:"timeSlot,omitempty"`
	CourierName     string                `json:"courierName,omitempty"`
	CourierPhone    string                `json:"courierPhone,omitempty"`
	Priority        services.LaxityResult `json:"priority"`
}
