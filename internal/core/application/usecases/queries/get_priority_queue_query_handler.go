package queries

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/services"
)

// GetPriorityQueueQueryHandler produces the urgency-sorted order list for
// the dispatch dashboard.
//
// The handler restores full aggregates rather than scanning into response
// rows directly: urgency is recomputed from order fields at read time, never
// persisted, so the score can never go stale against the data it derives
// from.
type GetPriorityQueueQueryHandler struct {
	db     *gorm.DB
	view   services.PriorityQueueView
	scorer services.LaxityScorer
	clock  func() time.Time
}

// NewGetPriorityQueueQueryHandler creates a handler over the given scorer.
func NewGetPriorityQueueQueryHandler(db *gorm.DB, scorer services.LaxityScorer) GetPriorityQueueQueryHandler {
	return GetPriorityQueueQueryHandler{
		db:     db,
		view:   services.NewPriorityQueueView(scorer),
		scorer: scorer,
		clock:  time.Now,
	}
}

// WithClock replaces the handler's clock. Used by tests.
func (h GetPriorityQueueQueryHandler) WithClock(clock func() time.Time) GetPriorityQueueQueryHandler {
	h.clock = clock
	return h
}

// Handle executes the query: loads every undelivered order, applies the
// search and status filters, and returns rows sorted most urgent first.
func (h GetPriorityQueueQueryHandler) Handle(
	ctx context.Context,
	query GetPriorityQueueQuery,
) ([]GetPriorityQueueQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.loadUndelivered(ctx)
	if err != nil {
		return nil, err
	}

	scored := h.view.View(orders, buildFilter(query), h.clock())

	responses := make([]GetPriorityQueueQueryResponse, 0, len(scored))
	for _, s := range scored {
		responses = append(responses, toQueueResponse(s))
	}
	return responses, nil
}

func (h GetPriorityQueueQueryHandler) loadUndelivered(ctx context.Context) ([]*order.Order, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_number,
			order_type,
			customer_name,
			shipping_address,
			total_amount,
			created_at,
			status,
			scheduled_date,
			time_slot,
			courier_name,
			courier_phone
		FROM orders
		WHERE status NOT IN (?, ?)
		ORDER BY id
	`, order.Delivered.String(), order.Cancelled.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]*order.Order, 0)
	for rows.Next() {
		var (
			id              uuid.UUID
			orderNumber     string
			orderType       string
			customerName    string
			shippingAddress string
			totalAmount     float64
			createdAt       time.Time
			status          string
			scheduledDate   sql.NullTime
			timeSlot        string
			courierName     sql.NullString
			courierPhone    sql.NullString
		)

		if err = rows.Scan(
			&id,
			&orderNumber,
			&orderType,
			&customerName,
			&shippingAddress,
			&totalAmount,
			&createdAt,
			&status,
			&scheduledDate,
			&timeSlot,
			&courierName,
			&courierPhone,
		); err != nil {
			return nil, err
		}

		aggregate, restoreErr := restoreQueueOrder(
			id, orderNumber, orderType, customerName, shippingAddress,
			totalAmount, createdAt, status, scheduledDate, timeSlot,
			courierName.String, courierPhone.String,
		)
		if restoreErr != nil {
			return nil, restoreErr
		}
		orders = append(orders, aggregate)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return orders, nil
}

func restoreQueueOrder(
	id uuid.UUID,
	orderNumber, orderType, customerName, shippingAddress string,
	totalAmount float64,
	createdAt time.Time,
	status string,
	scheduledDate sql.NullTime,
	timeSlot, courierName, courierPhone string,
) (*order.Order, error) {
	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return nil, err
	}
	parsedType, err := order.TypeFromString(orderType)
	if err != nil {
		return nil, err
	}
	parsedStatus, err := order.StatusFromString(status)
	if err != nil {
		return nil, err
	}
	parsedSlot, err := order.TimeSlotFromString(timeSlot)
	if err != nil {
		return nil, err
	}

	var date *kernel.Date
	if scheduledDate.Valid {
		d := kernel.NewDate(scheduledDate.Time)
		date = &d
	}

	var courier *order.CourierInfo
	if courierName != "" {
		info, infoErr := order.NewCourierInfo(courierName, courierPhone)
		if infoErr != nil {
			return nil, infoErr
		}
		courier = &info
	}

	return order.RestoreOrder(orderID, orderNumber, parsedType, customerName, shippingAddress,
		totalAmount, createdAt, parsedStatus, date, parsedSlot, courier, nil)
}

// buildFilter compiles the query's search and status filters into a single
// predicate applied before scoring.
func buildFilter(query GetPriorityQueueQuery) services.Predicate {
	search := strings.ToLower(query.Search())
	statusFilter := query.StatusFilter()
	if search == "" && statusFilter == nil {
		return nil
	}

	return func(o *order.Order) bool {
		if statusFilter != nil && o.Status() != *statusFilter {
			return false
		}
		if search == "" {
			return true
		}
		return strings.Contains(strings.ToLower(o.OrderNumber()), search) ||
			strings.Contains(strings.ToLower(o.CustomerName()), search)
	}
}

func toQueueResponse(s services.ScoredOrder) GetPriorityQueueQueryResponse {
	o := s.Order
	resp := GetPriorityQueueQueryResponse{
		OrderID:         o.ID().String(),
		OrderNumber:     o.OrderNumber(),
		OrderType:       o.OrderType().String(),
		CustomerName:    o.CustomerName(),
		ShippingAddress: o.ShippingAddress(),
		TotalAmount:     o.TotalAmount(),
		CreatedAt:       o.CreatedAt().UTC().Format(time.RFC3339),
		Status:          o.Status().String(),
		Priority:        s.Laxity,
	}
	if o.ScheduledDate() != nil {
		date := o.ScheduledDate().String()
		resp.ScheduledDate = &date
	}
	if o.TimeSlot() != order.SlotUnspecified {
		resp.TimeSlot = o.TimeSlot().String()
	}
	if o.Courier() != nil {
		resp.CourierName = o.Courier().Name()
		resp.CourierPhone = o.Courier().Phone()
	}
	return resp
}
