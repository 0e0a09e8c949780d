// Package orderrepo persists order aggregates with GORM, converting between
// the domain model and the relational orders table.
package orderrepo

import (
	"time"

	"github.com/google/uuid"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

// OrderDTO is the database row for an order aggregate. Status, order type and
// time slot are stored as their wire strings so the table reads naturally in
// ad-hoc queries and survives enum reordering. The (order_number, order_type)
// pair carries a unique index: it is the upstream identity the ingestion
// pipeline deduplicates on, and the database is the last line of defense for
// that invariant.
type OrderDTO struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderNumber     string     `gorm:"index:idx_orders_dedup_key,unique"`
	OrderType       string     `gorm:"index:idx_orders_dedup_key,unique"`
	CustomerName    string
	ShippingAddress string
	TotalAmount     float64
	CreatedAt       time.Time
	Status          string     `gorm:"index"`
	ScheduledDate   *time.Time `gorm:"index"`
	TimeSlot        string
	CourierName     *string
	CourierPhone    *string
	DeliveredAt     *time.Time
}

// TableName overrides GORM's default naming convention.
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order aggregate to its database row. The courier
// columns persist the retained snapshot even for cancelled orders, matching
// the aggregate's audit-trail semantics.
func fromDomain(aggregate *order.Order) OrderDTO {
	dto := OrderDTO{
		ID:              aggregate.ID().Bytes(),
		OrderNumber:     aggregate.OrderNumber(),
		OrderType:       aggregate.OrderType().String(),
		CustomerName:    aggregate.CustomerName(),
		ShippingAddress: aggregate.ShippingAddress(),
		TotalAmount:     aggregate.TotalAmount(),
		CreatedAt:       aggregate.CreatedAt(),
		Status:          aggregate.Status().String(),
		TimeSlot:        aggregate.TimeSlot().String(),
		DeliveredAt:     aggregate.DeliveredAt(),
	}

	if date := aggregate.ScheduledDate(); date != nil {
		day := date.Time()
		dto.ScheduledDate = &day
	}
	if courier := aggregate.RetainedCourier(); courier != nil {
		name := courier.Name()
		phone := courier.Phone()
		dto.CourierName = &name
		dto.CourierPhone = &phone
	}

	return dto
}

// toDomain converts a database row back to an order aggregate via
// RestoreOrder, which re-enforces the schedule-date invariant on load.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderType, err := order.TypeFromString(dto.OrderType)
	if err != nil {
		return nil, err
	}
	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}
	timeSlot, err := order.TimeSlotFromString(dto.TimeSlot)
	if err != nil {
		return nil, err
	}

	var scheduledDate *kernel.Date
	if dto.ScheduledDate != nil {
		day := kernel.NewDate(*dto.ScheduledDate)
		scheduledDate = &day
	}

	var courier *order.CourierInfo
	if dto.CourierName != nil && *dto.CourierName != "" {
		phone := ""
		if dto.CourierPhone != nil {
			phone = *dto.CourierPhone
		}
		info, infoErr := order.NewCourierInfo(*dto.CourierName, phone)
		if infoErr != nil {
			return nil, infoErr
		}
		courier = &info
	}

	return order.RestoreOrder(id, dto.OrderNumber, orderType, dto.CustomerName, dto.ShippingAddress,
		dto.TotalAmount, dto.CreatedAt, status, scheduledDate, timeSlot, courier, dto.DeliveredAt)
}
