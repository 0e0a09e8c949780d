package order

import (
	"errors"
	"fmt"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
)

// MakeDedupKey builds the identity key that collapses duplicate records
// arriving from different upstream feeds. Two records with the same order
// number and order type are the same order regardless of source.
func MakeDedupKey(orderNumber string, orderType Type) string {
	return orderNumber + "|" + orderType.String()
}

// Order represents a delivery order in the system. It is the aggregate root
// that manages the delivery lifecycle from admission through completion.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and a non-empty order number
//   - Exactly one order exists per (orderNumber, orderType) pair after
//     normalization; the pair is exposed as DedupKey
//   - Total amount is never negative
//   - scheduledDeliveryDate is set if and only if the status is Scheduled,
//     InTransit, or Delivered
//   - Status transitions follow the transition table in Status
//   - Can only be created through NewOrder or RestoreOrder
//
// The struct uses private fields to ensure encapsulation and maintains its
// invariants through validated methods.
type Order struct {
	id              kernel.UUID
	orderNumber     string
	orderType       Type
	customerName    string
	shippingAddress string
	totalAmount     float64
	createdAt       time.Time

	status        Status
	scheduledDate *kernel.Date
	timeSlot      TimeSlot
	courier       *CourierInfo
	deliveredAt   *time.Time

	isConstructed bool
}

// NewOrder creates a new Order in Pending status with validation. This is the
// entry path for orders arriving from upstream feeds after normalization.
//
// Parameters:
//   - id: unique identifier, stable across feed merges
//   - orderNumber: human-facing identifier; with orderType it forms the dedup key
//   - orderType: regular, custom_order, or custom_design
//   - customerName: display name; the normalizer substitutes a fallback when
//     the feeds carry none
//   - shippingAddress: may be empty; the scorer treats a missing address as
//     the most complex destination zone
//   - totalAmount: order value, must not be negative
//   - createdAt: when the upstream order was placed, must not be zero
func NewOrder(
	id kernel.UUID,
	orderNumber string,
	orderType Type,
	customerName string,
	shippingAddress string,
	totalAmount float64,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setOrderNumber(orderNumber),
		o.setOrderType(orderType),
		o.setCustomerName(customerName),
		o.setTotalAmount(totalAmount),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	o.shippingAddress = shippingAddress
	return o, nil
}

// RestoreOrder reconstructs an Order from persistence, including its current
// status, schedule and courier assignment. It enforces the schedule-date
// invariant so corrupt rows cannot re-enter the domain:
// scheduledDate must be present exactly when the status holds one.
func RestoreOrder(
	id kernel.UUID,
	orderNumber string,
	orderType Type,
	customerName string,
	shippingAddress string,
	totalAmount float64,
	createdAt time.Time,
	status Status,
	scheduledDate *kernel.Date,
	timeSlot TimeSlot,
	courier *CourierInfo,
	deliveredAt *time.Time,
) (*Order, error) {
	o, err := NewOrder(id, orderNumber, orderType, customerName, shippingAddress, totalAmount, createdAt)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	if err = timeSlot.Validate(); err != nil {
		return nil, err
	}
	if courier != nil {
		if err = courier.Validate(); err != nil {
			return nil, err
		}
	}

	if status.HoldsScheduleDate() && scheduledDate == nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("scheduledDeliveryDate",
			fmt.Errorf("status %s requires a scheduled delivery date", status))
	}
	if !status.HoldsScheduleDate() && scheduledDate != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("scheduledDeliveryDate",
			fmt.Errorf("status %s must not carry a scheduled delivery date", status))
	}
	if scheduledDate != nil {
		if err = scheduledDate.Validate(); err != nil {
			return nil, err
		}
	}

	o.status = status
	o.scheduledDate = scheduledDate
	o.timeSlot = timeSlot
	o.courier = courier
	o.deliveredAt = deliveredAt
	return o, nil
}

// Validate ensures the Order instance was properly constructed through a factory method.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OrderNumber returns the human-facing order identifier.
func (o *Order) OrderNumber() string {
	return o.orderNumber
}

// OrderType returns the order's feed type.
func (o *Order) OrderType() Type {
	return o.orderType
}

// DedupKey returns the identity key used to collapse duplicate feed records.
func (o *Order) DedupKey() string {
	return MakeDedupKey(o.orderNumber, o.orderType)
}

// CustomerName returns the customer's display name.
func (o *Order) CustomerName() string {
	return o.customerName
}

// ShippingAddress returns the delivery destination, possibly empty.
func (o *Order) ShippingAddress() string {
	return o.shippingAddress
}

// TotalAmount returns the monetary value of the order.
func (o *Order) TotalAmount() float64 {
	return o.totalAmount
}

// CreatedAt returns when the upstream order was placed.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Status returns the current delivery status.
func (o *Order) Status() Status {
	return o.status
}

// ScheduledDate returns the admitted delivery day.
// Present exactly when the status is Scheduled, InTransit, or Delivered.
func (o *Order) ScheduledDate() *kernel.Date {
	return o.scheduledDate
}

// TimeSlot returns the promised part of day, SlotUnspecified when none.
func (o *Order) TimeSlot() TimeSlot {
	return o.timeSlot
}

// Courier returns the assigned courier's contact snapshot, or nil when no
// courier is assigned. For cancelled orders it always returns nil: a retained
// assignment exists for audit only and must not be treated as active until
// the order is restored. Use RetainedCourier for audit access.
func (o *Order) Courier() *CourierInfo {
	if o.status == Cancelled {
		return nil
	}
	return o.courier
}

// RetainedCourier returns the courier snapshot regardless of status,
// including the assignment retained on a cancelled order for audit purposes.
func (o *Order) RetainedCourier() *CourierInfo {
	return o.courier
}

// DeliveredAt returns the completion timestamp, nil until delivered.
func (o *Order) DeliveredAt() *time.Time {
	return o.deliveredAt
}

// Schedule admits the order to a delivery day, transitioning it to Scheduled.
// Admission control (capacity, date-in-past, courier activity) is the
// scheduling use case's responsibility; the aggregate enforces only the
// lifecycle rule that Pending and Delayed orders may be scheduled.
//
// The courier may be nil: assignment is optional at admission time.
func (o *Order) Schedule(date kernel.Date, slot TimeSlot, courier *CourierInfo) error {
	if err := date.Validate(); err != nil {
		return err
	}
	if err := slot.Validate(); err != nil {
		return err
	}
	if courier != nil {
		if err := courier.Validate(); err != nil {
			return err
		}
	}

	newStatus, err := o.status.TransitionTo(Scheduled)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.scheduledDate = &date
	o.timeSlot = slot
	o.courier = courier
	return nil
}

// AssignCourier attaches a courier to an order that was scheduled without
// one. Allowed while the order is Scheduled or InTransit.
func (o *Order) AssignCourier(courier CourierInfo) error {
	if err := courier.Validate(); err != nil {
		return err
	}
	if o.status != Scheduled && o.status != InTransit {
		return errs.NewInvalidStateError(o.id.String(), o.status.String(), "assign courier")
	}
	o.courier = &courier
	return nil
}

// StartTransit marks the order as out for delivery.
func (o *Order) StartTransit() error {
	newStatus, err := o.status.TransitionTo(InTransit)
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// Complete marks the order as delivered and stamps the completion time.
// Delivered is terminal: no further transitions are permitted afterwards.
func (o *Order) Complete(now time.Time) error {
	newStatus, err := o.status.TransitionTo(Delivered)
	if err != nil {
		return err
	}
	o.status = newStatus
	completed := now
	o.deliveredAt = &completed
	return nil
}

// Delay records that a scheduled delivery fell through. The scheduled date,
// time slot, and courier are cleared: the order must be re-admitted through
// scheduling, not flipped back with its old date.
func (o *Order) Delay() error {
	newStatus, err := o.status.TransitionTo(Delayed)
	if err != nil {
		return err
	}
	o.status = newStatus
	o.scheduledDate = nil
	o.timeSlot = SlotUnspecified
	o.courier = nil
	return nil
}

// Cancel calls off the delivery. The scheduled date and slot are cleared so
// the order stops occupying capacity; the courier snapshot is retained for
// audit but no longer reported by Courier.
func (o *Order) Cancel() error {
	newStatus, err := o.status.TransitionTo(Cancelled)
	if err != nil {
		return err
	}
	o.status = newStatus
	o.scheduledDate = nil
	o.timeSlot = SlotUnspecified
	return nil
}

// Restore returns a cancelled order to Pending. Any residual schedule data,
// including the courier retained for audit, is cleared: the order re-enters
// the admission pipeline from scratch.
func (o *Order) Restore() error {
	newStatus, err := o.status.TransitionTo(Pending)
	if err != nil {
		return err
	}
	o.status = newStatus
	o.scheduledDate = nil
	o.timeSlot = SlotUnspecified
	o.courier = nil
	o.deliveredAt = nil
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOrderNumber(orderNumber string) error {
	if orderNumber == "" {
		return errs.NewValueIsRequiredError("orderNumber")
	}
	o.orderNumber = orderNumber
	return nil
}

func (o *Order) setOrderType(orderType Type) error {
	if err := orderType.Validate(); err != nil {
		return err
	}
	o.orderType = orderType
	return nil
}

func (o *Order) setCustomerName(customerName string) error {
	if customerName == "" {
		return errs.NewValueIsRequiredError("customerName")
	}
	o.customerName = customerName
	return nil
}

func (o *Order) setTotalAmount(totalAmount float64) error {
	if totalAmount < 0 {
		return errs.NewValueIsInvalidErrorWithCause("totalAmount",
			fmt.Errorf("%.2f is negative", totalAmount))
	}
	o.totalAmount = totalAmount
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	o.createdAt = createdAt
	return nil
}
