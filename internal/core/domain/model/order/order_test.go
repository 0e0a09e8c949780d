package order_test

import (
	"testing"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(),
		"ORD-100",
		order.TypeRegular,
		"Maria Santos",
		"12 Ayala Ave, Makati",
		2500,
		time.Date(2026, time.August, 20, 10, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return o
}

func scheduledTestOrder(t *testing.T) *order.Order {
	t.Helper()
	o := newTestOrder(t)
	courier, err := order.NewCourierInfo("Juan Cruz", "+63 917 555 0101")
	require.NoError(t, err)
	date, err := kernel.DateFromString("2026-09-01")
	require.NoError(t, err)
	require.NoError(t, o.Schedule(date, order.SlotMorning, &courier))
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("should create pending order", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.Validate())
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, "ORD-100", o.OrderNumber())
		assert.Equal(t, "ORD-100|regular", o.DedupKey())
		assert.Nil(t, o.ScheduledDate())
		assert.Nil(t, o.Courier())
		assert.Nil(t, o.DeliveredAt())
	})

	t.Run("should reject missing order number", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), "", order.TypeRegular,
			"Maria Santos", "Makati", 100, time.Now())

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject invalid order type", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), "ORD-100", order.TypeUnknown,
			"Maria Santos", "Makati", 100, time.Now())

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject negative amount", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), "ORD-100", order.TypeRegular,
			"Maria Santos", "Makati", -1, time.Now())

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject zero created time", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), "ORD-100", order.TypeRegular,
			"Maria Santos", "Makati", 100, time.Time{})

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should allow empty shipping address", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), "ORD-101", order.TypeCustomDesign,
			"Maria Santos", "", 100, time.Now())

		require.NoError(t, err)
		assert.Empty(t, o.ShippingAddress())
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var o order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_Schedule(t *testing.T) {
	date, err := kernel.DateFromString("2026-09-01")
	require.NoError(t, err)

	t.Run("pending order can be scheduled", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.Schedule(date, order.SlotAfternoon, nil))

		assert.Equal(t, order.Scheduled, o.Status())
		require.NotNil(t, o.ScheduledDate())
		assert.True(t, o.ScheduledDate().IsEqual(date))
		assert.Equal(t, order.SlotAfternoon, o.TimeSlot())
		assert.Nil(t, o.Courier(), "courier assignment is optional")
	})

	t.Run("scheduling again fails without mutating state", func(t *testing.T) {
		o := scheduledTestOrder(t)
		other := date.AddDays(3)

		err := o.Schedule(other, order.SlotUnspecified, nil)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrIllegalTransition)
		assert.Equal(t, order.Scheduled, o.Status())
		assert.True(t, o.ScheduledDate().IsEqual(date), "original date must survive a duplicate submit")
	})

	t.Run("delayed order can be rescheduled", func(t *testing.T) {
		o := scheduledTestOrder(t)
		require.NoError(t, o.Delay())
		newDate := date.AddDays(2)

		require.NoError(t, o.Schedule(newDate, order.SlotEvening, nil))

		assert.Equal(t, order.Scheduled, o.Status())
		assert.True(t, o.ScheduledDate().IsEqual(newDate))
	})

	t.Run("should reject zero-value date", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.Schedule(kernel.Date{}, order.SlotUnspecified, nil)

		require.Error(t, err)
		assert.Equal(t, order.Pending, o.Status())
	})
}

func TestOrder_AssignCourier(t *testing.T) {
	courier, err := order.NewCourierInfo("Juan Cruz", "+63 917 555 0101")
	require.NoError(t, err)

	t.Run("scheduled order accepts late assignment", func(t *testing.T) {
		o := newTestOrder(t)
		date, dErr := kernel.DateFromString("2026-09-01")
		require.NoError(t, dErr)
		require.NoError(t, o.Schedule(date, order.SlotUnspecified, nil))

		require.NoError(t, o.AssignCourier(courier))

		require.NotNil(t, o.Courier())
		assert.Equal(t, "Juan Cruz", o.Courier().Name())
	})

	t.Run("pending order rejects assignment", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.AssignCourier(courier)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidState)
	})
}

func TestOrder_Delay(t *testing.T) {
	t.Run("delay clears schedule and courier", func(t *testing.T) {
		o := scheduledTestOrder(t)

		require.NoError(t, o.Delay())

		assert.Equal(t, order.Delayed, o.Status())
		assert.Nil(t, o.ScheduledDate())
		assert.Equal(t, order.SlotUnspecified, o.TimeSlot())
		assert.Nil(t, o.Courier())
		assert.Nil(t, o.RetainedCourier())
	})

	t.Run("delayed order cannot be delivered directly", func(t *testing.T) {
		o := scheduledTestOrder(t)
		require.NoError(t, o.Delay())

		err := o.Complete(time.Now())

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrIllegalTransition)
		assert.Equal(t, order.Delayed, o.Status())
		assert.Nil(t, o.DeliveredAt())
	})
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("cancel clears schedule but retains courier for audit", func(t *testing.T) {
		o := scheduledTestOrder(t)

		require.NoError(t, o.Cancel())

		assert.Equal(t, order.Cancelled, o.Status())
		assert.Nil(t, o.ScheduledDate())
		assert.Nil(t, o.Courier(), "cancelled orders must not expose an active courier")
		require.NotNil(t, o.RetainedCourier())
		assert.Equal(t, "Juan Cruz", o.RetainedCourier().Name())
	})

	t.Run("pending order cannot be cancelled", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.Cancel()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrIllegalTransition)
	})
}

func TestOrder_Restore(t *testing.T) {
	t.Run("restore returns cancelled order to pending with a clean slate", func(t *testing.T) {
		o := scheduledTestOrder(t)
		require.NoError(t, o.Cancel())

		require.NoError(t, o.Restore())

		assert.Equal(t, order.Pending, o.Status())
		assert.Nil(t, o.ScheduledDate())
		assert.Nil(t, o.Courier())
		assert.Nil(t, o.RetainedCourier(), "restore clears residual schedule data")
		assert.True(t, o.Status().IsSchedulable(), "restored order re-enters admission from scratch")
	})

	t.Run("only cancelled orders can be restored", func(t *testing.T) {
		o := scheduledTestOrder(t)

		err := o.Restore()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrIllegalTransition)
	})
}

func TestOrder_Complete(t *testing.T) {
	t.Run("completion stamps delivered time and is terminal", func(t *testing.T) {
		o := scheduledTestOrder(t)
		require.NoError(t, o.StartTransit())
		now := time.Date(2026, time.September, 1, 15, 30, 0, 0, time.UTC)

		require.NoError(t, o.Complete(now))

		assert.Equal(t, order.Delivered, o.Status())
		require.NotNil(t, o.DeliveredAt())
		assert.Equal(t, now, *o.DeliveredAt())

		require.Error(t, o.Cancel(), "delivered orders cannot move to cancelled")
		require.Error(t, o.Delay())
	})
}

func TestRestoreOrder(t *testing.T) {
	id := kernel.NewUUID()
	createdAt := time.Date(2026, time.August, 20, 10, 0, 0, 0, time.UTC)
	date, err := kernel.DateFromString("2026-09-01")
	require.NoError(t, err)

	t.Run("should restore scheduled order", func(t *testing.T) {
		courier, cErr := order.NewCourierInfo("Juan Cruz", "")
		require.NoError(t, cErr)

		o, rErr := order.RestoreOrder(id, "ORD-100", order.TypeCustomOrder, "Maria Santos",
			"Quezon City", 1500, createdAt, order.Scheduled, &date, order.SlotMorning, &courier, nil)

		require.NoError(t, rErr)
		assert.Equal(t, order.Scheduled, o.Status())
		assert.True(t, o.ScheduledDate().IsEqual(date))
	})

	t.Run("should reject scheduled status without a date", func(t *testing.T) {
		_, rErr := order.RestoreOrder(id, "ORD-100", order.TypeRegular, "Maria Santos",
			"Makati", 1500, createdAt, order.Scheduled, nil, order.SlotUnspecified, nil, nil)

		require.Error(t, rErr)
		require.ErrorIs(t, rErr, errs.ErrValueIsRequired)
	})

	t.Run("should reject pending status carrying a date", func(t *testing.T) {
		_, rErr := order.RestoreOrder(id, "ORD-100", order.TypeRegular, "Maria Santos",
			"Makati", 1500, createdAt, order.Pending, &date, order.SlotUnspecified, nil, nil)

		require.Error(t, rErr)
		require.ErrorIs(t, rErr, errs.ErrValueIsInvalid)
	})
}

func TestCourierInfo(t *testing.T) {
	t.Run("requires a name", func(t *testing.T) {
		_, err := order.NewCourierInfo("", "+63 917 555 0101")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("phone is optional", func(t *testing.T) {
		c, err := order.NewCourierInfo("Juan Cruz", "")

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.Empty(t, c.Phone())
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var c order.CourierInfo
		require.Error(t, c.Validate())
	})
}
