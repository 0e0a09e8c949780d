// Package orderfeed adapts the upstream source tables to the OrderFeed port.
// Each source system lands its records in its own table with its own column
// conventions; the feeds surface them as RawOrder batches and leave all
// reconciliation to the normalizer.
package orderfeed

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/services"
)

// GormOrderFeed reads one upstream source table into RawOrder records.
type GormOrderFeed struct {
	db    *gorm.DB
	name  string
	query string
	scan  func(rows *sql.Rows) (services.RawOrder, error)
}

// Name identifies the feed in logs and ingestion reports.
func (f *GormOrderFeed) Name() string {
	return f.name
}

// Fetch returns the feed's current records in source order.
func (f *GormOrderFeed) Fetch(ctx context.Context) ([]services.RawOrder, error) {
	rows, err := f.db.WithContext(ctx).Raw(f.query).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]services.RawOrder, 0)
	for rows.Next() {
		record, scanErr := f.scan(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		records = append(records, record)
	}

	return records, rows.Err()
}

// NewRegularOrderFeed reads the regular-orders source table. The table
// predates typed records: it carries no order_type column and a single
// customer_name field.
func NewRegularOrderFeed(db *gorm.DB) *GormOrderFeed {
	return &GormOrderFeed{
		db:   db,
		name: "regular_orders",
		query: `
			SELECT id, order_number, customer_name, shipping_address, total_amount,
			       created_at, delivery_status, scheduled_delivery_date, delivery_time_slot
			FROM regular_orders
			ORDER BY created_at, id
		`,
		scan: scanRegularOrder,
	}
}

// NewCustomOrderFeed reads the custom-orders source table, which splits the
// customer name into first and last name columns.
func NewCustomOrderFeed(db *gorm.DB) *GormOrderFeed {
	return &GormOrderFeed{
		db:   db,
		name: "custom_orders",
		query: `
			SELECT id, order_number, first_name, last_name, shipping_address,
			       total_amount, created_at, delivery_status
			FROM custom_orders
			ORDER BY created_at, id
		`,
		scan: scanCustomOrder,
	}
}

// NewCustomDesignFeed reads the custom-designs source table. Design records
// may lack an order number entirely; the normalizer falls back to the id.
func NewCustomDesignFeed(db *gorm.DB) *GormOrderFeed {
	return &GormOrderFeed{
		db:   db,
		name: "custom_designs",
		query: `
			SELECT id, order_number, customer_name, shipping_address, price, created_at
			FROM custom_designs
			ORDER BY created_at, id
		`,
		scan: scanCustomDesign,
	}
}

func scanRegularOrder(rows *sql.Rows) (services.RawOrder, error) {
	var (
		id            string
		orderNumber   sql.NullString
		customerName  sql.NullString
		address       sql.NullString
		totalAmount   sql.NullFloat64
		createdAt     sql.NullTime
		status        sql.NullString
		scheduledDate sql.NullTime
		timeSlot      sql.NullString
	)
	if err := rows.Scan(&id, &orderNumber, &customerName, &address, &totalAmount,
		&createdAt, &status, &scheduledDate, &timeSlot); err != nil {
		return services.RawOrder{}, err
	}

	raw := services.RawOrder{
		ID:              id,
		OrderNumber:     orderNumber.String,
		OrderType:       order.TypeRegular.String(),
		CustomerName:    customerName.String,
		ShippingAddress: address.String,
		TotalAmount:     totalAmount.Float64,
		CreatedAt:       createdAt.Time,
		DeliveryStatus:  status.String,
		TimeSlot:        timeSlot.String,
	}
	if scheduledDate.Valid {
		raw.ScheduledDeliveryDate = scheduledDate.Time.UTC().Format(time.DateOnly)
	}
	return raw, nil
}

func scanCustomOrder(rows *sql.Rows) (services.RawOrder, error) {
	var (
		id          string
		orderNumber sql.NullString
		firstName   sql.NullString
		lastName    sql.NullString
		address     sql.NullString
		totalAmount sql.NullFloat64
		createdAt   sql.NullTime
		status      sql.NullString
	)
	if err := rows.Scan(&id, &orderNumber, &firstName, &lastName, &address,
		&totalAmount, &createdAt, &status); err != nil {
		return services.RawOrder{}, err
	}

	return services.RawOrder{
		ID:              id,
		OrderNumber:     orderNumber.String,
		OrderType:       order.TypeCustomOrder.String(),
		FirstName:       firstName.String,
		LastName:        lastName.String,
		ShippingAddress: address.String,
		TotalAmount:     totalAmount.Float64,
		CreatedAt:       createdAt.Time,
		DeliveryStatus:  status.String,
	}, nil
}

func scanCustomDesign(rows *sql.Rows) (services.RawOrder, error) {
	var (
		id           string
		orderNumber  sql.NullString
		customerName sql.NullString
		address      sql.NullString
		price        sql.NullFloat64
		createdAt    sql.NullTime
	)
	if err := rows.Scan(&id, &orderNumber, &customerName, &address, &price, &createdAt); err != nil {
		return services.RawOrder{}, err
	}

	return services.RawOrder{
		ID:              id,
		OrderNumber:     orderNumber.String,
		OrderType:       order.TypeCustomDesign.String(),
		CustomerName:    customerName.String,
		ShippingAddress: address.String,
		TotalAmount:     price.Float64,
		CreatedAt:       createdAt.Time,
	}, nil
}
