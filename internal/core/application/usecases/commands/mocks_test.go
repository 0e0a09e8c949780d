package commands_test

import (
	"context"
	"errors"

	"github.com/stretchr/testify/mock"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/calendar"
	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
)

var errStorageFailure = errors.New("storage failure")

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}
func (m *MockOrderRepository) GetByDedupKey(
	ctx context.Context, orderNumber string, orderType order.Type,
) (*order.Order, error) {
	args := m.Called(ctx, orderNumber, orderType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}
func (m *MockOrderRepository) GetAllUndelivered(_ context.Context) ([]*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockOrderRepository) CountScheduledOn(ctx context.Context, date kernel.Date) (int, error) {
	args := m.Called(ctx, date)
	return args.Int(0), args.Error(1)
}
func (m *MockOrderRepository) GetAllScheduledBefore(ctx context.Context, date kernel.Date) ([]*order.Order, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockBlackoutRepository struct{ mock.Mock }

func (m *MockBlackoutRepository) Upsert(ctx context.Context, blackout calendar.Blackout) error {
	args := m.Called(ctx, blackout)
	return args.Error(0)
}
func (m *MockBlackoutRepository) Remove(ctx context.Context, date kernel.Date) error {
	args := m.Called(ctx, date)
	return args.Error(0)
}
func (m *MockBlackoutRepository) Get(ctx context.Context, date kernel.Date) (calendar.Blackout, error) {
	args := m.Called(ctx, date)
	return args.Get(0).(calendar.Blackout), args.Error(1)
}
func (m *MockBlackoutRepository) GetAllBetween(
	_ context.Context, _ kernel.Date, _ kernel.Date,
) ([]calendar.Blackout, error) {
	return nil, errors.New("not implemented in mock")
}

type MockCourierRepository struct{ mock.Mock }

func (m *MockCourierRepository) Add(_ context.Context, _ *courier.Courier) error {
	return errors.New("not implemented in mock")
}
func (m *MockCourierRepository) Update(_ context.Context, _ *courier.Courier) error {
	return errors.New("not implemented in mock")
}
func (m *MockCourierRepository) Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*courier.Courier), args.Error(1)
}
func (m *MockCourierRepository) GetAllActive(_ context.Context) ([]*courier.Courier, error) {
	return nil, errors.New("not implemented in mock")
}

type MockScheduleUoW struct{ mock.Mock }

func (m *MockScheduleUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockScheduleUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockScheduleUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockScheduleUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}
func (m *MockScheduleUoW) BlackoutRepository() ports.BlackoutRepository {
	args := m.Called()
	return args.Get(0).(ports.BlackoutRepository)
}
func (m *MockScheduleUoW) CourierRepository() ports.CourierRepository {
	args := m.Called()
	return args.Get(0).(ports.CourierRepository)
}

type MockScheduleUoWFactory struct{ mock.Mock }

func (m *MockScheduleUoWFactory) Create() commands.ScheduleUoW {
	args := m.Called()
	return args.Get(0).(commands.ScheduleUoW)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockBlackoutUoW struct{ mock.Mock }

func (m *MockBlackoutUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockBlackoutUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockBlackoutUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockBlackoutUoW) BlackoutRepository() ports.BlackoutRepository {
	args := m.Called()
	return args.Get(0).(ports.BlackoutRepository)
}

type MockBlackoutUoWFactory struct{ mock.Mock }

func (m *MockBlackoutUoWFactory) Create() commands.BlackoutUoW {
	args := m.Called()
	return args.Get(0).(commands.BlackoutUoW)
}

type MockNotificationSink struct{ mock.Mock }

func (m *MockNotificationSink) OrderScheduled(ctx context.Context, o *order.Order) {
	m.Called(ctx, o)
}
func (m *MockNotificationSink) OrderStatusChanged(ctx context.Context, o *order.Order, previous order.Status) {
	m.Called(ctx, o, previous)
}

type MockOrderFeed struct {
	mock.Mock
	name string
}

func (m *MockOrderFeed) Name() string { return m.name }
func (m *MockOrderFeed) Fetch(ctx context.Context) ([]services.RawOrder, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]services.RawOrder), args.Error(1)
}
