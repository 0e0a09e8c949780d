package commands_test

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

func newIngestHandler(
	factory *MockOrderUoWFactory, feeds []ports.OrderFeed,
) commands.IngestOrdersCommandHandler {
	logger := slog.New(slog.DiscardHandler)
	normalizer := services.NewOrderNormalizerWithClock(logger,
		func() time.Time { return time.Date(2026, 3, 15, 6, 0, 0, 0, time.UTC) })
	return commands.NewIngestOrdersCommandHandler(factory, feeds, normalizer, logger)
}

func notKnown(repo *MockOrderRepository, orderNumber string, orderType order.Type) {
	repo.On("GetByDedupKey", mock.Anything, orderNumber, orderType).
		Return(nil, errs.NewObjectNotFoundError("order", orderNumber)).Once()
}

func TestIngestOrdersCommandHandler_Handle_MergesFeeds(t *testing.T) {
	ctx := t.Context()

	regular := &MockOrderFeed{name: "regular_orders"}
	regular.On("Fetch", ctx).Return([]services.RawOrder{
		{OrderNumber: "ORD-1", CustomerName: "Maria Santos", TotalAmount: 500},
		{OrderNumber: "ORD-2", CustomerName: "Juan Cruz", TotalAmount: 800},
	}, nil).Once()

	custom := &MockOrderFeed{name: "custom_orders"}
	custom.On("Fetch", ctx).Return([]services.RawOrder{
		// same dedup key as the first regular record
		{OrderNumber: "ORD-1", CustomerName: "M. Santos", TotalAmount: 999},
		{OrderNumber: "ORD-3", OrderType: "custom_order", CustomerName: "Ana Reyes"},
	}, nil).Once()

	orderRepo := new(MockOrderRepository)
	notKnown(orderRepo, "ORD-1", order.TypeRegular)
	notKnown(orderRepo, "ORD-2", order.TypeRegular)
	notKnown(orderRepo, "ORD-3", order.TypeCustomOrder)
	orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Times(3)

	uow := new(MockOrderUoW)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newIngestHandler(factory, []ports.OrderFeed{regular, custom})
	report, err := h.Handle(ctx, commands.NewIngestOrdersCommand())

	require.NoError(t, err)
	assert.Equal(t, 2, report.FeedsQueried)
	assert.Zero(t, report.FeedsFailed)
	assert.Equal(t, 4, report.Records)
	assert.Equal(t, 3, report.Ingested)
	assert.Equal(t, 1, report.Duplicates)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestIngestOrdersCommandHandler_Handle_FeedFailureDoesNotBlockOthers(t *testing.T) {
	ctx := t.Context()

	broken := &MockOrderFeed{name: "custom_designs"}
	broken.On("Fetch", ctx).Return(nil, errStorageFailure).Once()

	working := &MockOrderFeed{name: "regular_orders"}
	working.On("Fetch", ctx).Return([]services.RawOrder{
		{OrderNumber: "ORD-5", CustomerName: "Maria Santos"},
	}, nil).Once()

	orderRepo := new(MockOrderRepository)
	notKnown(orderRepo, "ORD-5", order.TypeRegular)
	orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once()

	uow := new(MockOrderUoW)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newIngestHandler(factory, []ports.OrderFeed{broken, working})
	report, err := h.Handle(ctx, commands.NewIngestOrdersCommand())

	require.NoError(t, err)
	assert.Equal(t, 1, report.FeedsFailed)
	assert.Equal(t, 1, report.Ingested)
}

func TestIngestOrdersCommandHandler_Handle_KnownOrdersAreNotClobbered(t *testing.T) {
	ctx := t.Context()

	feed := &MockOrderFeed{name: "regular_orders"}
	feed.On("Fetch", ctx).Return([]services.RawOrder{
		{OrderNumber: "ORD-7", CustomerName: "Maria Santos"},
	}, nil).Once()

	existing, err := order.NewOrder(kernel.DeterministicUUID(order.MakeDedupKey("ORD-7", order.TypeRegular)),
		"ORD-7", order.TypeRegular, "Maria Santos", "", 0, time.Now())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	orderRepo.On("GetByDedupKey", mock.Anything, "ORD-7", order.TypeRegular).Return(existing, nil).Once()

	uow := new(MockOrderUoW)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newIngestHandler(factory, []ports.OrderFeed{feed})
	report, err := h.Handle(ctx, commands.NewIngestOrdersCommand())

	require.NoError(t, err)
	assert.Equal(t, 1, report.AlreadyKnown)
	assert.Zero(t, report.Ingested)
	orderRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestIngestOrdersCommandHandler_Handle_RepeatedRunIsIdempotent(t *testing.T) {
	ctx := t.Context()

	records := []services.RawOrder{
		{OrderNumber: "ORD-8", CustomerName: "Maria Santos"},
	}

	feed := &MockOrderFeed{name: "regular_orders"}
	feed.On("Fetch", ctx).Return(records, nil).Twice()

	var stored *order.Order
	orderRepo := new(MockOrderRepository)
	notKnown(orderRepo, "ORD-8", order.TypeRegular)
	orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).
		Run(func(args mock.Arguments) { stored = args.Get(1).(*order.Order) }).
		Return(nil).Once()

	uow := new(MockOrderUoW)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("Begin", ctx).Return(nil).Twice()
	uow.On("Commit", ctx).Return(nil).Twice()
	uow.On("Rollback", ctx).Return(nil).Twice()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Twice()

	h := newIngestHandler(factory, []ports.OrderFeed{feed})

	first, err := h.Handle(ctx, commands.NewIngestOrdersCommand())
	require.NoError(t, err)
	assert.Equal(t, 1, first.Ingested)

	// the second run finds the order stored by the first
	require.NotNil(t, stored)
	orderRepo.On("GetByDedupKey", mock.Anything, "ORD-8", order.TypeRegular).Return(stored, nil).Once()

	second, err := h.Handle(ctx, commands.NewIngestOrdersCommand())
	require.NoError(t, err)
	assert.Zero(t, second.Ingested)
	assert.Equal(t, 1, second.AlreadyKnown)
}
