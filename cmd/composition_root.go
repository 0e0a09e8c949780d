package cmd

import (
	"log/slog"

	"gorm.io/gorm"

	"dispatch/internal/adapters/out/notify"
	"dispatch/internal/adapters/out/postgres"
	"dispatch/internal/adapters/out/postgres/orderfeed"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/calendar"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/datelock"
)

// CompositionRoot wires adapters into use case handlers. Handlers are
// created per request through the Create* methods; the root itself holds
// only the shared, long-lived pieces.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory

	capacity  calendar.Capacity
	scorer    services.LaxityScorer
	dateLocks *datelock.KeyedMutex
	notifier  ports.NotificationSink
	logger    *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	capacity, err := calendar.NewCapacity(config.MaxDeliveriesPerDay)
	if err != nil {
		return CompositionRoot{}, err
	}

	scorer, err := services.NewLaxityScorer(config.DeliveryWindowDays)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		capacity:   capacity,
		scorer:     scorer,
		dateLocks:  datelock.New(),
		notifier:   notify.NewSlogSink(logger),
		logger:     logger,
	}, nil
}

func (c *CompositionRoot) CreateScheduleDeliveryCommandHandler() commands.ScheduleDeliveryCommandHandler {
	var f commands.ScheduleUoWFactory = FuncScheduleUoWFactory(func() commands.ScheduleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewScheduleDeliveryCommandHandler(f, c.dateLocks, c.capacity, c.notifier)
}

func (c *CompositionRoot) CreateUpdateDeliveryStatusCommandHandler() commands.UpdateDeliveryStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateDeliveryStatusCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateToggleBlackoutCommandHandler() commands.ToggleBlackoutCommandHandler {
	var f commands.BlackoutUoWFactory = FuncBlackoutUoWFactory(func() commands.BlackoutUoW {
		return c.uowFactory.Create()
	})
	return commands.NewToggleBlackoutCommandHandler(f)
}

func (c *CompositionRoot) CreateIngestOrdersCommandHandler() commands.IngestOrdersCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	feeds := []ports.OrderFeed{
		orderfeed.NewRegularOrderFeed(c.gormDB),
		orderfeed.NewCustomOrderFeed(c.gormDB),
		orderfeed.NewCustomDesignFeed(c.gormDB),
	}
	return commands.NewIngestOrdersCommandHandler(
		f, feeds, services.NewOrderNormalizer(c.logger), c.logger)
}

func (c *CompositionRoot) CreateMarkOverdueDelayedCommandHandler() commands.MarkOverdueDelayedCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkOverdueDelayedCommandHandler(f, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateGetPriorityQueueQueryHandler() queries.GetPriorityQueueQueryHandler {
	return queries.NewGetPriorityQueueQueryHandler(c.gormDB, c.scorer)
}

func (c *CompositionRoot) CreateGetCalendarQueryHandler() queries.GetCalendarQueryHandler {
	return queries.NewGetCalendarQueryHandler(c.gormDB, c.capacity)
}

func (c *CompositionRoot) CreateGetDeliveryStatsQueryHandler() queries.GetDeliveryStatsQueryHandler {
	return queries.NewGetDeliveryStatsQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncBlackoutUoWFactory func() commands.BlackoutUoW

func (f FuncBlackoutUoWFactory) Create() commands.BlackoutUoW {
	return f()
}

type FuncScheduleUoWFactory func() commands.ScheduleUoW

func (f FuncScheduleUoWFactory) Create() commands.ScheduleUoW {
	return f()
}
