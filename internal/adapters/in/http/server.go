// Package http implements the dashboard API on top of echo. It adapts HTTP
// requests to commands and queries and maps the structured error kinds onto
// status codes; no business rule lives here.
package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/generated/servers"
	"dispatch/internal/pkg/errs"
)

// Server implements the generated ServerInterface, coordinating between HTTP
// handlers and application use cases.
type Server struct {
	scheduleHandler     commands.ScheduleDeliveryCommandHandler
	updateStatusHandler commands.UpdateDeliveryStatusCommandHandler
	toggleHandler       commands.ToggleBlackoutCommandHandler
	ingestHandler       commands.IngestOrdersCommandHandler

	queueHandler    queries.GetPriorityQueueQueryHandler
	calendarHandler queries.GetCalendarQueryHandler
	statsHandler    queries.GetDeliveryStatsQueryHandler
}

// NewServer creates the HTTP server with the required command and query handlers.
func NewServer(
	scheduleHandler commands.ScheduleDeliveryCommandHandler,
	updateStatusHandler commands.UpdateDeliveryStatusCommandHandler,
	toggleHandler commands.ToggleBlackoutCommandHandler,
	ingestHandler commands.IngestOrdersCommandHandler,
	queueHandler queries.GetPriorityQueueQueryHandler,
	calendarHandler queries.GetCalendarQueryHandler,
	statsHandler queries.GetDeliveryStatsQueryHandler,
) *Server {
	return &Server{
		scheduleHandler:     scheduleHandler,
		updateStatusHandler: updateStatusHandler,
		toggleHandler:       toggleHandler,
		ingestHandler:       ingestHandler,
		queueHandler:        queueHandler,
		calendarHandler:     calendarHandler,
		statsHandler:        statsHandler,
	}
}

// GetPriorityQueue handles GET /api/delivery/queue.
func (s *Server) GetPriorityQueue(ctx echo.Context, params servers.GetPriorityQueueParams) error {
	search := ""
	if params.Search != nil {
		search = *params.Search
	}
	statusFilter := ""
	if params.Status != nil {
		statusFilter = *params.Status
	}

	query, err := queries.NewGetPriorityQueueQuery(search, statusFilter)
	if err != nil {
		return writeError(ctx, err)
	}

	rows, err := s.queueHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]servers.QueueEntry, 0, len(rows))
	for _, row := range rows {
		entry, mapErr := toQueueEntry(row)
		if mapErr != nil {
			return writeError(ctx, mapErr)
		}
		response = append(response, entry)
	}

	return ctx.JSON(http.StatusOK, response)
}

// ScheduleDelivery handles POST /api/delivery/orders/{orderId}/schedule.
func (s *Server) ScheduleDelivery(ctx echo.Context, orderId openapi_types.UUID) error {
	var request servers.ScheduleRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return writeError(ctx, err)
	}

	slot := order.SlotUnspecified
	if request.TimeSlot != nil {
		if slot, err = order.TimeSlotFromString(*request.TimeSlot); err != nil {
			return writeError(ctx, err)
		}
	}

	var courierID *kernel.UUID
	if request.CourierId != nil {
		id, courierErr := kernel.UUIDFromBytes((*request.CourierId)[:])
		if courierErr != nil {
			return writeError(ctx, courierErr)
		}
		courierID = &id
	}

	cmd, err := commands.NewScheduleDeliveryCommand(
		orderID, kernel.NewDate(request.DeliveryDate.Time), slot, courierID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.scheduleHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateDeliveryStatus handles POST /api/delivery/orders/{orderId}/status.
func (s *Server) UpdateDeliveryStatus(ctx echo.Context, orderId openapi_types.UUID) error {
	var request servers.StatusUpdateRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return writeError(ctx, err)
	}

	// The empty wire string parses to pending for feed rows that never
	// carried a status. API callers must name the target explicitly.
	if request.Status == "" {
		return writeError(ctx, errs.NewValueIsRequiredError("status"))
	}

	target, err := order.StatusFromString(request.Status)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewUpdateDeliveryStatusCommand(orderID, target)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.updateStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ToggleBlackout handles POST /api/delivery/blackouts.
func (s *Server) ToggleBlackout(ctx echo.Context) error {
	var request servers.BlackoutRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	reason := ""
	if request.Reason != nil {
		reason = *request.Reason
	}

	var slots []order.TimeSlot
	if request.Slots != nil {
		for _, name := range *request.Slots {
			slot, slotErr := order.TimeSlotFromString(name)
			if slotErr != nil {
				return writeError(ctx, slotErr)
			}
			slots = append(slots, slot)
		}
	}

	cmd, err := commands.NewToggleBlackoutCommand(
		kernel.NewDate(request.Date.Time), request.Enabled, reason, slots)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.toggleHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetCalendar handles GET /api/delivery/calendar.
func (s *Server) GetCalendar(ctx echo.Context, params servers.GetCalendarParams) error {
	query, err := queries.NewGetCalendarQuery(params.Year, params.Month)
	if err != nil {
		return writeError(ctx, err)
	}

	days, err := s.calendarHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]servers.CalendarDay, 0, len(days))
	for _, day := range days {
		entry := servers.CalendarDay{
			AvailableSlots: day.AvailableSlots,
			BookingCount:   day.BookingCount,
			Date:           day.Date,
			IsBlackout:     day.IsBlackout,
			MaxPerDay:      day.MaxPerDay,
			Status:         day.Status,
		}
		if day.BlackoutReason != "" {
			reason := day.BlackoutReason
			entry.BlackoutReason = &reason
		}
		response = append(response, entry)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetDeliveryStats handles GET /api/delivery/stats.
func (s *Server) GetDeliveryStats(ctx echo.Context) error {
	stats, err := s.statsHandler.Handle(ctx.Request().Context(), queries.NewGetDeliveryStatsQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.DeliveryStats{
		Cancelled: stats.Cancelled,
		Delayed:   stats.Delayed,
		Delivered: stats.Delivered,
		InTransit: stats.InTransit,
		Pending:   stats.Pending,
		Scheduled: stats.Scheduled,
		Total:     stats.Total,
	})
}

// IngestOrders handles POST /api/delivery/ingest, the manual trigger for the
// periodic ingestion job.
func (s *Server) IngestOrders(ctx echo.Context) error {
	report, err := s.ingestHandler.Handle(ctx.Request().Context(), commands.NewIngestOrdersCommand())
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.IngestReport{
		AlreadyKnown: report.AlreadyKnown,
		Duplicates:   report.Duplicates,
		FeedsFailed:  report.FeedsFailed,
		FeedsQueried: report.FeedsQueried,
		Ingested:     report.Ingested,
		Invalid:      report.Invalid,
		Records:      report.Records,
		Suspects:     report.Suspects,
	})
}

func toQueueEntry(row queries.GetPriorityQueueQueryResponse) (servers.QueueEntry, error) {
	orderID, err := kernel.UUIDFromString(row.OrderID)
	if err != nil {
		return servers.QueueEntry{}, err
	}

	createdAt, err := time.Parse(time.RFC3339, row.CreatedAt)
	if err != nil {
		return servers.QueueEntry{}, errs.NewValueIsInvalidErrorWithCause("createdAt", err)
	}

	entry := servers.QueueEntry{
		CreatedAt:       createdAt,
		CustomerName:    row.CustomerName,
		OrderId:         orderID.Bytes(),
		OrderNumber:     row.OrderNumber,
		OrderType:       row.OrderType,
		ShippingAddress: row.ShippingAddress,
		Status:          row.Status,
		TotalAmount:     row.TotalAmount,
		Priority: servers.PriorityBreakdown{
			AddressComplexity: row.Priority.AddressComplexity,
			AmountComplexity:  row.Priority.AmountComplexity,
			DaysSinceOrder:    row.Priority.DaysSinceOrder,
			Laxity:            row.Priority.Laxity,
			ProcessingTime:    row.Priority.ProcessingTime,
			RemainingDays:     row.Priority.RemainingDays,
			TypeComplexity:    row.Priority.TypeComplexity,
			UrgencyScore:      row.Priority.UrgencyScore,
		},
	}
	entry.ScheduledDate = row.ScheduledDate
	if row.TimeSlot != "" {
		slot := row.TimeSlot
		entry.TimeSlot = &slot
	}
	if row.CourierName != "" {
		name := row.CourierName
		entry.CourierName = &name
	}
	if row.CourierPhone != "" {
		phone := row.CourierPhone
		entry.CourierPhone = &phone
	}
	return entry, nil
}

// writeError maps the structured error kinds onto HTTP status codes.
// Validation kinds are client errors, missing aggregates are 404, and
// admission or lifecycle conflicts are 409.
func writeError(ctx echo.Context, err error) error {
	return ctx.JSON(statusCodeFor(err), servers.Error{
		Code:    statusCodeFor(err),
		Message: err.Error(),
	})
}

func statusCodeFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrCapacityExceeded),
		errors.Is(err, errs.ErrInvalidState),
		errors.Is(err, errs.ErrIllegalTransition),
		errors.Is(err, errs.ErrCourierUnavailable):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
