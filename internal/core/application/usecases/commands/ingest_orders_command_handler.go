package commands

import (
	"context"
	"errors"
	"log/slog"

	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

// IngestReport summarizes one ingestion pass for logs and operators.
type IngestReport struct {
	FeedsQueried int
	FeedsFailed  int
	Records      int
	Ingested     int
	AlreadyKnown int
	Duplicates   int
	Invalid      int
	Suspects     int
}

// IngestOrdersCommandHandler pulls raw records from every registered feed,
// normalizes them into canonical orders, and stores the ones not seen
// before.
//
// Failure handling is per-source and per-record: a feed that errors is
// logged and skipped without blocking the others, and the normalizer
// already isolates bad records. Orders whose dedup key is already in the
// store are left untouched; once admitted, the store is authoritative and a
// re-ingested feed record must not clobber local lifecycle changes.
type IngestOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	feeds      []ports.OrderFeed
	normalizer services.OrderNormalizer
	logger     *slog.Logger
}

// NewIngestOrdersCommandHandler creates a handler over the given feeds.
func NewIngestOrdersCommandHandler(
	uowFactory OrderUoWFactory,
	feeds []ports.OrderFeed,
	normalizer services.OrderNormalizer,
	logger *slog.Logger,
) IngestOrdersCommandHandler {
	return IngestOrdersCommandHandler{
		uowFactory: uowFactory,
		feeds:      feeds,
		normalizer: normalizer,
		logger:     logger.With("component", "ingest_orders"),
	}
}

// Handle runs one ingestion pass and returns its report.
func (h *IngestOrdersCommandHandler) Handle(ctx context.Context, cmd IngestOrdersCommand) (IngestReport, error) {
	if err := cmd.Validate(); err != nil {
		return IngestReport{}, err
	}

	report := IngestReport{FeedsQueried: len(h.feeds)}

	var raw []services.RawOrder
	for _, feed := range h.feeds {
		records, err := feed.Fetch(ctx)
		if err != nil {
			report.FeedsFailed++
			h.logger.Error("order feed failed, continuing with remaining feeds",
				"feed", feed.Name(), "error", err)
			continue
		}
		h.logger.Info("order feed fetched", "feed", feed.Name(), "records", len(records))
		raw = append(raw, records...)
	}
	report.Records = len(raw)

	result := h.normalizer.Normalize(raw)
	report.Duplicates = result.DuplicateCount()
	report.Invalid = len(result.Invalid)
	report.Suspects = len(result.Suspects)

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return report, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	for _, aggregate := range result.Orders {
		_, err := orderRepo.GetByDedupKey(ctx, aggregate.OrderNumber(), aggregate.OrderType())
		switch {
		case err == nil:
			report.AlreadyKnown++
		case errors.Is(err, errs.ErrObjectNotFound):
			if err = orderRepo.Add(ctx, aggregate); err != nil {
				return report, err
			}
			report.Ingested++
		default:
			return report, err
		}
	}

	if err := uow.Commit(ctx); err != nil {
		return report, err
	}

	h.logger.Info("ingestion pass finished",
		"feeds", report.FeedsQueried,
		"feeds_failed", report.FeedsFailed,
		"records", report.Records,
		"ingested", report.Ingested,
		"already_known", report.AlreadyKnown,
		"duplicates", report.Duplicates,
		"invalid", report.Invalid,
		"suspects", report.Suspects,
	)
	return report, nil
}
