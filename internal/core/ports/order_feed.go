package ports

import (
	"context"

	"dispatch/internal/core/domain/services"
)

// OrderFeed supplies raw order records from an upstream source. Each source
// system (regular orders, custom orders, custom designs) is one feed; the
// ingestion use case concatenates them and hands the batch to the
// normalizer.
type OrderFeed interface {
	// Name identifies the feed in logs and ingestion reports.
	Name() string

	// Fetch returns the feed's current records. The records come back in
	// source order; deduplication across feeds is the normalizer's job,
	// not the feed's.
	Fetch(ctx context.Context) ([]services.RawOrder, error)
}
