package ports

import (
	"context"

	"launchdash/domain/launch"
)

// LaunchSource yields the raw launch records the dashboard is built from.
// Implemented by the file loader, the Postgres repository, and the demo kit.
type LaunchSource interface {
	// Load returns every record in source order.
	Load(ctx context.Context) ([]launch.Record, error)
	// Describe names the source for logs and the dataset panel.
	Describe() string
}

// LaunchStore persists launch records for later loading.
type LaunchStore interface {
	LaunchSource
	// ReplaceAll swaps the stored records for records atomically.
	ReplaceAll(ctx context.Context, records []launch.Record) error
	// Count returns the number of stored records.
	Count(ctx context.Context) (int, error)
}
