package ports

import (
	"context"

	"secdash/internal/domain/catalog"
	"secdash/internal/domain/ingest"
)

// BatchRepository is the bulk side of the store used by CSV loads.
// AppendRows issues plain inserts in row order; dedup decisions belong to
// the caller.
type BatchRepository interface {
	ExistingKeys(ctx context.Context, table string, keyColumn string) ([]string, error)
	AppendRows(ctx context.Context, desc catalog.Descriptor, rows []ingest.Row) (int64, error)
	CountRows(ctx context.Context, table string) (int64, error)
}
