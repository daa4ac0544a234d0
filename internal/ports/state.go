package ports

import "context"

// StateStore persists small operational facts (last ingest run and the like)
// as key/value pairs. Get reports found=false for an absent key; Set upserts.
type StateStore interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}
