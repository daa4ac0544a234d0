package ingest

import (
	"context"

	"secdash/internal/domain/catalog"
	"secdash/internal/errs"
)

type TableCount struct {
	Table string
	Rows  int64
}

// TableCounts reports the current row count of every dashboard table,
// batch-loaded tables first, then users.
func (s *Service) TableCounts(ctx context.Context) ([]TableCount, error) {
	if err := s.guard(ctx); err != nil {
		return nil, err
	}

	descriptors := append(catalog.Batch(), catalog.Users)
	counts := make([]TableCount, 0, len(descriptors))
	for _, desc := range descriptors {
		rows, err := s.batch.CountRows(ctx, desc.Table)
		if err != nil {
			return nil, errs.Wrap(err, "count table rows")
		}
		counts = append(counts, TableCount{Table: desc.Table, Rows: rows})
	}
	return counts, nil
}
