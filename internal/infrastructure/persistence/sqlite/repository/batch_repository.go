package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"secdash/internal/domain/catalog"
	"secdash/internal/domain/ingest"
	"secdash/internal/errs"
	"secdash/internal/ports"
)

type BatchRepository struct {
	db *gorm.DB
}

func NewBatchRepository(db *gorm.DB) *BatchRepository {
	return &BatchRepository{db: db}
}

func (r *BatchRepository) dbFromContext(ctx context.Context) (*gorm.DB, error) {
	if ctx == nil {
		return nil, errors.New("context is required")
	}

	tx := ports.TxFromContext(ctx)
	if tx == nil {
		return r.db.WithContext(ctx), nil
	}

	gormTx, ok := tx.(*gorm.DB)
	if !ok || gormTx == nil {
		return nil, fmt.Errorf("invalid tx in context: %T", tx)
	}
	return gormTx.WithContext(ctx), nil
}

func (r *BatchRepository) ExistingKeys(ctx context.Context, table string, keyColumn string) ([]string, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return nil, err
	}

	var keys []string
	if err := db.Table(table).
		Where(keyColumn + " IS NOT NULL").
		Pluck(keyColumn, &keys).Error; err != nil {
		return nil, errs.Wrapf(err, "query %s keys", table)
	}
	return keys, nil
}

// AppendRows inserts rows one by one in the order given. Rows are plain
// inserts; any key decision happened before this call.
func (r *BatchRepository) AppendRows(ctx context.Context, desc catalog.Descriptor, rows []ingest.Row) (int64, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return 0, err
	}

	var inserted int64
	for _, row := range rows {
		values := rowValues(desc, row)
		if len(values) == 0 {
			continue
		}

		result := db.Table(desc.Table).Create(values)
		if result.Error != nil {
			return inserted, errs.Wrapf(result.Error, "insert into %s", desc.Table)
		}
		inserted += result.RowsAffected
	}
	return inserted, nil
}

func (r *BatchRepository) CountRows(ctx context.Context, table string) (int64, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return 0, err
	}

	var count int64
	if err := db.Table(table).Count(&count).Error; err != nil {
		return 0, errs.Wrapf(err, "count %s rows", table)
	}
	return count, nil
}

func rowValues(desc catalog.Descriptor, row ingest.Row) map[string]any {
	values := make(map[string]any, len(row))

	if len(desc.Columns) == 0 {
		for name, raw := range row {
			values[name] = coerceValue(catalog.Text, raw)
		}
		return values
	}

	for _, col := range desc.Columns {
		raw, ok := row[col.Name]
		if !ok {
			continue
		}
		values[col.Name] = coerceValue(col.Kind, raw)
	}
	return values
}

// coerceValue maps empty cells to NULL and numeric kinds to Go numbers.
// Unparseable numerics keep the raw text; SQLite column affinity decides
// from there.
func coerceValue(kind catalog.Kind, raw string) any {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	switch kind {
	case catalog.Real:
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			return f
		}
	case catalog.Integer:
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
			return n
		}
	}
	return raw
}
