package state

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"secdash/internal/errs"
	"secdash/internal/infrastructure/persistence/sqlite/model"
	"secdash/internal/ports"
)

// SQLiteStateStore keeps operational key/value state in the meta table.
type SQLiteStateStore struct {
	db *gorm.DB
}

var _ ports.StateStore = (*SQLiteStateStore)(nil)

func NewSQLiteStateStore(db *gorm.DB) *SQLiteStateStore {
	return &SQLiteStateStore{db: db}
}

func (s *SQLiteStateStore) Get(ctx context.Context, key string) (string, bool, error) {
	if ctx == nil {
		return "", false, errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return "", false, errs.Wrap(err, "check context")
	}

	trimmedKey := strings.TrimSpace(key)
	if trimmedKey == "" {
		return "", false, errors.New("key is required")
	}

	var row model.MetaEntry
	if err := s.db.WithContext(ctx).Where("key = ?", trimmedKey).Take(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, errs.Wrap(err, "query state by key")
	}

	return row.Value, true, nil
}

func (s *SQLiteStateStore) Set(ctx context.Context, key string, value string) error {
	if ctx == nil {
		return errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return errs.Wrap(err, "check context")
	}

	trimmedKey := strings.TrimSpace(key)
	if trimmedKey == "" {
		return errors.New("key is required")
	}

	row := model.MetaEntry{
		Key:       trimmedKey,
		Value:     value,
		UpdatedAt: time.Now().UTC().Format(time.RFC3339Nano),
	}

	if err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "key"}},
		DoUpdates: clause.Assignments(map[string]any{
			"value":      row.Value,
			"updated_at": row.UpdatedAt,
		}),
	}).Create(&row).Error; err != nil {
		return errs.Wrap(err, "upsert state key")
	}

	return nil
}

func (s *SQLiteStateStore) Delete(ctx context.Context, key string) error {
	if ctx == nil {
		return errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return errs.Wrap(err, "check context")
	}

	trimmedKey := strings.TrimSpace(key)
	if trimmedKey == "" {
		return errors.New("key is required")
	}

	if err := s.db.WithContext(ctx).Where("key = ?", trimmedKey).Delete(&model.MetaEntry{}).Error; err != nil {
		return errs.Wrap(err, "delete state key")
	}
	return nil
}
