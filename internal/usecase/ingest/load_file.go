package ingest

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"secdash/internal/bootstrap/logging"
	"secdash/internal/domain/catalog"
	domainingest "secdash/internal/domain/ingest"
	"secdash/internal/errs"
)

// LoadFile reconciles one CSV file into one table. A missing file is a
// logged no-op, not an error. For keyed tables the key read, the dedup
// decision, and the appends share one transaction.
func (s *Service) LoadFile(ctx context.Context, desc catalog.Descriptor, path string) (Outcome, error) {
	if err := s.guard(ctx); err != nil {
		return Outcome{}, err
	}

	outcome := Outcome{
		Table: desc.Table,
		File:  filepath.Base(path),
	}
	logCtx := logging.WithAttrs(ctx,
		slog.String("table", desc.Table),
		slog.String("file", outcome.File),
	)

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			logging.Warn(logCtx, "skipping batch file, not found")
			outcome.FileMissing = true
			return outcome, nil
		}
		return outcome, errs.Wrapf(err, "stat %s", path)
	}

	rows, err := readRows(path)
	if err != nil {
		return outcome, err
	}

	if !desc.Keyed() {
		return s.loadUnkeyed(logCtx, desc, rows, outcome)
	}
	return s.loadKeyed(logCtx, desc, rows, outcome)
}

func (s *Service) loadKeyed(ctx context.Context, desc catalog.Descriptor, rows []domainingest.Row, outcome Outcome) (Outcome, error) {
	var plan domainingest.Plan
	if err := s.uow.WithTx(ctx, func(txCtx context.Context) error {
		keys, err := s.batch.ExistingKeys(txCtx, desc.Table, desc.KeyColumn)
		if err != nil {
			return err
		}

		plan = domainingest.Reconcile(rows, desc.KeyColumn, domainingest.KeySet(keys))
		if len(plan.Insert) == 0 {
			return nil
		}

		inserted, err := s.batch.AppendRows(txCtx, desc, plan.Insert)
		if err != nil {
			return err
		}
		outcome.Inserted = int(inserted)
		return nil
	}); err != nil {
		return outcome, err
	}

	outcome.SkippedExisting = plan.SkippedExisting
	outcome.DroppedNullKey = plan.DroppedNullKey
	outcome.DuplicateInBatch = plan.DuplicateInBatch

	if plan.DroppedNullKey > 0 {
		logging.Warn(ctx, "dropped rows with missing key",
			slog.String("key_column", desc.KeyColumn),
			slog.Int("rows", plan.DroppedNullKey),
		)
	}
	if plan.DuplicateInBatch > 0 {
		logging.Warn(ctx, "ignored duplicate keys inside file",
			slog.String("key_column", desc.KeyColumn),
			slog.Int("rows", plan.DuplicateInBatch),
		)
	}
	if plan.SkippedExisting > 0 {
		logging.Warn(ctx, "skipped rows already in store",
			slog.String("key_column", desc.KeyColumn),
			slog.Int("rows", plan.SkippedExisting),
		)
	}
	if outcome.Inserted > 0 {
		logging.Info(ctx, "loaded new rows", slog.Int("rows", outcome.Inserted))
	} else {
		logging.Info(ctx, "no new rows to load")
	}
	return outcome, nil
}

// loadUnkeyed is the degraded path for tables without a configured natural
// key: every row is appended as-is, duplicates included.
func (s *Service) loadUnkeyed(ctx context.Context, desc catalog.Descriptor, rows []domainingest.Row, outcome Outcome) (Outcome, error) {
	logging.Warn(ctx, "no natural key configured; appending all rows without dedup")
	outcome.Unkeyed = true

	if err := s.uow.WithTx(ctx, func(txCtx context.Context) error {
		inserted, err := s.batch.AppendRows(txCtx, desc, rows)
		if err != nil {
			return err
		}
		outcome.Inserted = int(inserted)
		return nil
	}); err != nil {
		return outcome, err
	}

	logging.Info(ctx, "loaded rows without key check", slog.Int("rows", outcome.Inserted))
	return outcome, nil
}
