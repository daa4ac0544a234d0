package ingest

import (
	"context"
	"errors"
	"fmt"
	"time"

	"secdash/internal/errs"
	"secdash/internal/ports"
)

const (
	stateLastRunID      = "ingest:last_run_id"
	stateLastRunAt      = "ingest:last_run_at"
	stateLastRunSummary = "ingest:last_summary"
)

// Outcome describes what one file load did to one table. SkippedExisting
// counts only keys that were already in the store; dropped and in-file
// duplicate rows are reported on their own and never enter either total.
type Outcome struct {
	Table            string
	File             string
	Inserted         int
	SkippedExisting  int
	DroppedNullKey   int
	DuplicateInBatch int
	Unkeyed          bool
	FileMissing      bool
}

type Summary struct {
	RunID           string
	Inserted        int
	SkippedExisting int
	Outcomes        []Outcome
}

func (s Summary) String() string {
	return fmt.Sprintf("CSV load summary: inserted=%d, skipped(existing)=%d", s.Inserted, s.SkippedExisting)
}

// Service drives CSV batch loads against the store.
type Service struct {
	batch   ports.BatchRepository
	uow     ports.UnitOfWork
	state   ports.StateStore
	dataDir string
	now     func() time.Time
}

func NewService(batch ports.BatchRepository, uow ports.UnitOfWork, state ports.StateStore, dataDir string) *Service {
	return &Service{
		batch:   batch,
		uow:     uow,
		state:   state,
		dataDir: dataDir,
		now:     time.Now,
	}
}

func (s *Service) guard(ctx context.Context) error {
	if ctx == nil {
		return errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return errs.Wrap(err, "check context")
	}
	if s.batch == nil {
		return errors.New("batch repository is required")
	}
	if s.uow == nil {
		return errors.New("unit of work is required")
	}
	return nil
}

func (s *Service) setStateBestEffort(ctx context.Context, key string, value string) {
	if s.state == nil {
		return
	}
	_ = s.state.Set(ctx, key, value)
}
