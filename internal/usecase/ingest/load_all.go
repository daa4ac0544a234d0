package ingest

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"secdash/internal/bootstrap/logging"
	"secdash/internal/domain/catalog"
)

// LoadAll runs the fixed batch in catalog order and records the run in the
// state store. State writes are best effort and never fail the load.
func (s *Service) LoadAll(ctx context.Context) (Summary, error) {
	return s.LoadAllFrom(ctx, s.dataDir)
}

// LoadAllFrom is LoadAll against an alternate drop directory.
func (s *Service) LoadAllFrom(ctx context.Context, dataDir string) (Summary, error) {
	if err := s.guard(ctx); err != nil {
		return Summary{}, err
	}

	summary := Summary{RunID: uuid.NewString()}
	runCtx := logging.WithAttrs(ctx, slog.String("run_id", summary.RunID))

	for _, desc := range catalog.Batch() {
		outcome, err := s.LoadFile(runCtx, desc, filepath.Join(dataDir, desc.SourceFile))
		if err != nil {
			return summary, err
		}
		summary.Outcomes = append(summary.Outcomes, outcome)
		summary.Inserted += outcome.Inserted
		summary.SkippedExisting += outcome.SkippedExisting
	}

	logging.Info(runCtx, "CSV load finished",
		slog.Int("inserted", summary.Inserted),
		slog.Int("skipped_existing", summary.SkippedExisting),
	)

	s.setStateBestEffort(runCtx, stateLastRunID, summary.RunID)
	s.setStateBestEffort(runCtx, stateLastRunAt, s.now().UTC().Format(time.RFC3339))
	s.setStateBestEffort(runCtx, stateLastRunSummary, summary.String())
	return summary, nil
}

// LastRun reports the recorded facts of the most recent load, if any.
func (s *Service) LastRun(ctx context.Context) (runID string, runAt string, summary string, found bool, err error) {
	if ctx == nil {
		return "", "", "", false, nil
	}
	if s.state == nil {
		return "", "", "", false, nil
	}

	runID, found, err = s.state.Get(ctx, stateLastRunID)
	if err != nil || !found {
		return "", "", "", false, err
	}
	runAt, _, err = s.state.Get(ctx, stateLastRunAt)
	if err != nil {
		return "", "", "", false, err
	}
	summary, _, err = s.state.Get(ctx, stateLastRunSummary)
	if err != nil {
		return "", "", "", false, err
	}
	return runID, runAt, summary, true, nil
}
