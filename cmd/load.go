/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"secdash/internal/bootstrap"
	"secdash/internal/bootstrap/logging"
	"secdash/internal/errs"
	"secdash/internal/usecase/ingest"
)

// loadDataCmd represents the load-data command
var loadDataCmd = &cobra.Command{
	Use:   "load-data",
	Short: "Load batch CSV files into the database",
	Long:  "Reconciles every batch CSV against its table: rows with a new natural key are appended, rows whose key already exists are skipped.",
	RunE: withApp(func(cmd *cobra.Command, app *bootstrap.App, svc *services) error {
		ctx := logging.WithAttrs(cmd.Context(), slog.String("command", cmd.CommandPath()))

		dataDir, _ := cmd.Flags().GetString("data-dir")
		if dataDir == "" {
			dataDir = app.Config.Ingest.DataDir
		}
		logging.Info(ctx, "start load-data", slog.String("data_dir", dataDir))

		summary, err := svc.Ingest.LoadAllFrom(ctx, dataDir)
		if err != nil {
			logging.Error(ctx, "load batch data failed", slog.Any("err", errs.Loggable(err)))
			return errs.Wrap(err, "load batch data")
		}

		for _, outcome := range summary.Outcomes {
			if _, err := fmt.Fprintln(cmd.OutOrStdout(), formatOutcome(outcome)); err != nil {
				return errs.Wrap(err, "write load-data table line")
			}
		}
		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "\n%s\n", summary.String()); err != nil {
			return errs.Wrap(err, "write load-data summary")
		}
		return nil
	}),
}

func formatOutcome(outcome ingest.Outcome) string {
	if outcome.FileMissing {
		return fmt.Sprintf("%s: %s not found, skipped", outcome.Table, outcome.File)
	}
	if outcome.Unkeyed {
		return fmt.Sprintf("%s: appended %d rows without dedup", outcome.Table, outcome.Inserted)
	}
	return fmt.Sprintf(
		"%s: inserted=%d skipped_existing=%d dropped_null_key=%d duplicates_in_file=%d",
		outcome.Table,
		outcome.Inserted,
		outcome.SkippedExisting,
		outcome.DroppedNullKey,
		outcome.DuplicateInBatch,
	)
}

func init() {
	rootCmd.AddCommand(loadDataCmd)

	loadDataCmd.Flags().String("data-dir", "", "CSV drop directory (default: ingest.data_dir from config)")
}
