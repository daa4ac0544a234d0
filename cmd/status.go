/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"log/slog"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"secdash/internal/bootstrap"
	"secdash/internal/bootstrap/logging"
	"secdash/internal/errs"
)

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show database location, table counts, and the last batch load",
	RunE: withApp(func(cmd *cobra.Command, app *bootstrap.App, svc *services) error {
		ctx := logging.WithAttrs(cmd.Context(), slog.String("command", cmd.CommandPath()))

		counts, err := svc.Ingest.TableCounts(ctx)
		if err != nil {
			logging.Error(ctx, "count table rows failed", slog.Any("err", errs.Loggable(err)))
			return errs.Wrap(err, "count table rows")
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		if _, err := fmt.Fprintf(w, "driver\t%s\n", app.Config.Database.Driver); err != nil {
			return errs.Wrap(err, "write status driver")
		}
		if _, err := fmt.Fprintf(w, "dsn\t%s\n", app.Config.Database.DSN); err != nil {
			return errs.Wrap(err, "write status dsn")
		}
		if _, err := fmt.Fprintf(w, "data_dir\t%s\n", app.Config.Ingest.DataDir); err != nil {
			return errs.Wrap(err, "write status data dir")
		}

		if _, err := fmt.Fprintln(w, ""); err != nil {
			return errs.Wrap(err, "write status separator")
		}
		if _, err := fmt.Fprintln(w, "table\trows"); err != nil {
			return errs.Wrap(err, "write status table header")
		}
		for _, count := range counts {
			if _, err := fmt.Fprintf(w, "%s\t%d\n", count.Table, count.Rows); err != nil {
				return errs.Wrap(err, "write status table row")
			}
		}

		runID, runAt, summary, found, err := svc.Ingest.LastRun(ctx)
		if err != nil {
			logging.Error(ctx, "read last run state failed", slog.Any("err", errs.Loggable(err)))
			return errs.Wrap(err, "read last run state")
		}
		if _, err := fmt.Fprintln(w, ""); err != nil {
			return errs.Wrap(err, "write status separator")
		}
		if !found {
			if _, err := fmt.Fprintln(w, "last_load\tnever"); err != nil {
				return errs.Wrap(err, "write status last load")
			}
		} else {
			if _, err := fmt.Fprintf(w, "last_load_run_id\t%s\n", runID); err != nil {
				return errs.Wrap(err, "write status last run id")
			}
			if _, err := fmt.Fprintf(w, "last_load_at\t%s\n", runAt); err != nil {
				return errs.Wrap(err, "write status last run time")
			}
			if _, err := fmt.Fprintf(w, "last_load_summary\t%s\n", summary); err != nil {
				return errs.Wrap(err, "write status last summary")
			}
		}

		if err := w.Flush(); err != nil {
			return errs.Wrap(err, "flush status output")
		}
		return nil
	}),
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
