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
)

// healthCmd represents the health command
var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check database connectivity and the assistant endpoint",
	RunE: withApp(func(cmd *cobra.Command, app *bootstrap.App, svc *services) error {
		ctx := logging.WithAttrs(cmd.Context(), slog.String("command", cmd.CommandPath()))

		sqlDB, err := app.DB.DB()
		if err != nil {
			logging.Error(ctx, "get sql db failed", slog.Any("err", errs.Loggable(err)))
			return errs.Wrap(err, "get sql db")
		}
		if err := sqlDB.PingContext(ctx); err != nil {
			logging.Error(ctx, "database ping failed", slog.Any("err", errs.Loggable(err)))
			if _, werr := fmt.Fprintf(cmd.OutOrStdout(), "database: %v\n", err); werr != nil {
				return errs.Wrap(werr, "write health output")
			}
			return errs.Wrap(err, "ping database")
		}
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), "database: ok"); err != nil {
			return errs.Wrap(err, "write health output")
		}

		// The probe result is always a message, even when the endpoint is
		// unreachable or no credential is configured.
		probe := svc.Assistant.Health(ctx)
		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "assistant: %s\n", probe); err != nil {
			return errs.Wrap(err, "write health output")
		}
		return nil
	}),
}

func init() {
	rootCmd.AddCommand(healthCmd)
}
