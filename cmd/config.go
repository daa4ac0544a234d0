/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"secdash/internal/bootstrap"
	"secdash/internal/bootstrap/logging"
	"secdash/internal/errs"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the effective configuration",
}

// configShowCmd represents the config show command
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as YAML",
	RunE: withApp(func(cmd *cobra.Command, app *bootstrap.App, _ *services) error {
		ctx := logging.WithAttrs(cmd.Context(), slog.String("command", cmd.CommandPath()))
		logging.Info(ctx, "render effective config")

		// Never print the credential itself.
		redacted := app.Config
		if redacted.Assistant.APIKey != "" {
			redacted.Assistant.APIKey = "[redacted]"
		}

		out, err := yaml.Marshal(redacted)
		if err != nil {
			logging.Error(ctx, "marshal config failed", slog.Any("err", errs.Loggable(err)))
			return errs.Wrap(err, "marshal config")
		}

		if _, err := fmt.Fprint(cmd.OutOrStdout(), string(out)); err != nil {
			return errs.Wrap(err, "write config output")
		}
		return nil
	}),
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
}
