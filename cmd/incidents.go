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
	"secdash/internal/usecase/records"
)

var incidentsCmd = &cobra.Command{
	Use:   "incidents",
	Short: "Manage cyber incident records",
}

var incidentsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List incidents in insertion order",
	RunE: withApp(func(cmd *cobra.Command, _ *bootstrap.App, svc *services) error {
		ctx := logging.WithAttrs(cmd.Context(), slog.String("command", cmd.CommandPath()))

		items, err := svc.Records.ListIncidents(ctx)
		if err != nil {
			logging.Error(ctx, "list incidents failed", slog.Any("err", errs.Loggable(err)))
			return errs.Wrap(err, "list incidents")
		}

		if len(items) == 0 {
			if _, err := fmt.Fprintln(cmd.OutOrStdout(), "no incidents"); err != nil {
				return errs.Wrap(err, "write incidents list output")
			}
			return nil
		}

		for _, item := range items {
			if _, err := fmt.Fprintf(
				cmd.OutOrStdout(),
				"%s [%s] severity=%s type=%s assigned=%s reported=%s\n",
				item.IncidentID,
				dashIfEmpty(item.Status),
				dashIfEmpty(item.Severity),
				dashIfEmpty(item.Type),
				dashIfEmpty(item.AssignedTo),
				dashIfEmpty(item.ReportedAt),
			); err != nil {
				return errs.Wrap(err, "write incidents list item")
			}
		}
		return nil
	}),
}

var incidentsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an incident record",
	RunE: withApp(func(cmd *cobra.Command, _ *bootstrap.App, svc *services) error {
		ctx := logging.WithAttrs(cmd.Context(), slog.String("command", cmd.CommandPath()))

		incidentID, _ := cmd.Flags().GetString("id")
		incidentType, _ := cmd.Flags().GetString("type")
		severity, _ := cmd.Flags().GetString("severity")
		status, _ := cmd.Flags().GetString("status")
		reportedAt, _ := cmd.Flags().GetString("reported-at")
		resolvedAt, _ := cmd.Flags().GetString("resolved-at")
		assignedTo, _ := cmd.Flags().GetString("assigned-to")
		description, _ := cmd.Flags().GetString("description")

		result, err := svc.Records.CreateIncident(ctx, records.CreateIncidentInput{
			IncidentID:  incidentID,
			Type:        incidentType,
			Severity:    severity,
			Status:      status,
			ReportedAt:  reportedAt,
			ResolvedAt:  resolvedAt,
			AssignedTo:  assignedTo,
			Description: description,
		})
		if err != nil {
			logging.Error(ctx, "create incident failed", slog.Any("err", errs.Loggable(err)))
			return errs.Wrap(err, "create incident")
		}

		if _, err := fmt.Fprintln(cmd.OutOrStdout(), result.Message); err != nil {
			return errs.Wrap(err, "write incidents create output")
		}
		return nil
	}),
}

var incidentsSetStatusCmd = &cobra.Command{
	Use:   "set-status",
	Short: "Update an incident status",
	RunE: withApp(func(cmd *cobra.Command, _ *bootstrap.App, svc *services) error {
		ctx := logging.WithAttrs(cmd.Context(), slog.String("command", cmd.CommandPath()))

		incidentID, _ := cmd.Flags().GetString("id")
		status, _ := cmd.Flags().GetString("status")

		result, err := svc.Records.UpdateIncidentStatus(ctx, incidentID, status)
		if err != nil {
			logging.Error(ctx, "update incident status failed", slog.Any("err", errs.Loggable(err)))
			return errs.Wrap(err, "update incident status")
		}

		if _, err := fmt.Fprintln(cmd.OutOrStdout(), result.Message); err != nil {
			return errs.Wrap(err, "write incidents set-status output")
		}
		return nil
	}),
}

var incidentsDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete an incident record",
	RunE: withApp(func(cmd *cobra.Command, _ *bootstrap.App, svc *services) error {
		ctx := logging.WithAttrs(cmd.Context(), slog.String("command", cmd.CommandPath()))

		incidentID, _ := cmd.Flags().GetString("id")

		result, err := svc.Records.DeleteIncident(ctx, incidentID)
		if err != nil {
			logging.Error(ctx, "delete incident failed", slog.Any("err", errs.Loggable(err)))
			return errs.Wrap(err, "delete incident")
		}

		if _, err := fmt.Fprintln(cmd.OutOrStdout(), result.Message); err != nil {
			return errs.Wrap(err, "write incidents delete output")
		}
		return nil
	}),
}

func dashIfEmpty(value string) string {
	if value == "" {
		return "-"
	}
	return value
}

func init() {
	rootCmd.AddCommand(incidentsCmd)
	incidentsCmd.AddCommand(incidentsListCmd)
	incidentsCmd.AddCommand(incidentsCreateCmd)
	incidentsCmd.AddCommand(incidentsSetStatusCmd)
	incidentsCmd.AddCommand(incidentsDeleteCmd)

	incidentsCreateCmd.Flags().String("id", "", "Incident ID, for example INC-2024-001")
	incidentsCreateCmd.Flags().String("type", "", "Incident type")
	incidentsCreateCmd.Flags().String("severity", "", "Severity (Low/Medium/High/Critical)")
	incidentsCreateCmd.Flags().String("status", "", "Status (Open/In Progress/Resolved)")
	incidentsCreateCmd.Flags().String("reported-at", "", "Reported timestamp")
	incidentsCreateCmd.Flags().String("resolved-at", "", "Resolved timestamp")
	incidentsCreateCmd.Flags().String("assigned-to", "", "Assignee")
	incidentsCreateCmd.Flags().String("description", "", "Free-form description")
	_ = incidentsCreateCmd.MarkFlagRequired("id")

	incidentsSetStatusCmd.Flags().String("id", "", "Incident ID")
	incidentsSetStatusCmd.Flags().String("status", "", "New status")
	_ = incidentsSetStatusCmd.MarkFlagRequired("id")
	_ = incidentsSetStatusCmd.MarkFlagRequired("status")

	incidentsDeleteCmd.Flags().String("id", "", "Incident ID")
	_ = incidentsDeleteCmd.MarkFlagRequired("id")
}
