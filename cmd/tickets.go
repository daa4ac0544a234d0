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

var ticketsCmd = &cobra.Command{
	Use:   "tickets",
	Short: "Manage IT ticket records",
}

var ticketsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tickets in insertion order",
	RunE: withApp(func(cmd *cobra.Command, _ *bootstrap.App, svc *services) error {
		ctx := logging.WithAttrs(cmd.Context(), slog.String("command", cmd.CommandPath()))

		items, err := svc.Records.ListTickets(ctx)
		if err != nil {
			logging.Error(ctx, "list tickets failed", slog.Any("err", errs.Loggable(err)))
			return errs.Wrap(err, "list tickets")
		}

		if len(items) == 0 {
			if _, err := fmt.Fprintln(cmd.OutOrStdout(), "no tickets"); err != nil {
				return errs.Wrap(err, "write tickets list output")
			}
			return nil
		}

		for _, item := range items {
			if _, err := fmt.Fprintf(
				cmd.OutOrStdout(),
				"%s [%s] priority=%s category=%s assigned=%s opened=%s\n",
				item.TicketID,
				dashIfEmpty(item.Status),
				dashIfEmpty(item.Priority),
				dashIfEmpty(item.Category),
				dashIfEmpty(item.AssignedTo),
				dashIfEmpty(item.OpenedAt),
			); err != nil {
				return errs.Wrap(err, "write tickets list item")
			}
		}
		return nil
	}),
}

var ticketsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a ticket record",
	RunE: withApp(func(cmd *cobra.Command, _ *bootstrap.App, svc *services) error {
		ctx := logging.WithAttrs(cmd.Context(), slog.String("command", cmd.CommandPath()))

		ticketID, _ := cmd.Flags().GetString("id")
		category, _ := cmd.Flags().GetString("category")
		priority, _ := cmd.Flags().GetString("priority")
		status, _ := cmd.Flags().GetString("status")
		openedAt, _ := cmd.Flags().GetString("opened-at")
		closedAt, _ := cmd.Flags().GetString("closed-at")
		assignedTo, _ := cmd.Flags().GetString("assigned-to")

		result, err := svc.Records.CreateTicket(ctx, records.CreateTicketInput{
			TicketID:   ticketID,
			Category:   category,
			Priority:   priority,
			Status:     status,
			OpenedAt:   openedAt,
			ClosedAt:   closedAt,
			AssignedTo: assignedTo,
		})
		if err != nil {
			logging.Error(ctx, "create ticket failed", slog.Any("err", errs.Loggable(err)))
			return errs.Wrap(err, "create ticket")
		}

		if _, err := fmt.Fprintln(cmd.OutOrStdout(), result.Message); err != nil {
			return errs.Wrap(err, "write tickets create output")
		}
		return nil
	}),
}

var ticketsSetStatusCmd = &cobra.Command{
	Use:   "set-status",
	Short: "Update a ticket status",
	RunE: withApp(func(cmd *cobra.Command, _ *bootstrap.App, svc *services) error {
		ctx := logging.WithAttrs(cmd.Context(), slog.String("command", cmd.CommandPath()))

		ticketID, _ := cmd.Flags().GetString("id")
		status, _ := cmd.Flags().GetString("status")

		result, err := svc.Records.UpdateTicketStatus(ctx, ticketID, status)
		if err != nil {
			logging.Error(ctx, "update ticket status failed", slog.Any("err", errs.Loggable(err)))
			return errs.Wrap(err, "update ticket status")
		}

		if _, err := fmt.Fprintln(cmd.OutOrStdout(), result.Message); err != nil {
			return errs.Wrap(err, "write tickets set-status output")
		}
		return nil
	}),
}

var ticketsDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a ticket record",
	RunE: withApp(func(cmd *cobra.Command, _ *bootstrap.App, svc *services) error {
		ctx := logging.WithAttrs(cmd.Context(), slog.String("command", cmd.CommandPath()))

		ticketID, _ := cmd.Flags().GetString("id")

		result, err := svc.Records.DeleteTicket(ctx, ticketID)
		if err != nil {
			logging.Error(ctx, "delete ticket failed", slog.Any("err", errs.Loggable(err)))
			return errs.Wrap(err, "delete ticket")
		}

		if _, err := fmt.Fprintln(cmd.OutOrStdout(), result.Message); err != nil {
			return errs.Wrap(err, "write tickets delete output")
		}
		return nil
	}),
}

func init() {
	rootCmd.AddCommand(ticketsCmd)
	ticketsCmd.AddCommand(ticketsListCmd)
	ticketsCmd.AddCommand(ticketsCreateCmd)
	ticketsCmd.AddCommand(ticketsSetStatusCmd)
	ticketsCmd.AddCommand(ticketsDeleteCmd)

	ticketsCreateCmd.Flags().String("id", "", "Ticket ID, for example TCK-1042")
	ticketsCreateCmd.Flags().String("category", "", "Ticket category")
	ticketsCreateCmd.Flags().String("priority", "", "Priority (Low/Medium/High)")
	ticketsCreateCmd.Flags().String("status", "", "Status (Open/In Progress/Closed)")
	ticketsCreateCmd.Flags().String("opened-at", "", "Opened timestamp")
	ticketsCreateCmd.Flags().String("closed-at", "", "Closed timestamp")
	ticketsCreateCmd.Flags().String("assigned-to", "", "Assignee")
	_ = ticketsCreateCmd.MarkFlagRequired("id")

	ticketsSetStatusCmd.Flags().String("id", "", "Ticket ID")
	ticketsSetStatusCmd.Flags().String("status", "", "New status")
	_ = ticketsSetStatusCmd.MarkFlagRequired("id")
	_ = ticketsSetStatusCmd.MarkFlagRequired("status")

	ticketsDeleteCmd.Flags().String("id", "", "Ticket ID")
	_ = ticketsDeleteCmd.MarkFlagRequired("id")
}
