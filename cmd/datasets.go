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

var datasetsCmd = &cobra.Command{
	Use:   "datasets",
	Short: "Manage dataset metadata records",
}

var datasetsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List datasets in insertion order",
	RunE: withApp(func(cmd *cobra.Command, _ *bootstrap.App, svc *services) error {
		ctx := logging.WithAttrs(cmd.Context(), slog.String("command", cmd.CommandPath()))

		items, err := svc.Records.ListDatasets(ctx)
		if err != nil {
			logging.Error(ctx, "list datasets failed", slog.Any("err", errs.Loggable(err)))
			return errs.Wrap(err, "list datasets")
		}

		if len(items) == 0 {
			if _, err := fmt.Fprintln(cmd.OutOrStdout(), "no datasets"); err != nil {
				return errs.Wrap(err, "write datasets list output")
			}
			return nil
		}

		for _, item := range items {
			if _, err := fmt.Fprintf(
				cmd.OutOrStdout(),
				"%s owner=%s source=%s size_mb=%.2f rows=%d\n",
				item.Name,
				dashIfEmpty(item.Owner),
				dashIfEmpty(item.SourceSystem),
				item.SizeMB,
				item.RowCount,
			); err != nil {
				return errs.Wrap(err, "write datasets list item")
			}
		}
		return nil
	}),
}

var datasetsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a dataset metadata record",
	RunE: withApp(func(cmd *cobra.Command, _ *bootstrap.App, svc *services) error {
		ctx := logging.WithAttrs(cmd.Context(), slog.String("command", cmd.CommandPath()))

		name, _ := cmd.Flags().GetString("name")
		owner, _ := cmd.Flags().GetString("owner")
		sourceSystem, _ := cmd.Flags().GetString("source-system")
		sizeMB, _ := cmd.Flags().GetFloat64("size-mb")
		rowCount, _ := cmd.Flags().GetInt64("row-count")
		createdAt, _ := cmd.Flags().GetString("created-at")

		result, err := svc.Records.CreateDataset(ctx, records.CreateDatasetInput{
			Name:         name,
			Owner:        owner,
			SourceSystem: sourceSystem,
			SizeMB:       sizeMB,
			RowCount:     rowCount,
			CreatedAt:    createdAt,
		})
		if err != nil {
			logging.Error(ctx, "create dataset failed", slog.Any("err", errs.Loggable(err)))
			return errs.Wrap(err, "create dataset")
		}

		if _, err := fmt.Fprintln(cmd.OutOrStdout(), result.Message); err != nil {
			return errs.Wrap(err, "write datasets create output")
		}
		return nil
	}),
}

var datasetsSetOwnerCmd = &cobra.Command{
	Use:   "set-owner",
	Short: "Update a dataset owner",
	RunE: withApp(func(cmd *cobra.Command, _ *bootstrap.App, svc *services) error {
		ctx := logging.WithAttrs(cmd.Context(), slog.String("command", cmd.CommandPath()))

		name, _ := cmd.Flags().GetString("name")
		owner, _ := cmd.Flags().GetString("owner")

		result, err := svc.Records.UpdateDatasetOwner(ctx, name, owner)
		if err != nil {
			logging.Error(ctx, "update dataset owner failed", slog.Any("err", errs.Loggable(err)))
			return errs.Wrap(err, "update dataset owner")
		}

		if _, err := fmt.Fprintln(cmd.OutOrStdout(), result.Message); err != nil {
			return errs.Wrap(err, "write datasets set-owner output")
		}
		return nil
	}),
}

var datasetsDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a dataset metadata record",
	RunE: withApp(func(cmd *cobra.Command, _ *bootstrap.App, svc *services) error {
		ctx := logging.WithAttrs(cmd.Context(), slog.String("command", cmd.CommandPath()))

		name, _ := cmd.Flags().GetString("name")

		result, err := svc.Records.DeleteDataset(ctx, name)
		if err != nil {
			logging.Error(ctx, "delete dataset failed", slog.Any("err", errs.Loggable(err)))
			return errs.Wrap(err, "delete dataset")
		}

		if _, err := fmt.Fprintln(cmd.OutOrStdout(), result.Message); err != nil {
			return errs.Wrap(err, "write datasets delete output")
		}
		return nil
	}),
}

func init() {
	rootCmd.AddCommand(datasetsCmd)
	datasetsCmd.AddCommand(datasetsListCmd)
	datasetsCmd.AddCommand(datasetsCreateCmd)
	datasetsCmd.AddCommand(datasetsSetOwnerCmd)
	datasetsCmd.AddCommand(datasetsDeleteCmd)

	datasetsCreateCmd.Flags().String("name", "", "Dataset name")
	datasetsCreateCmd.Flags().String("owner", "", "Owning team or person")
	datasetsCreateCmd.Flags().String("source-system", "", "System the data comes from")
	datasetsCreateCmd.Flags().Float64("size-mb", 0, "Size in megabytes")
	datasetsCreateCmd.Flags().Int64("row-count", 0, "Number of rows")
	datasetsCreateCmd.Flags().String("created-at", "", "Creation timestamp")
	_ = datasetsCreateCmd.MarkFlagRequired("name")

	datasetsSetOwnerCmd.Flags().String("name", "", "Dataset name")
	datasetsSetOwnerCmd.Flags().String("owner", "", "New owner")
	_ = datasetsSetOwnerCmd.MarkFlagRequired("name")
	_ = datasetsSetOwnerCmd.MarkFlagRequired("owner")

	datasetsDeleteCmd.Flags().String("name", "", "Dataset name")
	_ = datasetsDeleteCmd.MarkFlagRequired("name")
}
