/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"

	"secdash/internal/bootstrap"
	"secdash/internal/bootstrap/logging"
	"secdash/internal/errs"
	"secdash/internal/usecase/records"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage dashboard accounts",
}

var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List accounts",
	RunE: withApp(func(cmd *cobra.Command, _ *bootstrap.App, svc *services) error {
		ctx := logging.WithAttrs(cmd.Context(), slog.String("command", cmd.CommandPath()))

		items, err := svc.Records.ListUsers(ctx)
		if err != nil {
			logging.Error(ctx, "list users failed", slog.Any("err", errs.Loggable(err)))
			return errs.Wrap(err, "list users")
		}

		if len(items) == 0 {
			if _, err := fmt.Fprintln(cmd.OutOrStdout(), "no users"); err != nil {
				return errs.Wrap(err, "write users list output")
			}
			return nil
		}

		for _, item := range items {
			if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s role=%s\n", item.Username, dashIfEmpty(item.Role)); err != nil {
				return errs.Wrap(err, "write users list item")
			}
		}
		return nil
	}),
}

var usersCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an account with a bcrypt-hashed password",
	RunE: withApp(func(cmd *cobra.Command, _ *bootstrap.App, svc *services) error {
		ctx := logging.WithAttrs(cmd.Context(), slog.String("command", cmd.CommandPath()))

		username, _ := cmd.Flags().GetString("username")
		password, _ := cmd.Flags().GetString("password")
		role, _ := cmd.Flags().GetString("role")

		if password == "" {
			return errors.New("password is required (set --password)")
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			logging.Error(ctx, "hash password failed", slog.Any("err", errs.Loggable(err)))
			return errs.Wrap(err, "hash password")
		}

		result, err := svc.Records.CreateUser(ctx, records.CreateUserInput{
			Username:     username,
			PasswordHash: string(hash),
			Role:         role,
		})
		if err != nil {
			logging.Error(ctx, "create user failed", slog.Any("err", errs.Loggable(err)))
			return errs.Wrap(err, "create user")
		}

		if _, err := fmt.Fprintln(cmd.OutOrStdout(), result.Message); err != nil {
			return errs.Wrap(err, "write users create output")
		}
		return nil
	}),
}

var usersSetRoleCmd = &cobra.Command{
	Use:   "set-role",
	Short: "Update an account role",
	RunE: withApp(func(cmd *cobra.Command, _ *bootstrap.App, svc *services) error {
		ctx := logging.WithAttrs(cmd.Context(), slog.String("command", cmd.CommandPath()))

		username, _ := cmd.Flags().GetString("username")
		role, _ := cmd.Flags().GetString("role")

		result, err := svc.Records.UpdateUserRole(ctx, username, role)
		if err != nil {
			logging.Error(ctx, "update user role failed", slog.Any("err", errs.Loggable(err)))
			return errs.Wrap(err, "update user role")
		}

		if _, err := fmt.Fprintln(cmd.OutOrStdout(), result.Message); err != nil {
			return errs.Wrap(err, "write users set-role output")
		}
		return nil
	}),
}

var usersDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete an account",
	RunE: withApp(func(cmd *cobra.Command, _ *bootstrap.App, svc *services) error {
		ctx := logging.WithAttrs(cmd.Context(), slog.String("command", cmd.CommandPath()))

		username, _ := cmd.Flags().GetString("username")

		result, err := svc.Records.DeleteUser(ctx, username)
		if err != nil {
			logging.Error(ctx, "delete user failed", slog.Any("err", errs.Loggable(err)))
			return errs.Wrap(err, "delete user")
		}

		if _, err := fmt.Fprintln(cmd.OutOrStdout(), result.Message); err != nil {
			return errs.Wrap(err, "write users delete output")
		}
		return nil
	}),
}

var usersVerifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check a username/password pair against the stored hash",
	RunE: withApp(func(cmd *cobra.Command, _ *bootstrap.App, svc *services) error {
		ctx := logging.WithAttrs(cmd.Context(), slog.String("command", cmd.CommandPath()))

		username, _ := cmd.Flags().GetString("username")
		password, _ := cmd.Flags().GetString("password")

		user, err := svc.Records.GetUserByUsername(ctx, username)
		if err != nil {
			if errors.Is(err, records.ErrUserNotFound) {
				if _, werr := fmt.Fprintf(cmd.OutOrStdout(), "No user found with username '%s'.\n", username); werr != nil {
					return errs.Wrap(werr, "write users verify output")
				}
				return nil
			}
			logging.Error(ctx, "load user failed", slog.Any("err", errs.Loggable(err)))
			return errs.Wrap(err, "load user")
		}

		if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
			if _, err := fmt.Fprintf(cmd.OutOrStdout(), "Password for '%s' does not match.\n", username); err != nil {
				return errs.Wrap(err, "write users verify output")
			}
			return nil
		}

		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "Password for '%s' matches (role=%s).\n", username, user.Role); err != nil {
			return errs.Wrap(err, "write users verify output")
		}
		return nil
	}),
}

func init() {
	rootCmd.AddCommand(usersCmd)
	usersCmd.AddCommand(usersListCmd)
	usersCmd.AddCommand(usersCreateCmd)
	usersCmd.AddCommand(usersSetRoleCmd)
	usersCmd.AddCommand(usersDeleteCmd)
	usersCmd.AddCommand(usersVerifyCmd)

	usersCreateCmd.Flags().String("username", "", "Account name")
	usersCreateCmd.Flags().String("password", "", "Plaintext password, hashed before storing")
	usersCreateCmd.Flags().String("role", "viewer", "Account role (admin/analyst/viewer)")
	_ = usersCreateCmd.MarkFlagRequired("username")
	_ = usersCreateCmd.MarkFlagRequired("password")

	usersSetRoleCmd.Flags().String("username", "", "Account name")
	usersSetRoleCmd.Flags().String("role", "", "New role")
	_ = usersSetRoleCmd.MarkFlagRequired("username")
	_ = usersSetRoleCmd.MarkFlagRequired("role")

	usersDeleteCmd.Flags().String("username", "", "Account name")
	_ = usersDeleteCmd.MarkFlagRequired("username")

	usersVerifyCmd.Flags().String("username", "", "Account name")
	usersVerifyCmd.Flags().String("password", "", "Password to check")
	_ = usersVerifyCmd.MarkFlagRequired("username")
	_ = usersVerifyCmd.MarkFlagRequired("password")
}
