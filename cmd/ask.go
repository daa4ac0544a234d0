/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"secdash/internal/bootstrap"
	"secdash/internal/bootstrap/logging"
	"secdash/internal/errs"
)

// askCmd represents the ask command
var askCmd = &cobra.Command{
	Use:   "ask",
	Short: "Ask the analyst assistant a question",
	Long:  "Sends the question to the configured chat-completion endpoint. Without a credential, or when the call fails, a rule-based offline answer is produced instead.",
	RunE: withApp(func(cmd *cobra.Command, _ *bootstrap.App, svc *services) error {
		ctx := logging.WithAttrs(cmd.Context(), slog.String("command", cmd.CommandPath()))

		question, _ := cmd.Flags().GetString("question")
		if strings.TrimSpace(question) == "" {
			return errors.New("question is required (set --question)")
		}

		contextText, err := resolveContext(cmd)
		if err != nil {
			return err
		}

		logging.Info(ctx, "asking assistant", slog.Int("question_len", len(question)), slog.Bool("with_context", contextText != ""))

		answer := svc.Assistant.Answer(ctx, question, contextText)
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), answer); err != nil {
			return errs.Wrap(err, "write ask output")
		}
		return nil
	}),
}

func resolveContext(cmd *cobra.Command) (string, error) {
	inlineContext, _ := cmd.Flags().GetString("context")
	contextFile, _ := cmd.Flags().GetString("context-file")

	if strings.TrimSpace(inlineContext) != "" && strings.TrimSpace(contextFile) != "" {
		return "", errors.New("context and context-file are mutually exclusive")
	}

	if strings.TrimSpace(contextFile) != "" {
		raw, err := os.ReadFile(contextFile)
		if err != nil {
			return "", errs.Wrapf(err, "read context file %q", contextFile)
		}
		inlineContext = string(raw)
	}

	return inlineContext, nil
}

func init() {
	rootCmd.AddCommand(askCmd)

	askCmd.Flags().StringP("question", "q", "", "Question for the assistant")
	askCmd.Flags().String("context", "", "Incident summary passed as context")
	askCmd.Flags().String("context-file", "", "Path to a file with the incident summary")
	_ = askCmd.MarkFlagRequired("question")
}
