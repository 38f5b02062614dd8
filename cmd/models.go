package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizgen/internal/llm"
	"github.com/abhisek/quizgen/internal/logging"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List the model ids the configured provider accepts",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd, logging.Quiet)
		if err != nil {
			return err
		}
		defer e.Close()

		ctx := llm.WithPurpose(cmd.Context(), "models")
		models, err := e.provider.ListModels(ctx)
		if err != nil {
			return fmt.Errorf("list models: %w", err)
		}
		if len(models) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No models returned.")
			return nil
		}
		for _, m := range models {
			fmt.Fprintln(cmd.OutOrStdout(), m)
		}
		return nil
	},
}
