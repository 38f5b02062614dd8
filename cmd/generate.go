package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizgen/internal/logging"
	"github.com/abhisek/quizgen/internal/quiz"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a question set and print it as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		subject, _ := cmd.Flags().GetString("subject")
		chapter, _ := cmd.Flags().GetString("chapter")
		out, _ := cmd.Flags().GetString("out")
		count, _ := cmd.Flags().GetInt("count")

		subject, chapter = strings.TrimSpace(subject), strings.TrimSpace(chapter)
		if subject == "" || chapter == "" {
			return errors.New("--subject and --chapter are required")
		}

		e, err := setup(cmd, logging.Quiet)
		if err != nil {
			return err
		}
		defer e.Close()

		cfg := e.cfg.Quiz
		if count > 0 {
			cfg.QuestionCount = count
		}

		generator := quiz.NewGenerator(e.provider, cfg, e.logger)
		questions, err := generator.GenerateTopic(cmd.Context(), subject, chapter)
		if err != nil {
			var unavailable *quiz.ModelUnavailableError
			if errors.As(err, &unavailable) && len(unavailable.AvailableModels) > 0 {
				fmt.Fprintln(cmd.ErrOrStderr(), "Available models:")
				for _, m := range unavailable.AvailableModels {
					fmt.Fprintln(cmd.ErrOrStderr(), "  "+m)
				}
			}
			return fmt.Errorf("generate questions: %w", err)
		}

		return writeJSON(cmd.OutOrStdout(), out, map[string][]quiz.Question{"questions": questions})
	},
}

// writeJSON writes v as indented JSON to path, or to w when path is empty
// or "-".
func writeJSON(w io.Writer, path string, v any) error {
	if path != "" && path != "-" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create %s: %w", path, err)
		}
		defer f.Close()
		w = f
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func init() {
	generateCmd.Flags().StringP("subject", "s", "", "Subject, e.g. Physics")
	generateCmd.Flags().StringP("chapter", "c", "", "Chapter within the subject")
	generateCmd.Flags().StringP("out", "o", "", "Write JSON to this file instead of stdout")
	generateCmd.Flags().IntP("count", "n", 0, "Number of questions (overrides QUIZGEN_QUESTION_COUNT)")
}
