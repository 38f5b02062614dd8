package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizgen/internal/quiz"
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Grade answers against a question set",
	Long: `Grade a JSON answers object ({"1": "a", "2": "c"}) against a question set.

The question file may hold a bare array or the {"questions": [...]} object
printed by "quizgen generate". No model is called.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		questionsPath, _ := cmd.Flags().GetString("questions")
		answersPath, _ := cmd.Flags().GetString("answers")
		out, _ := cmd.Flags().GetString("out")

		questions, err := readQuestionsFile(cmd.InOrStdin(), questionsPath)
		if err != nil {
			return err
		}
		answers := json.RawMessage("null")
		if answersPath != "" {
			answers, err = readFile(cmd.InOrStdin(), answersPath)
			if err != nil {
				return err
			}
		}

		results, err := quiz.EvaluateJSON(questions, answers)
		if err != nil {
			return fmt.Errorf("evaluate: %w", err)
		}

		return writeJSON(cmd.OutOrStdout(), out, struct {
			Evaluation []quiz.GradingResult `json:"evaluation"`
			Summary    quiz.Summary         `json:"summary"`
		}{results, quiz.Summarize(results)})
	},
}

// readQuestionsFile returns the question array, unwrapping the
// {"questions": [...]} envelope when present.
func readQuestionsFile(stdin io.Reader, path string) (json.RawMessage, error) {
	data, err := readFile(stdin, path)
	if err != nil {
		return nil, err
	}
	var envelope struct {
		Questions json.RawMessage `json:"questions"`
	}
	if err := json.Unmarshal(data, &envelope); err == nil && len(envelope.Questions) > 0 {
		return envelope.Questions, nil
	}
	return data, nil
}

// readFile reads path, or stdin when path is "-".
func readFile(stdin io.Reader, path string) (json.RawMessage, error) {
	if path == "" {
		return nil, fmt.Errorf("no file given")
	}
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

func init() {
	evaluateCmd.Flags().StringP("questions", "q", "", "Question set JSON file (- for stdin)")
	evaluateCmd.Flags().StringP("answers", "a", "", "Answers JSON file (- for stdin); omitted means nothing answered")
	evaluateCmd.Flags().StringP("out", "o", "", "Write JSON to this file instead of stdout")
	_ = evaluateCmd.MarkFlagRequired("questions")
}
