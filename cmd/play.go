package cmd

import (
	"github.com/abhisek/quizgen/internal/app"
	"github.com/abhisek/quizgen/internal/quiz"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Take a generated quiz in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		subject, _ := cmd.Flags().GetString("subject")
		chapter, _ := cmd.Flags().GetString("chapter")
		return runPlay(cmd, subject, chapter)
	},
}

// runPlay launches the TUI. Logging is discarded since the alt screen owns
// the terminal; calls are still recorded in the audit store.
func runPlay(cmd *cobra.Command, subject, chapter string) error {
	e, err := setup(cmd, nopLogger)
	if err != nil {
		return err
	}
	defer e.Close()

	return app.Run(app.Options{
		Generator: quiz.NewGenerator(e.provider, e.cfg.Quiz, e.logger),
		Subject:   subject,
		Chapter:   chapter,
	})
}

func init() {
	playCmd.Flags().StringP("subject", "s", "", "Prefill the subject")
	playCmd.Flags().StringP("chapter", "c", "", "Prefill the chapter")
}
