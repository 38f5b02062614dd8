package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/quizgen/internal/api"
	"github.com/abhisek/quizgen/internal/logging"
	"github.com/abhisek/quizgen/internal/quiz"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd, logging.New)
		if err != nil {
			return err
		}
		defer e.Close()

		addr := e.cfg.ServerAddress
		if a, _ := cmd.Flags().GetString("addr"); a != "" {
			addr = a
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		generator := quiz.NewGenerator(e.provider, e.cfg.Quiz, e.logger)
		handler := api.NewHandler(generator, e.provider, e.logger)
		router := api.NewRouter(handler, api.RouterConfig{
			CORSOrigins:    e.cfg.CORSOrigins,
			RequestTimeout: e.cfg.RequestTimeout,
		}, e.logger)

		e.logger.Info("quizgen API",
			zap.String("provider", e.cfg.LLM.Provider),
			zap.String("model", e.cfg.Quiz.Model),
			zap.Bool("audit", e.store != nil),
		)
		return api.Serve(ctx, addr, router, e.cfg.ShutdownTimeout, e.logger)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides QUIZGEN_ADDR)")
}
