package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/quizgen/internal/config"
	"github.com/abhisek/quizgen/internal/llm"
	"github.com/abhisek/quizgen/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "quizgen",
	Short: "AI multiple-choice quiz generator",
	Long:  "quizgen writes multiple-choice questions for a subject and chapter with an LLM, and grades submitted answers.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay(cmd, "", "")
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides QUIZGEN_DB env var)")
	rootCmd.PersistentFlags().String("env-file", ".env", "Path to a .env file to load")
	rootCmd.PersistentFlags().String("provider", "", "LLM provider: gemini, openai, anthropic, openrouter, mock (overrides QUIZGEN_LLM_PROVIDER)")
	rootCmd.PersistentFlags().String("model", "", "Model id (overrides QUIZGEN_MODEL)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(evaluateCmd)
	rootCmd.AddCommand(modelsCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then QUIZGEN_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// loadConfig reads the env file and applies the --provider and --model
// overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	envFile, _ := cmd.Flags().GetString("env-file")
	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, err
	}
	if p, _ := cmd.Flags().GetString("provider"); p != "" {
		cfg.LLM.Provider = p
		cfg.Quiz.Model = cfg.LLM.Model()
	}
	if m, _ := cmd.Flags().GetString("model"); m != "" {
		cfg.LLM.SetModel(m)
		cfg.Quiz.Model = m
	}
	return cfg, nil
}

// env bundles the dependencies shared by commands that call the model.
type env struct {
	cfg      *config.Config
	logger   *zap.Logger
	store    *store.Store // nil when the audit store could not be opened
	provider llm.Provider
}

func (e *env) Close() {
	if e.store != nil {
		if err := e.store.Close(); err != nil {
			e.logger.Warn("closing store", zap.Error(err))
		}
	}
	_ = e.logger.Sync()
}

// loggerFunc builds a logger for the configured log mode.
type loggerFunc func(mode string) (*zap.Logger, error)

func nopLogger(string) (*zap.Logger, error) { return zap.NewNop(), nil }

// setup loads configuration, builds the logger, opens the audit store and
// creates the provider. A store that cannot be opened is logged and
// skipped; calls still go through without an audit trail.
func setup(cmd *cobra.Command, newLogger loggerFunc) (*env, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	logger, err := newLogger(cfg.LogMode)
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	e := &env{cfg: cfg, logger: logger}

	var repo store.EventRepo
	if dbPath, err := resolveDBPath(cmd); err != nil {
		logger.Warn("audit store disabled", zap.Error(err))
	} else if st, err := store.Open(dbPath); err != nil {
		logger.Warn("audit store disabled", zap.String("path", dbPath), zap.Error(err))
	} else {
		e.store = st
		repo = st.EventRepo()
	}

	e.provider, err = llm.NewProvider(cmd.Context(), cfg.LLM, repo, logger)
	if err != nil {
		e.Close()
		return nil, fmt.Errorf("LLM provider: %w", err)
	}
	return e, nil
}
