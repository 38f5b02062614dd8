package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/abhisek/quizgen/internal/llm"
	"github.com/abhisek/quizgen/internal/quiz"
)

// Config is the process configuration shared by the server and the CLI.
type Config struct {
	ServerAddress   string
	ShutdownTimeout time.Duration
	RequestTimeout  time.Duration
	CORSOrigins     []string
	LogMode         string // "dev" or "prod"

	LLM  llm.Config
	Quiz quiz.Config
}

// Load reads envFile (if it exists) into the environment and builds a
// Config from it. Variables already set in the environment win over the
// file. An empty envFile means ".env".
func Load(envFile string) (*Config, error) {
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", envFile, err)
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment.
func FromEnv() (*Config, error) {
	var errs []error

	cfg := &Config{
		ServerAddress:   getenvDefault("QUIZGEN_ADDR", ":3000"),
		ShutdownTimeout: getDuration("QUIZGEN_SHUTDOWN_TIMEOUT", 10*time.Second, &errs),
		RequestTimeout:  getDuration("QUIZGEN_REQUEST_TIMEOUT", 90*time.Second, &errs),
		CORSOrigins:     splitList(getenvDefault("QUIZGEN_CORS_ORIGINS", "*")),
		LogMode:         getenvDefault("QUIZGEN_LOG_MODE", "dev"),
		LLM:             llm.ConfigFromEnv(),
		Quiz:            quiz.DefaultConfig(),
	}

	cfg.Quiz.Model = cfg.LLM.Model()
	cfg.Quiz.QuestionCount = getInt("QUIZGEN_QUESTION_COUNT", quiz.DefaultQuestionCount, &errs)
	cfg.Quiz.ValidateSchema = getBool("QUIZGEN_VALIDATE_SCHEMA", false, &errs)

	if cfg.Quiz.QuestionCount <= 0 {
		errs = append(errs, fmt.Errorf("QUIZGEN_QUESTION_COUNT must be positive, got %d", cfg.Quiz.QuestionCount))
	}

	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func getenvDefault(k, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return fallback
}

func getDuration(k string, fallback time.Duration, errs *[]error) time.Duration {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s=%q is not a valid duration: %w", k, v, err))
		return fallback
	}
	return d
}

func getInt(k string, fallback int, errs *[]error) int {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s=%q is not a valid integer: %w", k, v, err))
		return fallback
	}
	return n
}

func getBool(k string, fallback bool, errs *[]error) bool {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s=%q is not a valid boolean: %w", k, v, err))
		return fallback
	}
	return b
}

func splitList(v string) []string {
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
