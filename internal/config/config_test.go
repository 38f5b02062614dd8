package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configVars = []string{
	"QUIZGEN_ADDR", "QUIZGEN_SHUTDOWN_TIMEOUT", "QUIZGEN_REQUEST_TIMEOUT",
	"QUIZGEN_CORS_ORIGINS", "QUIZGEN_LOG_MODE", "QUIZGEN_QUESTION_COUNT",
	"QUIZGEN_VALIDATE_SCHEMA", "QUIZGEN_LLM_PROVIDER", "QUIZGEN_MODEL",
	"GEMINI_API_KEY", "GEMINI_MODEL",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range configVars {
		t.Setenv(k, "")
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, ":3000", cfg.ServerAddress)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 90*time.Second, cfg.RequestTimeout)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, "dev", cfg.LogMode)
	assert.Equal(t, "gemini", cfg.LLM.Provider)
	assert.Equal(t, "gemini-2.5-flash", cfg.Quiz.Model)
	assert.Equal(t, 10, cfg.Quiz.QuestionCount)
	assert.False(t, cfg.Quiz.ValidateSchema)
}

func TestFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("QUIZGEN_ADDR", ":8080")
	t.Setenv("QUIZGEN_REQUEST_TIMEOUT", "2m")
	t.Setenv("QUIZGEN_CORS_ORIGINS", "http://localhost:5173, https://quiz.example.com")
	t.Setenv("QUIZGEN_QUESTION_COUNT", "5")
	t.Setenv("QUIZGEN_VALIDATE_SCHEMA", "true")
	t.Setenv("GEMINI_MODEL", "gemini-2.0-flash")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.ServerAddress)
	assert.Equal(t, 2*time.Minute, cfg.RequestTimeout)
	assert.Equal(t, []string{"http://localhost:5173", "https://quiz.example.com"}, cfg.CORSOrigins)
	assert.Equal(t, 5, cfg.Quiz.QuestionCount)
	assert.True(t, cfg.Quiz.ValidateSchema)
	assert.Equal(t, "gemini-2.0-flash", cfg.Quiz.Model)
}

func TestFromEnv_InvalidValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("QUIZGEN_SHUTDOWN_TIMEOUT", "soon")
	t.Setenv("QUIZGEN_QUESTION_COUNT", "ten")
	t.Setenv("QUIZGEN_VALIDATE_SCHEMA", "maybe")

	_, err := FromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "QUIZGEN_SHUTDOWN_TIMEOUT")
	assert.Contains(t, err.Error(), "QUIZGEN_QUESTION_COUNT")
	assert.Contains(t, err.Error(), "QUIZGEN_VALIDATE_SCHEMA")
}

func TestFromEnv_NonPositiveQuestionCount(t *testing.T) {
	clearEnv(t)
	t.Setenv("QUIZGEN_QUESTION_COUNT", "0")

	_, err := FromEnv()
	assert.Error(t, err)
}

func TestLoad_EnvFile(t *testing.T) {
	clearEnv(t)
	// godotenv does not override variables that are already set, even to "".
	os.Unsetenv("QUIZGEN_ADDR")
	os.Unsetenv("GEMINI_API_KEY")

	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("QUIZGEN_ADDR=:4000\nGEMINI_API_KEY=from-file\n"), 0o600))
	t.Cleanup(func() {
		os.Unsetenv("QUIZGEN_ADDR")
		os.Unsetenv("GEMINI_API_KEY")
	})

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":4000", cfg.ServerAddress)
	assert.Equal(t, "from-file", cfg.LLM.Gemini.APIKey)
}

func TestLoad_MissingFileIsFine(t *testing.T) {
	clearEnv(t)
	_, err := Load(filepath.Join(t.TempDir(), "absent.env"))
	assert.NoError(t, err)
}
