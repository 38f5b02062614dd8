package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.DB() == nil {
		t.Fatal("expected non-nil db")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestMigrationCreatesTable(t *testing.T) {
	s := openTestStore(t)

	var name string
	err := s.DB().QueryRow(
		"SELECT name FROM sqlite_master WHERE type='table' AND name='llm_request_events'",
	).Scan(&name)
	if err != nil {
		t.Fatalf("query sqlite_master: %v", err)
	}
	if name != "llm_request_events" {
		t.Errorf("table name = %q, want 'llm_request_events'", name)
	}
}

func TestReopenKeepsEvents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reopen.db")
	ctx := context.Background()

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.EventRepo().AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "mock", Operation: OperationGenerate, Purpose: "question-gen", Success: true,
	}))
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()

	events, err := s.EventRepo().QueryLLMEvents(ctx, QueryOpts{})
	require.NoError(t, err)
	assert.Len(t, events, 1)
}

func TestAppendAndQueryLLMEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{GenerationID: "g1", Provider: "gemini", Model: "gemini-2.5-flash", Operation: OperationGenerate, Purpose: "question-gen", LatencyMs: 10, Success: false, ErrorMessage: "model not found"},
		{GenerationID: "g1", Provider: "gemini", Operation: OperationListModels, Purpose: "question-gen", LatencyMs: 5, Success: true},
		{GenerationID: "g1", Provider: "gemini", Model: "gemini-2.0-flash", Operation: OperationGenerate, Purpose: "question-gen", InputTokens: 100, OutputTokens: 400, LatencyMs: 30, Success: true},
		{Provider: "gemini", Operation: OperationListModels, Purpose: "models", Success: true},
	}
	for _, e := range events {
		require.NoError(t, repo.AppendLLMRequest(ctx, e))
	}

	all, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, "models", all[0].Purpose, "newest first")
	assert.Greater(t, all[0].ID, all[1].ID)
	assert.WithinDuration(t, time.Now(), all[0].Timestamp, time.Minute)

	limited, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, limited, 2)

	gen, err := repo.QueryLLMEvents(ctx, QueryOpts{Purpose: "question-gen"})
	require.NoError(t, err)
	assert.Len(t, gen, 3)

	after, err := repo.QueryLLMEvents(ctx, QueryOpts{After: all[1].ID})
	require.NoError(t, err)
	require.Len(t, after, 1)
	assert.Equal(t, all[0].ID, after[0].ID)

	future, err := repo.QueryLLMEvents(ctx, QueryOpts{From: time.Now().Add(time.Hour)})
	require.NoError(t, err)
	assert.Empty(t, future)

	failed := all[3]
	assert.False(t, failed.Success)
	assert.Equal(t, "model not found", failed.ErrorMessage)
	assert.Equal(t, "g1", failed.GenerationID)
}

func TestGetLLMEvent(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	require.NoError(t, repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "openai", Model: "gpt-4o-mini", Operation: OperationGenerate, Purpose: "question-gen", Success: true,
	}))
	all, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, all, 1)

	e, err := repo.GetLLMEvent(ctx, all[0].ID)
	require.NoError(t, err)
	require.NotNil(t, e)
	assert.Equal(t, "gpt-4o-mini", e.Model)

	missing, err := repo.GetLLMEvent(ctx, all[0].ID+100)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestLLMUsageAggregates(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, e := range []LLMRequestEventData{
		{Provider: "gemini", Model: "gemini-2.5-flash", Operation: OperationGenerate, Purpose: "question-gen", InputTokens: 10, OutputTokens: 20, LatencyMs: 100, Success: true},
		{Provider: "gemini", Model: "gemini-2.5-flash", Operation: OperationGenerate, Purpose: "question-gen", InputTokens: 30, OutputTokens: 40, LatencyMs: 300, Success: true},
		{Provider: "gemini", Model: "gemini-2.0-flash", Operation: OperationGenerate, Purpose: "play", InputTokens: 5, OutputTokens: 5, LatencyMs: 50, Success: true},
		{Provider: "gemini", Operation: OperationListModels, Purpose: "question-gen", LatencyMs: 1000, Success: true},
	} {
		require.NoError(t, repo.AppendLLMRequest(ctx, e))
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	require.NoError(t, err)
	require.Len(t, byPurpose, 2)
	assert.Equal(t, PurposeUsage{Purpose: "play", Calls: 1, InputTokens: 5, OutputTokens: 5, AvgLatencyMs: 50}, byPurpose[0])
	assert.Equal(t, PurposeUsage{Purpose: "question-gen", Calls: 2, InputTokens: 40, OutputTokens: 60, AvgLatencyMs: 200}, byPurpose[1])

	byModel, err := repo.LLMUsageByModel(ctx)
	require.NoError(t, err)
	require.Len(t, byModel, 2)
	assert.Equal(t, ModelUsage{Model: "gemini-2.0-flash", Calls: 1, InputTokens: 5, OutputTokens: 5}, byModel[0])
	assert.Equal(t, ModelUsage{Model: "gemini-2.5-flash", Calls: 2, InputTokens: 40, OutputTokens: 60}, byModel[1])
}

func TestDefaultDBPath(t *testing.T) {
	dir := t.TempDir()

	t.Setenv("QUIZGEN_DB", filepath.Join(dir, "explicit", "q.db"))
	p, err := DefaultDBPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "explicit", "q.db"), p)
	assert.DirExists(t, filepath.Join(dir, "explicit"))

	t.Setenv("QUIZGEN_DB", "")
	t.Setenv("XDG_DATA_HOME", dir)
	p, err = DefaultDBPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "quizgen", "quizgen.db"), p)
}
