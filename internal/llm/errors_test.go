package llm

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyStatus(t *testing.T) {
	base := errors.New("boom")

	tests := []struct {
		name   string
		status int
		check  func(error) bool
	}{
		{"404", http.StatusNotFound, func(err error) bool { var e *ErrModelNotFound; return errors.As(err, &e) && e.Model == "m" }},
		{"429", http.StatusTooManyRequests, func(err error) bool { var e *ErrRateLimit; return errors.As(err, &e) }},
		{"500", http.StatusInternalServerError, func(err error) bool { var e *ErrProviderUnavailable; return errors.As(err, &e) }},
		{"503", http.StatusServiceUnavailable, func(err error) bool { var e *ErrProviderUnavailable; return errors.As(err, &e) }},
		{"no status", 0, func(err error) bool { var e *ErrProviderUnavailable; return errors.As(err, &e) }},
		{"400", http.StatusBadRequest, func(err error) bool { var e *ErrProviderError; return errors.As(err, &e) && e.StatusCode == 400 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := classifyStatus(tt.status, "m", base)
			assert.True(t, tt.check(err), "unexpected error %T", err)
			assert.ErrorIs(t, err, base)
		})
	}
}

func TestIsModelNotFound(t *testing.T) {
	wrapped := fmt.Errorf("calling provider: %w", &ErrModelNotFound{Model: "x", Err: errors.New("404")})
	assert.True(t, IsModelNotFound(wrapped))
	assert.False(t, IsModelNotFound(&ErrRateLimit{}))
	assert.False(t, IsModelNotFound(nil))
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "LLM provider unavailable", (&ErrProviderUnavailable{}).Error())
	assert.Contains(t, (&ErrProviderError{StatusCode: 401, Err: errors.New("bad key")}).Error(), "status 401")
	assert.Contains(t, (&ErrModelNotFound{Model: "gemini-x", Err: errors.New("nf")}).Error(), `"gemini-x"`)

	assert.Equal(t, "rate limited: quota exceeded", classifyStatus(http.StatusTooManyRequests, "m", errors.New("quota exceeded")).Error())
}

func TestLookupCost(t *testing.T) {
	c := LookupCost("gemini-2.5-flash")
	if assert.NotNil(t, c) {
		assert.InDelta(t, 0.3+2.5, c.Cost(1_000_000, 1_000_000), 1e-9)
	}
	assert.NotNil(t, LookupCost("google/gemini-2.5-flash"))
	assert.Nil(t, LookupCost("no-such-model"))
}
