package llm

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrModelNotFound indicates the provider rejected the requested model id,
// typically with a 404. Callers may list models and try another.
type ErrModelNotFound struct {
	Model string
	Err   error
}

func (e *ErrModelNotFound) Error() string {
	return fmt.Sprintf("model %q not found: %v", e.Model, e.Err)
}

func (e *ErrModelNotFound) Unwrap() error { return e.Err }

// ErrRateLimit indicates the provider returned a rate limit error (429).
type ErrRateLimit struct {
	Err error
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("rate limited: %v", e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrInvalidResponse indicates the LLM returned content that does not
// conform to the requested schema.
type ErrInvalidResponse struct {
	Err error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("invalid LLM response: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }

// ErrProviderUnavailable indicates the provider is down or unreachable.
type ErrProviderUnavailable struct {
	Err error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("LLM provider unavailable: %v", e.Err)
	}
	return "LLM provider unavailable"
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// ErrProviderError is any other API failure (auth, quota, bad request).
type ErrProviderError struct {
	StatusCode int
	Err        error
}

func (e *ErrProviderError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("LLM provider error (status %d): %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("LLM provider error: %v", e.Err)
}

func (e *ErrProviderError) Unwrap() error { return e.Err }

// IsModelNotFound reports whether err carries a model-not-found condition.
func IsModelNotFound(err error) bool {
	var nf *ErrModelNotFound
	return errors.As(err, &nf)
}

// classifyStatus maps an HTTP status from a vendor SDK onto our error types.
// All adapters funnel their API errors through here.
func classifyStatus(status int, model string, err error) error {
	switch {
	case status == http.StatusNotFound:
		return &ErrModelNotFound{Model: model, Err: err}
	case status == http.StatusTooManyRequests:
		return &ErrRateLimit{Err: err}
	case status >= 500:
		return &ErrProviderUnavailable{Err: err}
	case status == 0:
		// No HTTP status: the call never reached the API.
		return &ErrProviderUnavailable{Err: err}
	default:
		return &ErrProviderError{StatusCode: status, Err: err}
	}
}
