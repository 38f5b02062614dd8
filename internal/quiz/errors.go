package quiz

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is returned when grading input is not the expected shape.
var ErrInvalidInput = errors.New("invalid input")

// ErrNoPayload is returned when the model response carries no text.
var ErrNoPayload = errors.New("no JSON returned from model")

// MalformedResponseError wraps the failure to parse or validate the
// model's JSON output.
type MalformedResponseError struct {
	Err error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed model response: %v", e.Err)
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }

// ModelUnavailableError reports that the requested model was rejected and
// no listed alternative produced questions. AvailableModels is never nil.
type ModelUnavailableError struct {
	Model           string
	Fallback        string // empty when no alternative was tried
	AvailableModels []string
	Err             error
}

func (e *ModelUnavailableError) Error() string {
	if e.Fallback != "" {
		return fmt.Sprintf("requested model %q not found and fallback %q failed: %v", e.Model, e.Fallback, e.Err)
	}
	return fmt.Sprintf("requested model %q not found", e.Model)
}

func (e *ModelUnavailableError) Unwrap() error { return e.Err }
