package llm

import "context"

// Provider is the narrow capability the rest of quizgen talks to.
// Every vendor SDK is hidden behind it; adapters normalize whatever
// envelope their SDK returns into a plain-text Response.
type Provider interface {
	// Generate sends a prompt to the given model and returns the text the
	// model produced. An empty model means the adapter's configured default.
	Generate(ctx context.Context, model string, req Request) (*Response, error)

	// ListModels returns the model identifiers usable for generation with
	// the caller's credentials. Adapters that cannot enumerate models
	// return an empty slice.
	ListModels(ctx context.Context) ([]string, error)
}

// Request describes what to send to the LLM.
type Request struct {
	// System is an optional system instruction.
	System string

	// Prompt is the single user turn. quizgen only does one-shot generation.
	Prompt string

	// JSON asks the provider for JSON-typed content (response MIME type,
	// JSON response format, etc.).
	JSON bool

	// Schema, when set, is forwarded to providers with native structured
	// output support. It implies JSON.
	Schema *Schema

	// MaxTokens is the maximum number of tokens in the response.
	// Zero lets the provider pick.
	MaxTokens int

	// Temperature controls randomness. Range: 0.0 - 1.0.
	Temperature float64
}

// Schema defines the JSON structure expected from the LLM.
type Schema struct {
	// Name identifies this schema, e.g. "question-set".
	Name string

	// Description is sent to providers that accept one.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Response holds the LLM's output.
type Response struct {
	// Text is the raw textual payload. Empty means the provider produced
	// nothing extractable.
	Text string

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the model that served the request.
	Model string

	// StopReason is normalized to "end" or "max_tokens".
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

func (r Request) wantsJSON() bool {
	return r.JSON || r.Schema != nil
}
