package quiz

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/quizgen/internal/llm"
)

// Purpose is the audit label attached to question generation calls.
const Purpose = "question-gen"

// Generator asks an llm.Provider for quiz questions. When the preferred
// model is rejected as not found it lists the provider's models and
// retries once with the first one. It holds no per-call state.
type Generator struct {
	provider llm.Provider
	config   Config
	logger   *zap.Logger
}

// NewGenerator creates a Generator. A nil logger discards output.
func NewGenerator(provider llm.Provider, cfg Config, logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{provider: provider, config: cfg, logger: logger}
}

// GenerateTopic builds the prompt for a subject and chapter and generates
// Config.QuestionCount questions.
func (g *Generator) GenerateTopic(ctx context.Context, subject, chapter string) ([]Question, error) {
	return g.Generate(ctx, BuildPrompt(subject, chapter, g.config.QuestionCount))
}

// Generate sends prompt to the provider and returns the parsed questions.
//
// Errors:
//   - ErrNoPayload when the response has no text.
//   - *MalformedResponseError when the text is not valid JSON (or fails
//     schema validation when enabled).
//   - *ModelUnavailableError when the model was not found and no listed
//     alternative succeeded.
//   - any other provider error, returned unchanged.
func (g *Generator) Generate(ctx context.Context, prompt string) ([]Question, error) {
	if llm.PurposeFrom(ctx) == "unknown" {
		ctx = llm.WithPurpose(ctx, Purpose)
	}
	if llm.GenerationIDFrom(ctx) == "" {
		ctx = llm.WithGenerationID(ctx, uuid.NewString())
	}

	questions, err := g.attempt(ctx, g.config.Model, prompt)
	if err == nil {
		return questions, nil
	}
	if !llm.IsModelNotFound(err) {
		return nil, err
	}

	available := g.availableModels(ctx)
	if len(available) == 0 {
		g.logger.Warn("model not found and no alternatives listed",
			zap.String("model", g.config.Model),
			zap.String("generation_id", llm.GenerationIDFrom(ctx)),
		)
		return nil, &ModelUnavailableError{Model: g.config.Model, AvailableModels: available, Err: err}
	}

	fallback := available[0]
	g.logger.Warn("model not found, retrying with fallback",
		zap.String("model", g.config.Model),
		zap.String("fallback", fallback),
		zap.Int("available", len(available)),
		zap.String("generation_id", llm.GenerationIDFrom(ctx)),
	)

	questions, err = g.attempt(ctx, fallback, prompt)
	if err != nil {
		return nil, &ModelUnavailableError{
			Model:           g.config.Model,
			Fallback:        fallback,
			AvailableModels: available,
			Err:             err,
		}
	}
	return questions, nil
}

// attempt runs one generate, extract and parse pass against model.
func (g *Generator) attempt(ctx context.Context, model, prompt string) ([]Question, error) {
	req := llm.Request{
		System:      systemPrompt,
		Prompt:      prompt,
		JSON:        true,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}
	if g.config.ValidateSchema {
		req.Schema = QuestionSetSchema
	}

	resp, err := g.provider.Generate(ctx, model, req)
	if err != nil {
		return nil, err
	}
	if resp == nil || strings.TrimSpace(resp.Text) == "" {
		return nil, ErrNoPayload
	}

	return parseQuestionSet([]byte(resp.Text), g.config.ValidateSchema)
}

// availableModels lists the provider's models. A listing failure counts as
// no models. The result is never nil.
func (g *Generator) availableModels(ctx context.Context) []string {
	models, err := g.provider.ListModels(ctx)
	if err != nil {
		g.logger.Warn("listing models failed", zap.Error(err))
		return []string{}
	}
	out := make([]string, 0, len(models))
	for _, m := range models {
		if m != "" {
			out = append(out, m)
		}
	}
	return out
}

// parseQuestionSet accepts either a bare array of questions or an object
// with a "questions" array. Any other JSON value yields no questions.
func parseQuestionSet(text []byte, validate bool) ([]Question, error) {
	var raw json.RawMessage
	if err := json.Unmarshal(text, &raw); err != nil {
		return nil, &MalformedResponseError{Err: err}
	}

	if len(raw) == 0 {
		return []Question{}, nil
	}

	var items json.RawMessage
	switch raw[0] {
	case '[':
		items = raw
	case '{':
		var envelope struct {
			Questions json.RawMessage `json:"questions"`
		}
		if err := json.Unmarshal(raw, &envelope); err != nil {
			return nil, &MalformedResponseError{Err: err}
		}
		items = bytes.TrimSpace(envelope.Questions)
	}
	if len(items) == 0 || items[0] != '[' {
		return []Question{}, nil
	}

	if validate {
		var values []any
		if err := json.Unmarshal(items, &values); err != nil {
			return nil, &MalformedResponseError{Err: err}
		}
		for _, v := range values {
			if err := llm.ValidateJSON(QuestionSchema, v); err != nil {
				return nil, &MalformedResponseError{Err: err}
			}
		}
	}

	// Elements pass through as received; only a syntax error fails here.
	questions := []Question{}
	if err := json.Unmarshal(items, &questions); err != nil {
		return nil, &MalformedResponseError{Err: err}
	}
	return questions, nil
}
