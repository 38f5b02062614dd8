package llm

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/quizgen/internal/store"
)

// LoggingProvider is a decorator that logs every capability call and, when
// a repo is configured, records it as an audit event. Only call metadata is
// recorded; prompts and generated content are not.
type LoggingProvider struct {
	inner    Provider
	provider string
	repo     store.EventRepo
	logger   *zap.Logger
}

// WithLogging wraps a Provider with call logging.
func WithLogging(p Provider, providerName string, repo store.EventRepo, logger *zap.Logger) Provider {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LoggingProvider{inner: p, provider: providerName, repo: repo, logger: logger}
}

func (l *LoggingProvider) Generate(ctx context.Context, model string, req Request) (*Response, error) {
	start := time.Now()
	resp, err := l.inner.Generate(ctx, model, req)

	data := l.baseEvent(ctx, store.OperationGenerate, model, start, err)
	if resp != nil {
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
		if resp.Model != "" {
			data.Model = resp.Model
		}
	}

	fields := []zap.Field{
		zap.String("provider", l.provider),
		zap.String("model", data.Model),
		zap.String("purpose", data.Purpose),
		zap.String("generation_id", data.GenerationID),
		zap.Int64("latency_ms", data.LatencyMs),
	}
	if err != nil {
		l.logger.Warn("llm generate failed", append(fields, zap.Error(err))...)
	} else {
		l.logger.Info("llm generate",
			append(fields,
				zap.Int("input_tokens", data.InputTokens),
				zap.Int("output_tokens", data.OutputTokens),
			)...)
	}

	l.record(ctx, data)
	return resp, err
}

func (l *LoggingProvider) ListModels(ctx context.Context) ([]string, error) {
	start := time.Now()
	models, err := l.inner.ListModels(ctx)

	data := l.baseEvent(ctx, store.OperationListModels, "", start, err)
	if err != nil {
		l.logger.Warn("llm list models failed",
			zap.String("provider", l.provider),
			zap.Int64("latency_ms", data.LatencyMs),
			zap.Error(err),
		)
	} else {
		l.logger.Debug("llm list models",
			zap.String("provider", l.provider),
			zap.Int("count", len(models)),
			zap.Int64("latency_ms", data.LatencyMs),
		)
	}

	l.record(ctx, data)
	return models, err
}

func (l *LoggingProvider) baseEvent(ctx context.Context, op, model string, start time.Time, err error) store.LLMRequestEventData {
	data := store.LLMRequestEventData{
		GenerationID: GenerationIDFrom(ctx),
		Provider:     l.provider,
		Model:        model,
		Operation:    op,
		Purpose:      PurposeFrom(ctx),
		LatencyMs:    time.Since(start).Milliseconds(),
		Success:      err == nil,
	}
	if err != nil {
		data.ErrorMessage = err.Error()
	}
	return data
}

// record appends the event but never fails the call if auditing fails.
// The write is detached from ctx so a cancelled request is still recorded.
func (l *LoggingProvider) record(ctx context.Context, data store.LLMRequestEventData) {
	if l.repo == nil {
		return
	}
	if err := l.repo.AppendLLMRequest(context.WithoutCancel(ctx), data); err != nil {
		l.logger.Warn("failed to record LLM request event", zap.Error(err))
	}
}
