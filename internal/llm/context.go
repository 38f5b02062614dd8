package llm

import "context"

type contextKey string

const (
	purposeKey      contextKey = "llm_purpose"
	generationIDKey contextKey = "llm_generation_id"
)

// WithPurpose attaches a purpose label to the context for event logging.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey, purpose)
}

// PurposeFrom extracts the purpose label from the context.
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey).(string); ok {
		return v
	}
	return "unknown"
}

// WithGenerationID tags every call made under ctx with one generation id,
// so a primary attempt and its fallback share it in the audit log.
func WithGenerationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, generationIDKey, id)
}

// GenerationIDFrom returns the generation id, or "" if none was attached.
func GenerationIDFrom(ctx context.Context) string {
	if v, ok := ctx.Value(generationIDKey).(string); ok {
		return v
	}
	return ""
}
