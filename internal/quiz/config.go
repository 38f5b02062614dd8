package quiz

// Config controls the behavior of the Generator.
type Config struct {
	// Model is the preferred model id. Empty means the provider default.
	Model string

	// QuestionCount is how many questions GenerateTopic asks for.
	QuestionCount int

	// ValidateSchema checks every generated question against
	// QuestionSchema and sends QuestionSetSchema to the provider.
	ValidateSchema bool

	// MaxTokens is the token budget for the model response.
	MaxTokens int

	// Temperature controls model output randomness (0.0-1.0).
	Temperature float64
}

// DefaultConfig returns a Config with recommended defaults.
func DefaultConfig() Config {
	return Config{
		QuestionCount: DefaultQuestionCount,
		MaxTokens:     8192,
		Temperature:   0.7,
	}
}
