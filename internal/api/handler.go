package api

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/abhisek/quizgen/internal/quiz"
)

// maxBodyBytes caps request bodies; a 10-question set is a few KB.
const maxBodyBytes = 1 << 20

// QuestionGenerator produces questions for a subject and chapter.
type QuestionGenerator interface {
	GenerateTopic(ctx context.Context, subject, chapter string) ([]quiz.Question, error)
}

// ModelLister lists the model ids the configured provider accepts.
type ModelLister interface {
	ListModels(ctx context.Context) ([]string, error)
}

// Handler holds all dependencies needed by HTTP handlers.
type Handler struct {
	generator QuestionGenerator
	models    ModelLister
	logger    *zap.Logger
}

// NewHandler creates a Handler with the given dependencies.
func NewHandler(generator QuestionGenerator, models ModelLister, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		generator: generator,
		models:    models,
		logger:    logger,
	}
}

// errorResponse is the body of every non-2xx response.
type errorResponse struct {
	Message         string   `json:"message"`
	Error           string   `json:"error,omitempty"`
	AvailableModels []string `json:"availableModels,omitempty"`
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// decodeBody reads a size-limited JSON body into v.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	return json.NewDecoder(r.Body).Decode(v)
}

// Health reports that the process is serving.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
