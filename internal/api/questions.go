package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/abhisek/quizgen/internal/quiz"
)

type generateRequest struct {
	Subject string `json:"subject"`
	Chapter string `json:"chapter"`
}

type generateResponse struct {
	Questions []quiz.Question `json:"questions"`
}

// GenerateQuestions handles POST /questions/generate.
func (h *Handler) GenerateQuestions(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := decodeBody(w, r, &req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Message: "Invalid request body", Error: err.Error()})
		return
	}
	req.Subject = strings.TrimSpace(req.Subject)
	req.Chapter = strings.TrimSpace(req.Chapter)
	if req.Subject == "" || req.Chapter == "" {
		respondJSON(w, http.StatusBadRequest, errorResponse{Message: "subject and chapter are required"})
		return
	}

	questions, err := h.generator.GenerateTopic(r.Context(), req.Subject, req.Chapter)
	if err != nil {
		var unavailable *quiz.ModelUnavailableError
		if errors.As(err, &unavailable) {
			h.logger.Warn("requested model not found",
				zap.String("request_id", middleware.GetReqID(r.Context())),
				zap.Strings("available_models", unavailable.AvailableModels),
				zap.Error(err),
			)
			respondJSON(w, http.StatusBadRequest, struct {
				Message         string   `json:"message"`
				AvailableModels []string `json:"availableModels"`
			}{
				Message:         "Requested model not found for your API/version",
				AvailableModels: unavailable.AvailableModels,
			})
			return
		}

		h.logger.Error("generating questions",
			zap.String("request_id", middleware.GetReqID(r.Context())),
			zap.String("subject", req.Subject),
			zap.String("chapter", req.Chapter),
			zap.Error(err),
		)
		respondJSON(w, http.StatusInternalServerError, errorResponse{Message: "Error generating questions", Error: err.Error()})
		return
	}

	respondJSON(w, http.StatusCreated, generateResponse{Questions: questions})
}

type evaluateRequest struct {
	UserAnswers       json.RawMessage `json:"userAnswers"`
	OriginalQuestions json.RawMessage `json:"originalQuestions"`
}

type evaluateResponse struct {
	Evaluation []quiz.GradingResult `json:"evaluation"`
	Summary    quiz.Summary         `json:"summary"`
}

// EvaluateAnswers handles POST /questions/evaluate.
func (h *Handler) EvaluateAnswers(w http.ResponseWriter, r *http.Request) {
	var req evaluateRequest
	if err := decodeBody(w, r, &req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Message: "Invalid request body", Error: err.Error()})
		return
	}
	if isAbsent(req.UserAnswers) || isAbsent(req.OriginalQuestions) {
		respondJSON(w, http.StatusBadRequest, errorResponse{Message: "Missing userAnswers or originalQuestions in request."})
		return
	}

	evaluation, err := quiz.EvaluateJSON(req.OriginalQuestions, req.UserAnswers)
	if err != nil {
		if errors.Is(err, quiz.ErrInvalidInput) {
			respondJSON(w, http.StatusBadRequest, errorResponse{Message: "Invalid userAnswers or originalQuestions in request.", Error: err.Error()})
			return
		}
		h.logger.Error("evaluating answers",
			zap.String("request_id", middleware.GetReqID(r.Context())),
			zap.Error(err),
		)
		respondJSON(w, http.StatusInternalServerError, errorResponse{Message: "Error evaluating answers", Error: err.Error()})
		return
	}

	respondJSON(w, http.StatusOK, evaluateResponse{
		Evaluation: evaluation,
		Summary:    quiz.Summarize(evaluation),
	})
}

func isAbsent(raw json.RawMessage) bool {
	s := strings.TrimSpace(string(raw))
	return s == "" || s == "null"
}
