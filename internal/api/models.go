package api

import (
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/abhisek/quizgen/internal/llm"
)

// ListModels handles GET /models.
func (h *Handler) ListModels(w http.ResponseWriter, r *http.Request) {
	ctx := llm.WithPurpose(r.Context(), "models")
	models, err := h.models.ListModels(ctx)
	if err != nil {
		h.logger.Error("listing models",
			zap.String("request_id", middleware.GetReqID(r.Context())),
			zap.Error(err),
		)
		respondJSON(w, http.StatusBadGateway, errorResponse{Message: "Error listing models", Error: err.Error()})
		return
	}
	if models == nil {
		models = []string{}
	}
	respondJSON(w, http.StatusOK, map[string][]string{"models": models})
}
