package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/formforge/formforge-server/internal/logger"
	"github.com/formforge/formforge-server/internal/model"
)

// GenerativeService builds React components from user preferences.
type GenerativeService interface {
	BuildComponent(ctx context.Context, view model.GenerativeCreate) (model.GenerativeDetail, error)
}

// Generative handles component generation endpoints.
type Generative struct {
	generativeService GenerativeService
	logger            *logger.Logger
}

// NewGenerative creates a new Generative handler instance.
func NewGenerative(generativeService GenerativeService, logger *logger.Logger) *Generative {
	return &Generative{generativeService: generativeService, logger: logger}
}

// React generates a single-line React component for the given preferences.
func (h *Generative) React(w http.ResponseWriter, r *http.Request) {
	var view model.GenerativeCreate
	if err := json.NewDecoder(r.Body).Decode(&view); err != nil {
		WriteError(w, h.logger, &model.ValidationError{Message: "malformed request body"})
		return
	}

	detail, err := h.generativeService.BuildComponent(r.Context(), view)
	if err != nil {
		WriteError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, detail)
}
