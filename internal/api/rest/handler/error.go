package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/formforge/formforge-server/internal/logger"
	"github.com/formforge/formforge-server/internal/model"
)

// ErrorResponse is the JSON body returned for failed requests.
type ErrorResponse struct {
	Error   string `json:"error"`
	ErrorID string `json:"errorId,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// WriteError maps domain errors to HTTP responses. Unclassified errors get an
// opaque 500 with a correlation id, the details stay in the log.
func WriteError(w http.ResponseWriter, l *logger.Logger, err error) {
	var notFoundErr *model.NotFoundError
	var validationErr *model.ValidationError

	switch {
	case errors.As(err, &notFoundErr):
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: notFoundErr.Error()})
	case errors.Is(err, model.ErrInvalidCredentials):
		w.Header().Set("WWW-Authenticate", "Bearer")
		writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "incorrect username or password"})
	case errors.Is(err, model.ErrInvalidToken):
		w.Header().Set("WWW-Authenticate", "Bearer")
		writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "could not validate credentials"})
	case errors.Is(err, model.ErrInactiveAccount):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "inactive user"})
	case errors.Is(err, model.ErrEmailTaken):
		writeJSON(w, http.StatusConflict, ErrorResponse{Error: "email already registered"})
	case errors.As(err, &validationErr):
		writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{Error: validationErr.Error()})
	default:
		errorID := uuid.NewString()
		l.WithCorrelationID(errorID).Error("request failed",
			"error", err.Error())
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{
			Error:   "internal server error",
			ErrorID: errorID,
		})
	}
}
