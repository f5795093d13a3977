package handler

import (
	"context"
	"net/http"

	"github.com/formforge/formforge-server/internal/logger"
	"github.com/formforge/formforge-server/internal/model"
)

// AuthService handles credential verification and token issuance.
type AuthService interface {
	Login(ctx context.Context, email, password string) (model.Token, error)
}

// Auth handles login and current-user endpoints.
type Auth struct {
	authService    AuthService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuth creates a new Auth handler instance.
func NewAuth(authService AuthService, contextManager model.ContextManager, logger *logger.Logger) *Auth {
	return &Auth{
		authService:    authService,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Token exchanges a form-encoded username/password pair for a bearer token.
// The username field carries the email.
func (h *Auth) Token(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		WriteError(w, h.logger, &model.ValidationError{Message: "malformed form body"})
		return
	}

	email := r.PostFormValue("username")
	password := r.PostFormValue("password")
	if email == "" || password == "" {
		WriteError(w, h.logger, &model.ValidationError{Message: "username and password are required"})
		return
	}

	token, err := h.authService.Login(r.Context(), email, password)
	if err != nil {
		WriteError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, token)
}

// Me returns the authenticated user. The authenticate middleware has already
// resolved the token, so an absent user here is an internal fault.
func (h *Auth) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := h.contextManager.GetUserFromContext(r.Context())
	if !ok {
		WriteError(w, h.logger, model.ErrInvalidToken)
		return
	}

	writeJSON(w, http.StatusOK, user)
}
