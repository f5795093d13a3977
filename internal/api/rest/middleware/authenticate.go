package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/formforge/formforge-server/internal/api/rest/handler"
	"github.com/formforge/formforge-server/internal/logger"
	"github.com/formforge/formforge-server/internal/model"
)

// AuthService resolves the current user from a bearer token.
type AuthService interface {
	ResolveCurrentUser(ctx context.Context, tokenString string) (model.UserDetail, error)
}

// Authenticate validates bearer tokens and injects the resolved user into the
// request context.
type Authenticate struct {
	authService    AuthService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(authService AuthService, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{authService: authService, contextManager: contextManager, logger: logger}
}

// Handle rejects requests without a valid bearer token. A missing or
// malformed Authorization header fails the same way as a bad token.
func (m *Authenticate) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString, ok := bearerToken(r)
		if !ok {
			handler.WriteError(w, m.logger, model.ErrInvalidToken)
			return
		}

		user, err := m.authService.ResolveCurrentUser(r.Context(), tokenString)
		if err != nil {
			handler.WriteError(w, m.logger, err)
			return
		}

		ctx := m.contextManager.SetUserToContext(r.Context(), user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}

	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
		return "", false
	}

	return token, true
}
