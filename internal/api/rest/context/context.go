// Package context stores the authenticated user on the request context.
package context

import (
	"context"

	"github.com/formforge/formforge-server/internal/model"
)

var _ model.ContextManager = (*Manager)(nil)

type contextKey int

const userKey contextKey = iota

// Manager sets and retrieves the authenticated user on HTTP request contexts.
type Manager struct{}

// NewManager creates a new context manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// SetUserToContext returns a child context carrying the authenticated user.
func (m *Manager) SetUserToContext(ctx context.Context, user model.UserDetail) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// GetUserFromContext retrieves the authenticated user from the context.
// The boolean reports whether a user was present.
func (m *Manager) GetUserFromContext(ctx context.Context) (model.UserDetail, bool) {
	user, ok := ctx.Value(userKey).(model.UserDetail)
	return user, ok
}
