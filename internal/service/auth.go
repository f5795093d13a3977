package service

import (
	"context"
	"fmt"

	"github.com/formforge/formforge-server/internal/logger"
	"github.com/formforge/formforge-server/internal/model"
)

// Auth orchestrates credential verification and token issuance for login and
// current-user resolution.
type Auth struct {
	users  model.UserStore
	hasher model.PasswordHasher
	tokens model.TokenManager
	logger *logger.Logger
}

func NewAuth(
	users model.UserStore,
	hasher model.PasswordHasher,
	tokens model.TokenManager,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		users:  users,
		hasher: hasher,
		tokens: tokens,
		logger: logger,
	}
}

// Login verifies the email/password pair and issues a bearer token bound to
// the user's email. The lookup is case-sensitive, matching the email exactly
// as stored. An unknown email and a wrong password produce the same error, so
// the response never reveals whether the email is registered.
func (a *Auth) Login(ctx context.Context, email, password string) (model.Token, error) {
	a.logger.Debug("Auth service: processing login")

	user, err := a.users.GetByEmail(ctx, email)
	if err != nil {
		a.logger.Error("Auth service: failed to get user by email",
			"error", err.Error())
		return model.Token{}, fmt.Errorf("failed to get user by email: %w", err)
	}
	if user == nil {
		return model.Token{}, model.ErrInvalidCredentials
	}

	if !user.Active {
		return model.Token{}, model.ErrInactiveAccount
	}

	ok, err := a.hasher.Verify(password, user.HashedPassword)
	if err != nil {
		// The stored digest is unusable. An internal fault, not a failed
		// authentication.
		a.logger.Error("Auth service: stored password digest is unusable",
			"user_id", user.ID,
			"error", err.Error())
		return model.Token{}, fmt.Errorf("failed to verify password: %w", err)
	}
	if !ok {
		return model.Token{}, model.ErrInvalidCredentials
	}

	accessToken, err := a.tokens.Issue(user.Email)
	if err != nil {
		a.logger.Error("Auth service: failed to issue token",
			"user_id", user.ID,
			"error", err.Error())
		return model.Token{}, fmt.Errorf("failed to issue token: %w", err)
	}

	a.logger.Info("Auth service: login completed",
		"user_id", user.ID)

	return model.Token{AccessToken: accessToken, TokenType: "bearer"}, nil
}

// ResolveCurrentUser validates the token and loads the subject's detail view.
// A user deleted after token issuance is indistinguishable from a bad token.
func (a *Auth) ResolveCurrentUser(ctx context.Context, tokenString string) (model.UserDetail, error) {
	subject, err := a.tokens.Validate(tokenString)
	if err != nil {
		return model.UserDetail{}, model.ErrInvalidToken
	}

	user, err := a.users.GetByEmail(ctx, subject)
	if err != nil {
		a.logger.Error("Auth service: failed to get user by token subject",
			"error", err.Error())
		return model.UserDetail{}, fmt.Errorf("failed to get user by email: %w", err)
	}
	if user == nil {
		return model.UserDetail{}, model.ErrInvalidToken
	}

	return user.Detail(), nil
}
