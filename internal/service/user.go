package service

import (
	"context"
	"fmt"

	"github.com/formforge/formforge-server/internal/logger"
	"github.com/formforge/formforge-server/internal/model"
)

// User wraps the user store with password hashing on registration. Read and
// delete operations pass through to the store untouched.
type User struct {
	users  model.UserStore
	hasher model.PasswordHasher
	logger *logger.Logger
}

func NewUser(
	users model.UserStore,
	hasher model.PasswordHasher,
	logger *logger.Logger,
) *User {
	return &User{
		users:  users,
		hasher: hasher,
		logger: logger,
	}
}

// Create hashes the plaintext password and persists the new user. The
// plaintext never reaches the store.
func (s *User) Create(ctx context.Context, view model.UserCreate) (model.UserBase, error) {
	s.logger.Debug("User service: creating user")

	if view.Password == "" {
		return model.UserBase{}, &model.ValidationError{Field: "password", Message: "password is required"}
	}

	digest, err := s.hasher.Hash(view.Password)
	if err != nil {
		s.logger.Error("User service: failed to hash password",
			"error", err.Error())
		return model.UserBase{}, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := s.users.CreateWithHashedPassword(ctx, view, digest)
	if err != nil {
		return model.UserBase{}, err
	}

	s.logger.Info("User service: user created",
		"user_id", created.ID)

	return created, nil
}

func (s *User) GetByID(ctx context.Context, id int64) (model.UserDetail, error) {
	return s.users.GetByID(ctx, id)
}

func (s *User) GetAll(ctx context.Context) ([]model.UserList, error) {
	return s.users.GetAll(ctx)
}

// Update applies a partial update. Timestamps arriving in the payload are
// discarded before the store sees them.
func (s *User) Update(ctx context.Context, id int64, view model.UserUpdate) (model.UserBase, error) {
	view.Normalize()
	return s.users.Update(ctx, id, view)
}

func (s *User) Delete(ctx context.Context, id int64) error {
	return s.users.Delete(ctx, id)
}
