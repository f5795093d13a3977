package model

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is the sentinel every NotFoundError matches via errors.Is.
	ErrNotFound = errors.New("not found")
	// ErrInvalidCredentials covers both an unknown identifier and a wrong
	// password; callers must not be able to tell which.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInactiveAccount means the credentials were valid but the account is
	// disabled.
	ErrInactiveAccount = errors.New("account is inactive")
	// ErrInvalidToken covers signature, structure, expiry and subject
	// resolution failures uniformly.
	ErrInvalidToken = errors.New("invalid token")
	// ErrEmailTaken means a registration collided with an existing email.
	ErrEmailTaken = errors.New("email already taken")
	// ErrValidation is the sentinel every ValidationError matches via errors.Is.
	ErrValidation = errors.New("invalid input")
)

// NotFoundError is the standardized not-found signal used across every
// resource. It names the entity type and the id the lookup missed.
type NotFoundError struct {
	Entity string
	ID     int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %d not found", e.Entity, e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// ValidationError reports malformed create or update input.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
