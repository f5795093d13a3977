package model

import (
	"context"
	"time"
)

// Role enumerates user roles. The set is open for extension; RoleUser is the
// default assigned on creation.
type Role string

const RoleUser Role = "user"

// User represents a stored user record. The hashed password never leaves the
// persistence and authentication layers; outward-facing code works with the
// view shapes instead.
type User struct {
	ID             int64     `db:"id"`
	Email          string    `db:"email"`
	FirstName      string    `db:"first_name"`
	LastName       string    `db:"last_name"`
	HashedPassword string    `db:"hashed_password"`
	Active         bool      `db:"active"`
	Role           Role      `db:"role"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

// UserStore defines persistence operations for users. GetByEmail returns
// (nil, nil) when no user matches: absence is a normal outcome for login and
// registration dedup, distinct from the not-found error of the id lookups.
type UserStore interface {
	Create(ctx context.Context, view UserCreate) (UserBase, error)
	CreateWithHashedPassword(ctx context.Context, view UserCreate, hashedPassword string) (UserBase, error)
	GetByID(ctx context.Context, id int64) (UserDetail, error)
	GetAll(ctx context.Context) ([]UserList, error)
	Update(ctx context.Context, id int64, view UserUpdate) (UserBase, error)
	Delete(ctx context.Context, id int64) error
	GetByEmail(ctx context.Context, email string) (*User, error)
}
