package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/formforge/formforge-server/internal/model"
)

var _ model.UserStore = (*UserRepository)(nil)

// UserRepository specializes the generic repository for users and adds the
// email lookup and password-aware creation the authentication flow needs.
type UserRepository struct {
	*Repository[model.User, model.UserBase, model.UserDetail, model.UserList, model.UserCreate, model.UserUpdate]
}

func NewUserRepository(db *Connection) *UserRepository {
	desc := Descriptor[model.User]{
		Entity: "User",
		Table:  "users",
		Columns: []string{
			"id", "email", "first_name", "last_name", "hashed_password",
			"active", "role", "created_at", "updated_at",
		},
		WriteColumns: []string{
			"email", "first_name", "last_name", "hashed_password", "active", "role",
		},
		WriteValues: func(u model.User) []any {
			return []any{u.Email, u.FirstName, u.LastName, u.HashedPassword, u.Active, u.Role}
		},
		DefaultOrder: "id",
		Conflict:     model.ErrEmailTaken,
	}

	views := Views[model.User, model.UserBase, model.UserDetail, model.UserList, model.UserCreate, model.UserUpdate]{
		ToBase:     model.User.Base,
		ToDetail:   model.User.Detail,
		ToList:     model.User.List,
		FromCreate: model.UserCreate.Entity,
		ApplyUpdate: func(u *model.User, patch model.UserUpdate) {
			patch.Apply(u)
		},
	}

	return &UserRepository{
		Repository: NewRepository(db, desc, views),
	}
}

// GetByEmail returns the stored user for email, or (nil, nil) when no such
// user exists. Absence here is a normal outcome, not an error.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `SELECT id, email, first_name, last_name, hashed_password, active, role, created_at, updated_at
			  FROM users WHERE email = $1`

	rows, err := r.db.Query(ctx, query, email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	user, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.User])
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return &user, nil
}

// CreateWithHashedPassword stores a new user with a caller-supplied password
// digest, so the create view never has to carry the digest itself.
func (r *UserRepository) CreateWithHashedPassword(ctx context.Context, view model.UserCreate, hashedPassword string) (model.UserBase, error) {
	entity, err := r.views.FromCreate(view)
	if err != nil {
		return model.UserBase{}, err
	}
	entity.HashedPassword = hashedPassword

	saved, err := r.insert(ctx, r.db, entity)
	if err != nil {
		return model.UserBase{}, r.writeErr("create", err)
	}

	return r.views.ToBase(saved), nil
}
