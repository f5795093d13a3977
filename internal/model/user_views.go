package model

import "time"

// UserBase is the canonical public projection of a user. It carries no
// password material.
type UserBase struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Active    bool      `json:"active"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UserDetail is the single-record read projection. Structurally identical to
// UserBase until it grows relation data.
type UserDetail UserBase

// UserList is the collection read projection.
type UserList UserBase

// UserCreate is the input-only shape for registration. The plaintext password
// is consumed by the credential verifier and must never reach storage or any
// output projection.
type UserCreate struct {
	Email     string `json:"email" validate:"required,email"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Password  string `json:"password" validate:"required,min=8"`
	Role      Role   `json:"role" validate:"omitempty,oneof=user"`
}

// UserUpdate is a partial patch: nil fields are left untouched. The timestamp
// fields are accepted on the wire but always discarded by Normalize, so a
// client cannot tamper with server-managed clocks.
type UserUpdate struct {
	Email     *string    `json:"email" validate:"omitempty,email"`
	FirstName *string    `json:"firstName"`
	LastName  *string    `json:"lastName"`
	Active    *bool      `json:"active"`
	Role      *Role      `json:"role" validate:"omitempty,oneof=user"`
	CreatedAt *time.Time `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt"`
}

// Normalize discards server-managed fields a client may have supplied.
func (u *UserUpdate) Normalize() {
	u.CreatedAt = nil
	u.UpdatedAt = nil
}

// Base projects the stored user onto its public shape.
func (u User) Base() UserBase {
	return UserBase{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Active:    u.Active,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// Detail projects the stored user onto its detail shape.
func (u User) Detail() UserDetail {
	return UserDetail(u.Base())
}

// List projects the stored user onto its list shape.
func (u User) List() UserList {
	return UserList(u.Base())
}

// Entity builds a new user entity from the create view. The id and timestamps
// stay zero: the database assigns them. The email is stored exactly as given,
// case included. The password is deliberately not mapped; the repository
// injects the digest separately.
func (c UserCreate) Entity() (User, error) {
	switch {
	case c.Email == "":
		return User{}, &ValidationError{Field: "email", Message: "email is required"}
	case c.FirstName == "":
		return User{}, &ValidationError{Field: "firstName", Message: "first name is required"}
	case c.LastName == "":
		return User{}, &ValidationError{Field: "lastName", Message: "last name is required"}
	}

	role := c.Role
	if role == "" {
		role = RoleUser
	}

	return User{
		Email:     c.Email,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Active:    true,
		Role:      role,
	}, nil
}

// Apply patches the entity with every field present in the update view.
// Timestamps are never applied; the database refreshes updated_at itself.
func (p UserUpdate) Apply(u *User) {
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.FirstName != nil {
		u.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		u.LastName = *p.LastName
	}
	if p.Active != nil {
		u.Active = *p.Active
	}
	if p.Role != nil {
		u.Role = *p.Role
	}
}
