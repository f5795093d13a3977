package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserCreate_Entity(t *testing.T) {
	entity, err := UserCreate{
		Email:     "Ada@Example.COM",
		FirstName: "Ada",
		LastName:  "Lovelace",
		Password:  "password123",
	}.Entity()
	require.NoError(t, err)

	assert.Equal(t, "Ada@Example.COM", entity.Email, "email keeps its case exactly as given")
	assert.Equal(t, "Ada", entity.FirstName)
	assert.True(t, entity.Active)
	assert.Equal(t, RoleUser, entity.Role)
	assert.Zero(t, entity.ID)
	assert.Empty(t, entity.HashedPassword, "plaintext must never be mapped onto the entity")
}

func TestUserCreate_Entity_MissingFields(t *testing.T) {
	tests := []struct {
		name  string
		view  UserCreate
		field string
	}{
		{name: "no email", view: UserCreate{FirstName: "Ada", LastName: "Lovelace"}, field: "email"},
		{name: "no first name", view: UserCreate{Email: "a@b.c", LastName: "Lovelace"}, field: "firstName"},
		{name: "no last name", view: UserCreate{Email: "a@b.c", FirstName: "Ada"}, field: "lastName"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.view.Entity()
			require.ErrorIs(t, err, ErrValidation)

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.field, validationErr.Field)
		})
	}
}

func TestUserUpdate_Apply_Partial(t *testing.T) {
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	user := User{
		ID:             1,
		Email:          "a@b.c",
		FirstName:      "Ada",
		LastName:       "Lovelace",
		HashedPassword: "digest",
		Active:         true,
		Role:           RoleUser,
		CreatedAt:      created,
		UpdatedAt:      created,
	}

	first := "Grace"
	inactive := false
	UserUpdate{FirstName: &first, Active: &inactive}.Apply(&user)

	assert.Equal(t, "Grace", user.FirstName)
	assert.False(t, user.Active)
	assert.Equal(t, "a@b.c", user.Email, "unset fields stay untouched")
	assert.Equal(t, "Lovelace", user.LastName)
	assert.Equal(t, "digest", user.HashedPassword)
	assert.Equal(t, created, user.CreatedAt)
	assert.Equal(t, created, user.UpdatedAt)
}

func TestUserUpdate_Apply_PreservesEmailCase(t *testing.T) {
	user := User{Email: "a@b.c"}

	email := "NEW@Example.COM"
	UserUpdate{Email: &email}.Apply(&user)

	assert.Equal(t, "NEW@Example.COM", user.Email)
}

func TestUserUpdate_Normalize(t *testing.T) {
	now := time.Now()
	view := UserUpdate{CreatedAt: &now, UpdatedAt: &now}

	view.Normalize()

	assert.Nil(t, view.CreatedAt)
	assert.Nil(t, view.UpdatedAt)
}

// No read projection may expose password material.
func TestProjections_OmitPasswordMaterial(t *testing.T) {
	user := User{ID: 1, Email: "a@b.c", HashedPassword: "$2a$12$digest"}

	for name, view := range map[string]any{
		"base":   user.Base(),
		"detail": user.Detail(),
		"list":   user.List(),
	} {
		data, err := json.Marshal(view)
		require.NoError(t, err)
		assert.NotContains(t, string(data), "digest", name)
		assert.NotContains(t, string(data), "password", name)
	}
}
