//go:build integration

package postgres_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/formforge/formforge-server/internal/model"
	repo "github.com/formforge/formforge-server/internal/repository/postgres"
)

var dsn string

func TestMain(m *testing.M) {
	ctx := context.Background()
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "postgres:15-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "password",
				"POSTGRES_DB":       "formforge_test",
			},
			WaitingFor: wait.ForListeningPort("5432/tcp").WithStartupTimeout(2 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		panic(err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		panic(err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		panic(err)
	}
	dsn = fmt.Sprintf("postgres://postgres:password@%s:%s/formforge_test?sslmode=disable", host, port.Port())

	code := m.Run()
	_ = container.Terminate(ctx)
	os.Exit(code)
}

func newCreateView(email string) model.UserCreate {
	return model.UserCreate{
		Email:     email,
		FirstName: "Ada",
		LastName:  "Lovelace",
		Password:  "secret123",
	}
}

func TestUserRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	conn, err := repo.NewConnection(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	ur := repo.NewUserRepository(conn)

	t.Run("get_by_id_on_empty_store", func(t *testing.T) {
		_, err := ur.GetByID(ctx, 999)
		require.ErrorIs(t, err, model.ErrNotFound)

		var nfErr *model.NotFoundError
		require.ErrorAs(t, err, &nfErr)
		require.Equal(t, "User", nfErr.Entity)
		require.Equal(t, int64(999), nfErr.ID)
	})

	t.Run("get_all_on_empty_store", func(t *testing.T) {
		users, err := ur.GetAll(ctx)
		require.NoError(t, err)
		require.Empty(t, users)
	})

	t.Run("create_then_get_by_id", func(t *testing.T) {
		created, err := ur.CreateWithHashedPassword(ctx, newCreateView("a@x.com"), "digest")
		require.NoError(t, err)
		require.NotZero(t, created.ID)
		require.Equal(t, "a@x.com", created.Email)
		require.True(t, created.Active)
		require.Equal(t, model.RoleUser, created.Role)
		require.False(t, created.CreatedAt.IsZero())
		require.False(t, created.UpdatedAt.IsZero())

		detail, err := ur.GetByID(ctx, created.ID)
		require.NoError(t, err)
		require.Equal(t, created.Email, detail.Email)
		require.Equal(t, created.FirstName, detail.FirstName)
		require.Equal(t, created.LastName, detail.LastName)
	})

	t.Run("duplicate_email", func(t *testing.T) {
		_, err := ur.CreateWithHashedPassword(ctx, newCreateView("a@x.com"), "digest")
		require.ErrorIs(t, err, model.ErrEmailTaken)
	})

	t.Run("get_by_email", func(t *testing.T) {
		user, err := ur.GetByEmail(ctx, "a@x.com")
		require.NoError(t, err)
		require.NotNil(t, user)
		require.Equal(t, "digest", user.HashedPassword)

		absent, err := ur.GetByEmail(ctx, "nobody@x.com")
		require.NoError(t, err)
		require.Nil(t, absent)
	})

	t.Run("email_case_preserved", func(t *testing.T) {
		created, err := ur.CreateWithHashedPassword(ctx, newCreateView("Mixed@Case.COM"), "digest")
		require.NoError(t, err)
		require.Equal(t, "Mixed@Case.COM", created.Email)

		// The lookup matches the stored casing exactly.
		user, err := ur.GetByEmail(ctx, "Mixed@Case.COM")
		require.NoError(t, err)
		require.NotNil(t, user)

		differentCase, err := ur.GetByEmail(ctx, "mixed@case.com")
		require.NoError(t, err)
		require.Nil(t, differentCase)
	})

	t.Run("partial_update", func(t *testing.T) {
		created, err := ur.CreateWithHashedPassword(ctx, newCreateView("b@x.com"), "digest")
		require.NoError(t, err)

		firstName := "Grace"
		updated, err := ur.Update(ctx, created.ID, model.UserUpdate{FirstName: &firstName})
		require.NoError(t, err)

		require.Equal(t, "Grace", updated.FirstName)
		require.Equal(t, created.Email, updated.Email)
		require.Equal(t, created.LastName, updated.LastName)
		require.Equal(t, created.CreatedAt, updated.CreatedAt)
		require.True(t, updated.UpdatedAt.After(created.UpdatedAt))
	})

	t.Run("update_duplicate_email", func(t *testing.T) {
		first, err := ur.CreateWithHashedPassword(ctx, newCreateView("taken@x.com"), "digest")
		require.NoError(t, err)
		second, err := ur.CreateWithHashedPassword(ctx, newCreateView("free@x.com"), "digest")
		require.NoError(t, err)

		// Moving a user onto an email already held by another surfaces
		// the same conflict as creating a duplicate.
		_, err = ur.Update(ctx, second.ID, model.UserUpdate{Email: &first.Email})
		require.ErrorIs(t, err, model.ErrEmailTaken)
	})

	t.Run("update_missing_record", func(t *testing.T) {
		firstName := "Grace"
		_, err := ur.Update(ctx, 999, model.UserUpdate{FirstName: &firstName})
		require.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		created, err := ur.CreateWithHashedPassword(ctx, newCreateView("c@x.com"), "digest")
		require.NoError(t, err)

		require.NoError(t, ur.Delete(ctx, created.ID))

		_, err = ur.GetByID(ctx, created.ID)
		require.ErrorIs(t, err, model.ErrNotFound)

		err = ur.Delete(ctx, created.ID)
		require.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("get_all_ordered", func(t *testing.T) {
		users, err := ur.GetAll(ctx)
		require.NoError(t, err)
		require.NotEmpty(t, users)
		for i := 1; i < len(users); i++ {
			require.Less(t, users[i-1].ID, users[i].ID)
		}
	})

	t.Run("cancelled_context_rolls_back", func(t *testing.T) {
		created, err := ur.CreateWithHashedPassword(ctx, newCreateView("d@x.com"), "digest")
		require.NoError(t, err)

		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		firstName := "Grace"
		_, err = ur.Update(cancelled, created.ID, model.UserUpdate{FirstName: &firstName})
		require.Error(t, err)

		detail, err := ur.GetByID(ctx, created.ID)
		require.NoError(t, err)
		require.Equal(t, "Ada", detail.FirstName)
	})
}
