package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formforge/formforge-server/internal/model"
)

func TestJWT_Roundtrip(t *testing.T) {
	j, err := NewJWT("secret", "HS256", 30*time.Minute)
	require.NoError(t, err)

	tokenString, err := j.Issue("a@x.com")
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	subject, err := j.Validate(tokenString)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", subject)
}

func TestJWT_Expired(t *testing.T) {
	j, err := NewJWT("secret", "HS256", 30*time.Minute)
	require.NoError(t, err)

	tokenString, err := j.IssueWithTTL("a@x.com", -time.Minute)
	require.NoError(t, err)

	_, err = j.Validate(tokenString)
	require.ErrorIs(t, err, model.ErrInvalidToken)
}

func TestJWT_WrongKey(t *testing.T) {
	issuer, err := NewJWT("secret", "HS256", 30*time.Minute)
	require.NoError(t, err)
	validator, err := NewJWT("other", "HS256", 30*time.Minute)
	require.NoError(t, err)

	tokenString, err := issuer.Issue("a@x.com")
	require.NoError(t, err)

	_, err = validator.Validate(tokenString)
	require.ErrorIs(t, err, model.ErrInvalidToken)
}

func TestJWT_Malformed(t *testing.T) {
	j, err := NewJWT("secret", "HS256", 30*time.Minute)
	require.NoError(t, err)

	for _, tokenString := range []string{"", "garbage", "a.b.c"} {
		_, err := j.Validate(tokenString)
		require.ErrorIs(t, err, model.ErrInvalidToken)
	}
}

func TestJWT_EmptySubject(t *testing.T) {
	j, err := NewJWT("secret", "HS256", 30*time.Minute)
	require.NoError(t, err)

	tokenString, err := j.Issue("")
	require.NoError(t, err)

	_, err = j.Validate(tokenString)
	require.ErrorIs(t, err, model.ErrInvalidToken)
}

func TestJWT_AlgorithmMismatch(t *testing.T) {
	hs256, err := NewJWT("secret", "HS256", 30*time.Minute)
	require.NoError(t, err)
	hs512, err := NewJWT("secret", "HS512", 30*time.Minute)
	require.NoError(t, err)

	tokenString, err := hs512.Issue("a@x.com")
	require.NoError(t, err)

	_, err = hs256.Validate(tokenString)
	require.ErrorIs(t, err, model.ErrInvalidToken)
}

func TestNewJWT_DefaultTTL(t *testing.T) {
	j, err := NewJWT("secret", "HS256", 0)
	require.NoError(t, err)
	assert.Equal(t, defaultTTL, j.ttl)
}

func TestNewJWT_UnsupportedAlgorithm(t *testing.T) {
	_, err := NewJWT("secret", "RS256", 30*time.Minute)
	require.Error(t, err)

	_, err = NewJWT("secret", "none", 30*time.Minute)
	require.Error(t, err)
}
