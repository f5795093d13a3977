package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/formforge/formforge-server/internal/model"
)

var _ model.TokenManager = (*JWT)(nil)

// defaultTTL applies when no lifetime is configured.
const defaultTTL = 15 * time.Minute

// Claims carries the subject identity and expiry of an issued token.
type Claims struct {
	jwt.RegisteredClaims
}

// JWT implements TokenManager backed by a symmetric HMAC key and a named
// signing algorithm, both fixed at construction.
type JWT struct {
	secretKey string
	method    *jwt.SigningMethodHMAC
	ttl       time.Duration
}

// NewJWT creates a token manager signing with the named HMAC algorithm and
// issuing tokens that live for ttl. A non-positive ttl falls back to 15
// minutes.
func NewJWT(secretKey, algorithm string, ttl time.Duration) (*JWT, error) {
	method, ok := jwt.GetSigningMethod(algorithm).(*jwt.SigningMethodHMAC)
	if !ok {
		return nil, fmt.Errorf("unsupported signing algorithm %q", algorithm)
	}
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &JWT{secretKey: secretKey, method: method, ttl: ttl}, nil
}

// Issue creates a signed token for subject with the configured lifetime.
func (j *JWT) Issue(subject string) (string, error) {
	return j.IssueWithTTL(subject, j.ttl)
}

// IssueWithTTL creates a signed token for subject expiring at now + ttl.
func (j *JWT) IssueWithTTL(subject string, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(j.method, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	})

	tokenString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// Validate checks signature and expiry and returns the embedded subject.
// Every failure mode collapses into model.ErrInvalidToken so callers cannot
// leak which check failed.
func (j *JWT) Validate(tokenString string) (string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(j.secretKey), nil
	}, jwt.WithValidMethods([]string{j.method.Alg()}))
	if err != nil || !token.Valid {
		return "", model.ErrInvalidToken
	}
	if claims.Subject == "" {
		return "", model.ErrInvalidToken
	}
	return claims.Subject, nil
}
