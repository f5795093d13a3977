package model

import "time"

// TokenManager issues and validates signed bearer tokens. Validate collapses
// every failure mode into ErrInvalidToken.
type TokenManager interface {
	Issue(subject string) (string, error)
	IssueWithTTL(subject string, ttl time.Duration) (string, error)
	Validate(token string) (subject string, err error)
}

// Token is the login response payload.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
