// Package auth isolates credential verification behind a small interface so
// the mock check can later be swapped for a real identity provider without
// touching the HTTP layer.
package auth

import (
	"context"
	"errors"
)

// ErrInvalidCredentials is returned for any mismatch. Callers must not leak
// which part of the credentials was wrong.
var ErrInvalidCredentials = errors.New("invalid credentials")

// LoginResult carries a successful login's token and user identity.
type LoginResult struct {
	Message  string
	Token    string
	Username string
}

// Provider verifies credentials and issues a token.
type Provider interface {
	Login(ctx context.Context, username, password string) (*LoginResult, error)
}

// StaticProvider matches one fixed credential pair, case-sensitively, and
// returns a fixed token. It exists to unblock the frontend login flow.
type StaticProvider struct {
	username string
	password string
	token    string
}

// NewStaticProvider creates the mock provider with its fixed credentials.
func NewStaticProvider() *StaticProvider {
	return &StaticProvider{
		username: "admin",
		password: "admin",
		token:    "mock-secure-token-12345",
	}
}

func (p *StaticProvider) Login(_ context.Context, username, password string) (*LoginResult, error) {
	if username != p.username || password != p.password {
		return nil, ErrInvalidCredentials
	}
	return &LoginResult{
		Message:  "Login successful",
		Token:    p.token,
		Username: p.username,
	}, nil
}
