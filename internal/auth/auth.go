// Package auth issues and validates the tokens that gate write operations.
package auth

import (
	"context"
	"time"

	"concert-venue/internal/data/entity"
)

// TokenValidator answers whether a bearer token may perform writes. A false
// result is an authorization failure; a non-nil error means the check itself
// could not run.
type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) (bool, error)
}

// Token is an issued credential
type Token struct {
	Value     string
	ExpiresAt time.Time
}

// ClientMeta describes the client a token is issued to
type ClientMeta struct {
	UserAgent string
	IPAddress string
}

type Authenticator interface {
	TokenValidator
	IssueToken(ctx context.Context, user *entity.User, meta ClientMeta) (Token, error)
	RevokeToken(ctx context.Context, token string) error
}

// ValidatorFunc adapts a plain function to TokenValidator
type ValidatorFunc func(ctx context.Context, token string) (bool, error)

func (f ValidatorFunc) ValidateToken(ctx context.Context, token string) (bool, error) {
	return f(ctx, token)
}
