package utils

import (
	"context"
)

type contextKey string

const (
	TokenKey contextKey = "token"
)

// GetTokenFromContext returns the bearer token accepted by the auth middleware
func GetTokenFromContext(ctx context.Context) (string, bool) {
	tokenVal := ctx.Value(TokenKey)
	if tokenVal == nil {
		return "", false
	}

	token, ok := tokenVal.(string)
	return token, ok && token != ""
}

// SetTokenContext stores the validated token for downstream handlers
func SetTokenContext(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, TokenKey, token)
}
