package auth

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"concert-venue/internal/data/entity"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// JWTManager issues stateless HS256 tokens. Revocation is not tracked:
// a token stays valid until it expires.
type JWTManager struct {
	secret []byte
	ttl    time.Duration
	log    *zap.Logger
	now    func() time.Time
}

func NewJWTManager(secret string, ttl time.Duration, log *zap.Logger) *JWTManager {
	return &JWTManager{
		secret: []byte(secret),
		ttl:    ttl,
		log:    log.With(zap.String("auth", "jwt")),
		now:    time.Now,
	}
}

func (m *JWTManager) IssueToken(_ context.Context, user *entity.User, _ ClientMeta) (Token, error) {
	now := m.now().UTC()
	exp := now.Add(m.ttl)

	claims := Claims{
		Email: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(user.ID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return Token{}, fmt.Errorf("sign token: %w", err)
	}

	return Token{Value: signed, ExpiresAt: exp}, nil
}

func (m *JWTManager) ValidateToken(_ context.Context, token string) (bool, error) {
	if token == "" {
		return false, nil
	}

	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims,
		func(t *jwt.Token) (interface{}, error) {
			return m.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil || !parsed.Valid {
		m.log.Debug("Rejected token", zap.Error(err))
		return false, nil
	}

	if _, err := strconv.ParseInt(claims.Subject, 10, 64); err != nil {
		return false, nil
	}

	return true, nil
}

func (m *JWTManager) RevokeToken(context.Context, string) error {
	return nil
}
