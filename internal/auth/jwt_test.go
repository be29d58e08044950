package auth

import (
	"context"
	"testing"
	"time"

	"concert-venue/internal/data/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testUser() *entity.User {
	return &entity.User{Base: entity.Base{ID: 1}, Email: "test@test.test"}
}

func TestJWTManagerRoundTrip(t *testing.T) {
	ctx := context.Background()
	m := NewJWTManager("secret", time.Hour, zap.NewNop())

	token, err := m.IssueToken(ctx, testUser(), ClientMeta{})
	require.NoError(t, err)
	assert.NotEmpty(t, token.Value)
	assert.WithinDuration(t, time.Now().Add(time.Hour), token.ExpiresAt, 5*time.Second)

	ok, err := m.ValidateToken(ctx, token.Value)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, m.RevokeToken(ctx, token.Value))
}

func TestJWTManagerRejects(t *testing.T) {
	ctx := context.Background()
	m := NewJWTManager("secret", time.Hour, zap.NewNop())
	token, err := m.IssueToken(ctx, testUser(), ClientMeta{})
	require.NoError(t, err)

	other := NewJWTManager("other-secret", time.Hour, zap.NewNop())
	ok, err := other.ValidateToken(ctx, token.Value)
	require.NoError(t, err)
	assert.False(t, ok, "wrong secret")

	for _, bad := range []string{"", "garbage", token.Value + "x"} {
		ok, err := m.ValidateToken(ctx, bad)
		require.NoError(t, err)
		assert.False(t, ok, bad)
	}
}

func TestJWTManagerExpired(t *testing.T) {
	ctx := context.Background()
	m := NewJWTManager("secret", time.Hour, zap.NewNop())
	m.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, err := m.IssueToken(ctx, testUser(), ClientMeta{})
	require.NoError(t, err)

	m.now = time.Now
	ok, err := m.ValidateToken(ctx, token.Value)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestJWTManagerRejectsOtherAlgorithms(t *testing.T) {
	claims := Claims{RegisteredClaims: jwt.RegisteredClaims{
		Subject:   "1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	m := NewJWTManager("secret", time.Hour, zap.NewNop())
	ok, err := m.ValidateToken(context.Background(), unsigned)
	require.NoError(t, err)
	assert.False(t, ok)
}
