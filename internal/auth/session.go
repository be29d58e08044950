package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"concert-venue/internal/data/entity"
	"concert-venue/internal/data/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// session:{token} -> user id
const KeySession = "session:%s"

// SessionManager issues opaque uuid tokens stored as sessions. Positive
// lookups are cached in Redis when a client is set.
type SessionManager struct {
	sessions repository.SessionRepository
	cache    *redis.Client
	ttl      time.Duration
	cacheTTL time.Duration
	log      *zap.Logger
	now      func() time.Time
}

func NewSessionManager(
	sessions repository.SessionRepository,
	ttl time.Duration,
	cache *redis.Client,
	cacheTTL time.Duration,
	log *zap.Logger,
) *SessionManager {
	return &SessionManager{
		sessions: sessions,
		cache:    cache,
		ttl:      ttl,
		cacheTTL: cacheTTL,
		log:      log.With(zap.String("auth", "session")),
		now:      time.Now,
	}
}

func (m *SessionManager) IssueToken(ctx context.Context, user *entity.User, meta ClientMeta) (Token, error) {
	now := m.now()
	session := &entity.Session{
		BaseUUID: entity.BaseUUID{
			ID:        uuid.New(),
			CreatedAt: now,
		},
		UserID:    user.ID,
		Token:     uuid.New(),
		UserAgent: optional(meta.UserAgent),
		IPAddress: optional(meta.IPAddress),
		ExpiresAt: now.Add(m.ttl),
	}

	if err := m.sessions.Create(ctx, session); err != nil {
		return Token{}, fmt.Errorf("issue session token: %w", err)
	}

	return Token{Value: session.Token.String(), ExpiresAt: session.ExpiresAt}, nil
}

func (m *SessionManager) ValidateToken(ctx context.Context, token string) (bool, error) {
	// anything that is not a uuid can never match a session row
	if _, err := uuid.Parse(token); err != nil {
		return false, nil
	}

	key := fmt.Sprintf(KeySession, token)
	if m.cache != nil {
		err := m.cache.Get(ctx, key).Err()
		if err == nil {
			return true, nil
		}
		if !errors.Is(err, redis.Nil) {
			m.log.Warn("Session cache read failed", zap.Error(err))
		}
	}

	session, err := m.sessions.FindValidSession(ctx, token)
	if err != nil {
		return false, fmt.Errorf("validate session token: %w", err)
	}
	if session == nil {
		return false, nil
	}

	if m.cache != nil {
		return m.cacheSession(ctx, key, token, session)
	}

	return true, nil
}

// cacheSession stores a positive lookup for min(remaining lifetime, cacheTTL).
// The store is read again after the write so a revoke that ran in between
// cannot leave a stale entry behind.
func (m *SessionManager) cacheSession(ctx context.Context, key, token string, session *entity.Session) (bool, error) {
	ttl := session.ExpiresAt.Sub(m.now())
	if m.cacheTTL > 0 && m.cacheTTL < ttl {
		ttl = m.cacheTTL
	}
	if ttl <= 0 {
		return true, nil
	}

	if err := m.cache.Set(ctx, key, session.UserID, ttl).Err(); err != nil {
		m.log.Warn("Session cache write failed", zap.Error(err))
		return true, nil
	}

	current, err := m.sessions.FindValidSession(ctx, token)
	if err != nil {
		m.cache.Del(ctx, key)
		return false, fmt.Errorf("validate session token: %w", err)
	}
	if current == nil {
		if err := m.cache.Del(ctx, key).Err(); err != nil {
			m.log.Warn("Session cache delete failed", zap.Error(err))
		}
		return false, nil
	}

	return true, nil
}

func (m *SessionManager) RevokeToken(ctx context.Context, token string) error {
	if _, err := uuid.Parse(token); err != nil {
		return fmt.Errorf("revoke session token: %w", repository.ErrNotFound)
	}

	if err := m.sessions.Revoke(ctx, token); err != nil {
		return err
	}

	if m.cache != nil {
		if err := m.cache.Del(ctx, fmt.Sprintf(KeySession, token)).Err(); err != nil {
			m.log.Warn("Session cache delete failed", zap.Error(err))
		}
	}

	return nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
