package memory

import (
	"context"
	"fmt"
	"time"

	"concert-venue/internal/data/entity"
	"concert-venue/internal/data/repository"

	"go.uber.org/zap"
)

type sessionRepository struct {
	s   *store
	log *zap.Logger
}

func (r *sessionRepository) Create(ctx context.Context, session *entity.Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored := *session
	r.s.sessions[session.Token.String()] = &stored
	return nil
}

func (r *sessionRepository) FindValidSession(ctx context.Context, token string) (*entity.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	session, ok := r.s.sessions[token]
	if !ok || !session.Valid(time.Now()) {
		return nil, nil
	}
	found := *session
	return &found, nil
}

func (r *sessionRepository) Revoke(ctx context.Context, token string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	session, ok := r.s.sessions[token]
	if !ok || session.RevokedAt != nil {
		return fmt.Errorf("revoke session: %w", repository.ErrNotFound)
	}

	now := time.Now()
	session.RevokedAt = &now
	r.log.Debug("Session revoked", zap.Int64("user_id", session.UserID))
	return nil
}
