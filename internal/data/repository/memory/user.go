package memory

import (
	"context"
	"fmt"
	"strings"

	"concert-venue/internal/data/entity"
	"concert-venue/internal/data/repository"

	"go.uber.org/zap"
)

type userRepository struct {
	s   *store
	log *zap.Logger
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	key := strings.ToLower(user.Email)

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, exists := r.s.emails[key]; exists {
		return fmt.Errorf("create user %s: %w", user.Email, repository.ErrDuplicate)
	}

	// fixtures may pin an id; keep the sequence ahead of it
	if user.ID == 0 {
		r.s.userSeq++
		user.ID = r.s.userSeq
	} else if _, taken := r.s.users[user.ID]; taken {
		return fmt.Errorf("create user id %d: %w", user.ID, repository.ErrDuplicate)
	} else if user.ID > r.s.userSeq {
		r.s.userSeq = user.ID
	}

	stored := *user
	r.s.users[stored.ID] = &stored
	r.s.emails[key] = stored.ID

	r.log.Debug("User created", zap.Int64("user_id", stored.ID))
	return nil
}

func (r *userRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	user, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	found := *user
	return &found, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	id, ok := r.s.emails[strings.ToLower(email)]
	if !ok {
		return nil, nil
	}
	found := *r.s.users[id]
	return &found, nil
}
