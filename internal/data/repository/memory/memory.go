// Package memory keeps users, reservations and sessions in process memory.
// It backs STORE_DRIVER=memory and the handler tests.
package memory

import (
	"sync"

	"concert-venue/internal/data/entity"
	"concert-venue/internal/data/repository"

	"go.uber.org/zap"
)

// store is shared by the accessors so ids and visibility stay consistent
type store struct {
	mu sync.RWMutex

	users   map[int64]*entity.User
	emails  map[string]int64
	userSeq int64

	reservations   []*entity.Reservation
	reservationSeq int64

	sessions map[string]*entity.Session
}

func newStore() *store {
	return &store{
		users:    make(map[int64]*entity.User),
		emails:   make(map[string]int64),
		sessions: make(map[string]*entity.Session),
	}
}

// NewRepository returns accessors over a fresh, empty store
func NewRepository(log *zap.Logger) *repository.Repository {
	s := newStore()
	return &repository.Repository{
		User:        &userRepository{s: s, log: log.With(zap.String("repository", "user"))},
		Reservation: &reservationRepository{s: s, log: log.With(zap.String("repository", "reservation"))},
		Session:     &sessionRepository{s: s, log: log.With(zap.String("repository", "session"))},
	}
}
