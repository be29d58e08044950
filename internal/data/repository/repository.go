package repository

import (
	"concert-venue/pkg/database"

	"go.uber.org/zap"
)

// Repository groups the store accessors used by the services
type Repository struct {
	User        UserRepository
	Reservation ReservationRepository
	Session     SessionRepository
}

// NewRepository returns Postgres-backed accessors
func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:        NewUserRepository(db, log),
		Reservation: NewReservationRepository(db, log),
		Session:     NewSessionRepository(db, log),
	}
}
