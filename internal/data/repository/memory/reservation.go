package memory

import (
	"context"

	"concert-venue/internal/data/entity"

	"go.uber.org/zap"
)

type reservationRepository struct {
	s   *store
	log *zap.Logger
}

func (r *reservationRepository) Create(ctx context.Context, reservation *entity.Reservation) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.reservationSeq++
	reservation.ID = r.s.reservationSeq

	stored := *reservation
	r.s.reservations = append(r.s.reservations, &stored)

	r.log.Debug("Reservation created",
		zap.Int64("reservation_id", stored.ID),
		zap.Int64("user_id", stored.UserID))
	return nil
}

func (r *reservationRepository) FindByID(ctx context.Context, id int64) (*entity.Reservation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, reservation := range r.s.reservations {
		if reservation.ID == id {
			found := *reservation
			return &found, nil
		}
	}
	return nil, nil
}

func (r *reservationRepository) FindAllByUserID(ctx context.Context, userID int64) ([]*entity.Reservation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	reservations := make([]*entity.Reservation, 0)
	for _, reservation := range r.s.reservations {
		if reservation.UserID == userID {
			found := *reservation
			reservations = append(reservations, &found)
		}
	}
	return reservations, nil
}
