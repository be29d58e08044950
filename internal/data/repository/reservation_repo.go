package repository

import (
	"context"
	"errors"
	"fmt"

	"concert-venue/internal/data/entity"
	"concert-venue/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ReservationRepository interface {
	Create(ctx context.Context, reservation *entity.Reservation) error
	FindByID(ctx context.Context, id int64) (*entity.Reservation, error)
	// FindAllByUserID returns reservations in insertion order, never nil
	FindAllByUserID(ctx context.Context, userID int64) ([]*entity.Reservation, error)
}

type reservationRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReservationRepository(db database.PgxIface, log *zap.Logger) ReservationRepository {
	return &reservationRepository{
		db:  db,
		log: log.With(zap.String("repository", "reservation")),
	}
}

func (r *reservationRepository) Create(ctx context.Context, reservation *entity.Reservation) error {
	query := `
		INSERT INTO reservations (user_id, show_id, seat_count, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		reservation.UserID,
		reservation.ShowID,
		reservation.SeatCount,
		reservation.CreatedAt,
	).Scan(&reservation.ID)

	if err != nil {
		r.log.Error("Failed to create reservation",
			zap.Error(err),
			zap.Int64("user_id", reservation.UserID),
			zap.Int64("show_id", reservation.ShowID),
		)
		return fmt.Errorf("create reservation for user %d: %w", reservation.UserID, err)
	}

	return nil
}

func (r *reservationRepository) FindByID(ctx context.Context, id int64) (*entity.Reservation, error) {
	query := `
		SELECT id, user_id, show_id, seat_count, created_at
		FROM reservations
		WHERE id = $1
	`

	var reservation entity.Reservation
	err := r.db.QueryRow(ctx, query, id).Scan(
		&reservation.ID,
		&reservation.UserID,
		&reservation.ShowID,
		&reservation.SeatCount,
		&reservation.CreatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find reservation by ID",
			zap.Error(err),
			zap.Int64("reservation_id", id),
		)
		return nil, fmt.Errorf("find reservation by ID %d: %w", id, err)
	}

	return &reservation, nil
}

func (r *reservationRepository) FindAllByUserID(ctx context.Context, userID int64) ([]*entity.Reservation, error) {
	query := `
		SELECT id, user_id, show_id, seat_count, created_at
		FROM reservations
		WHERE user_id = $1
		ORDER BY id ASC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to get user reservations",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		return nil, fmt.Errorf("find reservations for user %d: %w", userID, err)
	}
	defer rows.Close()

	reservations := make([]*entity.Reservation, 0)
	for rows.Next() {
		var reservation entity.Reservation
		err := rows.Scan(
			&reservation.ID,
			&reservation.UserID,
			&reservation.ShowID,
			&reservation.SeatCount,
			&reservation.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan reservation row", zap.Error(err))
			return nil, fmt.Errorf("scan reservation row: %w", err)
		}
		reservations = append(reservations, &reservation)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate reservation rows: %w", err)
	}

	return reservations, nil
}
