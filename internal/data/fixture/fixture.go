// Package fixture seeds a store with the accounts and reservations used in
// development and tests.
package fixture

import (
	"context"
	"errors"
	"fmt"
	"time"

	"concert-venue/internal/data/entity"
	"concert-venue/internal/data/repository"
	"concert-venue/pkg/utils"
)

type seedUser struct {
	ID       int64
	Email    string
	Password string
}

type seedReservation struct {
	UserID    int64
	ShowID    int64
	SeatCount int
}

var Users = []seedUser{
	{ID: 1, Email: "test@test.test", Password: "test"},
	{ID: 2, Email: "fan@test.test", Password: "fan"},
}

var Reservations = []seedReservation{
	{UserID: 1, ShowID: 0, SeatCount: 2},
	{UserID: 1, ShowID: 1, SeatCount: 4},
	{UserID: 2, ShowID: 0, SeatCount: 1},
}

// Load inserts the fixtures. Users that already exist are skipped, so it is
// safe to call on every start; reservations are only added for users
// created by this call. Stores may assign their own ids, so reservations
// follow the stored id of their seed user.
func Load(ctx context.Context, repo *repository.Repository, bcryptCost int) error {
	now := time.Now()
	// seed id -> stored id
	created := make(map[int64]int64, len(Users))

	for _, u := range Users {
		hash, err := utils.HashPassword(u.Password, bcryptCost)
		if err != nil {
			return fmt.Errorf("hash fixture password for %s: %w", u.Email, err)
		}

		user := &entity.User{
			Base:         entity.Base{ID: u.ID, CreatedAt: now, UpdatedAt: now},
			Email:        u.Email,
			PasswordHash: hash,
		}
		err = repo.User.Create(ctx, user)
		if errors.Is(err, repository.ErrDuplicate) {
			continue
		}
		if err != nil {
			return fmt.Errorf("seed user %s: %w", u.Email, err)
		}
		created[u.ID] = user.ID
	}

	for _, r := range Reservations {
		userID, ok := created[r.UserID]
		if !ok {
			continue
		}
		reservation := &entity.Reservation{
			BaseSimple: entity.BaseSimple{CreatedAt: now},
			UserID:     userID,
			ShowID:     r.ShowID,
			SeatCount:  r.SeatCount,
		}
		if err := repo.Reservation.Create(ctx, reservation); err != nil {
			return fmt.Errorf("seed reservation for user %d: %w", userID, err)
		}
	}

	return nil
}
