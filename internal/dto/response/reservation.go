package response

import (
	"time"

	"concert-venue/internal/data/entity"
)

type ReservationResponse struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	ShowID    int64     `json:"showId"`
	SeatCount int       `json:"seatCount"`
	CreatedAt time.Time `json:"createdAt"`
}

type ReservationEnvelope struct {
	Reservation ReservationResponse `json:"reservation"`
}

type UserReservationsResponse struct {
	UserReservations []ReservationResponse `json:"userReservations"`
}

func ReservationToResponse(reservation *entity.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:        reservation.ID,
		UserID:    reservation.UserID,
		ShowID:    reservation.ShowID,
		SeatCount: reservation.SeatCount,
		CreatedAt: reservation.CreatedAt,
	}
}

// ReservationsToResponse never returns nil so the list encodes as []
func ReservationsToResponse(reservations []*entity.Reservation) []ReservationResponse {
	out := make([]ReservationResponse, 0, len(reservations))
	for _, reservation := range reservations {
		out = append(out, ReservationToResponse(reservation))
	}
	return out
}
