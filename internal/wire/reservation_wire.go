package wire

import (
	"concert-venue/internal/adaptor"
	"concert-venue/internal/auth"
	"concert-venue/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireReservation(
	r chi.Router,
	reservationHandler *adaptor.ReservationHandler,
	validator auth.TokenValidator,
	log *zap.Logger,
) {
	r.Get("/reservations/{reservationId}", reservationHandler.GetReservation)
	r.Get("/users/{userId}/reservations", reservationHandler.GetUserReservations)

	// token is checked before the body is parsed
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireToken(validator, log))
		r.Use(middleware.RequireJSON)

		r.Post("/reservations", reservationHandler.Create)
		r.Post("/reservations/{reservationId}", reservationHandler.Create)
		r.Post("/users/{userId}/reservations", reservationHandler.CreateForUser)
	})
}
