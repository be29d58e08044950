package wire

import (
	"concert-venue/internal/adaptor"
	"concert-venue/internal/auth"
	"concert-venue/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	validator auth.TokenValidator,
	log *zap.Logger,
) {
	// public
	r.With(middleware.RequireJSON).Post("/users", userHandler.SignIn)
	r.With(middleware.RequireJSON).Put("/users", userHandler.SignUp)
	r.Get("/users/{userId}", userHandler.GetUser)

	// protected
	r.With(middleware.RequireToken(validator, log)).Post("/users/signout", userHandler.SignOut)
}
