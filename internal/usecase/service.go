package usecase

import (
	"concert-venue/internal/auth"
	"concert-venue/internal/data/repository"
	"concert-venue/internal/events"
	"concert-venue/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	User        UserService
	Reservation ReservationService
}

func NewService(
	repo *repository.Repository,
	authenticator auth.Authenticator,
	publisher events.Publisher,
	config *utils.Config,
	log *zap.Logger,
) *Service {
	return &Service{
		User:        NewUserService(repo.User, authenticator, config.Auth.BcryptCost, log),
		Reservation: NewReservationService(repo.Reservation, publisher, log),
	}
}
