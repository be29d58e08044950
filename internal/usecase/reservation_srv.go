package usecase

import (
	"context"
	"fmt"
	"time"

	"concert-venue/internal/data/entity"
	"concert-venue/internal/data/repository"
	"concert-venue/internal/dto/request"
	"concert-venue/internal/dto/response"
	"concert-venue/internal/events"
	"concert-venue/pkg/utils"

	"go.uber.org/zap"
)

// publishing runs after the response is decided and must not inherit the
// request's cancellation
const publishTimeout = 5 * time.Second

type ReservationService interface {
	CreateReservation(ctx context.Context, req *request.CreateReservationRequest) (*response.ReservationResponse, error)
	GetReservation(ctx context.Context, id int64) (*response.ReservationResponse, error)
	GetUserReservations(ctx context.Context, userID int64) (*response.UserReservationsResponse, error)
}

type reservationService struct {
	reservationRepo repository.ReservationRepository
	publisher       events.Publisher
	log             *zap.Logger
	now             func() time.Time
}

func NewReservationService(
	reservationRepo repository.ReservationRepository,
	publisher events.Publisher,
	log *zap.Logger,
) ReservationService {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &reservationService{
		reservationRepo: reservationRepo,
		publisher:       publisher,
		log:             log.With(zap.String("service", "reservation")),
		now:             time.Now,
	}
}

func (s *reservationService) CreateReservation(ctx context.Context, req *request.CreateReservationRequest) (*response.ReservationResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create reservation validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	reservation := &entity.Reservation{
		BaseSimple: entity.BaseSimple{
			CreatedAt: s.now().UTC(),
		},
		UserID:    *req.UserID,
		ShowID:    *req.ShowID,
		SeatCount: *req.SeatCount,
	}

	if err := s.reservationRepo.Create(ctx, reservation); err != nil {
		return nil, fmt.Errorf("create reservation: %w", err)
	}

	s.log.Info("Reservation created",
		zap.Int64("reservation_id", reservation.ID),
		zap.Int64("user_id", reservation.UserID),
		zap.Int64("show_id", reservation.ShowID),
		zap.Int("seat_count", reservation.SeatCount),
	)

	s.publishCreated(ctx, reservation)

	resp := response.ReservationToResponse(reservation)
	return &resp, nil
}

func (s *reservationService) publishCreated(ctx context.Context, reservation *entity.Reservation) {
	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	if err := s.publisher.PublishReservationCreated(pubCtx, reservation); err != nil {
		s.log.Warn("Reservation event not published",
			zap.Error(err),
			zap.Int64("reservation_id", reservation.ID))
	}
}

func (s *reservationService) GetReservation(ctx context.Context, id int64) (*response.ReservationResponse, error) {
	reservation, err := s.reservationRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get reservation %d: %w", id, err)
	}
	if reservation == nil {
		return nil, fmt.Errorf("reservation %d: %w", id, ErrNotFound)
	}

	resp := response.ReservationToResponse(reservation)
	return &resp, nil
}

// GetUserReservations treats unknown users as users without reservations
func (s *reservationService) GetUserReservations(ctx context.Context, userID int64) (*response.UserReservationsResponse, error) {
	reservations, err := s.reservationRepo.FindAllByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list reservations for user %d: %w", userID, err)
	}

	s.log.Debug("User reservations retrieved",
		zap.Int64("user_id", userID),
		zap.Int("count", len(reservations)),
	)

	return &response.UserReservationsResponse{
		UserReservations: response.ReservationsToResponse(reservations),
	}, nil
}
