package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"

	"concert-venue/internal/data/entity"
	"concert-venue/internal/data/repository/memory"
	"concert-venue/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []*entity.Reservation
	err    error
}

func (p *recordingPublisher) PublishReservationCreated(_ context.Context, reservation *entity.Reservation) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, reservation)
	return p.err
}

func (p *recordingPublisher) Close() error { return nil }

func ptr[T any](v T) *T { return &v }

func TestReservationService_CreateAndList(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewRepository(zap.NewNop())
	publisher := &recordingPublisher{}
	svc := NewReservationService(repo.Reservation, publisher, zap.NewNop())

	created, err := svc.CreateReservation(ctx, &request.CreateReservationRequest{
		UserID:    ptr(int64(1)),
		ShowID:    ptr(int64(0)),
		SeatCount: ptr(5),
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, int64(1), created.UserID)
	assert.Equal(t, int64(0), created.ShowID)
	assert.Equal(t, 5, created.SeatCount)
	assert.False(t, created.CreatedAt.IsZero())

	list, err := svc.GetUserReservations(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list.UserReservations, 1)
	assert.Equal(t, *created, list.UserReservations[0])

	require.Len(t, publisher.events, 1)
	assert.Equal(t, created.ID, publisher.events[0].ID)

	got, err := svc.GetReservation(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, *created, *got)
}

func TestReservationService_PublishFailureDoesNotFailCreate(t *testing.T) {
	repo := memory.NewRepository(zap.NewNop())
	publisher := &recordingPublisher{err: errors.New("broker down")}
	svc := NewReservationService(repo.Reservation, publisher, zap.NewNop())

	_, err := svc.CreateReservation(context.Background(), &request.CreateReservationRequest{
		UserID:    ptr(int64(1)),
		ShowID:    ptr(int64(3)),
		SeatCount: ptr(2),
	})
	require.NoError(t, err)

	list, err := svc.GetUserReservations(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, list.UserReservations, 1)
}

func TestReservationService_Validation(t *testing.T) {
	repo := memory.NewRepository(zap.NewNop())
	svc := NewReservationService(repo.Reservation, nil, zap.NewNop())

	cases := map[string]*request.CreateReservationRequest{
		"missing user":  {ShowID: ptr(int64(1)), SeatCount: ptr(1)},
		"missing show":  {UserID: ptr(int64(1)), SeatCount: ptr(1)},
		"zero seats":    {UserID: ptr(int64(1)), ShowID: ptr(int64(1)), SeatCount: ptr(0)},
		"negative show": {UserID: ptr(int64(1)), ShowID: ptr(int64(-1)), SeatCount: ptr(1)},
	}

	for name, req := range cases {
		_, err := svc.CreateReservation(context.Background(), req)
		assert.ErrorIs(t, err, ErrValidation, name)
	}

	list, err := svc.GetUserReservations(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, list.UserReservations)
}

func TestReservationService_UnknownUserIsEmpty(t *testing.T) {
	repo := memory.NewRepository(zap.NewNop())
	svc := NewReservationService(repo.Reservation, nil, zap.NewNop())

	list, err := svc.GetUserReservations(context.Background(), 11111)
	require.NoError(t, err)
	assert.NotNil(t, list.UserReservations)
	assert.Len(t, list.UserReservations, 0)

	_, err = svc.GetReservation(context.Background(), 99)
	assert.ErrorIs(t, err, ErrNotFound)
}
