// Package events publishes reservation events for downstream consumers
// (notifications, analytics). Publishing is best-effort: the reservation is
// already stored when an event is sent.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"concert-venue/internal/data/entity"

	"github.com/google/uuid"
)

const (
	EventReservationCreated = "ReservationCreated"
	eventVersion            = 1
)

type Envelope struct {
	EventID       string          `json:"event_id"`
	EventType     string          `json:"event_type"`
	EventVersion  int             `json:"event_version"`
	OccurredAt    time.Time       `json:"occurred_at"`
	Producer      string          `json:"producer"`
	CorrelationID string          `json:"correlation_id,omitempty"`
	Payload       json.RawMessage `json:"payload"`
}

type ReservationCreatedPayload struct {
	ReservationID int64     `json:"reservation_id"`
	UserID        int64     `json:"user_id"`
	ShowID        int64     `json:"show_id"`
	SeatCount     int       `json:"seat_count"`
	CreatedAt     time.Time `json:"created_at"`
}

type Publisher interface {
	PublishReservationCreated(ctx context.Context, reservation *entity.Reservation) error
	Close() error
}

// NewReservationCreated builds the envelope; the reservation id is the
// correlation id and the partition key.
func NewReservationCreated(producer string, reservation *entity.Reservation) (Envelope, error) {
	payload, err := json.Marshal(ReservationCreatedPayload{
		ReservationID: reservation.ID,
		UserID:        reservation.UserID,
		ShowID:        reservation.ShowID,
		SeatCount:     reservation.SeatCount,
		CreatedAt:     reservation.CreatedAt,
	})
	if err != nil {
		return Envelope{}, fmt.Errorf("encode reservation payload: %w", err)
	}

	return Envelope{
		EventID:       uuid.NewString(),
		EventType:     EventReservationCreated,
		EventVersion:  eventVersion,
		OccurredAt:    time.Now().UTC(),
		Producer:      producer,
		CorrelationID: strconv.FormatInt(reservation.ID, 10),
		Payload:       payload,
	}, nil
}

// NopPublisher drops every event
type NopPublisher struct{}

func (NopPublisher) PublishReservationCreated(context.Context, *entity.Reservation) error {
	return nil
}

func (NopPublisher) Close() error { return nil }
