package events

import (
	"context"
	"encoding/json"
	"fmt"

	"concert-venue/internal/data/entity"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type KafkaPublisher struct {
	w        *kafka.Writer
	producer string
	log      *zap.Logger
}

func NewKafkaPublisher(brokers []string, topic, producer string, log *zap.Logger) *KafkaPublisher {
	return &KafkaPublisher{
		w: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafka.Hash{},
			RequiredAcks:           kafka.RequireAll,
			AllowAutoTopicCreation: true,
		},
		producer: producer,
		log:      log.With(zap.String("publisher", "kafka"), zap.String("topic", topic)),
	}
}

func (p *KafkaPublisher) PublishReservationCreated(ctx context.Context, reservation *entity.Reservation) error {
	envelope, err := NewReservationCreated(p.producer, reservation)
	if err != nil {
		return err
	}

	value, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("encode envelope: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(envelope.CorrelationID),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(envelope.EventType)},
		},
	}

	if err := p.w.WriteMessages(ctx, msg); err != nil {
		p.log.Error("Failed to publish event",
			zap.Error(err),
			zap.String("event_id", envelope.EventID))
		return fmt.Errorf("publish %s: %w", envelope.EventType, err)
	}

	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.w.Close()
}
