package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"concert-venue/internal/data/entity"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// RabbitMQPublisher publishes persistent messages to a durable queue through
// the default exchange. The connection is dialled lazily and re-dialled
// after it drops.
type RabbitMQPublisher struct {
	url      string
	queue    string
	producer string
	log      *zap.Logger

	mu   sync.Mutex
	conn *amqp.Connection
	ch   *amqp.Channel
}

func NewRabbitMQPublisher(url, queue, producer string, log *zap.Logger) *RabbitMQPublisher {
	return &RabbitMQPublisher{
		url:      url,
		queue:    queue,
		producer: producer,
		log:      log.With(zap.String("publisher", "rabbitmq"), zap.String("queue", queue)),
	}
}

// channel must be called with mu held
func (p *RabbitMQPublisher) channel() (*amqp.Channel, error) {
	if p.ch != nil && !p.ch.IsClosed() {
		return p.ch, nil
	}
	if p.conn == nil || p.conn.IsClosed() {
		conn, err := amqp.Dial(p.url)
		if err != nil {
			return nil, fmt.Errorf("dial rabbitmq: %w", err)
		}
		p.conn = conn
	}

	ch, err := p.conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if _, err := ch.QueueDeclare(
		p.queue,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	); err != nil {
		_ = ch.Close()
		return nil, fmt.Errorf("declare queue %s: %w", p.queue, err)
	}

	p.ch = ch
	return ch, nil
}

func (p *RabbitMQPublisher) PublishReservationCreated(ctx context.Context, reservation *entity.Reservation) error {
	envelope, err := NewReservationCreated(p.producer, reservation)
	if err != nil {
		return err
	}

	body, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("encode envelope: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	ch, err := p.channel()
	if err != nil {
		p.log.Error("RabbitMQ unavailable", zap.Error(err))
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    envelope.EventID,
		Type:         envelope.EventType,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	if err := ch.PublishWithContext(ctx, "", p.queue, false, false, pub); err != nil {
		p.log.Error("Failed to publish event",
			zap.Error(err),
			zap.String("event_id", envelope.EventID))
		return fmt.Errorf("publish %s: %w", envelope.EventType, err)
	}

	return nil
}

func (p *RabbitMQPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ch != nil {
		_ = p.ch.Close()
		p.ch = nil
	}
	if p.conn != nil {
		err := p.conn.Close()
		p.conn = nil
		return err
	}
	return nil
}
