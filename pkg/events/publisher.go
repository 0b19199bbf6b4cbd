// Package events publishes vacancy lifecycle events to RabbitMQ for downstream
// consumers (lead sharing, notifications). Delivery to end users is not done here.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/boxstory/yk/config"
)

// RoutingKeyStatusChanged is used for every successful status update.
const RoutingKeyStatusChanged = "vacancy.status_changed"

// StatusChanged is the payload of vacancy.status_changed.
type StatusChanged struct {
	UnitID     string    `json:"unit_id"`
	PropertyID string    `json:"property_id"`
	OwnerID    string    `json:"owner_id"`
	Status     string    `json:"status"`
	VacantDate string    `json:"vacant_date"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Publisher is what services depend on.
type Publisher interface {
	PublishStatusChanged(ctx context.Context, evt StatusChanged) error
	Close() error
}

// Nop drops every event. Used when RabbitMQ is disabled.
type Nop struct{}

func (Nop) PublishStatusChanged(context.Context, StatusChanged) error { return nil }
func (Nop) Close() error                                              { return nil }

// AMQPPublisher publishes JSON messages to a declared exchange.
type AMQPPublisher struct {
	cfg    config.RabbitMQConfig
	logger *zap.Logger

	mu      sync.Mutex
	conn    *amqp.Connection
	channel *amqp.Channel
}

// NewAMQPPublisher dials RabbitMQ and declares the exchange.
func NewAMQPPublisher(cfg config.RabbitMQConfig, logger *zap.Logger) (*AMQPPublisher, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("events: rabbitmq url is required")
	}
	if cfg.Exchange == "" || cfg.ExchangeType == "" {
		return nil, fmt.Errorf("events: exchange name and type are required")
	}

	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("events: dial rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("events: open channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		cfg.Exchange,
		cfg.ExchangeType,
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("events: declare exchange %q: %w", cfg.Exchange, err)
	}

	logger.Info("rabbitmq publisher ready",
		zap.String("exchange", cfg.Exchange),
		zap.String("type", cfg.ExchangeType),
	)

	return &AMQPPublisher{cfg: cfg, logger: logger, conn: conn, channel: ch}, nil
}

// PublishStatusChanged publishes evt as persistent JSON.
func (p *AMQPPublisher) PublishStatusChanged(ctx context.Context, evt StatusChanged) error {
	body, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("events: encode: %w", err)
	}
	return p.publish(ctx, RoutingKeyStatusChanged, body)
}

func (p *AMQPPublisher) publish(ctx context.Context, routingKey string, body []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.channel == nil || p.conn == nil || p.conn.IsClosed() {
		return fmt.Errorf("events: not connected")
	}

	err := p.channel.PublishWithContext(
		ctx,
		p.cfg.Exchange,
		routingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("events: publish %s: %w", routingKey, err)
	}
	return nil
}

// Close closes channel and connection.
func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var firstErr error
	if p.channel != nil {
		if err := p.channel.Close(); err != nil {
			firstErr = err
		}
		p.channel = nil
	}
	if p.conn != nil {
		if err := p.conn.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		p.conn = nil
	}
	p.logger.Info("rabbitmq publisher closed")
	return firstErr
}

// New returns an AMQP publisher when enabled, Nop otherwise.
func New(cfg config.RabbitMQConfig, logger *zap.Logger) (Publisher, error) {
	if !cfg.Enabled {
		return Nop{}, nil
	}
	return NewAMQPPublisher(cfg, logger)
}
