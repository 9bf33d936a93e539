// Package rabbitmq implements completion-event publishing over AMQP.
package rabbitmq

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"routehub/config"
	"routehub/internal/domain/service"

	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	defaultExchange             = "route.events"
	defaultExchangeType         = "topic"
	defaultRoutingKey           = "route.completed"
	defaultMaxReconnectAttempts = 5
	defaultReconnectDelay       = 5 * time.Second
)

// publisher implements service.EventPublisher against a RabbitMQ broker.
//
// Connection state machine: disconnected -> connecting -> connected. A
// broker-initiated close drops the publisher back to disconnected and
// schedules reconnects on a linear backoff (attempt * reconnectDelay) until
// maxReconnectAttempts is exhausted, after which the publisher stays down
// until process restart. The reconnect timer runs off the request path.
type publisher struct {
	url                  string
	exchange             string
	exchangeType         string
	routingKey           string
	maxReconnectAttempts int
	reconnectDelay       time.Duration
	logger               *slog.Logger

	mu                sync.Mutex
	conn              *amqp.Connection
	channel           *amqp.Channel
	connecting        bool
	reconnectAttempts int
	closed            bool
}

// NewPublisher connects to the broker and asserts the durable exchange.
// The initial connection failure is not fatal: the reconnect schedule takes
// over, matching broker-restart behavior at runtime.
func NewPublisher(cfg *config.RabbitMQConfig, logger *slog.Logger) (service.EventPublisher, error) {
	if cfg == nil || cfg.URL == "" {
		return nil, errors.New("rabbitmq URL is required")
	}

	pub := &publisher{
		url:                  cfg.URL,
		exchange:             cfg.Exchange,
		exchangeType:         cfg.ExchangeType,
		routingKey:           cfg.RoutingKey,
		maxReconnectAttempts: cfg.MaxReconnectAttempts,
		reconnectDelay:       cfg.ReconnectDelay,
		logger:               logger,
	}
	if pub.exchange == "" {
		pub.exchange = defaultExchange
	}
	if pub.exchangeType == "" {
		pub.exchangeType = defaultExchangeType
	}
	if pub.routingKey == "" {
		pub.routingKey = defaultRoutingKey
	}
	if pub.maxReconnectAttempts <= 0 {
		pub.maxReconnectAttempts = defaultMaxReconnectAttempts
	}
	if pub.reconnectDelay <= 0 {
		pub.reconnectDelay = defaultReconnectDelay
	}

	if err := pub.connect(); err != nil {
		logger.Error("initial RabbitMQ connection failed, reconnect schedule takes over",
			slog.String("error", err.Error()),
		)
		pub.scheduleReconnect()
	}

	return pub, nil
}

// connect dials the broker, opens a channel, and asserts the exchange.
// The connecting flag makes the attempt single-flight: overlapping callers
// return immediately instead of racing the dial.
func (p *publisher) connect() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()

		return errors.New("publisher is closed")
	}
	if p.connecting {
		p.mu.Unlock()

		return nil
	}
	p.connecting = true
	p.mu.Unlock()

	defer func() {
		p.mu.Lock()
		p.connecting = false
		p.mu.Unlock()
	}()

	conn, err := amqp.Dial(p.url)
	if err != nil {
		return errors.Wrap(err, "failed to dial RabbitMQ")
	}

	channel, err := conn.Channel()
	if err != nil {
		_ = conn.Close()

		return errors.Wrap(err, "failed to open RabbitMQ channel")
	}

	// Idempotent on reconnect; durable so events survive broker restarts.
	if err := channel.ExchangeDeclare(
		p.exchange,
		p.exchangeType,
		true,  // durable
		false, // autoDelete
		false, // internal
		false, // noWait
		nil,
	); err != nil {
		_ = channel.Close()
		_ = conn.Close()

		return errors.Wrap(err, "failed to declare exchange")
	}

	p.mu.Lock()
	p.conn = conn
	p.channel = channel
	p.reconnectAttempts = 0
	p.mu.Unlock()

	go p.watchClose(conn)

	p.logger.Info("connected to RabbitMQ",
		slog.String("exchange", p.exchange),
		slog.String("routingKey", p.routingKey),
	)

	return nil
}

// watchClose waits for a broker-initiated close and kicks off reconnection.
func (p *publisher) watchClose(conn *amqp.Connection) {
	reason, ok := <-conn.NotifyClose(make(chan *amqp.Error, 1))

	p.mu.Lock()
	if p.conn != conn || p.closed {
		p.mu.Unlock()

		return
	}
	p.conn = nil
	p.channel = nil
	p.mu.Unlock()

	if !ok || reason == nil {
		// Graceful close, no reconnect.
		return
	}

	p.logger.Warn("RabbitMQ connection lost",
		slog.String("reason", reason.Error()),
	)
	p.scheduleReconnect()
}

// scheduleReconnect runs the linear backoff schedule on its own goroutine.
// Once maxReconnectAttempts is exhausted the publisher gives up for good.
func (p *publisher) scheduleReconnect() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()

		return
	}
	p.reconnectAttempts++
	attempt := p.reconnectAttempts
	p.mu.Unlock()

	if attempt > p.maxReconnectAttempts {
		p.logger.Error("RabbitMQ reconnect attempts exhausted, publisher stays down until restart",
			slog.Int("maxReconnectAttempts", p.maxReconnectAttempts),
		)

		return
	}

	delay := time.Duration(attempt) * p.reconnectDelay
	p.logger.Info("scheduling RabbitMQ reconnect",
		slog.Int("attempt", attempt),
		slog.Duration("delay", delay),
	)

	time.AfterFunc(delay, func() {
		if err := p.connect(); err != nil {
			p.logger.Warn("RabbitMQ reconnect failed",
				slog.Int("attempt", attempt),
				slog.String("error", err.Error()),
			)
			p.scheduleReconnect()
		}
	})
}

// Publish delivers a single completion event. It fails immediately when the
// connection is down; nothing is buffered and nothing is retried here.
func (p *publisher) Publish(ctx context.Context, event *service.RouteCompletedEvent) error {
	p.mu.Lock()
	channel := p.channel
	p.mu.Unlock()

	if channel == nil {
		return errors.New("cannot publish: RabbitMQ is not connected")
	}

	body, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "failed to marshal event")
	}

	if err := channel.PublishWithContext(ctx,
		p.exchange,
		p.routingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
			Body:         body,
		},
	); err != nil {
		return errors.Wrap(err, "failed to publish event")
	}

	p.logger.Info("published route completed event",
		slog.String("routeId", event.RouteID),
		slog.String("userId", event.UserID),
		slog.Int("score", event.Score),
	)

	return nil
}

// IsHealthy reports whether the broker connection and channel are live.
func (p *publisher) IsHealthy() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.conn != nil && !p.conn.IsClosed() && p.channel != nil
}

// Close tears down the channel and connection. No reconnect fires afterwards.
func (p *publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.closed = true

	if p.channel != nil {
		_ = p.channel.Close()
		p.channel = nil
	}
	if p.conn != nil {
		if err := p.conn.Close(); err != nil {
			return errors.Wrap(err, "failed to close RabbitMQ connection")
		}
		p.conn = nil
	}

	return nil
}
