package rabbitmq

import (
	"context"
	"log/slog"

	"routehub/config"
	"routehub/internal/domain/service"

	"go.uber.org/fx"
)

// noopPublisher is a no-op implementation when the broker is not configured
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) Publish(_ context.Context, event *service.RouteCompletedEvent) error {
	p.logger.Debug("[NoopPublisher] Event publishing disabled, skipping",
		slog.String("routeId", event.RouteID),
	)

	return nil
}

func (p *noopPublisher) IsHealthy() bool {
	return true
}

func (p *noopPublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher creates an EventPublisher based on configuration
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.RabbitMQ
	logger := params.Logger

	// If the broker is not configured, return a no-op publisher
	if cfg == nil || cfg.URL == "" {
		logger.Info("RabbitMQ not configured, using no-op publisher")

		return &noopPublisher{logger: logger}, nil
	}

	publisher, err := NewPublisher(cfg, logger)
	if err != nil {
		return nil, err
	}

	// Register lifecycle hook to close publisher on shutdown
	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			logger.Info("Closing EventPublisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}

// Module provides the RabbitMQ FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)
