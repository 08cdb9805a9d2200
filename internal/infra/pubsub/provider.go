// Package pubsub publishes order events to the configured message bus.
package pubsub

import (
	"context"
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopPublisher drops events when no bus is configured.
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishOrderEvent(_ context.Context, event *service.OrderEvent) error {
	p.logger.Debug("[NoopPubSub] Event publishing disabled, skipping",
		slog.String("order_id", event.OrderID),
		slog.String("type", string(event.Type)),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher creates an EventPublisher based on configuration
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" || cfg.Provider == constants.PubSubProviderNoop {
		logger.Info("PubSub not configured, using no-op publisher")

		return &noopPublisher{logger: logger}, nil
	}

	var publisher service.EventPublisher
	var err error

	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Using local HTTP publisher for order events",
			slog.String("endpoint", cfg.LocalEndpoint),
		)

		publisher = NewLocalHTTPPublisher(cfg.LocalEndpoint, logger)

	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return nil, errors.New("topic ID is required for google provider")
		}

		publisher, err = NewGooglePubSubPublisher(params.Ctx, cfg.ProjectID, cfg.TopicID, logger)
		if err != nil {
			return nil, err
		}

	case constants.PubSubProviderKafka:
		kafkaCfg := params.Config.Kafka
		if kafkaCfg == nil || len(kafkaCfg.Brokers) == 0 {
			return nil, errors.New("kafka.brokers is required for kafka provider")
		}
		if kafkaCfg.Topic == "" {
			return nil, errors.New("kafka.topic is required for kafka provider")
		}
		logger.Info("Using Kafka publisher for order events",
			slog.Any("brokers", kafkaCfg.Brokers),
			slog.String("topic", kafkaCfg.Topic),
		)

		publisher = NewKafkaPublisher(kafkaCfg.Brokers, kafkaCfg.Topic, logger)

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing EventPublisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}

// eventAttributes are the routing attributes attached to every transport.
func eventAttributes(event *service.OrderEvent) map[string]string {
	attributes := map[string]string{
		"order_id": event.OrderID,
		"type":     string(event.Type),
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
