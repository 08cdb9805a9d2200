package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"
)

// messageWriter is the part of *kafka.Writer the publisher uses.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// kafkaPublisher writes events keyed by order id, so one order's events land
// on one partition in order.
type kafkaPublisher struct {
	writer messageWriter
	logger *slog.Logger
}

// NewKafkaPublisher creates a synchronous publisher that waits for all in-sync replicas.
func NewKafkaPublisher(brokers []string, topic string, logger *slog.Logger) service.EventPublisher {
	return &kafkaPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
			BatchTimeout: 10 * time.Millisecond,
		},
		logger: logger,
	}
}

func (p *kafkaPublisher) PublishOrderEvent(ctx context.Context, event *service.OrderEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	attributes := eventAttributes(event)
	headers := make([]kafka.Header, 0, len(attributes))
	for key, val := range attributes {
		headers = append(headers, kafka.Header{Key: key, Value: []byte(val)})
	}

	msg := kafka.Message{
		Key:     []byte(event.OrderID),
		Value:   value,
		Time:    event.OccurredAt,
		Headers: headers,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return errors.Wrap(err, "write kafka message")
	}

	p.logger.Debug("[Kafka] Event published",
		slog.String("order_id", event.OrderID),
		slog.String("type", string(event.Type)),
	)

	return nil
}

func (p *kafkaPublisher) Close() error {
	return errors.WithStack(p.writer.Close())
}
