package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"storefront/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// googlePubSubPublisher implements EventPublisher using Google Cloud Pub/Sub
type googlePubSubPublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger
}

// NewGooglePubSubPublisher connects to an existing topic. A missing topic is a startup error.
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	topicPath := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	if _, err = client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topicPath}); err != nil {
		client.Close()

		return nil, errors.Wrapf(err, "failed to get topic %s", topicID)
	}

	// Ordering by order id keeps created, paid and status events in sequence.
	publisher := client.Publisher(topicID)
	publisher.EnableMessageOrdering = true

	logger.Info("Google Pub/Sub publisher initialized",
		slog.String("project_id", projectID),
		slog.String("topic_id", topicID),
	)

	return &googlePubSubPublisher{
		client:    client,
		publisher: publisher,
		logger:    logger,
	}, nil
}

func (p *googlePubSubPublisher) PublishOrderEvent(ctx context.Context, event *service.OrderEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	result := p.publisher.Publish(ctx, &pubsub.Message{
		Data:        data,
		Attributes:  eventAttributes(event),
		OrderingKey: event.OrderID,
	})

	serverID, err := result.Get(ctx)
	if err != nil {
		// A failed ordered publish pauses the key until resumed.
		p.publisher.ResumePublish(event.OrderID)

		return errors.WithStack(err)
	}

	p.logger.Debug("[GooglePubSub] Event published",
		slog.String("order_id", event.OrderID),
		slog.String("type", string(event.Type)),
		slog.String("server_id", serverID),
	)

	return nil
}

// Close flushes pending messages and releases the client.
func (p *googlePubSubPublisher) Close() error {
	if p.publisher != nil {
		p.publisher.Stop()
	}
	if p.client != nil {
		return errors.WithStack(p.client.Close())
	}

	return nil
}
