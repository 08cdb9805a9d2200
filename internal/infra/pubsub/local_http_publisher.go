package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"storefront/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// localHTTPPublisher posts events to a local endpoint in the Pub/Sub push
// format, so a consumer can be developed without a Google project.
type localHTTPPublisher struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// PushMessage mimics the body Google Pub/Sub sends to push subscriptions.
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// NewLocalHTTPPublisher creates a new local HTTP publisher for development
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: logger,
	}
}

func (p *localHTTPPublisher) PublishOrderEvent(ctx context.Context, event *service.OrderEvent) error {
	eventData, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	pushMsg := PushMessage{
		Subscription: "projects/local/subscriptions/order-events",
	}
	pushMsg.Message.Data = base64.StdEncoding.EncodeToString(eventData)
	pushMsg.Message.MessageID = uuid.NewString()
	pushMsg.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)
	pushMsg.Message.Attributes = eventAttributes(event)

	body, err := json.Marshal(pushMsg)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if event.RequestID != "" {
		req.Header.Set("X-Request-Id", event.RequestID)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Errorf("local endpoint returned non-success status: %d", resp.StatusCode)
	}

	p.logger.Debug("[LocalPubSub] Event published",
		slog.String("endpoint", p.endpoint),
		slog.String("order_id", event.OrderID),
		slog.String("type", string(event.Type)),
	)

	return nil
}

// Close releases resources (no-op for HTTP client)
func (p *localHTTPPublisher) Close() error {
	return nil
}
