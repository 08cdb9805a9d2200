package service

import (
	"context"
	"time"
)

// OrderEventType names what happened to an order.
type OrderEventType string

const (
	OrderEventCreated       OrderEventType = "order.created"
	OrderEventPaid          OrderEventType = "order.paid"
	OrderEventPaymentFailed OrderEventType = "order.payment_failed"
	OrderEventStatusChanged OrderEventType = "order.status_changed"
)

// OrderEvent is published to the event bus and the staff live feed.
type OrderEvent struct {
	RequestID     string         `json:"request_id,omitempty"`
	Type          OrderEventType `json:"type"`
	OrderID       string         `json:"order_id"`
	OwnerID       string         `json:"owner_id"`
	Status        string         `json:"status"`
	PaymentStatus string         `json:"payment_status,omitempty"`
	TotalAmount   string         `json:"total_amount"`
	Fulfillment   string         `json:"fulfillment"`
	OccurredAt    time.Time      `json:"occurred_at"`
}

// EventPublisher publishes order events to a message bus.
type EventPublisher interface {
	PublishOrderEvent(ctx context.Context, event *OrderEvent) error

	// Close releases any resources held by the publisher
	Close() error
}

// OrderFeed pushes order events to connected staff dashboards.
type OrderFeed interface {
	Broadcast(event *OrderEvent)
}
