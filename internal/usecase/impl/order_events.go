package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
)

// orderNotifier fans an order change out to the event bus, the staff live
// feed and staff push notifications. Delivery failures are logged and never
// fail the operation that caused them.
type orderNotifier struct {
	publisher  service.EventPublisher
	feed       service.OrderFeed
	push       service.NotificationService
	staffTopic string
	logger     *slog.Logger
	now        func() time.Time
}

func newOrderNotifier(
	publisher service.EventPublisher,
	feed service.OrderFeed,
	push service.NotificationService,
	staffTopic string,
	logger *slog.Logger,
) *orderNotifier {
	return &orderNotifier{
		publisher:  publisher,
		feed:       feed,
		push:       push,
		staffTopic: staffTopic,
		logger:     logger,
		now:        time.Now,
	}
}

func newOrderEvent(ctx context.Context, eventType service.OrderEventType, order *entity.Order, at time.Time) *service.OrderEvent {
	return &service.OrderEvent{
		RequestID:     deliverycontext.GetRequestIDFromContext(ctx),
		Type:          eventType,
		OrderID:       order.ID.String(),
		OwnerID:       order.OwnerID.String(),
		Status:        string(order.Status),
		PaymentStatus: string(order.PaymentStatus),
		TotalAmount:   order.TotalAmount.String(),
		Fulfillment:   string(order.Fulfillment.Type),
		OccurredAt:    at,
	}
}

// emit publishes the event and broadcasts it to connected staff.
func (n *orderNotifier) emit(ctx context.Context, eventType service.OrderEventType, order *entity.Order) {
	event := newOrderEvent(ctx, eventType, order, n.now())
	logger := deliverycontext.GetLoggerOrDefault(ctx, n.logger)

	if n.publisher != nil {
		if err := n.publisher.PublishOrderEvent(ctx, event); err != nil {
			logger.Error("Failed to publish order event",
				slog.String("type", string(eventType)),
				slog.String("orderID", event.OrderID),
				slog.Any("error", err),
			)
		}
	}

	if n.feed != nil {
		n.feed.Broadcast(event)
	}
}

// notifyStaff sends a push notification to the staff topic, when one is configured.
func (n *orderNotifier) notifyStaff(ctx context.Context, title, body string, order *entity.Order) {
	if n.push == nil || n.staffTopic == "" {
		return
	}

	data := map[string]string{
		"orderId":     order.ID.String(),
		"status":      string(order.Status),
		"totalAmount": order.TotalAmount.String(),
	}
	if err := n.push.SendToTopic(ctx, n.staffTopic, title, body, data); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, n.logger).Warn("Failed to notify staff",
			slog.String("orderID", order.ID.String()),
			slog.Any("error", err),
		)
	}
}
