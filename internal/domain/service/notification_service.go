package service

import (
	"context"
)

// NotificationService sends push notifications.
type NotificationService interface {
	// SendToTopic notifies every device subscribed to topic.
	SendToTopic(ctx context.Context, topic, title, body string, data map[string]string) error
}
