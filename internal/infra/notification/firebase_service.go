// Package notification pushes staff alerts through Firebase Cloud Messaging.
package notification

import (
	"context"
	"fmt"
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// topicSender is the part of *messaging.Client used here.
type topicSender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

type firebaseService struct {
	client topicSender
	logger *slog.Logger
}

// NewNotificationService returns the FCM sender, or a no-op sender when
// firebase is not configured.
func NewNotificationService(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.NotificationService, error) {
	if cfg.Firebase == nil || cfg.Firebase.ProjectID == "" {
		logger.Info("Firebase not configured, staff push notifications disabled")

		return noopService{}, nil
	}

	return NewFirebaseService(ctx, cfg.Firebase, logger)
}

// NewFirebaseService creates a new Firebase notification service instance
func NewFirebaseService(ctx context.Context, cfg *config.FirebaseConfig, logger *slog.Logger) (service.NotificationService, error) {
	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.ProjectID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messaging client: %w", err)
	}

	return &firebaseService{client: client, logger: logger}, nil
}

// SendToTopic notifies every device subscribed to topic.
func (s *firebaseService) SendToTopic(ctx context.Context, topic, title, body string, data map[string]string) error {
	message := &messaging.Message{
		Topic: topic,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	messageID, err := s.client.Send(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}

	s.logger.Debug("push notification sent",
		slog.String("topic", topic),
		slog.String("message_id", messageID),
	)

	return nil
}

type noopService struct{}

func (noopService) SendToTopic(context.Context, string, string, string, map[string]string) error {
	return nil
}
