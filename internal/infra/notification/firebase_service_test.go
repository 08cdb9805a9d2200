package notification

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"storefront/config"

	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSender struct {
	sent []*messaging.Message
	err  error
}

func (r *recordingSender) Send(_ context.Context, message *messaging.Message) (string, error) {
	if r.err != nil {
		return "", r.err
	}
	r.sent = append(r.sent, message)

	return "projects/p/messages/1", nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestFirebaseService_SendToTopic(t *testing.T) {
	sender := &recordingSender{}
	svc := &firebaseService{client: sender, logger: discardLogger()}

	data := map[string]string{"orderId": "o-1"}
	require.NoError(t, svc.SendToTopic(context.Background(), "staff-orders", "Order paid", "13.000 KWD", data))

	require.Len(t, sender.sent, 1)
	msg := sender.sent[0]
	assert.Equal(t, "staff-orders", msg.Topic)
	assert.Empty(t, msg.Token)
	assert.Equal(t, "Order paid", msg.Notification.Title)
	assert.Equal(t, data, msg.Data)
}

func TestFirebaseService_SendToTopic_Error(t *testing.T) {
	svc := &firebaseService{client: &recordingSender{err: errors.New("quota")}, logger: discardLogger()}

	err := svc.SendToTopic(context.Background(), "staff-orders", "t", "b", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota")
}

func TestNewNotificationService_NotConfigured(t *testing.T) {
	svc, err := NewNotificationService(context.Background(), &config.Config{}, discardLogger())
	require.NoError(t, err)
	assert.IsType(t, noopService{}, svc)
	assert.NoError(t, svc.SendToTopic(context.Background(), "t", "a", "b", nil))
}
