package realtime

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"storefront/internal/domain/service"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startHub(t *testing.T, origins ...string) (*Hub, string) {
	t.Helper()

	hub := newHub(origins, slog.New(slog.NewTextHandler(io.Discard, nil)))
	srv := httptest.NewServer(hub)
	t.Cleanup(func() {
		hub.Close()
		srv.Close()
	})

	return hub, "ws" + strings.TrimPrefix(srv.URL, "http")
}

func waitForClients(t *testing.T, hub *Hub, n int) {
	t.Helper()
	require.Eventually(t, func() bool { return hub.Clients() == n }, time.Second, 10*time.Millisecond)
}

func TestHub_BroadcastReachesClients(t *testing.T) {
	hub, url := startHub(t)

	first, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer first.Close()
	second, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer second.Close()

	waitForClients(t, hub, 2)

	hub.Broadcast(&service.OrderEvent{Type: service.OrderEventCreated, OrderID: "o-1", Status: "pending"})

	for _, conn := range []*websocket.Conn{first, second} {
		var got service.OrderEvent
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(time.Second)))
		require.NoError(t, conn.ReadJSON(&got))
		assert.Equal(t, service.OrderEventCreated, got.Type)
		assert.Equal(t, "o-1", got.OrderID)
	}
}

func TestHub_ClientDisconnectUnregisters(t *testing.T) {
	hub, url := startHub(t)

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	waitForClients(t, hub, 1)

	require.NoError(t, conn.Close())
	waitForClients(t, hub, 0)
}

func TestHub_CloseRefusesNewClients(t *testing.T) {
	hub, url := startHub(t)
	hub.Close()

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(time.Second)))
	_, _, err = conn.ReadMessage()
	require.Error(t, err)
	assert.Equal(t, 0, hub.Clients())
}

func TestHub_RejectsForeignOrigin(t *testing.T) {
	_, url := startHub(t, "https://shop.example")

	header := http.Header{"Origin": []string{"https://evil.example"}}
	_, resp, err := websocket.DefaultDialer.Dial(url, header)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	header.Set("Origin", "https://shop.example")
	conn, _, err := websocket.DefaultDialer.Dial(url, header)
	require.NoError(t, err)
	conn.Close()
}
