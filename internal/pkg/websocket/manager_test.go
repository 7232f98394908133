package websocket

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/piresc/fleettrack/internal/pkg/constants"
	"github.com/piresc/fleettrack/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startServer(t *testing.T, m *Manager, greeting *models.WSMessage) string {
	t.Helper()
	e := echo.New()
	e.GET("/ws", func(c echo.Context) error { return m.HandleConnection(c, greeting) })
	server := httptest.NewServer(e)
	t.Cleanup(server.Close)
	return "ws" + strings.TrimPrefix(server.URL, "http") + "/ws"
}

func dial(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestManager_GreetingAndBroadcast(t *testing.T) {
	m := NewManager()
	greeting, err := NewMessage(constants.EventFleetView, map[string]int{"liveDrivers": 0})
	require.NoError(t, err)

	conn := dial(t, startServer(t, m, &greeting))
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))

	var first models.WSMessage
	require.NoError(t, conn.ReadJSON(&first))
	assert.Equal(t, constants.EventFleetView, first.Event)
	assert.JSONEq(t, `{"liveDrivers":0}`, string(first.Data))

	require.Eventually(t, func() bool { return m.ClientCount() == 1 }, time.Second, 10*time.Millisecond)
	require.NoError(t, m.Broadcast(constants.EventFleetView, map[string]int{"liveDrivers": 2}))

	var second models.WSMessage
	require.NoError(t, conn.ReadJSON(&second))
	assert.JSONEq(t, `{"liveDrivers":2}`, string(second.Data))
}

func TestManager_PingPong(t *testing.T) {
	m := NewManager()
	conn := dial(t, startServer(t, m, nil))

	require.NoError(t, conn.WriteJSON(models.WSMessage{Event: constants.EventPing}))
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))

	var reply models.WSMessage
	require.NoError(t, conn.ReadJSON(&reply))
	assert.Equal(t, constants.EventPong, reply.Event)
}

func TestManager_UnsupportedEvent(t *testing.T) {
	m := NewManager()
	conn := dial(t, startServer(t, m, nil))

	require.NoError(t, conn.WriteJSON(models.WSMessage{Event: "subscribe"}))
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))

	var reply models.WSMessage
	require.NoError(t, conn.ReadJSON(&reply))
	assert.Equal(t, constants.EventError, reply.Event)
	var wsErr models.WSErrorMessage
	require.NoError(t, json.Unmarshal(reply.Data, &wsErr))
	assert.Equal(t, "unsupported_event", wsErr.Code)
	assert.Equal(t, "unsupported event: subscribe", wsErr.Message)
}

func TestManager_ClientDisconnect(t *testing.T) {
	m := NewManager()
	conn := dial(t, startServer(t, m, nil))

	require.Eventually(t, func() bool { return m.ClientCount() == 1 }, time.Second, 10*time.Millisecond)
	conn.Close()
	assert.Eventually(t, func() bool { return m.ClientCount() == 0 }, 2*time.Second, 10*time.Millisecond)
}
