package websocket

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/piresc/fleettrack/internal/pkg/constants"
	"github.com/piresc/fleettrack/internal/pkg/logger"
	"github.com/piresc/fleettrack/internal/pkg/models"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = pongWait * 9 / 10
	sendBuffer = 8
)

// client is one connected dashboard. Writes happen only on its own goroutine.
type client struct {
	id   string
	conn *websocket.Conn
	send chan models.WSMessage
}

// Manager manages WebSocket connections and fans messages out to every client
type Manager struct {
	sync.RWMutex
	clients  map[string]*client
	upgrader websocket.Upgrader
}

// NewManager creates a new WebSocket manager
func NewManager() *Manager {
	return &Manager{
		clients: make(map[string]*client),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// HandleConnection upgrades the request and serves the client until it disconnects.
// greeting, if non-nil, is sent before any broadcast.
func (m *Manager) HandleConnection(c echo.Context, greeting *models.WSMessage) error {
	ws, err := m.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}

	cl := &client{id: uuid.NewString(), conn: ws, send: make(chan models.WSMessage, sendBuffer)}
	if greeting != nil {
		cl.send <- *greeting
	}
	m.addClient(cl)
	logger.Debug("WebSocket client connected", logger.String("client_id", cl.id))

	go m.writePump(cl)
	m.readPump(cl)
	return nil
}

// ClientCount returns the number of connected clients
func (m *Manager) ClientCount() int {
	m.RLock()
	defer m.RUnlock()
	return len(m.clients)
}

// Broadcast queues a message for every client. Clients whose buffer is full are dropped.
func (m *Manager) Broadcast(event string, data interface{}) error {
	msg, err := NewMessage(event, data)
	if err != nil {
		return err
	}

	m.RLock()
	var slow []*client
	for _, cl := range m.clients {
		select {
		case cl.send <- msg:
		default:
			slow = append(slow, cl)
		}
	}
	m.RUnlock()

	for _, cl := range slow {
		logger.Warn("Dropping slow WebSocket client", logger.String("client_id", cl.id))
		m.removeClient(cl)
	}
	return nil
}

// NewMessage encodes data into a message envelope
func NewMessage(event string, data interface{}) (models.WSMessage, error) {
	rawData, err := json.Marshal(data)
	if err != nil {
		return models.WSMessage{}, fmt.Errorf("error marshaling message data: %w", err)
	}
	return models.WSMessage{Event: event, Data: rawData}, nil
}

// CloseAll disconnects every client
func (m *Manager) CloseAll() {
	m.Lock()
	clients := m.clients
	m.clients = make(map[string]*client)
	m.Unlock()

	for _, cl := range clients {
		close(cl.send)
	}
}

func (m *Manager) addClient(cl *client) {
	m.Lock()
	defer m.Unlock()
	m.clients[cl.id] = cl
}

func (m *Manager) removeClient(cl *client) {
	m.Lock()
	defer m.Unlock()
	if _, ok := m.clients[cl.id]; ok {
		delete(m.clients, cl.id)
		close(cl.send)
	}
}

// readPump consumes client frames so control messages are processed; clients only send pings
func (m *Manager) readPump(cl *client) {
	defer m.removeClient(cl)

	cl.conn.SetReadLimit(4096)
	_ = cl.conn.SetReadDeadline(time.Now().Add(pongWait))
	cl.conn.SetPongHandler(func(string) error {
		return cl.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var msg models.WSMessage
		if err := cl.conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Debug("WebSocket read failed", logger.String("client_id", cl.id), logger.Err(err))
			}
			return
		}
		switch msg.Event {
		case constants.EventPing:
			pong, _ := NewMessage(constants.EventPong, nil)
			m.trySend(cl, pong)
		default:
			reply, _ := NewMessage(constants.EventError, models.WSErrorMessage{
				Code:    "unsupported_event",
				Message: "unsupported event: " + msg.Event,
			})
			m.trySend(cl, reply)
		}
	}
}

// trySend queues msg if the client is still registered and has room
func (m *Manager) trySend(cl *client, msg models.WSMessage) {
	m.RLock()
	defer m.RUnlock()
	if _, ok := m.clients[cl.id]; !ok {
		return
	}
	select {
	case cl.send <- msg:
	default:
	}
}

func (m *Manager) writePump(cl *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		cl.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-cl.send:
			_ = cl.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = cl.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := cl.conn.WriteJSON(msg); err != nil {
				logger.Debug("WebSocket write failed", logger.String("client_id", cl.id), logger.Err(err))
				return
			}
		case <-ticker.C:
			_ = cl.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := cl.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
