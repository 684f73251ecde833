package websocket

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/piresc/quizarena/internal/pkg/constants"
	jwtpkg "github.com/piresc/quizarena/internal/pkg/jwt"
	"github.com/piresc/quizarena/internal/pkg/logger"
	"github.com/piresc/quizarena/internal/pkg/middleware"
	"github.com/piresc/quizarena/internal/pkg/models"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 64 << 10
)

// Client is one authenticated socket. Writes are serialized per client.
type Client struct {
	UserID string
	Role   string

	conn    *websocket.Conn
	writeMu sync.Mutex
	rooms   map[string]struct{}
	done    chan struct{}
}

// Send writes one event envelope
func (cl *Client) Send(event string, data interface{}) error {
	if cl == nil || cl.conn == nil {
		return nil
	}

	rawData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("error marshaling message data: %w", err)
	}

	cl.writeMu.Lock()
	defer cl.writeMu.Unlock()

	_ = cl.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return cl.conn.WriteJSON(models.WSMessage{Event: event, Data: rawData})
}

// SendError writes a quiz:error event
func (cl *Client) SendError(statusCode int, message string) error {
	return cl.Send(constants.EventQuizError, models.WSErrorMessage{
		StatusCode: statusCode,
		Message:    message,
	})
}

// ReadMessage blocks for the next inbound frame
func (cl *Client) ReadMessage() (models.WSMessage, error) {
	var msg models.WSMessage
	_, raw, err := cl.conn.ReadMessage()
	if err != nil {
		return msg, err
	}
	if err := json.Unmarshal(raw, &msg); err != nil {
		return msg, &MalformedFrameError{Err: err}
	}
	return msg, nil
}

// MalformedFrameError reports a frame that is not a JSON envelope
type MalformedFrameError struct {
	Err error
}

func (e *MalformedFrameError) Error() string {
	return "malformed frame: " + e.Err.Error()
}

func (e *MalformedFrameError) Unwrap() error {
	return e.Err
}

// Manager manages WebSocket connections, one per user, and broadcast rooms
type Manager struct {
	sync.RWMutex
	clients  map[string]*Client
	rooms    map[string]map[*Client]struct{}
	cfg      models.JWTConfig
	upgrader websocket.Upgrader
}

// NewManager creates a new WebSocket manager. allowedOrigin "*" accepts any origin.
func NewManager(jwtConfig models.JWTConfig, allowedOrigin string) *Manager {
	return &Manager{
		clients: make(map[string]*Client),
		rooms:   make(map[string]map[*Client]struct{}),
		cfg:     jwtConfig,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     originChecker(allowedOrigin),
		},
	}
}

func originChecker(allowed string) func(r *http.Request) bool {
	allowed = strings.TrimRight(allowed, "/")
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" || allowed == "" || allowed == "*" {
			return true
		}
		return strings.EqualFold(strings.TrimRight(origin, "/"), allowed)
	}
}

// HandleConnection authenticates, upgrades and registers the socket, then
// runs handleClient until it returns. The client is unregistered afterwards.
func (m *Manager) HandleConnection(c echo.Context, handleClient func(*Client) error) error {
	claims, err := m.authenticate(c)
	if err != nil {
		return err
	}

	ws, err := m.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return nil
	}

	client := &Client{
		UserID: claims.UserID,
		Role:   claims.Role,
		conn:   ws,
		rooms:  make(map[string]struct{}),
		done:   make(chan struct{}),
	}

	ws.SetReadLimit(maxMessageSize)
	_ = ws.SetReadDeadline(time.Now().Add(pongWait))
	ws.SetPongHandler(func(string) error {
		return ws.SetReadDeadline(time.Now().Add(pongWait))
	})

	m.addClient(client)
	go m.keepAlive(client)

	defer func() {
		close(client.done)
		m.removeClient(client)
		_ = ws.Close()
	}()

	return handleClient(client)
}

func (m *Manager) keepAlive(client *Client) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-client.done:
			return
		case <-ticker.C:
			if err := client.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		}
	}
}

// authenticate reads the bearer token from the Authorization header or the token query parameter
func (m *Manager) authenticate(c echo.Context) (*jwtpkg.Claims, error) {
	token, ok := middleware.BearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
	if !ok {
		token = c.QueryParam("token")
	}
	if token == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
	}

	claims, err := jwtpkg.ValidateToken(token, m.cfg)
	if err != nil {
		logger.Warn("Token validation failed", logger.Err(err))
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
	}
	return claims, nil
}

// addClient registers client, replacing and closing any previous socket of the same user
func (m *Manager) addClient(client *Client) {
	m.Lock()
	previous := m.clients[client.UserID]
	m.clients[client.UserID] = client
	m.Unlock()

	if previous != nil {
		logger.Info("Replacing existing websocket connection", logger.String("user_id", client.UserID))
		_ = previous.conn.Close()
	}
}

func (m *Manager) removeClient(client *Client) {
	m.Lock()
	defer m.Unlock()

	for room := range client.rooms {
		if members, ok := m.rooms[room]; ok {
			delete(members, client)
			if len(members) == 0 {
				delete(m.rooms, room)
			}
		}
	}
	if m.clients[client.UserID] == client {
		delete(m.clients, client.UserID)
	}
}

// GetClient returns the live client of a user
func (m *Manager) GetClient(userID string) (*Client, bool) {
	m.RLock()
	defer m.RUnlock()
	client, exists := m.clients[userID]
	return client, exists
}

// JoinRoom subscribes client to room broadcasts
func (m *Manager) JoinRoom(client *Client, room string) {
	m.Lock()
	defer m.Unlock()

	members, ok := m.rooms[room]
	if !ok {
		members = make(map[*Client]struct{})
		m.rooms[room] = members
	}
	members[client] = struct{}{}
	client.rooms[room] = struct{}{}
}

// RoomSize returns the number of clients in room
func (m *Manager) RoomSize(room string) int {
	m.RLock()
	defer m.RUnlock()
	return len(m.rooms[room])
}

// Broadcast sends event to every client in room
func (m *Manager) Broadcast(room string, event string, data interface{}) {
	m.RLock()
	members := make([]*Client, 0, len(m.rooms[room]))
	for client := range m.rooms[room] {
		members = append(members, client)
	}
	m.RUnlock()

	for _, client := range members {
		if err := client.Send(event, data); err != nil {
			logger.Warn("Error broadcasting to client",
				logger.String("room", room),
				logger.String("user_id", client.UserID),
				logger.Err(err))
		}
	}
}

// NotifyClient sends a notification to a specific user
func (m *Manager) NotifyClient(userID string, event string, data interface{}) {
	client, exists := m.GetClient(userID)
	if !exists {
		return
	}

	if err := client.Send(event, data); err != nil {
		logger.Warn("Error sending message to client",
			logger.String("user_id", userID),
			logger.Err(err))
	}
}
