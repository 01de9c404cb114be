package websocket

import (
	"net/http"
	"strings"
	"sync"

	"github.com/golang-jwt/jwt/v4"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/fleetops/dispatch/internal/pkg/logger"
	"github.com/fleetops/dispatch/internal/pkg/models"
)

// Manager manages authenticated dashboard WebSocket connections grouped by
// account scope
type Manager struct {
	sync.RWMutex
	conns    map[string]map[*websocket.Conn]struct{}
	cfg      models.JWTConfig
	upgrader websocket.Upgrader
}

// NewManager creates a new WebSocket manager
func NewManager(jwtConfig models.JWTConfig) *Manager {
	return &Manager{
		conns: make(map[string]map[*websocket.Conn]struct{}),
		cfg:   jwtConfig,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// HandleConnection authenticates and handles a new WebSocket connection.
// The connection stays registered for account broadcasts until the client
// disconnects.
func (m *Manager) HandleConnection(c echo.Context, handleClient func(*models.WebSocketClient, *websocket.Conn) error) error {
	client, err := m.authenticateClient(c)
	if err != nil {
		return err
	}

	ws, err := m.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	defer ws.Close()

	m.register(client.AccountID, ws)
	defer m.unregister(client.AccountID, ws)

	return handleClient(client, ws)
}

// Broadcast sends a JSON payload to every connection of the account
func (m *Manager) Broadcast(accountID string, payload interface{}) {
	m.RLock()
	defer m.RUnlock()

	for conn := range m.conns[accountID] {
		if err := conn.WriteJSON(payload); err != nil {
			logger.Warn("Failed to write to websocket client",
				logger.String("account_id", accountID),
				logger.Err(err))
		}
	}
}

func (m *Manager) register(accountID string, conn *websocket.Conn) {
	m.Lock()
	defer m.Unlock()

	if m.conns[accountID] == nil {
		m.conns[accountID] = make(map[*websocket.Conn]struct{})
	}
	m.conns[accountID][conn] = struct{}{}
}

func (m *Manager) unregister(accountID string, conn *websocket.Conn) {
	m.Lock()
	defer m.Unlock()

	delete(m.conns[accountID], conn)
	if len(m.conns[accountID]) == 0 {
		delete(m.conns, accountID)
	}
}

// authenticateClient authenticates the WebSocket client using JWT
func (m *Manager) authenticateClient(c echo.Context) (*models.WebSocketClient, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Authorization header is required")
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid authorization format")
	}

	claims, err := m.validateToken(parts[1])
	if err != nil {
		logger.Warn("Token validation failed", logger.Err(err))
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
	}

	return &models.WebSocketClient{
		AccountID: claims.AccountID,
		Role:      claims.Role,
	}, nil
}

// validateToken validates the JWT token and returns the claims
func (m *Manager) validateToken(tokenString string) (*models.WebSocketClaims, error) {
	claims := &models.WebSocketClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(m.cfg.Secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}

	return claims, nil
}
