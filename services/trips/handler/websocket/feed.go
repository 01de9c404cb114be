package websocket

import (
	"context"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/fleetops/dispatch/internal/pkg/logger"
	"github.com/fleetops/dispatch/internal/pkg/models"
	wspkg "github.com/fleetops/dispatch/internal/pkg/websocket"
	"github.com/fleetops/dispatch/services/trips"
)

// FeedHandler serves the live trip feed over WebSocket
type FeedHandler struct {
	tripUC  trips.TripUC
	manager *wspkg.Manager
}

// NewFeedHandler creates a new trip feed handler
func NewFeedHandler(tripUC trips.TripUC, manager *wspkg.Manager) *FeedHandler {
	return &FeedHandler{
		tripUC:  tripUC,
		manager: manager,
	}
}

// HandleFeed upgrades the connection and keeps it registered for account
// broadcasts. The current trip list is sent immediately so the dashboard
// renders without waiting for the first mutation.
func (h *FeedHandler) HandleFeed(c echo.Context) error {
	return h.manager.HandleConnection(c, func(client *models.WebSocketClient, ws *websocket.Conn) error {
		tripList, err := h.tripUC.ListTrips(context.Background(), client.AccountID, trips.TripFilter{})
		if err != nil {
			logger.Warn("Failed to load initial trip feed",
				logger.String("account_id", client.AccountID),
				logger.Err(err))
		} else if err := ws.WriteJSON(tripList); err != nil {
			return err
		}

		// Read loop keeps the connection alive; inbound payloads are ignored
		for {
			if _, _, err := ws.ReadMessage(); err != nil {
				return nil
			}
		}
	})
}
