package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/fleetops/dispatch/internal/pkg/middleware"
	"github.com/fleetops/dispatch/internal/pkg/models"
	natspkg "github.com/fleetops/dispatch/internal/pkg/nats"
	wspkg "github.com/fleetops/dispatch/internal/pkg/websocket"
	"github.com/fleetops/dispatch/services/trips"
	httpHandler "github.com/fleetops/dispatch/services/trips/handler/http"
	natsHandler "github.com/fleetops/dispatch/services/trips/handler/nats"
	wsHandler "github.com/fleetops/dispatch/services/trips/handler/websocket"
)

// Handler combines all handlers for the trips service
type Handler struct {
	tripsHTTP *httpHandler.TripsHandler
	tripsNATS *natsHandler.TripsHandler
	tripsWS   *wsHandler.FeedHandler
	cfg       *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(
	tripUC trips.TripUC,
	natsClient *natspkg.Client,
	wsManager *wspkg.Manager,
	cfg *models.Config,
) *Handler {
	return &Handler{
		tripsHTTP: httpHandler.NewTripsHandler(tripUC),
		tripsNATS: natsHandler.NewTripsHandler(tripUC, natsClient, wsManager, cfg),
		tripsWS:   wsHandler.NewFeedHandler(tripUC, wsManager),
		cfg:       cfg,
	}
}

// RegisterRoutes registers all HTTP routes for the trips service
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	v1 := e.Group("/v1", middleware.JWTAuthMiddleware(h.cfg.JWT))
	v1.POST("/trips", h.tripsHTTP.ConfirmTrip)
	v1.GET("/trips", h.tripsHTTP.ListTrips)
	v1.GET("/trips/:tripID", h.tripsHTTP.GetTrip)
	v1.POST("/trips/:tripID/progress", h.tripsHTTP.StartTrip)
	v1.POST("/trips/:tripID/complete", h.tripsHTTP.CompleteTrip)
	v1.POST("/trips/:tripID/cancel", h.tripsHTTP.CancelTrip)

	// WebSocket feed authenticates inside the manager
	e.GET("/ws/trips", h.tripsWS.HandleFeed)
}

// InitNATSConsumers starts the trip feed consumers
func (h *Handler) InitNATSConsumers() error {
	return h.tripsNATS.InitNATSConsumers()
}

// Stop stops the NATS consumers
func (h *Handler) Stop() {
	h.tripsNATS.Stop()
}
