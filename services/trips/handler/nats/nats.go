package nats

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fleetops/dispatch/internal/pkg/constants"
	"github.com/fleetops/dispatch/internal/pkg/logger"
	"github.com/fleetops/dispatch/internal/pkg/models"
	natspkg "github.com/fleetops/dispatch/internal/pkg/nats"
	wspkg "github.com/fleetops/dispatch/internal/pkg/websocket"
	"github.com/fleetops/dispatch/services/trips"
)

// TripFeedUpdate is the payload pushed to dashboard WebSocket clients after
// a trip mutation
type TripFeedUpdate struct {
	Event models.TripEventMessage `json:"event"`
	Trips []models.Trip           `json:"trips"`
}

// TripsHandler consumes trip events and fans them out to the account's
// dashboard connections
type TripsHandler struct {
	tripUC     trips.TripUC
	natsClient *natspkg.Client
	wsManager  *wspkg.Manager
	cfg        *models.Config
	consumers  []*natspkg.Consumer
}

// NewTripsHandler creates a new trip NATS handler
func NewTripsHandler(
	tripUC trips.TripUC,
	natsClient *natspkg.Client,
	wsManager *wspkg.Manager,
	cfg *models.Config,
) *TripsHandler {
	return &TripsHandler{
		tripUC:     tripUC,
		natsClient: natsClient,
		wsManager:  wsManager,
		cfg:        cfg,
	}
}

// InitNATSConsumers subscribes to the trip event subjects
func (h *TripsHandler) InitNATSConsumers() error {
	subjects := []string{
		constants.SubjectTripCreated,
		constants.SubjectTripStatus,
	}

	for _, subject := range subjects {
		consumer, err := natspkg.NewConsumer(h.natsClient, subject, constants.QueueTripFeed, h.handleTripEvent)
		if err != nil {
			return fmt.Errorf("failed to subscribe to %s: %w", subject, err)
		}
		h.consumers = append(h.consumers, consumer)
	}

	logger.Info("Trip feed consumers started",
		logger.Int("subjects", len(subjects)))
	return nil
}

// Stop unsubscribes all consumers
func (h *TripsHandler) Stop() {
	for _, consumer := range h.consumers {
		if err := consumer.Stop(); err != nil {
			logger.Warn("Failed to stop trip feed consumer", logger.Err(err))
		}
	}
}

// handleTripEvent refreshes the account's trip list and pushes it to every
// connected dashboard client of that account
func (h *TripsHandler) handleTripEvent(message []byte) error {
	var event models.TripEventMessage
	if err := json.Unmarshal(message, &event); err != nil {
		return fmt.Errorf("failed to decode trip event: %w", err)
	}

	tripList, err := h.tripUC.ListTrips(context.Background(), event.AccountID, trips.TripFilter{})
	if err != nil {
		return fmt.Errorf("failed to refresh trips for feed: %w", err)
	}

	h.wsManager.Broadcast(event.AccountID, TripFeedUpdate{
		Event: event,
		Trips: tripList,
	})

	logger.Debug("Pushed trip feed update",
		logger.String("account_id", event.AccountID),
		logger.String("trip_id", event.TripID.String()),
		logger.String("status", string(event.Status)))

	return nil
}
