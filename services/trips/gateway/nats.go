package gateway

import (
	"context"
	"time"

	"github.com/fleetops/dispatch/internal/pkg/constants"
	"github.com/fleetops/dispatch/internal/pkg/models"
	natspkg "github.com/fleetops/dispatch/internal/pkg/nats"
	"github.com/fleetops/dispatch/services/trips"
)

// TripGW handles NATS publishing for trip events
type TripGW struct {
	producer *natspkg.Producer
}

// NewTripGW creates a new trip gateway
func NewTripGW(client *natspkg.Client) trips.TripGW {
	return &TripGW{
		producer: natspkg.NewProducer(client),
	}
}

// PublishTripCreated publishes a trip created event to NATS
func (g *TripGW) PublishTripCreated(ctx context.Context, trip *models.Trip) error {
	return g.producer.Publish(constants.SubjectTripCreated, models.TripEventMessage{
		TripID:     trip.ID,
		AccountID:  trip.AccountID,
		Status:     trip.Status,
		OccurredAt: time.Now(),
	})
}

// PublishTripStatusChanged publishes a lifecycle transition event to NATS
func (g *TripGW) PublishTripStatusChanged(ctx context.Context, trip *models.Trip) error {
	return g.producer.Publish(constants.SubjectTripStatus, models.TripEventMessage{
		TripID:     trip.ID,
		AccountID:  trip.AccountID,
		Status:     trip.Status,
		OccurredAt: time.Now(),
	})
}
