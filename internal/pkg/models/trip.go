package models

import (
	"time"

	"github.com/google/uuid"
)

// TripStatus represents the current status of a dispatched trip
type TripStatus string

const (
	TripStatusScheduled  TripStatus = "SCHEDULED"
	TripStatusInProgress TripStatus = "IN_PROGRESS"
	TripStatusCompleted  TripStatus = "COMPLETED"
	TripStatusCancelled  TripStatus = "CANCELLED"
)

// TripEvent is an operator-requested transition on a trip
type TripEvent string

const (
	TripEventStart    TripEvent = "START"
	TripEventComplete TripEvent = "COMPLETE"
	TripEventCancel   TripEvent = "CANCEL"
)

// DeliveryStatus is the simulated delivery outcome assigned at confirmation
type DeliveryStatus string

const (
	DeliveryOnTime  DeliveryStatus = "ON_TIME"
	DeliveryDelayed DeliveryStatus = "DELAYED"
)

// Route describes a planned delivery route. Routes are fixed catalog values;
// Distance keeps its display form (e.g. "350 km") and is parsed only by the
// fuel cost derivation.
type Route struct {
	ID               string  `json:"id" db:"route_id"`
	Origin           string  `json:"origin" db:"origin"`
	Destination      string  `json:"destination" db:"destination"`
	Distance         string  `json:"distance" db:"distance"`
	ETAHours         float64 `json:"eta_hours" db:"eta_hours"`
	Cost             float64 `json:"cost" db:"cost"`
	RiskRating       string  `json:"risk_rating" db:"risk_rating"`
	DeliveryTimeSlot string  `json:"delivery_time_slot" db:"delivery_time_slot"`
	RoutePreference  string  `json:"route_preference" db:"route_preference"`
}

// Trip represents a planned delivery trip owned by one account.
// AssignedDriver and AssignedVehicle are value snapshots taken at
// confirmation time, not live references into the fleet pool.
type Trip struct {
	ID              uuid.UUID       `json:"id" db:"id"`
	AccountID       string          `json:"account_id" db:"account_id"`
	Route           Route           `json:"route"`
	AssignedDriver  DriverSnapshot  `json:"assigned_driver"`
	AssignedVehicle VehicleSnapshot `json:"assigned_vehicle"`
	Status          TripStatus      `json:"status" db:"status"`
	ActualHours     float64         `json:"actual_hours" db:"actual_hours"`
	DeliveryStatus  DeliveryStatus  `json:"delivery_status" db:"delivery_status"`
	CreatedAt       time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at" db:"updated_at"`
}

// TripEventMessage is published on trip mutations and drives the live
// dashboard feed
type TripEventMessage struct {
	TripID     uuid.UUID  `json:"trip_id"`
	AccountID  string     `json:"account_id"`
	Status     TripStatus `json:"status"`
	OccurredAt time.Time  `json:"occurred_at"`
}
