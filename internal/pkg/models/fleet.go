package models

import "time"

// MaintenanceStatus represents the maintenance condition of a vehicle
type MaintenanceStatus string

const (
	MaintenanceGood       MaintenanceStatus = "GOOD"
	MaintenanceNeedsCheck MaintenanceStatus = "NEEDS_CHECK"
	MaintenancePoor       MaintenanceStatus = "POOR"
)

// DriverCandidate is a driver eligible for assignment to a trip.
// ProximityScore is derived from the driver position relative to the pickup
// point of the planning request; Score is recomputed on every ranking and is
// never persisted as authoritative.
type DriverCandidate struct {
	ID                string  `json:"id" db:"id"`
	Name              string  `json:"name" db:"name"`
	Location          string  `json:"location" db:"location"`
	Latitude          float64 `json:"latitude,omitempty" db:"latitude"`
	Longitude         float64 `json:"longitude,omitempty" db:"longitude"`
	Geohash           string  `json:"geohash,omitempty"`
	PerformanceRating float64 `json:"performance_rating" db:"performance_rating"`
	HoursWorked       float64 `json:"hours_worked" db:"hours_worked"`
	ProximityScore    float64 `json:"proximity_score" db:"proximity_score"`
	Score             float64 `json:"score"`
	Recommended       bool    `json:"recommended"`
}

// VehicleCandidate is a vehicle eligible for assignment to a trip.
// Capacity is a display string (e.g. "1000 kg / 8 m3") and is not decomposed
// into numeric fields.
type VehicleCandidate struct {
	ID                string            `json:"id" db:"id"`
	Type              string            `json:"type" db:"type"`
	Capacity          string            `json:"capacity" db:"capacity"`
	FuelEfficiency    float64           `json:"fuel_efficiency" db:"fuel_efficiency"`
	UtilizationScore  float64           `json:"utilization_score" db:"utilization_score"`
	MaintenanceStatus MaintenanceStatus `json:"maintenance_status" db:"maintenance_status"`
	Score             float64           `json:"score"`
	Recommended       bool              `json:"recommended"`
}

// DriverSnapshot is an immutable copy of a driver candidate captured at trip
// confirmation time. Later changes to the fleet pool never alter it.
type DriverSnapshot struct {
	DriverID          string  `json:"driver_id" db:"driver_id"`
	Name              string  `json:"name" db:"driver_name"`
	Location          string  `json:"location" db:"driver_location"`
	PerformanceRating float64 `json:"performance_rating" db:"driver_performance_rating"`
	HoursWorked       float64 `json:"hours_worked" db:"driver_hours_worked"`
	ProximityScore    float64 `json:"proximity_score" db:"driver_proximity_score"`
	Score             float64 `json:"score" db:"driver_score"`
}

// VehicleSnapshot is an immutable copy of a vehicle candidate captured at
// trip confirmation time.
type VehicleSnapshot struct {
	VehicleID         string            `json:"vehicle_id" db:"vehicle_id"`
	Type              string            `json:"type" db:"vehicle_type"`
	Capacity          string            `json:"capacity" db:"vehicle_capacity"`
	FuelEfficiency    float64           `json:"fuel_efficiency" db:"vehicle_fuel_efficiency"`
	UtilizationScore  float64           `json:"utilization_score" db:"vehicle_utilization_score"`
	MaintenanceStatus MaintenanceStatus `json:"maintenance_status" db:"vehicle_maintenance_status"`
	Score             float64           `json:"score" db:"vehicle_score"`
}

// Snapshot returns an immutable value copy of the candidate
func (d DriverCandidate) Snapshot() DriverSnapshot {
	return DriverSnapshot{
		DriverID:          d.ID,
		Name:              d.Name,
		Location:          d.Location,
		PerformanceRating: d.PerformanceRating,
		HoursWorked:       d.HoursWorked,
		ProximityScore:    d.ProximityScore,
		Score:             d.Score,
	}
}

// Snapshot returns an immutable value copy of the candidate
func (v VehicleCandidate) Snapshot() VehicleSnapshot {
	return VehicleSnapshot{
		VehicleID:         v.ID,
		Type:              v.Type,
		Capacity:          v.Capacity,
		FuelEfficiency:    v.FuelEfficiency,
		UtilizationScore:  v.UtilizationScore,
		MaintenanceStatus: v.MaintenanceStatus,
		Score:             v.Score,
	}
}

// GeoPoint represents a geographical point with latitude and longitude
type GeoPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// FleetSeededMessage is published after the candidate pool is repopulated
type FleetSeededMessage struct {
	Drivers    int       `json:"drivers"`
	Vehicles   int       `json:"vehicles"`
	OccurredAt time.Time `json:"occurred_at"`
}

// DriverPosition is a driver's last reported position in the fleet pool
type DriverPosition struct {
	DriverID   string    `json:"driver_id"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	ReportedAt time.Time `json:"reported_at"`
}
