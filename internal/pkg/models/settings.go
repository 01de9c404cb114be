package models

import "time"

// DispatchSettings holds per-account dispatcher preferences. They feed the
// fuel cost derivation and display defaults only; the scoring formulas use
// fixed constants regardless of these values.
type DispatchSettings struct {
	AccountID              string             `json:"account_id" db:"account_id"`
	MaxDrivingHours        float64            `json:"max_driving_hours" db:"max_driving_hours"`
	FuelPricePerLitre      float64            `json:"fuel_price_per_litre" db:"fuel_price_per_litre"`
	FuelPricesByState      map[string]float64 `json:"fuel_prices_by_state,omitempty"`
	ExchangeRate           float64            `json:"exchange_rate" db:"exchange_rate"`
	Currency               string             `json:"currency" db:"currency"`
	DefaultRoutePreference string             `json:"default_route_preference" db:"default_route_preference"`
	UpdatedAt              time.Time          `json:"updated_at" db:"updated_at"`
}
