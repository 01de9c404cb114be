package models

// PlanRequest asks for ranked driver and vehicle recommendations for a
// delivery route. Pickup is the point proximity scores are derived from.
type PlanRequest struct {
	RouteID string   `json:"route_id"`
	Pickup  GeoPoint `json:"pickup"`
}

// FuelEstimate is the display-only fuel cost derivation for one vehicle.
// Available is false when the distance or efficiency is missing or
// unparseable; Cost is meaningless in that case.
type FuelEstimate struct {
	VehicleID string  `json:"vehicle_id"`
	Available bool    `json:"available"`
	Cost      float64 `json:"cost,omitempty"`
	Currency  string  `json:"currency,omitempty"`
}

// PlanResponse carries ranked candidates for one planning request. The top
// entry of each list is flagged Recommended but the operator may pick any.
type PlanResponse struct {
	Route         Route              `json:"route"`
	Drivers       []DriverCandidate  `json:"drivers"`
	Vehicles      []VehicleCandidate `json:"vehicles"`
	FuelEstimates []FuelEstimate     `json:"fuel_estimates"`
}
