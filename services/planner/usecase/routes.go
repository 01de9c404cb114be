package usecase

import "github.com/fleetops/dispatch/internal/pkg/models"

// routeCatalog holds the fixed delivery routes offered by the planner.
// Distances keep their display form; only the fuel cost derivation parses
// them.
var routeCatalog = []models.Route{
	{
		ID:               "MUM-PUN",
		Origin:           "Mumbai",
		Destination:      "Pune",
		Distance:         "150 km",
		ETAHours:         3.5,
		Cost:             4200,
		RiskRating:       "Low",
		DeliveryTimeSlot: "09:00-13:00",
		RoutePreference:  "Fastest",
	},
	{
		ID:               "DEL-JAI",
		Origin:           "Delhi",
		Destination:      "Jaipur",
		Distance:         "280 km",
		ETAHours:         5.5,
		Cost:             7600,
		RiskRating:       "Medium",
		DeliveryTimeSlot: "08:00-14:00",
		RoutePreference:  "Fastest",
	},
	{
		ID:               "CHE-BLR",
		Origin:           "Chennai",
		Destination:      "Bengaluru",
		Distance:         "350 km",
		ETAHours:         6.5,
		Cost:             9100,
		RiskRating:       "Medium",
		DeliveryTimeSlot: "07:00-15:00",
		RoutePreference:  "Economical",
	},
	{
		ID:               "AHM-SUR",
		Origin:           "Ahmedabad",
		Destination:      "Surat",
		Distance:         "265 km",
		ETAHours:         5.0,
		Cost:             7000,
		RiskRating:       "High",
		DeliveryTimeSlot: "10:00-18:00",
		RoutePreference:  "Safest",
	},
}

// routeByID looks a route up in the catalog
func routeByID(id string) (models.Route, bool) {
	for _, r := range routeCatalog {
		if r.ID == id {
			return r, true
		}
	}
	return models.Route{}, false
}
