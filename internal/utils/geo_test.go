package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fleetops/dispatch/internal/pkg/models"
	"github.com/fleetops/dispatch/internal/utils"
)

func TestCalculateDistance(t *testing.T) {
	mumbai := models.GeoPoint{Latitude: 18.9696, Longitude: 72.8195}
	pune := models.GeoPoint{Latitude: 18.5204, Longitude: 73.8567}

	distance := utils.CalculateDistance(mumbai, pune)
	assert.InDelta(t, 120, distance, 10)

	assert.Zero(t, utils.CalculateDistance(mumbai, mumbai))
}

func TestProximityScore(t *testing.T) {
	// At the pickup point
	assert.Equal(t, 100.00, utils.ProximityScore(0, 50))

	// Halfway out
	assert.Equal(t, 50.00, utils.ProximityScore(25, 50))

	// At and beyond the radius
	assert.Equal(t, 0.00, utils.ProximityScore(50, 50))
	assert.Equal(t, 0.00, utils.ProximityScore(120, 50))
}

func TestProximityScore_ZeroRadius(t *testing.T) {
	assert.Equal(t, 0.00, utils.ProximityScore(10, 0))
}

func TestGeohashRoundTrip(t *testing.T) {
	point := models.GeoPoint{Latitude: 18.9696, Longitude: 72.8195}

	hash := utils.EncodeLocation(point, 9)
	lat, lon := utils.DecodeGeohash(hash)

	assert.InDelta(t, point.Latitude, lat, 0.001)
	assert.InDelta(t, point.Longitude, lon, 0.001)
}
