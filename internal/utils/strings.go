package utils

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var distancePattern = regexp.MustCompile(`^\s*([0-9]+(?:\.[0-9]+)?)\s*km\s*$`)

// ParseDistanceKm parses a display distance string such as "350 km" into
// kilometers. The unit suffix is required; anything else is an error.
func ParseDistanceKm(s string) (float64, error) {
	matches := distancePattern.FindStringSubmatch(strings.ToLower(s))
	if matches == nil {
		return 0, fmt.Errorf("unparseable distance %q", s)
	}

	value, err := strconv.ParseFloat(matches[1], 64)
	if err != nil {
		return 0, fmt.Errorf("unparseable distance %q: %w", s, err)
	}

	return value, nil
}

// Round2 rounds a value to 2 decimal places
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Clamp restricts a value to the closed range [min, max].
// NaN is passed through untouched so callers can decide how to render it.
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
