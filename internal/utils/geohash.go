package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/mmcloughlin/geohash"
	"github.com/piresc/fleettrack/internal/pkg/models"
)

// EarthRadiusKm is the mean Earth radius used for great-circle distances
const EarthRadiusKm = 6371.0

// GeohashPrecision is the number of characters stored for live positions (~150m cells)
const GeohashPrecision = 7

// DistanceKm returns the great-circle distance in kilometers between two points using the
// haversine formula
func DistanceKm(latA, lonA, latB, lonB float64) float64 {
	lat1 := latA * math.Pi / 180.0
	lat2 := latB * math.Pi / 180.0
	dLat := (latB - latA) * math.Pi / 180.0
	dLon := (lonB - lonA) * math.Pi / 180.0

	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	// rounding can push a a hair past 1 for antipodal points
	a = math.Min(1, math.Max(0, a))
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c
}

// DistanceBetween is DistanceKm for two locations
func DistanceBetween(a, b models.Location) float64 {
	return DistanceKm(a.Latitude, a.Longitude, b.Latitude, b.Longitude)
}

// EncodeLocation converts a location to a geohash string
func EncodeLocation(location models.Location, precision uint) string {
	return geohash.EncodeWithPrecision(location.Latitude, location.Longitude, precision)
}

// DecodeGeohash converts a geohash string to the center of its cell
func DecodeGeohash(hash string) models.Location {
	lat, lng := geohash.Decode(hash)
	return models.Location{Latitude: lat, Longitude: lng}
}

// ParseCoordinate parses "lat,lon" into a location
func ParseCoordinate(input string) (models.Location, error) {
	parts := strings.Split(input, ",")
	if len(parts) != 2 {
		return models.Location{}, fmt.Errorf("invalid coordinate: %s", input)
	}

	lat, err1 := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	lng, err2 := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err1 != nil || err2 != nil {
		return models.Location{}, fmt.Errorf("invalid lat/lon: %s", input)
	}
	if err := ValidateCoordinate(lat, lng); err != nil {
		return models.Location{}, err
	}

	return models.Location{Latitude: lat, Longitude: lng}, nil
}

// ValidateCoordinate checks latitude and longitude ranges
func ValidateCoordinate(lat, lng float64) error {
	if math.IsNaN(lat) || lat < -90 || lat > 90 {
		return fmt.Errorf("latitude must be between -90 and 90")
	}
	if math.IsNaN(lng) || lng < -180 || lng > 180 {
		return fmt.Errorf("longitude must be between -180 and 180")
	}
	return nil
}
