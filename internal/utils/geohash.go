package utils

import (
	"github.com/mmcloughlin/geohash"
	"github.com/piresc/triptrack/internal/pkg/models"
)

// EncodeLocation converts a location snapshot to a geohash cell of the given precision
func EncodeLocation(location models.LocationSnapshot, precision uint) string {
	return geohash.EncodeWithPrecision(location.Latitude, location.Longitude, precision)
}

// DecodeGeohash returns the center of a geohash cell
func DecodeGeohash(hash string) (latitude, longitude float64) {
	return geohash.Decode(hash)
}
