package models

import "time"

// LocationDefaults holds the values used for optional location fields the client omits
type LocationDefaults struct {
	Bearing  float64
	Speed    float64
	Accuracy float64
}

// DefaultLocationDefaults is the single place optional location fields get their fallback
var DefaultLocationDefaults = LocationDefaults{
	Bearing:  0,
	Speed:    0,
	Accuracy: 0,
}

// LocationSnapshot is the latest known position for a trip.
// Each update overwrites the previous one.
type LocationSnapshot struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Bearing   float64   `json:"bearing"`
	Speed     float64   `json:"speed"`
	Accuracy  float64   `json:"accuracy"`
	Timestamp time.Time `json:"timestamp"`
}

// LocationUpdateRequest is the body of POST /api/trips/:tripId/location
type LocationUpdateRequest struct {
	Latitude  *float64 `json:"latitude" validate:"required,latitude"`
	Longitude *float64 `json:"longitude" validate:"required,longitude"`
	Bearing   *float64 `json:"bearing,omitempty"`
	Speed     *float64 `json:"speed,omitempty"`
	Accuracy  *float64 `json:"accuracy,omitempty"`
}

// ToSnapshot fills omitted optional fields from defaults and stamps the snapshot
func (r LocationUpdateRequest) ToSnapshot(defaults LocationDefaults, at time.Time) LocationSnapshot {
	snapshot := LocationSnapshot{
		Bearing:   defaults.Bearing,
		Speed:     defaults.Speed,
		Accuracy:  defaults.Accuracy,
		Timestamp: at,
	}
	if r.Latitude != nil {
		snapshot.Latitude = *r.Latitude
	}
	if r.Longitude != nil {
		snapshot.Longitude = *r.Longitude
	}
	if r.Bearing != nil {
		snapshot.Bearing = *r.Bearing
	}
	if r.Speed != nil {
		snapshot.Speed = *r.Speed
	}
	if r.Accuracy != nil {
		snapshot.Accuracy = *r.Accuracy
	}
	return snapshot
}

// LocationEvent is published after a location snapshot is stored
type LocationEvent struct {
	TripID   string           `json:"tripId"`
	Geohash  string           `json:"geohash"`
	Location LocationSnapshot `json:"location"`
}
