package models

import "time"

// TripStatus represents the lifecycle state of a trip
type TripStatus string

const (
	TripStatusCreated    TripStatus = "created"
	TripStatusInProgress TripStatus = "in_progress"
	TripStatusCompleted  TripStatus = "completed"
	TripStatusCancelled  TripStatus = "cancelled"
)

var tripTransitions = map[TripStatus][]TripStatus{
	TripStatusCreated:    {TripStatusInProgress, TripStatusCancelled},
	TripStatusInProgress: {TripStatusInProgress, TripStatusCompleted, TripStatusCancelled},
}

// CanTransitionTo reports whether a trip in status s may move to next.
// Completed and cancelled trips are terminal.
func (s TripStatus) CanTransitionTo(next TripStatus) bool {
	for _, allowed := range tripTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transitions are allowed from s
func (s TripStatus) IsTerminal() bool {
	return len(tripTransitions[s]) == 0
}

// Coordinates is a geographic point in degrees
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Trip is the record stored per trip in Redis
type Trip struct {
	TripID      string      `json:"tripId"`
	From        Coordinates `json:"from"`
	To          Coordinates `json:"to"`
	DriverID    string      `json:"driverId"`
	CustomerID  string      `json:"customerId"`
	Status      TripStatus  `json:"status"`
	Reason      *string     `json:"reason,omitempty"`
	CreatedAt   time.Time   `json:"createdAt"`
	StartedAt   *time.Time  `json:"startedAt,omitempty"`
	CompletedAt *time.Time  `json:"completedAt,omitempty"`
	CancelledAt *time.Time  `json:"cancelledAt,omitempty"`
}

// PointRequest is a coordinate pair as received over HTTP
type PointRequest struct {
	Latitude  *float64 `json:"latitude" validate:"required,latitude"`
	Longitude *float64 `json:"longitude" validate:"required,longitude"`
}

// Coordinates converts a request point; missing values become zero
func (p *PointRequest) Coordinates() Coordinates {
	var c Coordinates
	if p == nil {
		return c
	}
	if p.Latitude != nil {
		c.Latitude = *p.Latitude
	}
	if p.Longitude != nil {
		c.Longitude = *p.Longitude
	}
	return c
}

// CreateTripRequest is the body of POST /api/trips.
// Driver and customer IDs are opaque and not checked against any store.
type CreateTripRequest struct {
	From       *PointRequest `json:"from" validate:"required"`
	To         *PointRequest `json:"to" validate:"required"`
	DriverID   string        `json:"driverId"`
	CustomerID string        `json:"customerId"`
}

// CreateTripResponse is returned after a trip is created
type CreateTripResponse struct {
	TripID string `json:"tripId"`
}

// CancelTripRequest is the optional body of PATCH /api/trips/:tripId/cancel
type CancelTripRequest struct {
	Reason *string `json:"reason"`
}

// TripEvent is published on every trip lifecycle transition
type TripEvent struct {
	TripID     string     `json:"tripId"`
	Status     TripStatus `json:"status"`
	DriverID   string     `json:"driverId"`
	CustomerID string     `json:"customerId"`
	Reason     *string    `json:"reason,omitempty"`
	OccurredAt time.Time  `json:"occurredAt"`
}

// NewTripEvent builds the event for the trip's current state
func NewTripEvent(trip *Trip, at time.Time) TripEvent {
	return TripEvent{
		TripID:     trip.TripID,
		Status:     trip.Status,
		DriverID:   trip.DriverID,
		CustomerID: trip.CustomerID,
		Reason:     trip.Reason,
		OccurredAt: at,
	}
}
