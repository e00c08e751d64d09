package models

import "errors"

var (
	// ErrTripNotFound is returned when no trip record exists for an ID, including expired ones
	ErrTripNotFound = errors.New("trip not found")
	// ErrLocationNotFound is returned when no location snapshot exists for a trip
	ErrLocationNotFound = errors.New("location not found")
	// ErrInvalidTransition is returned when a trip cannot move to the requested status
	ErrInvalidTransition = errors.New("invalid trip status transition")
)
