package trips

import (
	"context"

	"github.com/piresc/triptrack/internal/pkg/models"
)

// TripUC defines the trip lifecycle operations.
//
// Every transition reads the stored trip, mutates it and writes it back without
// a lock or version check: concurrent writers to the same trip are
// last-write-wins and one of the updates may be lost.
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/triptrack/services/trips TripUC
type TripUC interface {
	CreateTrip(ctx context.Context, req models.CreateTripRequest) (string, error)
	StartTrip(ctx context.Context, tripID string) error
	CompleteTrip(ctx context.Context, tripID string) error
	CancelTrip(ctx context.Context, tripID string, reason *string) error
	GetTrip(ctx context.Context, tripID string) (*models.Trip, error)
}
