package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/triptrack/internal/pkg/logger"
	"github.com/piresc/triptrack/internal/pkg/metrics"
	"github.com/piresc/triptrack/internal/pkg/models"
	"github.com/piresc/triptrack/services/trips"
)

type tripUC struct {
	cfg      *models.Config
	tripRepo trips.TripRepo
	tripGW   trips.TripGW
	now      func() time.Time
}

// NewTripUC creates a new trip use case
func NewTripUC(cfg *models.Config, tripRepo trips.TripRepo, tripGW trips.TripGW) trips.TripUC {
	return &tripUC{
		cfg:      cfg,
		tripRepo: tripRepo,
		tripGW:   tripGW,
		now:      models.Now,
	}
}

// generateTripID returns trip_<unix millis>_<9 random lowercase alphanumerics>
func generateTripID(now time.Time) string {
	suffix := strings.ReplaceAll(uuid.New().String(), "-", "")[:9]
	return fmt.Sprintf("trip_%d_%s", now.UnixMilli(), suffix)
}

// CreateTrip stores a new trip in the created status
func (uc *tripUC) CreateTrip(ctx context.Context, req models.CreateTripRequest) (string, error) {
	now := uc.now()
	trip := &models.Trip{
		TripID:     generateTripID(now),
		From:       req.From.Coordinates(),
		To:         req.To.Coordinates(),
		DriverID:   req.DriverID,
		CustomerID: req.CustomerID,
		Status:     models.TripStatusCreated,
		CreatedAt:  now,
	}

	if err := uc.tripRepo.SaveTrip(ctx, trip); err != nil {
		logger.ErrorCtx(ctx, "Failed to create trip", logger.TripID(trip.TripID), logger.Err(err))
		return "", err
	}

	metrics.TripTransitions.WithLabelValues(string(trip.Status)).Inc()
	logger.InfoCtx(ctx, "Trip created",
		logger.TripID(trip.TripID),
		logger.String("driver_id", trip.DriverID),
		logger.String("customer_id", trip.CustomerID))

	uc.publish(ctx, trip, now)
	return trip.TripID, nil
}

// StartTrip moves the trip to in_progress and stamps startedAt
func (uc *tripUC) StartTrip(ctx context.Context, tripID string) error {
	return uc.transition(ctx, tripID, models.TripStatusInProgress, func(trip *models.Trip, at time.Time) {
		trip.StartedAt = &at
	})
}

// CompleteTrip moves the trip to completed and stamps completedAt
func (uc *tripUC) CompleteTrip(ctx context.Context, tripID string) error {
	return uc.transition(ctx, tripID, models.TripStatusCompleted, func(trip *models.Trip, at time.Time) {
		trip.CompletedAt = &at
	})
}

// CancelTrip moves the trip to cancelled, stamps cancelledAt and stores the reason as given
func (uc *tripUC) CancelTrip(ctx context.Context, tripID string, reason *string) error {
	return uc.transition(ctx, tripID, models.TripStatusCancelled, func(trip *models.Trip, at time.Time) {
		trip.CancelledAt = &at
		trip.Reason = reason
	})
}

// GetTrip returns the stored trip
func (uc *tripUC) GetTrip(ctx context.Context, tripID string) (*models.Trip, error) {
	return uc.tripRepo.GetTrip(ctx, tripID)
}

// transition performs the read-modify-write shared by every status change.
// The write resets the trip TTL.
func (uc *tripUC) transition(ctx context.Context, tripID string, next models.TripStatus, stamp func(*models.Trip, time.Time)) error {
	trip, err := uc.tripRepo.GetTrip(ctx, tripID)
	if err != nil {
		return err
	}

	previous := trip.Status
	if uc.cfg.Trip.EnforceTransitions && !previous.CanTransitionTo(next) {
		metrics.TripTransitionsRejected.WithLabelValues(string(previous), string(next)).Inc()
		logger.WarnCtx(ctx, "Rejected trip transition",
			logger.TripID(tripID),
			logger.String("from", string(previous)),
			logger.String("to", string(next)))
		return fmt.Errorf("%w: %s -> %s", models.ErrInvalidTransition, previous, next)
	}

	now := uc.now()
	trip.Status = next
	stamp(trip, now)

	if err := uc.tripRepo.SaveTrip(ctx, trip); err != nil {
		logger.ErrorCtx(ctx, "Failed to update trip",
			logger.TripID(tripID),
			logger.String("status", string(next)),
			logger.Err(err))
		return err
	}

	metrics.TripTransitions.WithLabelValues(string(next)).Inc()
	logger.InfoCtx(ctx, "Trip status updated",
		logger.TripID(tripID),
		logger.String("from", string(previous)),
		logger.String("to", string(next)))

	uc.publish(ctx, trip, now)
	return nil
}

// publish is best effort: a failed event never fails the request
func (uc *tripUC) publish(ctx context.Context, trip *models.Trip, at time.Time) {
	if err := uc.tripGW.PublishTripEvent(ctx, models.NewTripEvent(trip, at)); err != nil {
		metrics.EventPublishFailures.WithLabelValues("trip_" + string(trip.Status)).Inc()
		logger.WarnCtx(ctx, "Failed to publish trip event",
			logger.TripID(trip.TripID),
			logger.String("status", string(trip.Status)),
			logger.Err(err))
	}
}
