package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/piresc/triptrack/internal/pkg/logger"
	"github.com/piresc/triptrack/internal/pkg/metrics"
	"github.com/piresc/triptrack/internal/pkg/models"
	"github.com/piresc/triptrack/internal/utils"
	"github.com/piresc/triptrack/services/location"
)

type locationUC struct {
	cfg          *models.Config
	locationRepo location.LocationRepo
	locationGW   location.LocationGW
	now          func() time.Time
}

// NewLocationUC creates a new location use case
func NewLocationUC(cfg *models.Config, locationRepo location.LocationRepo, locationGW location.LocationGW) location.LocationUC {
	return &locationUC{
		cfg:          cfg,
		locationRepo: locationRepo,
		locationGW:   locationGW,
		now:          models.Now,
	}
}

// UpdateLocation stamps and stores the latest position for a trip
func (uc *locationUC) UpdateLocation(ctx context.Context, tripID string, req models.LocationUpdateRequest) error {
	snapshot := req.ToSnapshot(uc.cfg.Location.Defaults, uc.now())

	if err := uc.locationRepo.StoreLocation(ctx, tripID, snapshot); err != nil {
		logger.ErrorCtx(ctx, "Failed to store location", logger.TripID(tripID), logger.Err(err))
		return err
	}
	metrics.LocationUpdates.Inc()

	event := models.LocationEvent{
		TripID:   tripID,
		Geohash:  utils.EncodeLocation(snapshot, uc.cfg.Location.GeohashPrecision),
		Location: snapshot,
	}
	logger.Debug("Location updated",
		logger.TripID(tripID),
		logger.String("geohash", event.Geohash),
		logger.Float64("speed", snapshot.Speed))

	if err := uc.locationGW.PublishLocationUpdated(ctx, event); err != nil {
		metrics.EventPublishFailures.WithLabelValues("location_updated").Inc()
		logger.WarnCtx(ctx, "Failed to publish location event", logger.TripID(tripID), logger.Err(err))
	}
	return nil
}

// GetLocation returns the latest position for a trip
func (uc *locationUC) GetLocation(ctx context.Context, tripID string) (*models.LocationSnapshot, error) {
	snapshot, err := uc.locationRepo.GetLocation(ctx, tripID)
	if err != nil {
		if errors.Is(err, models.ErrLocationNotFound) {
			metrics.LocationLookups.WithLabelValues(metrics.ResultMiss).Inc()
		}
		return nil, err
	}

	metrics.LocationLookups.WithLabelValues(metrics.ResultHit).Inc()
	return snapshot, nil
}
