package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/piresc/triptrack/internal/pkg/constants"
	"github.com/piresc/triptrack/internal/pkg/database"
	"github.com/piresc/triptrack/internal/pkg/models"
	nrpkg "github.com/piresc/triptrack/internal/pkg/newrelic"
	"github.com/piresc/triptrack/services/location"
)

type locationRepo struct {
	redisClient *database.RedisClient
	ttl         time.Duration
}

// NewLocationRepository creates a Redis backed location repository
func NewLocationRepository(cfg *models.Config, redisClient *database.RedisClient) location.LocationRepo {
	return &locationRepo{
		redisClient: redisClient,
		ttl:         cfg.Location.TTL(),
	}
}

// StoreLocation overwrites the trip's snapshot and resets its TTL
func (r *locationRepo) StoreLocation(ctx context.Context, tripID string, snapshot models.LocationSnapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal location: %w", err)
	}

	defer nrpkg.StartDatastoreSegment(ctx, "SET", "trip_location")()

	key := fmt.Sprintf(constants.KeyTripLocation, tripID)
	if err := r.redisClient.Set(ctx, key, data, r.ttl); err != nil {
		return fmt.Errorf("failed to store location update: %w", err)
	}
	return nil
}

// GetLocation reads the trip's snapshot
func (r *locationRepo) GetLocation(ctx context.Context, tripID string) (*models.LocationSnapshot, error) {
	defer nrpkg.StartDatastoreSegment(ctx, "GET", "trip_location")()

	key := fmt.Sprintf(constants.KeyTripLocation, tripID)
	data, err := r.redisClient.Get(ctx, key)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, models.ErrLocationNotFound
		}
		return nil, fmt.Errorf("failed to get location data: %w", err)
	}

	var snapshot models.LocationSnapshot
	if err := json.Unmarshal([]byte(data), &snapshot); err != nil {
		return nil, fmt.Errorf("failed to unmarshal location: %w", err)
	}
	return &snapshot, nil
}
