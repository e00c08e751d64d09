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
	"github.com/piresc/triptrack/services/trips"
)

type tripRepo struct {
	redisClient *database.RedisClient
	ttl         time.Duration
}

// NewTripRepository creates a Redis backed trip repository
func NewTripRepository(cfg *models.Config, redisClient *database.RedisClient) trips.TripRepo {
	return &tripRepo{
		redisClient: redisClient,
		ttl:         cfg.Trip.TTL(),
	}
}

// SaveTrip writes the full trip record and resets its TTL
func (r *tripRepo) SaveTrip(ctx context.Context, trip *models.Trip) error {
	data, err := json.Marshal(trip)
	if err != nil {
		return fmt.Errorf("failed to marshal trip: %w", err)
	}

	defer nrpkg.StartDatastoreSegment(ctx, "SET", "trip")()

	key := fmt.Sprintf(constants.KeyTrip, trip.TripID)
	if err := r.redisClient.Set(ctx, key, data, r.ttl); err != nil {
		return fmt.Errorf("failed to save trip: %w", err)
	}
	return nil
}

// GetTrip reads a trip record without touching its TTL
func (r *tripRepo) GetTrip(ctx context.Context, tripID string) (*models.Trip, error) {
	defer nrpkg.StartDatastoreSegment(ctx, "GET", "trip")()

	key := fmt.Sprintf(constants.KeyTrip, tripID)
	data, err := r.redisClient.Get(ctx, key)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, models.ErrTripNotFound
		}
		return nil, fmt.Errorf("failed to get trip: %w", err)
	}

	var trip models.Trip
	if err := json.Unmarshal([]byte(data), &trip); err != nil {
		return nil, fmt.Errorf("failed to unmarshal trip: %w", err)
	}
	return &trip, nil
}
