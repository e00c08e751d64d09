package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/piresc/triptrack/internal/pkg/constants"
	"github.com/piresc/triptrack/internal/pkg/database"
	"github.com/piresc/triptrack/internal/pkg/models"
	tripRepository "github.com/piresc/triptrack/services/trips/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMiniredis(t *testing.T) (*miniredis.Miniredis, *database.RedisClient) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	t.Cleanup(func() { client.Close() })

	return mr, &database.RedisClient{Client: client}
}

func testConfig() *models.Config {
	cfg := &models.Config{}
	cfg.Trip.TTLSeconds = 3600
	cfg.Location.TTLSeconds = 300
	return cfg
}

func sampleSnapshot() models.LocationSnapshot {
	return models.LocationSnapshot{
		Latitude:  55.76,
		Longitude: 37.62,
		Speed:     12.5,
		Timestamp: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestStoreLocation(t *testing.T) {
	mr, client := setupMiniredis(t)
	repo := NewLocationRepository(testConfig(), client)

	require.NoError(t, repo.StoreLocation(context.Background(), "trip_1_abc", sampleSnapshot()))

	key := fmt.Sprintf(constants.KeyTripLocation, "trip_1_abc")
	assert.Equal(t, "trip:trip_1_abc:location", key)
	assert.Equal(t, 5*time.Minute, mr.TTL(key))

	raw, err := mr.Get(key)
	require.NoError(t, err)
	var stored map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(raw), &stored))
	assert.Equal(t, 55.76, stored["latitude"])
	assert.Equal(t, 0.0, stored["bearing"])
	assert.Equal(t, 12.5, stored["speed"])
	assert.Equal(t, 0.0, stored["accuracy"])
	assert.Equal(t, "2024-05-01T12:00:00Z", stored["timestamp"])
}

func TestStoreLocation_OverwritesAndResetsTTL(t *testing.T) {
	mr, client := setupMiniredis(t)
	repo := NewLocationRepository(testConfig(), client)
	key := fmt.Sprintf(constants.KeyTripLocation, "trip_1_abc")

	require.NoError(t, repo.StoreLocation(context.Background(), "trip_1_abc", sampleSnapshot()))
	mr.FastForward(4 * time.Minute)

	next := sampleSnapshot()
	next.Latitude = 55.77
	next.Timestamp = next.Timestamp.Add(4 * time.Minute)
	require.NoError(t, repo.StoreLocation(context.Background(), "trip_1_abc", next))

	assert.Equal(t, 5*time.Minute, mr.TTL(key))
	got, err := repo.GetLocation(context.Background(), "trip_1_abc")
	require.NoError(t, err)
	assert.Equal(t, next, *got)
}

func TestGetLocation_NotFound(t *testing.T) {
	_, client := setupMiniredis(t)
	repo := NewLocationRepository(testConfig(), client)

	got, err := repo.GetLocation(context.Background(), "trip_missing")

	assert.Nil(t, got)
	assert.ErrorIs(t, err, models.ErrLocationNotFound)
}

func TestGetLocation_ExpiresBeforeTrip(t *testing.T) {
	mr, client := setupMiniredis(t)
	cfg := testConfig()
	locations := NewLocationRepository(cfg, client)
	trips := tripRepository.NewTripRepository(cfg, client)

	trip := &models.Trip{
		TripID:    "trip_1_abc",
		Status:    models.TripStatusInProgress,
		CreatedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, trips.SaveTrip(context.Background(), trip))
	require.NoError(t, locations.StoreLocation(context.Background(), trip.TripID, sampleSnapshot()))

	mr.FastForward(5*time.Minute + time.Second)

	_, err := locations.GetLocation(context.Background(), trip.TripID)
	assert.ErrorIs(t, err, models.ErrLocationNotFound)

	got, err := trips.GetTrip(context.Background(), trip.TripID)
	require.NoError(t, err)
	assert.Equal(t, models.TripStatusInProgress, got.Status)
}

func TestGetLocation_CorruptRecord(t *testing.T) {
	mr, client := setupMiniredis(t)
	repo := NewLocationRepository(testConfig(), client)
	require.NoError(t, mr.Set(fmt.Sprintf(constants.KeyTripLocation, "trip_bad"), "[]"))

	_, err := repo.GetLocation(context.Background(), "trip_bad")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal location")
}

func TestLocationRepository_RedisError(t *testing.T) {
	mr, client := setupMiniredis(t)
	repo := NewLocationRepository(testConfig(), client)
	mr.Close()

	err := repo.StoreLocation(context.Background(), "trip_1_abc", sampleSnapshot())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to store location update")

	_, err = repo.GetLocation(context.Background(), "trip_1_abc")
	require.Error(t, err)
	assert.NotErrorIs(t, err, models.ErrLocationNotFound)
}
