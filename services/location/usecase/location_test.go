package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/piresc/triptrack/internal/pkg/models"
	"github.com/piresc/triptrack/services/location/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func floatPtr(f float64) *float64 { return &f }

func newTestUC(t *testing.T, defaults models.LocationDefaults) (*locationUC, *mocks.MockLocationRepo, *mocks.MockLocationGW) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockLocationRepo(ctrl)
	gw := mocks.NewMockLocationGW(ctrl)

	cfg := &models.Config{}
	cfg.Location.TTLSeconds = 300
	cfg.Location.GeohashPrecision = 7
	cfg.Location.Defaults = defaults

	uc := NewLocationUC(cfg, repo, gw).(*locationUC)
	uc.now = func() time.Time { return fixedNow }
	return uc, repo, gw
}

func TestUpdateLocation_DefaultsOptionalFields(t *testing.T) {
	uc, repo, gw := newTestUC(t, models.DefaultLocationDefaults)
	req := models.LocationUpdateRequest{
		Latitude:  floatPtr(55.76),
		Longitude: floatPtr(37.62),
		Speed:     floatPtr(12.5),
	}
	expected := models.LocationSnapshot{
		Latitude:  55.76,
		Longitude: 37.62,
		Bearing:   0,
		Speed:     12.5,
		Accuracy:  0,
		Timestamp: fixedNow,
	}

	repo.EXPECT().StoreLocation(gomock.Any(), "trip_1_abc", expected).Return(nil)
	gw.EXPECT().PublishLocationUpdated(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, event models.LocationEvent) error {
			assert.Equal(t, "trip_1_abc", event.TripID)
			assert.Equal(t, expected, event.Location)
			assert.Len(t, event.Geohash, 7)
			assert.Equal(t, "ucfv0nf", event.Geohash)
			return nil
		})

	require.NoError(t, uc.UpdateLocation(context.Background(), "trip_1_abc", req))
}

func TestUpdateLocation_ConfiguredDefaults(t *testing.T) {
	uc, repo, gw := newTestUC(t, models.LocationDefaults{Bearing: 90, Speed: 1, Accuracy: 25})
	req := models.LocationUpdateRequest{
		Latitude:  floatPtr(55.76),
		Longitude: floatPtr(37.62),
		Accuracy:  floatPtr(5),
	}

	repo.EXPECT().StoreLocation(gomock.Any(), "trip_1_abc", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, snapshot models.LocationSnapshot) error {
			assert.Equal(t, 90.0, snapshot.Bearing)
			assert.Equal(t, 1.0, snapshot.Speed)
			assert.Equal(t, 5.0, snapshot.Accuracy)
			return nil
		})
	gw.EXPECT().PublishLocationUpdated(gomock.Any(), gomock.Any()).Return(nil)

	require.NoError(t, uc.UpdateLocation(context.Background(), "trip_1_abc", req))
}

func TestUpdateLocation_StoreError(t *testing.T) {
	uc, repo, _ := newTestUC(t, models.DefaultLocationDefaults)
	req := models.LocationUpdateRequest{Latitude: floatPtr(55.76), Longitude: floatPtr(37.62)}
	repo.EXPECT().StoreLocation(gomock.Any(), "trip_1_abc", gomock.Any()).Return(errors.New("failed to store location update: connection refused"))

	err := uc.UpdateLocation(context.Background(), "trip_1_abc", req)

	assert.EqualError(t, err, "failed to store location update: connection refused")
}

func TestUpdateLocation_PublishFailureIgnored(t *testing.T) {
	uc, repo, gw := newTestUC(t, models.DefaultLocationDefaults)
	req := models.LocationUpdateRequest{Latitude: floatPtr(55.76), Longitude: floatPtr(37.62)}
	repo.EXPECT().StoreLocation(gomock.Any(), "trip_1_abc", gomock.Any()).Return(nil)
	gw.EXPECT().PublishLocationUpdated(gomock.Any(), gomock.Any()).Return(errors.New("nats: connection closed"))

	assert.NoError(t, uc.UpdateLocation(context.Background(), "trip_1_abc", req))
}

func TestGetLocation(t *testing.T) {
	t.Run("hit", func(t *testing.T) {
		uc, repo, _ := newTestUC(t, models.DefaultLocationDefaults)
		snapshot := &models.LocationSnapshot{Latitude: 55.76, Longitude: 37.62, Timestamp: fixedNow}
		repo.EXPECT().GetLocation(gomock.Any(), "trip_1_abc").Return(snapshot, nil)

		got, err := uc.GetLocation(context.Background(), "trip_1_abc")

		require.NoError(t, err)
		assert.Equal(t, snapshot, got)
	})

	t.Run("miss", func(t *testing.T) {
		uc, repo, _ := newTestUC(t, models.DefaultLocationDefaults)
		repo.EXPECT().GetLocation(gomock.Any(), "trip_1_abc").Return(nil, models.ErrLocationNotFound)

		got, err := uc.GetLocation(context.Background(), "trip_1_abc")

		assert.Nil(t, got)
		assert.ErrorIs(t, err, models.ErrLocationNotFound)
	})

	t.Run("store error", func(t *testing.T) {
		uc, repo, _ := newTestUC(t, models.DefaultLocationDefaults)
		repo.EXPECT().GetLocation(gomock.Any(), "trip_1_abc").Return(nil, errors.New("failed to get location data: i/o timeout"))

		_, err := uc.GetLocation(context.Background(), "trip_1_abc")

		assert.EqualError(t, err, "failed to get location data: i/o timeout")
	})
}
