package validation

import (
	"testing"

	"github.com/piresc/triptrack/internal/pkg/models"
	"github.com/stretchr/testify/assert"
)

func ptr(f float64) *float64 { return &f }

func TestEchoValidator_CreateTripRequest(t *testing.T) {
	v := NewEchoValidator()

	tests := []struct {
		name        string
		req         models.CreateTripRequest
		expectedErr string
	}{
		{
			name: "valid",
			req: models.CreateTripRequest{
				From: &models.PointRequest{Latitude: ptr(40.7128), Longitude: ptr(-74.006)},
				To:   &models.PointRequest{Latitude: ptr(40.758), Longitude: ptr(-73.9855)},
			},
		},
		{
			name: "zero coordinates are valid",
			req: models.CreateTripRequest{
				From: &models.PointRequest{Latitude: ptr(0), Longitude: ptr(0)},
				To:   &models.PointRequest{Latitude: ptr(0), Longitude: ptr(0)},
			},
		},
		{
			name:        "missing destination",
			req:         models.CreateTripRequest{From: &models.PointRequest{Latitude: ptr(1), Longitude: ptr(1)}},
			expectedErr: "to is required",
		},
		{
			name: "latitude out of range",
			req: models.CreateTripRequest{
				From: &models.PointRequest{Latitude: ptr(91), Longitude: ptr(1)},
				To:   &models.PointRequest{Latitude: ptr(1), Longitude: ptr(1)},
			},
			expectedErr: "from.latitude must be a valid latitude (-90 to 90)",
		},
		{
			name: "missing longitude",
			req: models.CreateTripRequest{
				From: &models.PointRequest{Latitude: ptr(1), Longitude: ptr(1)},
				To:   &models.PointRequest{Latitude: ptr(1)},
			},
			expectedErr: "to.longitude is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.req)
			if tt.expectedErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.expectedErr)
		})
	}
}

func TestEchoValidator_LocationUpdateRequest(t *testing.T) {
	v := NewEchoValidator()

	assert.NoError(t, v.Validate(&models.LocationUpdateRequest{Latitude: ptr(-33.86), Longitude: ptr(151.2)}))

	err := v.Validate(&models.LocationUpdateRequest{Longitude: ptr(200)})
	assert.EqualError(t, err, "latitude is required; longitude must be a valid longitude (-180 to 180)")
}
