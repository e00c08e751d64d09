package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redismock/v8"
	"github.com/piresc/triptrack/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRedisClient_ConnectionError(t *testing.T) {
	config := models.RedisConfig{
		Host:     "127.0.0.1",
		Port:     1,
		PoolSize: 1,
	}

	client, err := NewRedisClient(config)

	assert.Error(t, err)
	assert.Nil(t, client)
	assert.Contains(t, err.Error(), "failed to connect to redis")
}

func TestRedisClient_Set(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := &RedisClient{Client: db}

	ctx := context.Background()
	key := "trip:trip_1"
	value := `{"tripId":"trip_1"}`
	expiration := time.Hour

	mock.ExpectSet(key, value, expiration).SetVal("OK")

	err := client.Set(ctx, key, value, expiration)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisClient_Set_Error(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := &RedisClient{Client: db}

	mock.ExpectSet("trip:trip_1", "v", time.Hour).SetErr(errors.New("connection refused"))

	err := client.Set(context.Background(), "trip:trip_1", "v", time.Hour)

	assert.EqualError(t, err, "connection refused")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisClient_Get(t *testing.T) {
	tests := []struct {
		name          string
		key           string
		mockValue     string
		mockError     error
		expectedValue string
		expectNil     bool
		expectedError bool
	}{
		{
			name:          "Key exists",
			key:           "trip:trip_1",
			mockValue:     `{"tripId":"trip_1"}`,
			expectedValue: `{"tripId":"trip_1"}`,
		},
		{
			name:          "Key missing",
			key:           "trip:missing",
			mockError:     redis.Nil,
			expectNil:     true,
			expectedError: true,
		},
		{
			name:          "Redis error",
			key:           "trip:error",
			mockError:     errors.New("i/o timeout"),
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := redismock.NewClientMock()
			client := &RedisClient{Client: db}

			if tt.mockError != nil {
				mock.ExpectGet(tt.key).SetErr(tt.mockError)
			} else {
				mock.ExpectGet(tt.key).SetVal(tt.mockValue)
			}

			value, err := client.Get(context.Background(), tt.key)

			if tt.expectedError {
				assert.Error(t, err)
				assert.Equal(t, tt.expectNil, errors.Is(err, redis.Nil))
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expectedValue, value)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRedisClient_Delete(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := &RedisClient{Client: db}

	mock.ExpectDel("trip:trip_1").SetVal(1)

	assert.NoError(t, client.Delete(context.Background(), "trip:trip_1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisClient_TTL(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := &RedisClient{Client: db}

	mock.ExpectTTL("trip:trip_1:location").SetVal(300 * time.Second)

	ttl, err := client.TTL(context.Background(), "trip:trip_1:location")

	require.NoError(t, err)
	assert.Equal(t, 300*time.Second, ttl)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisClient_Ping(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := &RedisClient{Client: db}

	mock.ExpectPing().SetVal("PONG")

	assert.NoError(t, client.Ping(context.Background()))
	assert.Equal(t, db, client.GetClient())
	assert.NoError(t, mock.ExpectationsWereMet())
}
