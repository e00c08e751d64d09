package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFromEnv_Defaults(t *testing.T) {
	for _, key := range []string{"SERVER_PORT", "REDIS_HOST", "REDIS_PORT", "TRIP_TTL_SECONDS", "LOCATION_TTL_SECONDS", "TRIP_ENFORCE_TRANSITIONS", "NATS_URL", "APP_CONNECT_RETRIES"} {
		t.Setenv(key, "")
	}

	cfg := loadConfigFromEnv()

	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "localhost", cfg.Redis.Host)
	assert.Equal(t, 6379, cfg.Redis.Port)
	assert.Equal(t, time.Hour, cfg.Trip.TTL())
	assert.Equal(t, 5*time.Minute, cfg.Location.TTL())
	assert.True(t, cfg.Trip.EnforceTransitions)
	assert.Empty(t, cfg.NATS.URL)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSOrigins)
	assert.Equal(t, uint(7), cfg.Location.GeohashPrecision)
	assert.Equal(t, 3, cfg.App.ConnectRetries)
}

func TestLoadConfigFromEnv_Overrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("REDIS_HOST", "redis")
	t.Setenv("TRIP_TTL_SECONDS", "60")
	t.Setenv("LOCATION_TTL_SECONDS", "10")
	t.Setenv("TRIP_ENFORCE_TRANSITIONS", "false")
	t.Setenv("NATS_URL", "nats://nats:4222")
	t.Setenv("SERVER_CORS_ORIGINS", "https://a.example, https://b.example,")

	cfg := loadConfigFromEnv()

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "redis", cfg.Redis.Host)
	assert.Equal(t, time.Minute, cfg.Trip.TTL())
	assert.Equal(t, 10*time.Second, cfg.Location.TTL())
	assert.False(t, cfg.Trip.EnforceTransitions)
	assert.Equal(t, "nats://nats:4222", cfg.NATS.URL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.CORSOrigins)
}

func TestGetEnvAsInt_InvalidFallsBack(t *testing.T) {
	t.Setenv("TRIP_TTL_SECONDS", "soon")
	assert.Equal(t, 3600, GetEnvAsInt("TRIP_TTL_SECONDS", 3600))
}

func TestGetEnvAsBool_InvalidFallsBack(t *testing.T) {
	t.Setenv("TRIP_ENFORCE_TRANSITIONS", "maybe")
	assert.True(t, GetEnvAsBool("TRIP_ENFORCE_TRANSITIONS", true))
}

func TestInitConfig_LoadsEnvFileLocally(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "triptrack.env")
	require.NoError(t, os.WriteFile(path, []byte("REDIS_PORT=6380\n"), 0o600))

	t.Setenv("APP_ENV", "local")
	t.Setenv("REDIS_PORT", "")
	// godotenv does not override variables that are already set, so unset it entirely
	require.NoError(t, os.Unsetenv("REDIS_PORT"))

	cfg := InitConfig(path)

	assert.Equal(t, 6380, cfg.Redis.Port)
}

func TestInitConfig_MissingFile(t *testing.T) {
	t.Setenv("APP_ENV", "local")

	cfg := InitConfig(filepath.Join(t.TempDir(), "missing.env"))

	require.NotNil(t, cfg)
	assert.Equal(t, "triptrack", cfg.App.Name)
}
