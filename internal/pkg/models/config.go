package models

import "time"

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Redis    RedisConfig
	NATS     NATSConfig
	NewRelic NewRelicConfig
	Logger   LoggerConfig
	Trip     TripConfig
	Location LocationConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string

	// ConnectRetries is how many times Redis and NATS are redialed at startup
	ConnectRetries int
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ShutdownTimeout int // in seconds
	CORSOrigins     []string
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration.
// An empty URL disables event publishing.
type NATSConfig struct {
	URL string
}

// NewRelicConfig contains New Relic agent configuration
type NewRelicConfig struct {
	LicenseKey  string
	AppName     string
	Enabled     bool
	ForwardLogs bool
}

// LoggerConfig contains Zap logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}

// TripConfig contains trip registry configuration
type TripConfig struct {
	TTLSeconds         int
	EnforceTransitions bool
}

// TTL returns the trip record expiry window
func (c TripConfig) TTL() time.Duration {
	return time.Duration(c.TTLSeconds) * time.Second
}

// LocationConfig contains location cache configuration
type LocationConfig struct {
	TTLSeconds       int
	GeohashPrecision uint
	Defaults         LocationDefaults
}

// TTL returns the location snapshot expiry window
func (c LocationConfig) TTL() time.Duration {
	return time.Duration(c.TTLSeconds) * time.Second
}
