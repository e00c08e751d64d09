package retry

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/piresc/triptrack/internal/pkg/logger"
)

// RetryableFunc represents a function that can be retried
type RetryableFunc func(ctx context.Context) error

// Config holds retry configuration
type Config struct {
	MaxRetries int           // attempts after the first one
	BaseDelay  time.Duration // delay before the first retry
	MaxDelay   time.Duration
	Multiplier float64
	Jitter     bool // adds up to 10% to every delay
}

// DefaultConfig returns the backoff used when dialing Redis and NATS at startup
func DefaultConfig() Config {
	return Config{
		MaxRetries: 3,
		BaseDelay:  500 * time.Millisecond,
		MaxDelay:   5 * time.Second,
		Multiplier: 2.0,
		Jitter:     true,
	}
}

// Retrier runs a function with exponential backoff
type Retrier struct {
	config Config
	logger *logger.ZapLogger
}

// New creates a new retrier with the given configuration
func New(config Config, l *logger.ZapLogger) *Retrier {
	return &Retrier{
		config: config,
		logger: l,
	}
}

// Execute calls fn until it succeeds, the retries are exhausted or ctx is done
func (r *Retrier) Execute(ctx context.Context, operation string, fn RetryableFunc) error {
	var lastErr error

	for attempt := 0; attempt <= r.config.MaxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := fn(ctx)
		if err == nil {
			if attempt > 0 {
				r.logger.Info("Operation succeeded after retries",
					logger.String("operation", operation),
					logger.Int("attempts", attempt+1))
			}
			return nil
		}
		lastErr = err

		if attempt == r.config.MaxRetries {
			break
		}

		delay := r.delay(attempt)
		r.logger.Warn("Operation failed, retrying",
			logger.String("operation", operation),
			logger.Err(err),
			logger.Int("attempt", attempt+1),
			logger.Duration("delay", delay))

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operation, r.config.MaxRetries+1, lastErr)
}

func (r *Retrier) delay(attempt int) time.Duration {
	delay := float64(r.config.BaseDelay) * math.Pow(r.config.Multiplier, float64(attempt))
	if delay > float64(r.config.MaxDelay) {
		delay = float64(r.config.MaxDelay)
	}
	if r.config.Jitter {
		delay += delay * 0.1 * rand.Float64()
	}
	return time.Duration(delay)
}
