package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/piresc/triptrack/internal/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newTestRetrier(maxRetries int) (*Retrier, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	cfg := Config{
		MaxRetries: maxRetries,
		BaseDelay:  time.Millisecond,
		MaxDelay:   4 * time.Millisecond,
		Multiplier: 2,
	}
	return New(cfg, logger.NewWithCore(core, "triptrack")), logs
}

func TestExecute_SucceedsAfterRetries(t *testing.T) {
	r, logs := newTestRetrier(3)
	calls := 0

	err := r.Execute(context.Background(), "redis connect", func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("connection refused")
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.Equal(t, 2, logs.FilterMessage("Operation failed, retrying").Len())
	assert.Equal(t, 1, logs.FilterMessage("Operation succeeded after retries").Len())
}

func TestExecute_GivesUp(t *testing.T) {
	r, _ := newTestRetrier(2)
	cause := errors.New("connection refused")
	calls := 0

	err := r.Execute(context.Background(), "redis connect", func(ctx context.Context) error {
		calls++
		return cause
	})

	assert.Equal(t, 3, calls)
	assert.ErrorIs(t, err, cause)
	assert.EqualError(t, err, "redis connect failed after 3 attempts: connection refused")
}

func TestExecute_ContextCancelled(t *testing.T) {
	r, _ := newTestRetrier(5)
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0

	err := r.Execute(ctx, "nats connect", func(ctx context.Context) error {
		calls++
		cancel()
		return errors.New("no servers available")
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}

func TestDelay(t *testing.T) {
	r := New(Config{BaseDelay: 100 * time.Millisecond, MaxDelay: time.Second, Multiplier: 2}, nil)

	assert.Equal(t, 100*time.Millisecond, r.delay(0))
	assert.Equal(t, 400*time.Millisecond, r.delay(2))
	assert.Equal(t, time.Second, r.delay(10))

	r.config.Jitter = true
	d := r.delay(0)
	assert.GreaterOrEqual(t, d, 100*time.Millisecond)
	assert.LessOrEqual(t, d, 110*time.Millisecond)
}
