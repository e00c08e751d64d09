package server

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/triptrack/internal/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newTestLogger() (*logger.ZapLogger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return logger.NewWithCore(core, "triptrack"), logs
}

func TestGracefulServer_Run(t *testing.T) {
	zl, logs := newTestLogger()
	e := echo.New()
	e.HideBanner = true
	gs := NewGracefulServer(e, zl, "127.0.0.1", 0, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- gs.Run(ctx) }()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not shut down")
	}
	assert.Equal(t, 1, logs.FilterMessage("Server shutdown completed").Len())
}

func TestGracefulServer_Run_BindError(t *testing.T) {
	zl, _ := newTestLogger()
	gs := NewGracefulServer(echo.New(), zl, "", -1, time.Second)

	err := gs.Run(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to start server")
}

func TestShutdownManager_Order(t *testing.T) {
	zl, _ := newTestLogger()
	sm := NewShutdownManager(zl)
	var order []string

	for _, name := range []string{"http", "redis", "nats", "newrelic"} {
		name := name
		sm.Register(name, func(ctx context.Context) error {
			order = append(order, name)
			return nil
		})
	}
	sm.Register("nil", nil)

	require.NoError(t, sm.Shutdown(context.Background()))
	assert.Equal(t, []string{"http", "redis", "nats", "newrelic"}, order)
}

func TestShutdownManager_ContinuesAfterFailure(t *testing.T) {
	zl, logs := newTestLogger()
	sm := NewShutdownManager(zl)
	closed := false

	sm.Register("redis", func(ctx context.Context) error {
		return errors.New("connection reset")
	})
	sm.Register("nats", func(ctx context.Context) error {
		closed = true
		return nil
	})

	err := sm.Shutdown(context.Background())

	assert.EqualError(t, err, "redis: connection reset")
	assert.True(t, closed)
	assert.Equal(t, 1, logs.FilterMessage("Error during component shutdown").Len())
}
