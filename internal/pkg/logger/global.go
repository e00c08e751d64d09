package logger

import (
	"context"
	"sync"

	"github.com/newrelic/go-agent/v3/newrelic"
	"go.uber.org/zap"
)

var (
	globalLogger *ZapLogger
	mu           sync.RWMutex
)

// SetGlobalLogger sets the global logger instance.
// This should be called once during application startup.
func SetGlobalLogger(logger *ZapLogger) {
	mu.Lock()
	defer mu.Unlock()
	globalLogger = logger
}

// GetGlobalLogger returns the global logger, or a production logger if none was set
func GetGlobalLogger() *ZapLogger {
	mu.RLock()
	logger := globalLogger
	mu.RUnlock()
	if logger != nil {
		return logger
	}

	mu.Lock()
	defer mu.Unlock()
	if globalLogger == nil {
		defaultLogger, err := zap.NewProduction()
		if err != nil {
			defaultLogger = zap.NewNop()
		}
		globalLogger = &ZapLogger{Logger: defaultLogger}
	}
	return globalLogger
}

// Info logs an info message using the global logger
func Info(msg string, fields ...Field) {
	GetGlobalLogger().Info(msg, fields...)
}

// Warn logs a warning message using the global logger
func Warn(msg string, fields ...Field) {
	GetGlobalLogger().Warn(msg, fields...)
}

// Error logs an error message using the global logger
func Error(msg string, fields ...Field) {
	GetGlobalLogger().Error(msg, fields...)
}

// Debug logs a debug message using the global logger
func Debug(msg string, fields ...Field) {
	GetGlobalLogger().Debug(msg, fields...)
}

// Fatal logs a fatal message and exits using the global logger
func Fatal(msg string, fields ...Field) {
	GetGlobalLogger().Fatal(msg, fields...)
}

func fromContext(ctx context.Context) *zap.Logger {
	return GetGlobalLogger().WithNewRelicContext(newrelic.FromContext(ctx))
}

// InfoCtx logs an info message correlated with the request's New Relic trace
func InfoCtx(ctx context.Context, msg string, fields ...Field) {
	fromContext(ctx).Info(msg, fields...)
}

// WarnCtx logs a warning correlated with the request's New Relic trace
func WarnCtx(ctx context.Context, msg string, fields ...Field) {
	fromContext(ctx).Warn(msg, fields...)
}

// ErrorCtx logs an error correlated with the request's New Relic trace
func ErrorCtx(ctx context.Context, msg string, fields ...Field) {
	fromContext(ctx).Error(msg, fields...)
}
