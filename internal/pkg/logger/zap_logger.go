package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/piresc/triptrack/internal/pkg/models"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger wraps zap with optional file output and New Relic log forwarding
type ZapLogger struct {
	*zap.Logger
	service  string
	nrApp    *newrelic.Application
	filePath string
	file     *os.File
}

// newRelicCore is a zapcore.Core that forwards logs to New Relic
type newRelicCore struct {
	level   zapcore.Level
	nrApp   *newrelic.Application
	service string
	fields  []zapcore.Field
}

func (c *newRelicCore) Enabled(level zapcore.Level) bool {
	return c.level.Enabled(level)
}

func (c *newRelicCore) With(fields []zapcore.Field) zapcore.Core {
	clone := *c
	clone.fields = append(append([]zapcore.Field{}, c.fields...), fields...)
	return &clone
}

func (c *newRelicCore) Check(entry zapcore.Entry, checked *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(entry.Level) {
		return checked.AddCore(entry, c)
	}
	return checked
}

// Write records the entry as a New Relic log event
func (c *newRelicCore) Write(entry zapcore.Entry, fields []zapcore.Field) error {
	if c.nrApp == nil {
		return nil
	}

	encoder := zapcore.NewMapObjectEncoder()
	for _, field := range c.fields {
		field.AddTo(encoder)
	}
	for _, field := range fields {
		field.AddTo(encoder)
	}

	attributes := encoder.Fields
	attributes["service"] = c.service
	attributes["caller"] = entry.Caller.TrimmedPath()
	if entry.Stack != "" {
		attributes["stacktrace"] = entry.Stack
	}

	c.nrApp.RecordLog(newrelic.LogData{
		Timestamp:  entry.Time.UnixMilli(),
		Message:    entry.Message,
		Severity:   entry.Level.String(),
		Attributes: attributes,
	})
	return nil
}

func (c *newRelicCore) Sync() error {
	return nil
}

// ZapConfig holds Zap logger configuration
type ZapConfig struct {
	Level    string
	FilePath string
	Service  string
}

// NewZapLogger creates a JSON logger writing to stdout, plus a file and New Relic when configured
func NewZapLogger(config ZapConfig, nrApp *newrelic.Application) (*ZapLogger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(config.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "message",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.RFC3339TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
	encoder := zapcore.NewJSONEncoder(encoderConfig)

	cores := []zapcore.Core{
		zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), level),
	}

	zapLogger := &ZapLogger{
		service:  config.Service,
		nrApp:    nrApp,
		filePath: config.FilePath,
	}

	if config.FilePath != "" {
		if err := zapLogger.setupFileOutput(config.FilePath); err != nil {
			return nil, fmt.Errorf("failed to setup file output: %w", err)
		}
		cores = append(cores, zapcore.NewCore(encoder, zapcore.AddSync(zapLogger.file), level))
	}

	if nrApp != nil {
		cores = append(cores, &newRelicCore{
			level:   level,
			nrApp:   nrApp,
			service: config.Service,
		})
	}

	zapLogger.Logger = zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
	return zapLogger, nil
}

// NewWithCore wraps an existing core, mostly for tests that need to capture output
func NewWithCore(core zapcore.Core, service string) *ZapLogger {
	return &ZapLogger{
		Logger:  zap.New(core),
		service: service,
	}
}

func (zl *ZapLogger) setupFileOutput(filePath string) error {
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	zl.file = file
	return nil
}

// Close syncs the logger and closes the log file
func (zl *ZapLogger) Close() error {
	_ = zl.Logger.Sync()

	if zl.file != nil {
		return zl.file.Close()
	}
	return nil
}

// WithNewRelicContext adds trace correlation fields from the transaction
func (zl *ZapLogger) WithNewRelicContext(txn *newrelic.Transaction) *zap.Logger {
	if txn == nil {
		return zl.Logger
	}
	md := txn.GetLinkingMetadata()
	if md.TraceID == "" {
		return zl.Logger
	}
	return zl.Logger.With(
		zap.String("trace.id", md.TraceID),
		zap.String("span.id", md.SpanID),
	)
}

// WithFields adds custom fields to log entry
func (zl *ZapLogger) WithFields(fields map[string]interface{}) *zap.Logger {
	zapFields := make([]zap.Field, 0, len(fields)+1)
	zapFields = append(zapFields, zap.String("service", zl.service))
	for key, value := range fields {
		zapFields = append(zapFields, zap.Any(key, value))
	}
	return zl.Logger.With(zapFields...)
}

// LogHTTPRequest logs a finished request at a level chosen by its status code
func (zl *ZapLogger) LogHTTPRequest(txn *newrelic.Transaction, method, path, clientIP, requestID, traceID string, statusCode int, latency time.Duration, err error) {
	logger := zl.WithNewRelicContext(txn).With(
		zap.String("service", zl.service),
		zap.Int("status", statusCode),
		zap.String("latency", latency.String()),
		zap.Int64("latency_ms", latency.Milliseconds()),
		zap.String("client_ip", clientIP),
		zap.String("method", method),
		zap.String("path", path),
		zap.String("request_id", requestID),
		zap.String("trace_id", traceID),
	)

	switch {
	case statusCode >= 500:
		if err != nil {
			logger.Error("Server error", zap.Error(err))
		} else {
			logger.Error("Server error")
		}
	case statusCode >= 400:
		logger.Warn("Client error")
	default:
		logger.Info("Request processed")
	}
}

// InitZapLoggerFromConfig initializes Zap logger directly from config models
func InitZapLoggerFromConfig(configs *models.Config, nrApp *newrelic.Application) (*ZapLogger, error) {
	return NewZapLogger(ZapConfig{
		Level:    configs.Logger.Level,
		FilePath: configs.Logger.FilePath,
		Service:  configs.App.Name,
	}, nrApp)
}
