package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/piresc/triptrack/internal/pkg/logger"
)

// PanicRecoveryConfig holds configuration for panic recovery middleware
type PanicRecoveryConfig struct {
	Logger *logger.ZapLogger
}

// PanicRecoveryMiddleware recovers from panics, logs them with the stack trace
// and answers 500 so no fault escapes the request boundary
func PanicRecoveryMiddleware(config PanicRecoveryConfig) echo.MiddlewareFunc {
	if config.Logger == nil {
		panic("PanicRecoveryMiddleware requires a logger")
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					if r == http.ErrAbortHandler {
						panic(r)
					}
					handlePanic(c, r, config.Logger)
					err = nil
				}
			}()

			return next(c)
		}
	}
}

// PanicRecoveryWithZapMiddleware creates panic recovery middleware with Zap logger
func PanicRecoveryWithZapMiddleware(zapLogger *logger.ZapLogger) echo.MiddlewareFunc {
	return PanicRecoveryMiddleware(PanicRecoveryConfig{Logger: zapLogger})
}

func handlePanic(c echo.Context, r interface{}, zapLogger *logger.ZapLogger) {
	stackTrace := string(debug.Stack())
	req := c.Request()
	requestID := getRequestID(c)
	panicType := fmt.Sprintf("%T", r)

	if txn := newrelic.FromContext(req.Context()); txn != nil {
		txn.NoticeError(newrelic.Error{
			Message: fmt.Sprintf("Panic recovered: %v", r),
			Class:   "PanicError",
			Attributes: map[string]interface{}{
				"panic.type":  panicType,
				"http.method": req.Method,
				"http.path":   req.URL.Path,
				"request_id":  requestID,
			},
		})
	}

	zapLogger.WithNewRelicContext(newrelic.FromContext(req.Context())).Error("Panic recovered during request processing",
		logger.Any("panic_value", r),
		logger.String("panic_type", panicType),
		logger.String("stack_trace", stackTrace),
		logger.String("method", req.Method),
		logger.String("path", req.URL.Path),
		logger.String("client_ip", c.RealIP()),
		logger.String("user_agent", req.UserAgent()),
		logger.String("request_id", requestID),
	)

	sendPanicResponse(c, requestID)
}

func getRequestID(c echo.Context) string {
	if requestID := c.Response().Header().Get(echo.HeaderXRequestID); requestID != "" {
		return requestID
	}
	return c.Request().Header.Get(echo.HeaderXRequestID)
}

func sendPanicResponse(c echo.Context, requestID string) {
	if c.Response().Committed {
		return
	}

	response := map[string]interface{}{
		"error": "Internal Server Error",
	}
	if requestID != "" {
		response["request_id"] = requestID
	}

	if err := c.JSON(http.StatusInternalServerError, response); err != nil {
		_ = c.String(http.StatusInternalServerError, "Internal Server Error")
	}
}
