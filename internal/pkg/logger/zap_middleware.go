package logger

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// ZapEchoMiddleware logs every request once it has been handled
func ZapEchoMiddleware(logger *ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			path := c.Request().URL.Path
			if raw := c.Request().URL.RawQuery; raw != "" {
				path = path + "?" + raw
			}

			err := next(c)
			if err != nil {
				// Let echo write the error response so the logged status is the real one
				c.Error(err)
			}

			latency := time.Since(start)
			req := c.Request()
			txn := newrelic.FromContext(req.Context())
			requestID := c.Response().Header().Get(echo.HeaderXRequestID)
			traceID := c.Response().Header().Get("X-Trace-ID")

			if txn != nil {
				txn.AddAttribute("request_id", requestID)
				txn.AddAttribute("response_time_ms", latency.Milliseconds())
			}

			logger.LogHTTPRequest(txn, req.Method, path, c.RealIP(), requestID, traceID, c.Response().Status, latency, err)
			return nil
		}
	}
}
