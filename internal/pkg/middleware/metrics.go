package middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/triptrack/internal/pkg/metrics"
)

// MetricsMiddleware records request counts and latency per route.
// The route template is used as label so trip IDs don't explode cardinality.
func MetricsMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			status := c.Response().Status
			if he, ok := err.(*echo.HTTPError); ok {
				status = he.Code
			}
			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			method := c.Request().Method

			metrics.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
			metrics.HTTPRequestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
			return err
		}
	}
}
