package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// NewRelicMiddleware starts one web transaction per request and stores it in the request context.
// A nil application disables it.
func NewRelicMiddleware(app *newrelic.Application) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		if app == nil {
			return next
		}
		return func(c echo.Context) error {
			req := c.Request()
			name := c.Path()
			if name == "" {
				name = req.URL.Path
			}

			txn := app.StartTransaction(req.Method + " " + name)
			defer txn.End()

			txn.SetWebRequestHTTP(req)
			c.Response().Writer = txn.SetWebResponse(c.Response().Writer)
			c.SetRequest(req.WithContext(newrelic.NewContext(req.Context(), txn)))

			err := next(c)
			if err != nil {
				txn.NoticeError(err)
			}
			return err
		}
	}
}
