package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/triptrack/internal/pkg/requestcontext"
)

const requestContextKey = "request_context"

// RequestContextMiddleware attaches request and trace IDs to the request context and response headers.
// It must run after echo's RequestID middleware so the generated ID is reused.
func RequestContextMiddleware(serviceName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			reqCtx := requestcontext.FromEchoContext(c)
			reqCtx.ServiceName = serviceName

			c.Set(requestContextKey, reqCtx)
			ctx := requestcontext.WithRequestContext(c.Request().Context(), reqCtx)
			c.SetRequest(c.Request().WithContext(ctx))

			c.Response().Header().Set(echo.HeaderXRequestID, reqCtx.RequestID)
			c.Response().Header().Set(requestcontext.HeaderTraceID, reqCtx.TraceID)

			return next(c)
		}
	}
}

// GetRequestContext extracts request context from Echo context
func GetRequestContext(c echo.Context) *requestcontext.RequestContext {
	if reqCtx, ok := c.Get(requestContextKey).(*requestcontext.RequestContext); ok {
		return reqCtx
	}
	return nil
}
