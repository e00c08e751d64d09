package requestcontext

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HeaderTraceID carries the trace ID between services
const HeaderTraceID = "X-Trace-ID"

// ContextKey type for context keys to avoid collisions
type ContextKey string

const (
	RequestIDKey   ContextKey = "request_id"
	TraceIDKey     ContextKey = "trace_id"
	ServiceNameKey ContextKey = "service_name"
)

// RequestContext holds request-specific information
type RequestContext struct {
	RequestID   string
	TraceID     string
	ServiceName string
	StartTime   time.Time
}

// WithRequestContext adds request context to the given context
func WithRequestContext(ctx context.Context, reqCtx *RequestContext) context.Context {
	ctx = context.WithValue(ctx, RequestIDKey, reqCtx.RequestID)
	ctx = context.WithValue(ctx, TraceIDKey, reqCtx.TraceID)
	ctx = context.WithValue(ctx, ServiceNameKey, reqCtx.ServiceName)
	return ctx
}

// FromEchoContext builds a request context, reusing incoming IDs and generating missing ones
func FromEchoContext(c echo.Context) *RequestContext {
	reqCtx := &RequestContext{
		StartTime: time.Now(),
	}

	if requestID := c.Response().Header().Get(echo.HeaderXRequestID); requestID != "" {
		reqCtx.RequestID = requestID
	} else if requestID := c.Request().Header.Get(echo.HeaderXRequestID); requestID != "" {
		reqCtx.RequestID = requestID
	} else {
		reqCtx.RequestID = uuid.New().String()
	}

	if traceID := c.Request().Header.Get(HeaderTraceID); traceID != "" {
		reqCtx.TraceID = traceID
	} else {
		reqCtx.TraceID = uuid.New().String()
	}

	return reqCtx
}

// GetRequestID extracts request ID from context
func GetRequestID(ctx context.Context) string {
	if reqID, ok := ctx.Value(RequestIDKey).(string); ok {
		return reqID
	}
	return ""
}

// GetTraceID extracts trace ID from context
func GetTraceID(ctx context.Context) string {
	if traceID, ok := ctx.Value(TraceIDKey).(string); ok {
		return traceID
	}
	return ""
}

// GetServiceName extracts service name from context
func GetServiceName(ctx context.Context) string {
	if serviceName, ok := ctx.Value(ServiceNameKey).(string); ok {
		return serviceName
	}
	return ""
}
