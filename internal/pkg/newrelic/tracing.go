package newrelic

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// FromEchoContext extracts the transaction started by the New Relic middleware
func FromEchoContext(c echo.Context) *newrelic.Transaction {
	return newrelic.FromContext(c.Request().Context())
}

// SetTransactionName sets the name of the transaction for better visibility
func SetTransactionName(txn *newrelic.Transaction, name string) {
	if txn != nil {
		txn.SetName(name)
	}
}

// AddTransactionAttribute adds a custom attribute to the transaction
func AddTransactionAttribute(txn *newrelic.Transaction, key string, value interface{}) {
	if txn != nil {
		txn.AddAttribute(key, value)
	}
}

// NoticeTransactionError reports an error to New Relic
func NoticeTransactionError(txn *newrelic.Transaction, err error) {
	if txn != nil && err != nil {
		txn.NoticeError(err)
	}
}

// StartDatastoreSegment times a Redis command issued on behalf of the request in ctx.
// The returned end function is always safe to call.
func StartDatastoreSegment(ctx context.Context, operation, collection string) func() {
	txn := newrelic.FromContext(ctx)
	if txn == nil {
		return func() {}
	}
	segment := &newrelic.DatastoreSegment{
		StartTime:  txn.StartSegmentNow(),
		Product:    newrelic.DatastoreRedis,
		Operation:  operation,
		Collection: collection,
	}
	return segment.End
}

// WithSegment executes fn inside a named segment of the transaction in ctx
func WithSegment(ctx context.Context, segmentName string, fn func() error) error {
	if txn := newrelic.FromContext(ctx); txn != nil {
		defer txn.StartSegment(segmentName).End()
	}
	return fn()
}
