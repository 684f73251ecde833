package newrelic

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// EchoMiddleware instruments every request, or is a pass-through when app is nil
func EchoMiddleware(app *newrelic.Application) echo.MiddlewareFunc {
	if app == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}
	return nrecho.Middleware(app)
}

// StartSegment opens a segment on the transaction in ctx.
// The returned segment is nil-safe to End.
func StartSegment(ctx context.Context, name string) *newrelic.Segment {
	txn := newrelic.FromContext(ctx)
	if txn == nil {
		return nil
	}
	return txn.StartSegment(name)
}

// StartBackgroundTransaction begins a non-web transaction, e.g. one websocket event
func StartBackgroundTransaction(ctx context.Context, app *newrelic.Application, name string) (context.Context, *newrelic.Transaction) {
	if app == nil {
		return ctx, nil
	}
	txn := app.StartTransaction(name)
	return newrelic.NewContext(ctx, txn), txn
}

// NoticeError reports err on the transaction in ctx
func NoticeError(ctx context.Context, err error) {
	if txn := newrelic.FromContext(ctx); txn != nil && err != nil {
		txn.NoticeError(err)
	}
}

// AddAttribute adds a custom attribute to the transaction in ctx
func AddAttribute(ctx context.Context, key string, value interface{}) {
	if txn := newrelic.FromContext(ctx); txn != nil {
		txn.AddAttribute(key, value)
	}
}
