package logger

import (
	"context"

	"go.uber.org/zap"
)

type ctxKey int

const (
	loggerCtxKey ctxKey = iota
	requestIDCtxKey
	userIDCtxKey
)

// WithContext stores a logger in the context.
func WithContext(ctx context.Context, l *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerCtxKey, l)
}

// FromContext returns the context's logger, or a no-op logger when none was
// stored. Callers never need a nil check.
func FromContext(ctx context.Context) *zap.Logger {
	if l, ok := ctx.Value(loggerCtxKey).(*zap.Logger); ok {
		return l
	}
	return zap.NewNop()
}

// WithRequestID stamps the request ID onto both the context and the logger.
func WithRequestID(ctx context.Context, l *zap.Logger, requestID string) (context.Context, *zap.Logger) {
	ctx = context.WithValue(ctx, requestIDCtxKey, requestID)
	l = l.With(zap.String("request_id", requestID))
	return WithContext(ctx, l), l
}

// WithUserID stamps the authenticated user's ID onto both the context and
// the logger. Used by the JWT middleware after claims validation.
func WithUserID(ctx context.Context, l *zap.Logger, userID string) (context.Context, *zap.Logger) {
	ctx = context.WithValue(ctx, userIDCtxKey, userID)
	l = l.With(zap.String("user_id", userID))
	return WithContext(ctx, l), l
}

// GetRequestID returns the request ID stored by WithRequestID, or "".
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDCtxKey).(string)
	return id
}

// GetUserID returns the user ID stored by WithUserID, or "".
func GetUserID(ctx context.Context) string {
	id, _ := ctx.Value(userIDCtxKey).(string)
	return id
}
