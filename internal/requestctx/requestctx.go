package requestctx

import (
	"context"

	"employeeform/internal/domain/employee"
)

type ctxKey string

const (
	requestIDKey ctxKey = "request_id"
	sessionKey   ctxKey = "session"
)

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

func GetRequestID(ctx context.Context) string {
	if value, ok := ctx.Value(requestIDKey).(string); ok {
		return value
	}
	return ""
}

func WithSession(ctx context.Context, sess *employee.Session) context.Context {
	return context.WithValue(ctx, sessionKey, sess)
}

func GetSession(ctx context.Context) (*employee.Session, bool) {
	sess, ok := ctx.Value(sessionKey).(*employee.Session)
	return sess, ok && sess != nil
}
