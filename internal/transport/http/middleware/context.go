package middleware

import "context"

type ctxKey string

const (
	ctxKeyUser      ctxKey = "user"
	ctxKeyRequestID ctxKey = "request_id"
)

// UserContext is the authenticated identity attached to a request.
type UserContext struct {
	UserID string
	Email  string
	Role   string
}

func GetUser(ctx context.Context) (UserContext, bool) {
	user, ok := ctx.Value(ctxKeyUser).(UserContext)
	return user, ok
}

func GetRequestID(ctx context.Context) string {
	if value, ok := ctx.Value(ctxKeyRequestID).(string); ok {
		return value
	}
	return ""
}
