package httpx

import "context"

type ctxKey string

const ctxKeyUserID ctxKey = "user_id"

// WithUserID records the verified caller. Only the authentication middleware
// (or tests standing in for it) should call this.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, ctxKeyUserID, userID)
}

// UserIDFromContext returns the verified caller id, if any. An empty id is
// reported as absent; there is no anonymous identity.
func UserIDFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(ctxKeyUserID).(string)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}
