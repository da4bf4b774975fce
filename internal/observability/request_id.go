package observability

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

// RequestIDKey stores the request id in a context.
const RequestIDKey contextKey = "request_id"

// NewRequestID returns a random UUIDv4 string.
func NewRequestID() string {
	return uuid.New().String()
}

// ParseRequestID accepts an inbound X-Request-ID when it is a UUID in any
// form uuid.Parse understands and returns it in canonical lowercase form.
func ParseRequestID(s string) (string, bool) {
	id, err := uuid.Parse(s)
	if err != nil {
		return "", false
	}
	return id.String(), true
}

func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}

// RequestIDFromContext returns the id stored by ContextWithRequestID, or "".
func RequestIDFromContext(ctx context.Context) string {
	id, ok := ctx.Value(RequestIDKey).(string)
	if !ok {
		return ""
	}
	return id
}
