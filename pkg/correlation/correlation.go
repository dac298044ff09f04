// Package correlation carries a request correlation ID through contexts, HTTP and Kafka headers.
package correlation

import (
	"context"

	"github.com/google/uuid"
)

const (
	HeaderName      = "X-Correlation-ID"
	KafkaHeaderName = "X-Correlation-ID"
)

type contextKey struct{}

// FromContext returns an empty string when no ID is set.
func FromContext(ctx context.Context) string {
	if id, ok := ctx.Value(contextKey{}).(string); ok {
		return id
	}
	return ""
}

func WithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// Ensure returns ctx with an ID, generating one when absent.
func Ensure(ctx context.Context) (context.Context, string) {
	if id := FromContext(ctx); id != "" {
		return ctx, id
	}
	id := NewID()
	return WithID(ctx, id), id
}

func NewID() string {
	return uuid.New().String()
}
