package sigtoken

import (
	"context"

	"github.com/dmitrymomot/sigtoken/pkg/canonical"
)

// contextKey is a private type for context keys to avoid collisions.
type contextKey struct{ name string }

// String returns the name of the context key.
func (c contextKey) String() string { return c.name }

var (
	tokenContextKey = &contextKey{name: "sigtoken"}
	dataContextKey  = &contextKey{name: "sigtoken_data"}
)

// WithToken stores the raw token string in the context.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenContextKey, token)
}

// TokenFromContext returns the raw token stored by the middleware.
func TokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenContextKey).(string)
	return token, ok
}

// WithData stores verified token data in the context.
func WithData(ctx context.Context, data canonical.Value) context.Context {
	return context.WithValue(ctx, dataContextKey, data)
}

// DataFromContext returns the verified token data stored by the middleware.
func DataFromContext(ctx context.Context) (canonical.Value, bool) {
	data, ok := ctx.Value(dataContextKey).(canonical.Value)
	return data, ok
}
