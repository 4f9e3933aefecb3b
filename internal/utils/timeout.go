package utils

import (
	"context"
	"time"
)

const (
	DefaultDBTimeout    = 5 * time.Second
	DefaultCacheTimeout = 2 * time.Second
)

// WithDBTimeout bounds a single SQL statement.
func WithDBTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, DefaultDBTimeout)
}

// WithCacheTimeout bounds a single Redis round trip, so a stalled session
// store fails the request instead of hanging it.
func WithCacheTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, DefaultCacheTimeout)
}
