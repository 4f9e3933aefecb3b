package cache

import (
	"context"
	"strings"
	"time"
)

// NoExpiry persists a value until it is deleted.
const NoExpiry time.Duration = -1

type Cache interface {
	Get(ctx context.Context, key string, value any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	// SetNX stores value only when key is absent and reports whether it did.
	SetNX(ctx context.Context, key string, value any, ttl time.Duration) (bool, error)
	Delete(ctx context.Context, keys ...string) error
	Close() error
}

// Key joins the schema version, a prefix and the id parts with ':'.
func Key(prefix string, parts ...string) string {
	return strings.Join(append([]string{SchemaVersion, prefix}, parts...), ":")
}

const (
	SchemaVersion = "v1"

	CartKeyPrefix     = "cart"
	ConsentKeyPrefix  = "consent"
	CheckoutKeyPrefix = "checkout"
	ReceiptKeyPrefix  = "receipt_sent"
)
