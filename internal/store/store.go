package store

import "context"

// Well-known keys for the persisted blobs. Every durable piece of state
// lives under exactly one of these.
const (
	KeyChats    = "chats"
	KeySettings = "settings"
	KeyUser     = "user"
)

// Store is the persistent key-value facility backing all durable state.
// Values are opaque strings (serialized JSON in practice); there are no
// transactions and no expiry. Writes fully replace the previous value.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
