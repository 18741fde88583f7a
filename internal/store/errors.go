package store

import "errors"

// ErrNotFound is a store-specific sentinel error, returned when a key has no
// value. Callers should check for it with errors.Is and translate it into a
// domain-level outcome (fall back to defaults, an empty collection, or a 404).
// It abstracts away the backend's own miss signal (sql.ErrNoRows, redis.Nil).
var ErrNotFound = errors.New("store: key not found")
