package repository

import "errors"

// ErrNotFound is returned when a chat id does not match any chat in the
// collection. The service layer translates it into the domain-level
// sentinel so callers never depend on this package directly.
var ErrNotFound = errors.New("repository: chat not found")
