package errors

import "errors"

// This package defines a centralized set of sentinel errors for the application.
// Services return these (usually wrapped with fmt.Errorf and %w) instead of
// HTTP status codes; the API layer checks them with errors.Is() and maps them
// to responses. This keeps business logic free of transport concerns.

var (
	// ErrNotFound signifies that a requested resource could not be located.
	// Mapped to 404 Not Found.
	ErrNotFound = errors.New("resource not found")

	// ErrValidation signifies that client input failed business rule
	// validation. Mapped to 400 Bad Request.
	ErrValidation = errors.New("validation failed")

	// ErrUnauthorized signifies a failed or missing login.
	// Mapped to 401 Unauthorized.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrConflict signifies that an operation conflicts with the current
	// state of a resource. Mapped to 409 Conflict.
	ErrConflict = errors.New("resource conflict")

	// ErrEmptyMessage signifies a submission whose content is empty after
	// trimming. The operation is a no-op, not a failure: the API maps it to
	// 204 No Content.
	ErrEmptyMessage = errors.New("empty message")

	// ErrGeneration signifies that the response generator failed. The user
	// message is already persisted when this is returned. Mapped to
	// 502 Bad Gateway.
	ErrGeneration = errors.New("response generation failed")

	// ErrInternal signifies an unexpected server-side error, used to avoid
	// leaking implementation details. Mapped to 500 Internal Server Error.
	ErrInternal = errors.New("internal server error")
)
