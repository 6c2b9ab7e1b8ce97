package apperrors

import "errors"

// Standard application errors
var (
	// ErrNotFound is returned when a requested resource is not found.
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidInput is returned when the input provided by the caller is invalid.
	ErrInvalidInput = errors.New("invalid input provided")

	// ErrTransport is returned when a connection, socket or timeout fault prevents an exchange.
	ErrTransport = errors.New("transport failure")

	// ErrTimeout is returned when an operation times out. Timeouts are also transport failures.
	ErrTimeout = errors.New("operation timed out")

	// ErrUpstream is returned when an external service answers with a non-success status.
	ErrUpstream = errors.New("upstream service failure")

	// ErrParse is returned when a payload cannot be decoded or lacks required fields.
	ErrParse = errors.New("malformed payload")

	// ErrInternal is returned for unexpected internal system errors.
	ErrInternal = errors.New("internal system error")
)

// IsTransport reports whether err is a transport-level fault, timeouts included.
func IsTransport(err error) bool {
	return errors.Is(err, ErrTransport) || errors.Is(err, ErrTimeout)
}
