package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrChainNotFound means the requested chain is not in the registry.
	ErrChainNotFound = errors.New("chain not found")

	// ErrValidation means a candidate endpoint failed one of the identity, integrity or freshness checks.
	ErrValidation = errors.New("validation failed")

	// ErrArchiveProbe means a node could not serve one of the historical blocks.
	ErrArchiveProbe = errors.New("archive probe failed")

	// ErrReferenceUnavailable means the ground-truth block height could not be established.
	ErrReferenceUnavailable = errors.New("reference node unavailable")
)

// Validation failure reasons.
const (
	ReasonChainIDMismatch = "chain id mismatch"
	ReasonGenesisMismatch = "genesis mismatch"
	ReasonNotSynced       = "not synced"
)

// ValidationError is returned when an endpoint answers well-formed data that does not match expectations.
type ValidationError struct {
	Reason string
	Detail string
}

func (e *ValidationError) Error() string {
	if e.Detail == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Reason, e.Detail)
}

// Unwrap makes errors.Is(err, ErrValidation) hold for every ValidationError.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError builds a ValidationError with a formatted detail.
func NewValidationError(reason, format string, args ...any) *ValidationError {
	return &ValidationError{Reason: reason, Detail: fmt.Sprintf(format, args...)}
}

// ValidationReason extracts the failure reason from err, or "" if err is not a ValidationError.
func ValidationReason(err error) string {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr.Reason
	}
	return ""
}
