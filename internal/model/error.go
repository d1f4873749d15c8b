package model

import (
	"errors"
	"fmt"
)

// ErrorKind classifies store failures so callers can tell retryable transport
// failures from business rejections. Lookups that find nothing are not errors:
// read paths return nil instead.
type ErrorKind string

const (
	// KindRejected is a business rejection reported by a backend (bad
	// merchandise reference, unknown cart id, bad credentials). Retrying the
	// same request will not help.
	KindRejected ErrorKind = "REJECTED"

	// KindTransient is a connectivity, timeout or non-2xx transport failure.
	// The request may succeed if retried.
	KindTransient ErrorKind = "TRANSIENT"

	// KindConfig means required configuration (remote credentials, mail
	// settings) was absent when an operation needed it. Fatal for the call,
	// not for the process.
	KindConfig ErrorKind = "CONFIGURATION"

	// KindNotImplemented marks a backend capability that intentionally does
	// not exist. It never silently degrades to another backend.
	KindNotImplemented ErrorKind = "NOT_IMPLEMENTED"
)

// StoreError is the failure type surfaced by store backends and the facade.
type StoreError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *StoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewRejected creates a business-rejection error carrying the backend's
// messages verbatim.
func NewRejected(message string) *StoreError {
	return &StoreError{Kind: KindRejected, Message: message}
}

// NewTransient wraps a transport-level failure.
func NewTransient(message string, err error) *StoreError {
	return &StoreError{Kind: KindTransient, Message: message, Err: err}
}

// NewConfig reports missing or unusable configuration.
func NewConfig(message string) *StoreError {
	return &StoreError{Kind: KindConfig, Message: message}
}

// NewNotImplemented reports an intentionally unimplemented capability.
func NewNotImplemented(operation string) *StoreError {
	return &StoreError{Kind: KindNotImplemented, Message: operation + " is not implemented for this backend"}
}

// ErrInvalidCredentials is returned for both an unknown email and a wrong
// password, so a caller cannot tell which part failed.
var ErrInvalidCredentials = NewRejected("invalid email or password")

// KindOf returns the classification of err, or "" when err is not a
// StoreError.
func KindOf(err error) ErrorKind {
	var se *StoreError
	if errors.As(err, &se) {
		return se.Kind
	}
	return ""
}

// IsTransient reports whether err is a retryable transport failure.
func IsTransient(err error) bool {
	return KindOf(err) == KindTransient
}

// IsRejected reports whether err is a business rejection.
func IsRejected(err error) bool {
	return KindOf(err) == KindRejected
}
