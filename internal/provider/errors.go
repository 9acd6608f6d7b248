// Package provider defines the error taxonomy shared by the search provider
// adapters and the aggregator. Fatal kinds (missing credential, auth failure,
// bad request) propagate to the caller; everything else is recoverable and
// degrades to zero results from the failing provider.
package provider

import (
	"errors"
	"fmt"
)

// Kind categorizes a provider failure.
type Kind int

const (
	// KindTransient covers network faults, 5xx responses, and decode errors.
	KindTransient Kind = iota
	// KindMissingCredential means the provider has no API key configured.
	KindMissingCredential
	// KindAuth covers 401/403 responses from the provider.
	KindAuth
	// KindBadRequest covers 400-class responses caused by the request itself.
	KindBadRequest
)

func (k Kind) String() string {
	switch k {
	case KindMissingCredential:
		return "missing_credential"
	case KindAuth:
		return "auth"
	case KindBadRequest:
		return "bad_request"
	default:
		return "transient"
	}
}

// Error is a categorized provider failure.
type Error struct {
	Kind     Kind
	Provider string
	Message  string
	Err      error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Provider, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Provider, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// NewError builds a categorized provider error.
func NewError(kind Kind, provider, message string) *Error {
	return &Error{Kind: kind, Provider: provider, Message: message}
}

// WrapError builds a categorized provider error around a cause.
func WrapError(kind Kind, provider, message string, err error) *Error {
	return &Error{Kind: kind, Provider: provider, Message: message, Err: err}
}

// KindOf extracts the failure kind, defaulting to transient for plain errors.
func KindOf(err error) Kind {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return KindTransient
}

// IsMissingCredential reports whether err is a missing-credential failure.
func IsMissingCredential(err error) bool {
	return KindOf(err) == KindMissingCredential
}

// IsFatal reports whether err must surface to the caller instead of being
// absorbed as "zero results from this provider".
func IsFatal(err error) bool {
	switch KindOf(err) {
	case KindMissingCredential, KindAuth, KindBadRequest:
		return true
	default:
		return false
	}
}
