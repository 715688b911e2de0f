// Package errs contains sentinel errors used across layers for stable error mapping.
package errs

import (
	"errors"
	"fmt"
)

// Common sentinels across repo/service layers.
var (
	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidCode indicates a client code that is unknown or belongs to an
	// inactive client. Expected negative outcome, not an infrastructure failure.
	ErrInvalidCode = errors.New("invalid or inactive client code")

	// ErrUnauthorized indicates a failed admin secret check.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrValidation indicates rejected caller input (empty selection, unparsable price).
	ErrValidation = errors.New("validation failed")
)

// AuthError reports a failed assertion signing or token exchange. Detail
// carries the token endpoint's error body when one was returned.
type AuthError struct {
	Detail string
}

func (e *AuthError) Error() string { return "auth: " + e.Detail }

// StoreError reports a non-success response from the backing row store.
type StoreError struct {
	Collection string
	Detail     string
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s: %s", e.Collection, e.Detail)
}
