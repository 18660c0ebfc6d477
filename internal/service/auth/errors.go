package auth

import "errors"

// Common authentication service errors.
//
// Callers (middleware, handlers) must collapse all of these into one generic
// unauthenticated response; the distinctions exist only for logs and tests.
var (
	// ErrInvalidToken indicates the token format is invalid or the signature
	// doesn't match.
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrExpiredToken indicates the token has expired.
	ErrExpiredToken = errors.New("authentication token has expired")

	// ErrTokenNotYetValid indicates the token is not yet valid (nbf claim in the future).
	ErrTokenNotYetValid = errors.New("authentication token not yet valid")

	// ErrMissingToken indicates a token was expected but not provided.
	ErrMissingToken = errors.New("authentication token is missing")

	// ErrMissingSubject indicates a structurally valid token without a
	// subject claim; it cannot be resolved to any identity.
	ErrMissingSubject = errors.New("authentication token has no subject")
)
