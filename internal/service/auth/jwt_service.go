// Package auth implements credential issuance and verification: bcrypt
// password hashing and the signed, time-limited bearer tokens used for
// per-request identity.
package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// JWTService defines operations for managing JWT authentication tokens.
type JWTService interface {
	// GenerateToken creates a signed JWT access token for the given user.
	// The subject claim carries the username; the expiry is the configured
	// lifetime from the moment of issuance. Pure computation, no store access.
	// Returns the token string or an error if token generation fails.
	GenerateToken(ctx context.Context, userID uuid.UUID, username string) (string, error)

	// ValidateToken validates the provided token string and extracts the
	// claims. It fails closed: signature mismatch, malformed structure,
	// expiry in the past, or a missing subject all yield an error.
	// Validation does not consult the store; confirming the subject still
	// exists is a separate resolution step.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims represents the verified contents of a bearer token.
type Claims struct {
	// UserID is the unique identifier of the user the token was issued for.
	UserID uuid.UUID `json:"uid,omitempty"`

	// Subject is the username the token represents.
	Subject string `json:"sub,omitempty"`

	// Standard registered JWT claims
	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`
	ID        string    `json:"jti,omitempty"`
}
