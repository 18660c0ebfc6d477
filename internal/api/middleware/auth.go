// Package middleware provides HTTP middleware for the API: authentication,
// request tracing, and metrics.
package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/taskward/taskward-api/internal/api/shared"
	"github.com/taskward/taskward-api/internal/redact"
	"github.com/taskward/taskward-api/internal/service/auth"
	"github.com/taskward/taskward-api/internal/store"
)

// unauthorizedMessage is the single message returned for every credential
// failure. Missing header, malformed token, bad signature, expiry, and an
// unknown subject must all be indistinguishable to the caller so an attacker
// gets no signal about which part of the check failed.
const unauthorizedMessage = "Could not validate credentials"

// AuthMiddleware provides bearer-token authentication for routes.
//
// Beyond verifying the token it resolves the subject claim against the user
// store, so every protected handler runs with a user that is known to still
// exist at request time.
type AuthMiddleware struct {
	jwtService auth.JWTService
	userStore  store.UserStore
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(jwtService auth.JWTService, userStore store.UserStore) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		userStore:  userStore,
	}
}

// Authenticate validates the bearer token from the Authorization header,
// resolves the subject to a stored user, and adds the user's ID and username
// to the request context. Every failure yields the same generic 401.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			m.unauthorized(w, r, auth.ErrMissingToken)
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			m.unauthorized(w, r, auth.ErrInvalidToken)
			return
		}

		claims, err := m.jwtService.ValidateToken(r.Context(), parts[1])
		if err != nil {
			m.unauthorized(w, r, err)
			return
		}

		// Resolve the subject to a stored user. A token may outlive the
		// account it was issued for.
		user, err := m.userStore.GetByUsername(r.Context(), claims.Subject)
		if err != nil {
			if !errors.Is(err, store.ErrUserNotFound) {
				slog.Error("failed to resolve token subject",
					"error", redact.Error(err))
				shared.RespondWithError(w, r, http.StatusInternalServerError,
					"Authentication error")
				return
			}
			m.unauthorized(w, r, err)
			return
		}

		ctx := context.WithValue(r.Context(), shared.UserIDContextKey, user.ID)
		ctx = context.WithValue(ctx, shared.UsernameContextKey, user.Username)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// unauthorized writes the uniform 401 response and logs the real cause.
func (m *AuthMiddleware) unauthorized(w http.ResponseWriter, r *http.Request, err error) {
	slog.Debug("authentication failed",
		"error", redact.Error(err),
		"path", r.URL.Path)
	w.Header().Set("WWW-Authenticate", "Bearer")
	shared.RespondWithError(w, r, http.StatusUnauthorized, unauthorizedMessage)
}

// GetUserID extracts the authenticated user's ID from the request context.
// Returns the user ID and a boolean indicating if it was found.
func GetUserID(r *http.Request) (uuid.UUID, bool) {
	userID, ok := r.Context().Value(shared.UserIDContextKey).(uuid.UUID)
	return userID, ok
}
