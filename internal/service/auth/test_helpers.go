package auth

import (
	"time"

	"github.com/taskward/taskward-api/internal/config"
)

// NewTestJWTService creates a JWT service with an injectable time function
// so tests can exercise expiry deterministically.
func NewTestJWTService(
	secret string,
	tokenLifetime time.Duration,
	timeFunc func() time.Time,
) JWTService {
	svc, err := NewJWTService(config.AuthConfig{
		JWTSecret:            secret,
		TokenLifetimeMinutes: int(tokenLifetime / time.Minute),
	})
	if err != nil {
		// ALLOW-PANIC: Test helper with invalid fixture configuration
		panic(err)
	}

	impl := svc.(*hmacJWTService)
	impl.tokenLifetime = tokenLifetime
	if timeFunc != nil {
		impl.timeFunc = timeFunc
	}
	// No leeway in tests; expiry assertions need exact boundaries.
	impl.clockSkew = 0
	return impl
}
