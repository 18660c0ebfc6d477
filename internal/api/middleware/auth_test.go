package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskward/taskward-api/internal/domain"
	"github.com/taskward/taskward-api/internal/mocks"
	"github.com/taskward/taskward-api/internal/service/auth"
)

func TestAuthMiddleware_Authenticate(t *testing.T) {
	t.Parallel()

	userStore := mocks.NewMockUserStore()
	user := &domain.User{
		ID:             uuid.New(),
		Username:       "alice",
		HashedPassword: "hash",
	}
	require.NoError(t, userStore.Create(context.Background(), user))

	tests := []struct {
		name           string
		authHeader     string
		validateErr    error
		claims         *auth.Claims
		expectedStatus int
		expectedUserID uuid.UUID
	}{
		{
			name:           "valid token for existing user",
			authHeader:     "Bearer valid-token",
			claims:         &auth.Claims{UserID: user.ID, Subject: "alice"},
			expectedStatus: http.StatusOK,
			expectedUserID: user.ID,
		},
		{
			name:           "missing auth header",
			authHeader:     "",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "invalid auth format",
			authHeader:     "InvalidFormat",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "expired token",
			authHeader:     "Bearer expired-token",
			validateErr:    auth.ErrExpiredToken,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "invalid token",
			authHeader:     "Bearer invalid-token",
			validateErr:    auth.ErrInvalidToken,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "token for deleted user",
			authHeader:     "Bearer valid-token",
			claims:         &auth.Claims{UserID: uuid.New(), Subject: "ghost"},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	// Every 401 must carry the same body so the caller can't tell which
	// part of the check failed.
	var unauthorizedBodies []string

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jwtService := &mocks.MockJWTService{
				ValidateErr: tt.validateErr,
				Claims:      tt.claims,
			}

			middleware := NewAuthMiddleware(jwtService, userStore)

			var capturedUserID uuid.UUID
			nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if userID, ok := GetUserID(r); ok {
					capturedUserID = userID
				}
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest("GET", "/tasks", nil)
			if tt.authHeader != "" {
				req.Header.Add("Authorization", tt.authHeader)
			}
			recorder := httptest.NewRecorder()

			middleware.Authenticate(nextHandler).ServeHTTP(recorder, req)

			assert.Equal(t, tt.expectedStatus, recorder.Code)
			if tt.expectedStatus == http.StatusOK {
				assert.Equal(t, tt.expectedUserID, capturedUserID)
			} else {
				var body map[string]any
				require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
				unauthorizedBodies = append(unauthorizedBodies, body["error"].(string))
			}
		})
	}

	t.Run("all failures share one error message", func(t *testing.T) {
		require.NotEmpty(t, unauthorizedBodies)
		for _, message := range unauthorizedBodies {
			assert.Equal(t, unauthorizedBodies[0], message)
		}
	})
}
