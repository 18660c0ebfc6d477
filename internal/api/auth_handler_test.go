package api

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/taskward/taskward-api/internal/mocks"
	"github.com/taskward/taskward-api/internal/service/auth"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

const testJWTSecret = "test-secret-that-is-long-enough-for-testing"

// newAuthTestRouter builds a router with just the auth endpoints, backed by
// in-memory stores and real bcrypt hashing at minimum cost.
func newAuthTestRouter(t *testing.T) (*chi.Mux, *mocks.MockUserService) {
	t.Helper()

	userStore := mocks.NewMockUserStore()
	userService := mocks.NewMockUserService(userStore)

	hasher := auth.NewBcryptHasher(bcrypt.MinCost)
	userService.HashFn = func(password string) string {
		hashed, err := hasher.Hash(password)
		require.NoError(t, err)
		return hashed
	}

	jwtService := auth.NewTestJWTService(testJWTSecret, 30*time.Minute, nil)

	handler := NewAuthHandler(userService, jwtService, hasher, newTestLogger())

	r := chi.NewRouter()
	r.Post("/auth/register", handler.Register)
	r.Post("/auth/login", handler.Login)
	return r, userService
}

func registerRequest(t *testing.T, router http.Handler, username, password string) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(map[string]string{
		"username": username,
		"password": password,
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func loginRequest(t *testing.T, router http.Handler, username, password string) *httptest.ResponseRecorder {
	t.Helper()

	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestRegister(t *testing.T) {
	t.Parallel()

	t.Run("creates user and omits password material", func(t *testing.T) {
		t.Parallel()
		router, _ := newAuthTestRouter(t)

		recorder := registerRequest(t, router, "newuser", "password123")
		require.Equal(t, http.StatusCreated, recorder.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.Equal(t, "newuser", body["username"])
		assert.NotEmpty(t, body["id"])
		assert.NotContains(t, recorder.Body.String(), "password")
		assert.NotContains(t, recorder.Body.String(), "hash")
	})

	t.Run("rejects duplicate username", func(t *testing.T) {
		t.Parallel()
		router, _ := newAuthTestRouter(t)

		require.Equal(t, http.StatusCreated,
			registerRequest(t, router, "taken", "password123").Code)

		recorder := registerRequest(t, router, "taken", "password456")
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "already registered")
	})

	t.Run("rejects short password", func(t *testing.T) {
		t.Parallel()
		router, _ := newAuthTestRouter(t)

		recorder := registerRequest(t, router, "newuser", "short")
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("rejects malformed body", func(t *testing.T) {
		t.Parallel()
		router, _ := newAuthTestRouter(t)

		req := httptest.NewRequest(http.MethodPost, "/auth/register",
			strings.NewReader("{not json"))
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestLogin(t *testing.T) {
	t.Parallel()

	t.Run("returns bearer token for valid credentials", func(t *testing.T) {
		t.Parallel()
		router, _ := newAuthTestRouter(t)
		require.Equal(t, http.StatusCreated,
			registerRequest(t, router, "alice", "password123").Code)

		recorder := loginRequest(t, router, "alice", "password123")
		require.Equal(t, http.StatusOK, recorder.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.NotEmpty(t, body["access_token"])
		assert.Equal(t, "bearer", body["token_type"])
	})

	t.Run("register then login round trip", func(t *testing.T) {
		t.Parallel()
		router, _ := newAuthTestRouter(t)

		require.Equal(t, http.StatusCreated,
			registerRequest(t, router, "roundtrip", "password123").Code)
		assert.Equal(t, http.StatusOK,
			loginRequest(t, router, "roundtrip", "password123").Code)
	})

	t.Run("wrong password and unknown user are indistinguishable", func(t *testing.T) {
		t.Parallel()
		router, _ := newAuthTestRouter(t)
		require.Equal(t, http.StatusCreated,
			registerRequest(t, router, "bob", "password123").Code)

		wrongPassword := loginRequest(t, router, "bob", "not-the-password")
		unknownUser := loginRequest(t, router, "nobody", "password123")

		assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
		assert.Equal(t, http.StatusUnauthorized, unknownUser.Code)
		assert.JSONEq(t, wrongPassword.Body.String(), unknownUser.Body.String())
	})

	t.Run("missing fields are a bad request", func(t *testing.T) {
		t.Parallel()
		router, _ := newAuthTestRouter(t)

		recorder := loginRequest(t, router, "alice", "")
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}
