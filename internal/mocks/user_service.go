package mocks

import (
	"context"

	"github.com/google/uuid"

	"github.com/taskward/taskward-api/internal/domain"
	"github.com/taskward/taskward-api/internal/service"
)

// MockUserService is an in-memory implementation of service.UserService
// backed by a MockUserStore, with the password hashing step replaced by a
// pluggable hash function (identity by default).
type MockUserService struct {
	Store  *MockUserStore
	HashFn func(password string) string

	// Optional error overrides
	RegisterErr error
}

// NewMockUserService creates a MockUserService over the given store.
func NewMockUserService(userStore *MockUserStore) *MockUserService {
	return &MockUserService{
		Store: userStore,
		HashFn: func(password string) string {
			return "hashed:" + password
		},
	}
}

// Ensure MockUserService implements service.UserService
var _ service.UserService = (*MockUserService)(nil)

// Register implements service.UserService.Register
func (m *MockUserService) Register(
	ctx context.Context,
	username, password string,
) (*domain.User, error) {
	if m.RegisterErr != nil {
		return nil, m.RegisterErr
	}

	user, err := domain.NewUser(username, password)
	if err != nil {
		return nil, err
	}

	user.HashedPassword = m.HashFn(password)
	user.Password = ""

	if err := m.Store.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetUser implements service.UserService.GetUser
func (m *MockUserService) GetUser(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	return m.Store.GetByID(ctx, userID)
}

// GetUserByUsername implements service.UserService.GetUserByUsername
func (m *MockUserService) GetUserByUsername(
	ctx context.Context,
	username string,
) (*domain.User, error) {
	return m.Store.GetByUsername(ctx, username)
}
