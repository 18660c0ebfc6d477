package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/taskward/taskward-api/internal/domain"
)

// TaskStore defines the interface for task data persistence.
//
// Every read and mutation is scoped by the owning user's ID. A task that
// exists but belongs to a different user is reported as ErrTaskNotFound,
// never as a distinct "forbidden" condition.
type TaskStore interface {
	// Create saves a new task to the store.
	// Returns ErrInvalidEntity if the owning user does not exist.
	Create(ctx context.Context, task *domain.Task) error

	// GetByID retrieves a task by its ID, scoped to the given owner.
	// Returns ErrTaskNotFound if the task is absent or owned by someone else.
	GetByID(ctx context.Context, userID, taskID uuid.UUID) (*domain.Task, error)

	// ListByUser returns all tasks owned by the given user. If status is
	// non-empty, only tasks whose status matches exactly are returned.
	// Results are ordered by creation time, oldest first.
	ListByUser(ctx context.Context, userID uuid.UUID, status string) ([]*domain.Task, error)

	// Update replaces the mutable fields of an existing task, scoped to the
	// given owner. Returns ErrTaskNotFound if the task is absent or owned by
	// someone else.
	Update(ctx context.Context, task *domain.Task) error

	// Delete removes a task, scoped to the given owner.
	// Returns ErrTaskNotFound if the task is absent or owned by someone else.
	Delete(ctx context.Context, userID, taskID uuid.UUID) error

	// WithTx returns a new TaskStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) TaskStore
}
