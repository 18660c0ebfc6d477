package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common task validation errors
var (
	ErrEmptyTaskID      = errors.New("task ID cannot be empty")
	ErrEmptyTaskOwner   = errors.New("task owner cannot be empty")
	ErrEmptyTaskTitle   = errors.New("task title cannot be empty")
	ErrTaskTitleTooLong = errors.New("task title must be at most 200 characters long")
	ErrEmptyTaskStatus  = errors.New("task status cannot be empty")
)

// Task represents a single task owned by a user. Status is a free-form
// string; the API filters by exact match rather than enforcing a state machine.
type Task struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewTask creates a new Task owned by the given user.
// It generates a new UUID for the task ID and sets the timestamps.
// Returns an error if validation fails.
func NewTask(userID uuid.UUID, title, description, status string) (*Task, error) {
	now := time.Now().UTC()
	task := &Task{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       title,
		Description: description,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
func (t *Task) Validate() error {
	if t.ID == uuid.Nil {
		return ErrEmptyTaskID
	}
	if t.UserID == uuid.Nil {
		return ErrEmptyTaskOwner
	}
	if t.Title == "" {
		return ErrEmptyTaskTitle
	}
	if len(t.Title) > 200 {
		return ErrTaskTitleTooLong
	}
	if t.Status == "" {
		return ErrEmptyTaskStatus
	}
	return nil
}

// Replace overwrites all mutable fields with the given values and bumps
// the update timestamp. Update semantics are full-field replace; there is
// no partial patch.
func (t *Task) Replace(title, description, status string) error {
	updated := *t
	updated.Title = title
	updated.Description = description
	updated.Status = status
	if err := updated.Validate(); err != nil {
		return err
	}

	t.Title = title
	t.Description = description
	t.Status = status
	t.UpdatedAt = time.Now().UTC()
	return nil
}
