package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/taskward/taskward-api/internal/domain"
	"github.com/taskward/taskward-api/internal/store"
)

// TaskService provides task CRUD operations scoped to an owning user.
//
// Every method takes the caller's resolved user ID; the store layer folds
// that into each statement so a task owned by someone else is
// indistinguishable from a missing one (store.ErrTaskNotFound).
type TaskService interface {
	// CreateTask creates a new task owned by the given user.
	CreateTask(ctx context.Context, userID uuid.UUID, title, description, status string) (*domain.Task, error)

	// ListTasks returns all tasks owned by the given user, optionally
	// filtered by an exact-match status value. An empty status means no filter.
	ListTasks(ctx context.Context, userID uuid.UUID, status string) ([]*domain.Task, error)

	// UpdateTask replaces all mutable fields of the task with the given ID.
	// Returns store.ErrTaskNotFound if the task is absent or not owned by userID.
	UpdateTask(ctx context.Context, userID, taskID uuid.UUID, title, description, status string) (*domain.Task, error)

	// DeleteTask removes the task with the given ID.
	// Returns store.ErrTaskNotFound if the task is absent or not owned by userID.
	DeleteTask(ctx context.Context, userID, taskID uuid.UUID) error
}

// TaskServiceImpl implements the TaskService interface.
type TaskServiceImpl struct {
	taskStore store.TaskStore
	logger    *slog.Logger
}

// NewTaskService creates a new TaskService.
func NewTaskService(taskStore store.TaskStore, logger *slog.Logger) TaskService {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for TaskService")
	}
	return &TaskServiceImpl{
		taskStore: taskStore,
		logger:    logger.With("component", "task_service"),
	}
}

// CreateTask creates a new task owned by the given user.
func (s *TaskServiceImpl) CreateTask(
	ctx context.Context,
	userID uuid.UUID,
	title, description, status string,
) (*domain.Task, error) {
	task, err := domain.NewTask(userID, title, description, status)
	if err != nil {
		s.logger.Debug("invalid task data",
			"error", err,
			"user_id", userID)
		return nil, err
	}

	if err := s.taskStore.Create(ctx, task); err != nil {
		s.logger.Error("failed to create task",
			"error", err,
			"user_id", userID)
		return nil, err
	}

	return task, nil
}

// ListTasks returns all tasks owned by the given user.
func (s *TaskServiceImpl) ListTasks(
	ctx context.Context,
	userID uuid.UUID,
	status string,
) ([]*domain.Task, error) {
	tasks, err := s.taskStore.ListByUser(ctx, userID, status)
	if err != nil {
		s.logger.Error("failed to list tasks",
			"error", err,
			"user_id", userID)
		return nil, err
	}
	return tasks, nil
}

// UpdateTask replaces all mutable fields of an existing task.
//
// Read-then-write here has a benign race: two concurrent updates to the same
// task interleave last-write-wins, which is acceptable for this domain.
func (s *TaskServiceImpl) UpdateTask(
	ctx context.Context,
	userID, taskID uuid.UUID,
	title, description, status string,
) (*domain.Task, error) {
	task, err := s.taskStore.GetByID(ctx, userID, taskID)
	if err != nil {
		if !errors.Is(err, store.ErrTaskNotFound) {
			s.logger.Error("failed to load task for update",
				"error", err,
				"task_id", taskID,
				"user_id", userID)
		}
		return nil, err
	}

	if err := task.Replace(title, description, status); err != nil {
		s.logger.Debug("invalid task update data",
			"error", err,
			"task_id", taskID)
		return nil, err
	}

	if err := s.taskStore.Update(ctx, task); err != nil {
		if !errors.Is(err, store.ErrTaskNotFound) {
			s.logger.Error("failed to update task",
				"error", err,
				"task_id", taskID,
				"user_id", userID)
		}
		return nil, err
	}

	return task, nil
}

// DeleteTask removes the task with the given ID.
func (s *TaskServiceImpl) DeleteTask(ctx context.Context, userID, taskID uuid.UUID) error {
	if err := s.taskStore.Delete(ctx, userID, taskID); err != nil {
		if !errors.Is(err, store.ErrTaskNotFound) {
			s.logger.Error("failed to delete task",
				"error", err,
				"task_id", taskID,
				"user_id", userID)
		}
		return err
	}

	s.logger.Debug("task deleted",
		"task_id", taskID,
		"user_id", userID)
	return nil
}
