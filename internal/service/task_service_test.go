package service_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskward/taskward-api/internal/domain"
	"github.com/taskward/taskward-api/internal/mocks"
	"github.com/taskward/taskward-api/internal/service"
	"github.com/taskward/taskward-api/internal/store"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestTaskServiceCreateTask(t *testing.T) {
	t.Parallel()

	owner := uuid.New()

	t.Run("creates and persists a task", func(t *testing.T) {
		t.Parallel()
		taskStore := mocks.NewMockTaskStore()
		svc := service.NewTaskService(taskStore, newTestLogger())

		task, err := svc.CreateTask(context.Background(), owner, "Title", "Description", "pending")
		require.NoError(t, err)
		assert.Equal(t, owner, task.UserID)

		stored, err := taskStore.GetByID(context.Background(), owner, task.ID)
		require.NoError(t, err)
		assert.Equal(t, "Title", stored.Title)
	})

	t.Run("rejects invalid task data before hitting the store", func(t *testing.T) {
		t.Parallel()
		taskStore := mocks.NewMockTaskStore()
		svc := service.NewTaskService(taskStore, newTestLogger())

		_, err := svc.CreateTask(context.Background(), owner, "", "", "pending")
		require.ErrorIs(t, err, domain.ErrEmptyTaskTitle)

		tasks, err := taskStore.ListByUser(context.Background(), owner, "")
		require.NoError(t, err)
		assert.Empty(t, tasks)
	})
}

func TestTaskServiceUpdateTask(t *testing.T) {
	t.Parallel()

	owner := uuid.New()

	t.Run("replaces every mutable field", func(t *testing.T) {
		t.Parallel()
		taskStore := mocks.NewMockTaskStore()
		svc := service.NewTaskService(taskStore, newTestLogger())

		task, err := svc.CreateTask(context.Background(), owner, "Old", "Old description", "pending")
		require.NoError(t, err)

		updated, err := svc.UpdateTask(context.Background(), owner, task.ID, "New", "", "done")
		require.NoError(t, err)
		assert.Equal(t, "New", updated.Title)
		assert.Empty(t, updated.Description)
		assert.Equal(t, "done", updated.Status)

		stored, err := taskStore.GetByID(context.Background(), owner, task.ID)
		require.NoError(t, err)
		assert.Equal(t, "New", stored.Title)
	})

	t.Run("missing task yields not found", func(t *testing.T) {
		t.Parallel()
		svc := service.NewTaskService(mocks.NewMockTaskStore(), newTestLogger())

		_, err := svc.UpdateTask(context.Background(), owner, uuid.New(), "New", "", "done")
		require.ErrorIs(t, err, store.ErrTaskNotFound)
	})

	t.Run("another user's task yields not found", func(t *testing.T) {
		t.Parallel()
		taskStore := mocks.NewMockTaskStore()
		svc := service.NewTaskService(taskStore, newTestLogger())

		task, err := svc.CreateTask(context.Background(), owner, "Mine", "", "pending")
		require.NoError(t, err)

		_, err = svc.UpdateTask(context.Background(), uuid.New(), task.ID, "Stolen", "", "done")
		require.ErrorIs(t, err, store.ErrTaskNotFound)

		stored, err := taskStore.GetByID(context.Background(), owner, task.ID)
		require.NoError(t, err)
		assert.Equal(t, "Mine", stored.Title)
	})
}

func TestTaskServiceDeleteTask(t *testing.T) {
	t.Parallel()

	owner := uuid.New()

	t.Run("removes the task", func(t *testing.T) {
		t.Parallel()
		taskStore := mocks.NewMockTaskStore()
		svc := service.NewTaskService(taskStore, newTestLogger())

		task, err := svc.CreateTask(context.Background(), owner, "Title", "", "pending")
		require.NoError(t, err)

		require.NoError(t, svc.DeleteTask(context.Background(), owner, task.ID))

		_, err = taskStore.GetByID(context.Background(), owner, task.ID)
		require.ErrorIs(t, err, store.ErrTaskNotFound)
	})

	t.Run("missing task yields not found", func(t *testing.T) {
		t.Parallel()
		svc := service.NewTaskService(mocks.NewMockTaskStore(), newTestLogger())
		err := svc.DeleteTask(context.Background(), owner, uuid.New())
		require.ErrorIs(t, err, store.ErrTaskNotFound)
	})
}

func TestTaskServiceListTasks(t *testing.T) {
	t.Parallel()

	owner := uuid.New()
	taskStore := mocks.NewMockTaskStore()
	svc := service.NewTaskService(taskStore, newTestLogger())

	for _, status := range []string{"pending", "done", "pending"} {
		_, err := svc.CreateTask(context.Background(), owner, "Task", "", status)
		require.NoError(t, err)
	}

	t.Run("empty status returns everything", func(t *testing.T) {
		tasks, err := svc.ListTasks(context.Background(), owner, "")
		require.NoError(t, err)
		assert.Len(t, tasks, 3)
	})

	t.Run("status filters by exact match", func(t *testing.T) {
		tasks, err := svc.ListTasks(context.Background(), owner, "done")
		require.NoError(t, err)
		require.Len(t, tasks, 1)
		assert.Equal(t, "done", tasks[0].Status)
	})

	t.Run("other users see nothing", func(t *testing.T) {
		tasks, err := svc.ListTasks(context.Background(), uuid.New(), "")
		require.NoError(t, err)
		assert.Empty(t, tasks)
	})
}
