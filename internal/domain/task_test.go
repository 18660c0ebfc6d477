package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTask(t *testing.T) {
	t.Parallel()

	owner := uuid.New()

	t.Run("creates valid task", func(t *testing.T) {
		t.Parallel()
		task, err := NewTask(owner, "Write report", "Quarterly numbers", "pending")
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, task.ID)
		assert.Equal(t, owner, task.UserID)
		assert.Equal(t, "Write report", task.Title)
		assert.Equal(t, "Quarterly numbers", task.Description)
		assert.Equal(t, "pending", task.Status)
		assert.False(t, task.CreatedAt.IsZero())
	})

	t.Run("description is optional", func(t *testing.T) {
		t.Parallel()
		task, err := NewTask(owner, "Write report", "", "pending")
		require.NoError(t, err)
		assert.Empty(t, task.Description)
	})

	tests := []struct {
		name    string
		userID  uuid.UUID
		title   string
		status  string
		wantErr error
	}{
		{"missing owner", uuid.Nil, "Title", "pending", ErrEmptyTaskOwner},
		{"empty title", owner, "", "pending", ErrEmptyTaskTitle},
		{"title too long", owner, strings.Repeat("t", 201), "pending", ErrTaskTitleTooLong},
		{"empty status", owner, "Title", "", ErrEmptyTaskStatus},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewTask(tt.userID, tt.title, "", tt.status)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestTaskReplace(t *testing.T) {
	t.Parallel()

	owner := uuid.New()

	t.Run("replaces all mutable fields", func(t *testing.T) {
		t.Parallel()
		task, err := NewTask(owner, "Old title", "Old description", "pending")
		require.NoError(t, err)

		createdAt := task.CreatedAt
		time.Sleep(time.Millisecond) // ensure UpdatedAt moves

		require.NoError(t, task.Replace("New title", "New description", "done"))

		assert.Equal(t, "New title", task.Title)
		assert.Equal(t, "New description", task.Description)
		assert.Equal(t, "done", task.Status)
		assert.Equal(t, createdAt, task.CreatedAt)
		assert.True(t, task.UpdatedAt.After(createdAt))
	})

	t.Run("replace clears the description when omitted", func(t *testing.T) {
		t.Parallel()
		task, err := NewTask(owner, "Title", "Has description", "pending")
		require.NoError(t, err)

		require.NoError(t, task.Replace("Title", "", "pending"))
		assert.Empty(t, task.Description)
	})

	t.Run("invalid replacement leaves task unchanged", func(t *testing.T) {
		t.Parallel()
		task, err := NewTask(owner, "Title", "Description", "pending")
		require.NoError(t, err)

		err = task.Replace("", "Description", "pending")
		require.ErrorIs(t, err, ErrEmptyTaskTitle)
		assert.Equal(t, "Title", task.Title)
		assert.Equal(t, "pending", task.Status)
	})
}
