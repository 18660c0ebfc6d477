package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskward/taskward-api/internal/domain"
	"github.com/taskward/taskward-api/internal/store"
)

// stubDBTX returns canned results for ExecContext so the affected-rows
// handling can be exercised without a database.
type stubDBTX struct {
	execResult sql.Result
	execErr    error
}

func (s stubDBTX) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return s.execResult, s.execErr
}

func (s stubDBTX) PrepareContext(ctx context.Context, query string) (*sql.Stmt, error) {
	return nil, errors.New("not implemented")
}

func (s stubDBTX) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return nil, errors.New("not implemented")
}

func (s stubDBTX) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return nil
}

func validTask(t *testing.T) *domain.Task {
	t.Helper()
	task, err := domain.NewTask(uuid.New(), "Title", "", "pending")
	require.NoError(t, err)
	return task
}

func TestTaskStoreUpdateRowsAffected(t *testing.T) {
	t.Parallel()

	t.Run("zero rows maps to task not found", func(t *testing.T) {
		t.Parallel()
		s := NewPostgresTaskStore(stubDBTX{execResult: fakeResult{rows: 0}}, nil)
		err := s.Update(context.Background(), validTask(t))
		require.ErrorIs(t, err, store.ErrTaskNotFound)
	})

	// A driver failure reading the affected-row count is an infrastructure
	// error and must not masquerade as a missing task.
	t.Run("rows affected failure propagates", func(t *testing.T) {
		t.Parallel()
		boom := errors.New("driver broke")
		s := NewPostgresTaskStore(stubDBTX{execResult: fakeResult{err: boom}}, nil)

		err := s.Update(context.Background(), validTask(t))
		require.ErrorIs(t, err, boom)
		assert.NotErrorIs(t, err, store.ErrTaskNotFound)
	})
}

func TestTaskStoreDeleteRowsAffected(t *testing.T) {
	t.Parallel()

	t.Run("zero rows maps to task not found", func(t *testing.T) {
		t.Parallel()
		s := NewPostgresTaskStore(stubDBTX{execResult: fakeResult{rows: 0}}, nil)
		err := s.Delete(context.Background(), uuid.New(), uuid.New())
		require.ErrorIs(t, err, store.ErrTaskNotFound)
	})

	t.Run("rows affected failure propagates", func(t *testing.T) {
		t.Parallel()
		boom := errors.New("driver broke")
		s := NewPostgresTaskStore(stubDBTX{execResult: fakeResult{err: boom}}, nil)

		err := s.Delete(context.Background(), uuid.New(), uuid.New())
		require.ErrorIs(t, err, boom)
		assert.NotErrorIs(t, err, store.ErrTaskNotFound)
	})
}
