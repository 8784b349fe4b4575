package blockedslot

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingExecutor записывает SQL и аргументы, не обращаясь к БД
type recordingExecutor struct {
	query string
	args  []interface{}
}

var errStop = errors.New("recording executor: query not executed")

func (e *recordingExecutor) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	e.query = query
	e.args = args
	return nil, errStop
}

func (e *recordingExecutor) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	e.query = query
	e.args = args
	return nil, errStop
}

func (e *recordingExecutor) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	e.query = query
	e.args = args
	return nil
}

func TestFindOverlapping_IncludesGeneralBlocks(t *testing.T) {
	executor := &recordingExecutor{}
	repo := NewRepository(executor)

	date := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	_, err := repo.FindOverlapping(context.Background(), 42, date, "10:00", "11:00", nil)
	require.ErrorIs(t, err, ErrExecQuery)

	// блокировки без провайдера попадают в поиск для любого провайдера
	assert.Contains(t, executor.query, "provider_id = $1 OR provider_id IS NULL")
	assert.Contains(t, executor.query, "start_time < ")
	assert.Contains(t, executor.query, "end_time > ")
	require.NotEmpty(t, executor.args)
	assert.Equal(t, int64(42), executor.args[0])
}

func TestFindOverlapping_ExcludesID(t *testing.T) {
	executor := &recordingExecutor{}
	repo := NewRepository(executor)

	excludeID := int64(7)
	date := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	_, err := repo.FindOverlapping(context.Background(), 42, date, "10:00", "11:00", &excludeID)
	require.ErrorIs(t, err, ErrExecQuery)

	assert.Contains(t, executor.query, "id <> ")
}

func TestListByProvider_IncludesGeneralBlocks(t *testing.T) {
	executor := &recordingExecutor{}
	repo := NewRepository(executor)

	_, err := repo.ListByProvider(context.Background(), 42)
	require.ErrorIs(t, err, ErrExecQuery)

	assert.Contains(t, executor.query, "provider_id = $1 OR provider_id IS NULL")
	assert.Contains(t, executor.query, "ORDER BY date ASC, start_time ASC")
}
