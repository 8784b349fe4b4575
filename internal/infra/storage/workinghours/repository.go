package workinghours

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/Pratik1Bhuwad/BookSmart-Service/internal/domain"
	"github.com/Pratik1Bhuwad/BookSmart-Service/pkg/dbmetrics"
	"github.com/Pratik1Bhuwad/BookSmart-Service/pkg/psqlbuilder"
)

// DBExecutor интерфейс для выполнения запросов, переиспользуем dbmetrics
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий для работы с рабочими часами провайдера
// Инвариант: не более одной записи на пару (provider_id, day_of_week),
// обеспечивается unique constraint в БД
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория рабочих часов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает запись рабочих часов для дня недели
func (r *Repository) Create(ctx context.Context, wh *domain.WorkingHours) (*domain.WorkingHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("working_hours").
		Columns(
			"provider_id",
			"day_of_week",
			"start_time",
			"end_time",
		).
		Values(
			wh.ProviderID,
			wh.DayOfWeek,
			wh.StartTime,
			wh.EndTime,
		).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&wh.ID)
	if isUniqueViolation(err) {
		return nil, ErrDuplicateWorkingHours
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return wh, nil
}

// GetByProviderAndDay получает рабочие часы провайдера на день недели
// (Monday=0 .. Sunday=6)
func (r *Repository) GetByProviderAndDay(ctx context.Context, providerID int64, dayOfWeek int) (*domain.WorkingHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.selectHours().
		Where(squirrel.Eq{
			"provider_id": providerID,
			"day_of_week": dayOfWeek,
		}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByProviderAndDay - build select query: %v", ErrBuildQuery, err)
	}

	var wh domain.WorkingHours
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&wh.ID,
		&wh.ProviderID,
		&wh.DayOfWeek,
		&wh.StartTime,
		&wh.EndTime,
	)

	if err == sql.ErrNoRows {
		return nil, ErrWorkingHoursNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByProviderAndDay - scan working hours: %v", ErrScanRow, err)
	}

	return &wh, nil
}

// GetByID получает запись рабочих часов по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.WorkingHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.selectHours().
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var wh domain.WorkingHours
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&wh.ID,
		&wh.ProviderID,
		&wh.DayOfWeek,
		&wh.StartTime,
		&wh.EndTime,
	)

	if err == sql.ErrNoRows {
		return nil, ErrWorkingHoursNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan working hours: %v", ErrScanRow, err)
	}

	return &wh, nil
}

// ListByProvider получает все рабочие часы провайдера, отсортированные по дню недели
func (r *Repository) ListByProvider(ctx context.Context, providerID int64) ([]*domain.WorkingHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.selectHours().
		Where(squirrel.Eq{"provider_id": providerID}).
		OrderBy("day_of_week ASC, start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByProvider - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByProvider - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	hours := make([]*domain.WorkingHours, 0)
	for rows.Next() {
		var wh domain.WorkingHours
		if err := rows.Scan(
			&wh.ID,
			&wh.ProviderID,
			&wh.DayOfWeek,
			&wh.StartTime,
			&wh.EndTime,
		); err != nil {
			return nil, fmt.Errorf("%w: ListByProvider - scan row: %v", ErrScanRow, err)
		}
		hours = append(hours, &wh)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByProvider - rows error: %v", ErrScanRow, err)
	}

	return hours, nil
}

// Delete удаляет запись рабочих часов
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("working_hours").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrWorkingHoursNotFound
	}

	return nil
}

func (r *Repository) selectHours() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"provider_id",
		"day_of_week",
		"start_time",
		"end_time",
	).From("working_hours")
}

// isUniqueViolation проверяет нарушение unique constraint (код 23505)
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	pqErr, ok := err.(*pq.Error)
	return ok && pqErr.Code == "23505"
}
