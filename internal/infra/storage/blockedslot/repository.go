package blockedslot

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/Pratik1Bhuwad/BookSmart-Service/internal/domain"
	"github.com/Pratik1Bhuwad/BookSmart-Service/pkg/dbmetrics"
	"github.com/Pratik1Bhuwad/BookSmart-Service/pkg/psqlbuilder"
	"github.com/Pratik1Bhuwad/BookSmart-Service/pkg/types"
)

// DBExecutor интерфейс для выполнения запросов, переиспользуем dbmetrics
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий для работы с блокировками времени провайдера
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория блокировок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую блокировку
// Нарушение уникальности (provider_id, date, start_time, end_time)
// возвращается как ErrDuplicateSlot
func (r *Repository) Create(ctx context.Context, slot *domain.BlockedSlot) (*domain.BlockedSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("blocked_slots").
		Columns(
			"provider_id",
			"date",
			"start_time",
			"end_time",
			"reason",
		).
		Values(
			slot.ProviderID,
			slot.Date,
			slot.StartTime,
			slot.EndTime,
			slot.Reason,
		).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&slot.ID)
	if isUniqueViolation(err) {
		return nil, ErrDuplicateSlot
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return slot, nil
}

// GetByID получает блокировку по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.BlockedSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.selectSlots().
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var slot domain.BlockedSlot
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&slot.ID,
		&slot.ProviderID,
		&slot.Date,
		&slot.StartTime,
		&slot.EndTime,
		&slot.Reason,
	)

	if err == sql.ErrNoRows {
		return nil, ErrBlockedSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan blocked slot: %v", ErrScanRow, err)
	}

	return &slot, nil
}

// FindOverlapping ищет блокировки провайдера на дату, строго пересекающиеся
// с интервалом [start, end): existing.start < end AND existing.end > start
// excludeID, если задан, исключает блокировку с этим ID из поиска
func (r *Repository) FindOverlapping(
	ctx context.Context,
	providerID int64,
	date time.Time,
	start, end types.TimeString,
	excludeID *int64,
) ([]*domain.BlockedSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	// Общие блокировки (provider_id IS NULL) действуют на всех провайдеров
	selectBuilder := r.selectSlots().
		Where(squirrel.Or{
			squirrel.Eq{"provider_id": providerID},
			squirrel.Eq{"provider_id": nil},
		}).
		Where(squirrel.Eq{"date": date}).
		Where(squirrel.Lt{"start_time": end}).
		Where(squirrel.Gt{"end_time": start})

	if excludeID != nil {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"id": *excludeID})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindOverlapping - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FindOverlapping - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanSlots(rows)
}

// ListByProvider получает блокировки провайдера вместе с общими блокировками,
// отсортированные по дате и времени
func (r *Repository) ListByProvider(ctx context.Context, providerID int64) ([]*domain.BlockedSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.selectSlots().
		Where(squirrel.Or{
			squirrel.Eq{"provider_id": providerID},
			squirrel.Eq{"provider_id": nil},
		}).
		OrderBy("date ASC, start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByProvider - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByProvider - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanSlots(rows)
}

// Delete удаляет блокировку
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("blocked_slots").
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
		return ErrBlockedSlotNotFound
	}

	return nil
}

func (r *Repository) selectSlots() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"provider_id",
		"date",
		"start_time",
		"end_time",
		"reason",
	).From("blocked_slots")
}

func (r *Repository) scanSlots(rows *sql.Rows) ([]*domain.BlockedSlot, error) {
	slots := make([]*domain.BlockedSlot, 0)

	for rows.Next() {
		var slot domain.BlockedSlot

		err := rows.Scan(
			&slot.ID,
			&slot.ProviderID,
			&slot.Date,
			&slot.StartTime,
			&slot.EndTime,
			&slot.Reason,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanSlots - scan row: %v", ErrScanRow, err)
		}

		slots = append(slots, &slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanSlots - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}

// isUniqueViolation проверяет нарушение unique constraint (код 23505)
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	pqErr, ok := err.(*pq.Error)
	return ok && pqErr.Code == "23505"
}
