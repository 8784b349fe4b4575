package providerservice

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/Pratik1Bhuwad/BookSmart-Service/internal/domain"
	"github.com/Pratik1Bhuwad/BookSmart-Service/pkg/dbmetrics"
	"github.com/Pratik1Bhuwad/BookSmart-Service/pkg/psqlbuilder"
)

// DBExecutor интерфейс для выполнения запросов, переиспользуем dbmetrics
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий для чтения услуг провайдеров
// Управление каталогом услуг живет в другом сервисе; здесь только чтение
// для проверок принадлежности, цен и уведомлений
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория услуг
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает услугу по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.ProviderService, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"provider_id",
		"sub_category_id",
		"name",
		"description",
		"duration_minutes",
		"price",
		"provider_name",
	).
		From("provider_services").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var svc domain.ProviderService
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&svc.ID,
		&svc.ProviderID,
		&svc.SubCategoryID,
		&svc.Name,
		&svc.Description,
		&svc.DurationMinutes,
		&svc.Price,
		&svc.ProviderName,
	)

	if err == sql.ErrNoRows {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan service: %v", ErrScanRow, err)
	}

	return &svc, nil
}

// ListByProvider получает все услуги провайдера
func (r *Repository) ListByProvider(ctx context.Context, providerID int64) ([]*domain.ProviderService, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"provider_id",
		"sub_category_id",
		"name",
		"description",
		"duration_minutes",
		"price",
		"provider_name",
	).
		From("provider_services").
		Where(squirrel.Eq{"provider_id": providerID}).
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByProvider - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByProvider - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	services := make([]*domain.ProviderService, 0)
	for rows.Next() {
		var svc domain.ProviderService
		if err := rows.Scan(
			&svc.ID,
			&svc.ProviderID,
			&svc.SubCategoryID,
			&svc.Name,
			&svc.Description,
			&svc.DurationMinutes,
			&svc.Price,
			&svc.ProviderName,
		); err != nil {
			return nil, fmt.Errorf("%w: ListByProvider - scan row: %v", ErrScanRow, err)
		}
		services = append(services, &svc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByProvider - rows error: %v", ErrScanRow, err)
	}

	return services, nil
}
