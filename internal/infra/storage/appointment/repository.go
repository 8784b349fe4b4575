package appointment

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/Pratik1Bhuwad/BookSmart-Service/internal/domain"
	"github.com/Pratik1Bhuwad/BookSmart-Service/pkg/dbmetrics"
	"github.com/Pratik1Bhuwad/BookSmart-Service/pkg/psqlbuilder"
	"github.com/Pratik1Bhuwad/BookSmart-Service/pkg/types"
)

// DBExecutor интерфейс для выполнения запросов, переиспользуем dbmetrics
type DBExecutor = dbmetrics.DBExecutor

// appointmentColumns базовый набор колонок таблицы appointments
var appointmentColumns = []string{
	"a.id",
	"a.client_id",
	"a.provider_service_id",
	"a.time_slot_id",
	"a.location_id",
	"a.date",
	"a.status",
	"a.service_name",
	"a.service_price",
	"a.booked_on",
	"ps.provider_id",
}

// Repository репозиторий для работы с записями клиентов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую запись со статусом pending
func (r *Repository) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"client_id",
			"provider_service_id",
			"time_slot_id",
			"location_id",
			"date",
			"status",
			"service_name",
			"service_price",
		).
		Values(
			appt.ClientID,
			appt.ProviderServiceID,
			appt.TimeSlotID,
			appt.LocationID,
			appt.Date,
			appt.Status,
			appt.ServiceName,
			appt.ServicePrice,
		).
		Suffix("RETURNING id, booked_on").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var bookedOn sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&appt.ID, &bookedOn)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	appt.BookedOn = bookedOn.Time

	return appt, nil
}

// GetByID получает запись по ID
// Если используется транзакция, строка блокируется FOR UPDATE
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(appointmentColumns...).
		From("appointments a").
		Join("provider_services ps ON ps.id = a.provider_service_id").
		Where(squirrel.Eq{"a.id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE OF a")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var appt domain.Appointment
	var bookedOn sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&appt.ID,
		&appt.ClientID,
		&appt.ProviderServiceID,
		&appt.TimeSlotID,
		&appt.LocationID,
		&appt.Date,
		&appt.Status,
		&appt.ServiceName,
		&appt.ServicePrice,
		&bookedOn,
		&appt.ProviderID,
	)

	if err == sql.ErrNoRows {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %v", ErrScanRow, err)
	}

	appt.BookedOn = bookedOn.Time

	return &appt, nil
}

// FindActiveOverlapping ищет активные записи (pending/approved/paid) провайдера
// на дату, чьи слоты строго пересекаются с интервалом [start, end):
// slot.start < end AND slot.end > start
// excludeSlotID, если задан, исключает записи на этот слот из поиска
// (используется при редактировании слота против самого себя)
func (r *Repository) FindActiveOverlapping(
	ctx context.Context,
	providerID int64,
	date time.Time,
	start, end types.TimeString,
	excludeSlotID *int64,
) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	activeStatuses := make([]string, len(domain.ActiveStatuses))
	for i, s := range domain.ActiveStatuses {
		activeStatuses[i] = string(s)
	}

	selectBuilder := psqlbuilder.Select(appointmentColumns...).
		From("appointments a").
		Join("time_slots ts ON ts.id = a.time_slot_id").
		Join("provider_services ps ON ps.id = a.provider_service_id").
		Where(squirrel.Eq{"ps.provider_id": providerID}).
		Where(squirrel.Eq{"a.date": date}).
		Where(squirrel.Eq{"a.status": activeStatuses}).
		Where(squirrel.Lt{"ts.start_time": end}).
		Where(squirrel.Gt{"ts.end_time": start})

	if excludeSlotID != nil {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"ts.id": *excludeSlotID})
	}

	// Внутри транзакции создания слота блокируем найденные строки
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE OF a")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindActiveOverlapping - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FindActiveOverlapping - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

// FindActiveBySlot ищет активные записи, ссылающиеся на конкретный слот
// Используется при создании записи: на слот может претендовать не более
// одной активной записи
func (r *Repository) FindActiveBySlot(ctx context.Context, slotID int64) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	activeStatuses := make([]string, len(domain.ActiveStatuses))
	for i, s := range domain.ActiveStatuses {
		activeStatuses[i] = string(s)
	}

	selectBuilder := psqlbuilder.Select(appointmentColumns...).
		From("appointments a").
		Join("provider_services ps ON ps.id = a.provider_service_id").
		Where(squirrel.Eq{"a.time_slot_id": slotID}).
		Where(squirrel.Eq{"a.status": activeStatuses})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE OF a")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindActiveBySlot - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FindActiveBySlot - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

// ListByProvider получает записи провайдера с опциональной фильтрацией
// по дате и статусу
func (r *Repository) ListByProvider(ctx context.Context, filter domain.AppointmentFilter) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(appointmentColumns...).
		From("appointments a").
		Join("provider_services ps ON ps.id = a.provider_service_id").
		Where(squirrel.Eq{"ps.provider_id": filter.ProviderID})

	if filter.Date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"a.date": *filter.Date})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"a.status": *filter.Status})
	}

	query, args, err := selectBuilder.
		OrderBy("a.date ASC, a.booked_on ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByProvider - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByProvider - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

// ListByClient получает историю записей клиента
func (r *Repository) ListByClient(ctx context.Context, clientID int64) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(appointmentColumns...).
		From("appointments a").
		Join("provider_services ps ON ps.id = a.provider_service_id").
		Where(squirrel.Eq{"a.client_id": clientID}).
		OrderBy("a.date DESC, a.booked_on DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByClient - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByClient - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

// UpdateStatus обновляет статус записи
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("status", status).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

func (r *Repository) scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)

	for rows.Next() {
		var appt domain.Appointment
		var bookedOn sql.NullTime

		err := rows.Scan(
			&appt.ID,
			&appt.ClientID,
			&appt.ProviderServiceID,
			&appt.TimeSlotID,
			&appt.LocationID,
			&appt.Date,
			&appt.Status,
			&appt.ServiceName,
			&appt.ServicePrice,
			&bookedOn,
			&appt.ProviderID,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanAppointments - scan row: %v", ErrScanRow, err)
		}

		appt.BookedOn = bookedOn.Time

		appointments = append(appointments, &appt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAppointments - rows error: %v", ErrScanRow, err)
	}

	return appointments, nil
}
