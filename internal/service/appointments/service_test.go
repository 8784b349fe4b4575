package appointments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pratik1Bhuwad/BookSmart-Service/internal/domain"
	appointmentRepo "github.com/Pratik1Bhuwad/BookSmart-Service/internal/infra/storage/appointment"
	"github.com/Pratik1Bhuwad/BookSmart-Service/internal/service/appointments/models"
)

// --- тестовые моки ---

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// trackingTxManager отмечает, какие вызовы репозитория шли внутри транзакции
type trackingTxManager struct {
	inTx  bool
	calls int
}

func (m *trackingTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	m.inTx = true
	defer func() { m.inTx = false }()
	return fn(ctx)
}

type mockAppointmentRepo struct {
	appointments map[int64]*domain.Appointment
	lastFilter   *domain.AppointmentFilter

	tx         *trackingTxManager
	updateInTx bool
}

func newMockAppointmentRepo(tx *trackingTxManager) *mockAppointmentRepo {
	return &mockAppointmentRepo{appointments: make(map[int64]*domain.Appointment), tx: tx}
}

func (m *mockAppointmentRepo) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	appt, ok := m.appointments[id]
	if !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	return appt, nil
}

func (m *mockAppointmentRepo) ListByProvider(ctx context.Context, filter domain.AppointmentFilter) ([]*domain.Appointment, error) {
	m.lastFilter = &filter
	var result []*domain.Appointment
	for _, a := range m.appointments {
		if a.ProviderID != filter.ProviderID {
			continue
		}
		if filter.Status != nil && a.Status != *filter.Status {
			continue
		}
		if filter.Date != nil && !a.Date.Equal(*filter.Date) {
			continue
		}
		result = append(result, a)
	}
	return result, nil
}

func (m *mockAppointmentRepo) ListByClient(ctx context.Context, clientID int64) ([]*domain.Appointment, error) {
	var result []*domain.Appointment
	for _, a := range m.appointments {
		if a.ClientID == clientID {
			result = append(result, a)
		}
	}
	return result, nil
}

func (m *mockAppointmentRepo) UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error {
	appt, ok := m.appointments[id]
	if !ok {
		return appointmentRepo.ErrAppointmentNotFound
	}
	m.updateInTx = m.tx.inTx
	appt.Status = status
	return nil
}

func setupService() (*Service, *mockAppointmentRepo) {
	tx := &trackingTxManager{}
	repo := newMockAppointmentRepo(tx)
	return NewService(repo, tx, nopLogger{}), repo
}

func testAppointment(id int64, status domain.AppointmentStatus) *domain.Appointment {
	return &domain.Appointment{
		ID:         id,
		ClientID:   5,
		ProviderID: 42,
		TimeSlotID: 7,
		Date:       time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC),
		Status:     status,
	}
}

// --- GetByID ---

func TestGetByID_AccessRules(t *testing.T) {
	svc, repo := setupService()
	repo.appointments[10] = testAppointment(10, domain.StatusPending)

	// доступ есть у клиента и провайдера
	_, err := svc.GetByID(context.Background(), 10, 5)
	require.NoError(t, err)

	_, err = svc.GetByID(context.Background(), 10, 42)
	require.NoError(t, err)

	// у постороннего пользователя доступа нет
	_, err = svc.GetByID(context.Background(), 10, 99)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetByID_NotFound(t *testing.T) {
	svc, _ := setupService()

	_, err := svc.GetByID(context.Background(), 404, 5)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

// --- ListProviderAppointments ---

func TestListProviderAppointments_Filters(t *testing.T) {
	svc, repo := setupService()
	repo.appointments[10] = testAppointment(10, domain.StatusPending)
	repo.appointments[11] = testAppointment(11, domain.StatusApproved)

	status := "approved"
	result, err := svc.ListProviderAppointments(context.Background(), &models.ProviderAppointmentsFilter{
		ProviderID: 42,
		Status:     &status,
	})
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, int64(11), result[0].ID)
}

func TestListProviderAppointments_InvalidFilters(t *testing.T) {
	svc, _ := setupService()

	badStatus := "confirmed"
	_, err := svc.ListProviderAppointments(context.Background(), &models.ProviderAppointmentsFilter{
		ProviderID: 42,
		Status:     &badStatus,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	badDate := "07.09.2026"
	_, err = svc.ListProviderAppointments(context.Background(), &models.ProviderAppointmentsFilter{
		ProviderID: 42,
		Date:       &badDate,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

// --- Reject ---

func TestReject_Success(t *testing.T) {
	svc, repo := setupService()
	repo.appointments[10] = testAppointment(10, domain.StatusPending)

	err := svc.Reject(context.Background(), 10, 42)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusRejected, repo.appointments[10].Status)
}

func TestReject_OnlyPending(t *testing.T) {
	for _, status := range []domain.AppointmentStatus{
		domain.StatusApproved,
		domain.StatusRejected,
		domain.StatusPaid,
		domain.StatusCompleted,
	} {
		t.Run(string(status), func(t *testing.T) {
			svc, repo := setupService()
			repo.appointments[10] = testAppointment(10, status)

			err := svc.Reject(context.Background(), 10, 42)
			assert.ErrorIs(t, err, ErrCannotReject)
			assert.Equal(t, status, repo.appointments[10].Status)
		})
	}
}

func TestReject_StatusChangesInsideTransaction(t *testing.T) {
	svc, repo := setupService()
	repo.appointments[10] = testAppointment(10, domain.StatusPending)

	// проверка статуса и отклонение идут в одной транзакции:
	// параллельное подтверждение не может вклиниться между ними
	err := svc.Reject(context.Background(), 10, 42)
	require.NoError(t, err)
	assert.True(t, repo.updateInTx)
	assert.Equal(t, 1, repo.tx.calls)
}

func TestReject_AccessDenied(t *testing.T) {
	svc, repo := setupService()
	repo.appointments[10] = testAppointment(10, domain.StatusPending)

	err := svc.Reject(context.Background(), 10, 99)
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Equal(t, domain.StatusPending, repo.appointments[10].Status)
}

// --- ApplyPaymentStatus ---

func TestApplyPaymentStatus(t *testing.T) {
	svc, repo := setupService()
	repo.appointments[10] = testAppointment(10, domain.StatusApproved)

	err := svc.ApplyPaymentStatus(context.Background(), 10, true)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPaid, repo.appointments[10].Status)

	err = svc.ApplyPaymentStatus(context.Background(), 10, false)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusFailed, repo.appointments[10].Status)
	assert.True(t, repo.updateInTx)
}

func TestApplyPaymentStatus_UnknownAppointmentIgnored(t *testing.T) {
	svc, _ := setupService()

	// вебхук с неизвестным id не считается ошибкой
	err := svc.ApplyPaymentStatus(context.Background(), 404, true)
	require.NoError(t, err)
}
