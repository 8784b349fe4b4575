package approve_appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pratik1Bhuwad/BookSmart-Service/internal/domain"
	appointmentRepo "github.com/Pratik1Bhuwad/BookSmart-Service/internal/infra/storage/appointment"
)

// --- тестовые моки ---

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type mockAppointmentRepo struct {
	appointment   *domain.Appointment
	updatedStatus *domain.AppointmentStatus
}

func (m *mockAppointmentRepo) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	if m.appointment == nil || m.appointment.ID != id {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	return m.appointment, nil
}

func (m *mockAppointmentRepo) UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error {
	m.updatedStatus = &status
	return nil
}

type mockTimeSlotRepo struct {
	bookedSlotID *int64
	bookedValue  bool
}

func (m *mockTimeSlotRepo) SetBooked(ctx context.Context, id int64, booked bool) error {
	m.bookedSlotID = &id
	m.bookedValue = booked
	return nil
}

// passthroughTxManager выполняет функцию без реальной транзакции
type passthroughTxManager struct{}

func (passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func setupUseCase(status domain.AppointmentStatus) (*UseCase, *mockAppointmentRepo, *mockTimeSlotRepo) {
	appointments := &mockAppointmentRepo{
		appointment: &domain.Appointment{
			ID:         10,
			ClientID:   5,
			ProviderID: 42,
			TimeSlotID: 7,
			Status:     status,
		},
	}
	slots := &mockTimeSlotRepo{}
	uc := NewUseCase(appointments, slots, passthroughTxManager{}, nopLogger{})
	return uc, appointments, slots
}

// --- тесты ---

func TestExecute_Success(t *testing.T) {
	uc, appointments, slots := setupUseCase(domain.StatusPending)

	err := uc.Execute(context.Background(), 10, 42)
	require.NoError(t, err)

	require.NotNil(t, appointments.updatedStatus)
	assert.Equal(t, domain.StatusApproved, *appointments.updatedStatus)

	require.NotNil(t, slots.bookedSlotID)
	assert.Equal(t, int64(7), *slots.bookedSlotID)
	assert.True(t, slots.bookedValue)
}

func TestExecute_AlreadyApprovedIsNoop(t *testing.T) {
	uc, appointments, slots := setupUseCase(domain.StatusApproved)

	// повторное подтверждение - успех без записи в хранилище
	err := uc.Execute(context.Background(), 10, 42)
	require.NoError(t, err)

	assert.Nil(t, appointments.updatedStatus)
	assert.Nil(t, slots.bookedSlotID)
}

func TestExecute_CannotApprove(t *testing.T) {
	for _, status := range []domain.AppointmentStatus{
		domain.StatusRejected,
		domain.StatusPaid,
		domain.StatusCompleted,
		domain.StatusFailed,
	} {
		t.Run(string(status), func(t *testing.T) {
			uc, appointments, _ := setupUseCase(status)

			err := uc.Execute(context.Background(), 10, 42)
			assert.ErrorIs(t, err, ErrCannotApprove)
			assert.Nil(t, appointments.updatedStatus)
		})
	}
}

func TestExecute_AccessDenied(t *testing.T) {
	uc, appointments, _ := setupUseCase(domain.StatusPending)

	err := uc.Execute(context.Background(), 10, 99)
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Nil(t, appointments.updatedStatus)
}

func TestExecute_NotFound(t *testing.T) {
	uc, _, _ := setupUseCase(domain.StatusPending)

	err := uc.Execute(context.Background(), 404, 42)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}
