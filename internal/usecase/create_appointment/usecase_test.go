package create_appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pratik1Bhuwad/BookSmart-Service/internal/domain"
	providerServiceRepo "github.com/Pratik1Bhuwad/BookSmart-Service/internal/infra/storage/providerservice"
	timeslotRepo "github.com/Pratik1Bhuwad/BookSmart-Service/internal/infra/storage/timeslot"
	"github.com/Pratik1Bhuwad/BookSmart-Service/internal/integrations/mailer"
	"github.com/Pratik1Bhuwad/BookSmart-Service/pkg/types"
)

// --- тестовые моки ---

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type mockAppointmentRepo struct {
	active  []*domain.Appointment
	created *domain.Appointment
}

func (m *mockAppointmentRepo) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	created := *appt
	created.ID = 100
	created.BookedOn = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	m.created = &created
	return &created, nil
}

func (m *mockAppointmentRepo) FindActiveBySlot(ctx context.Context, slotID int64) ([]*domain.Appointment, error) {
	var found []*domain.Appointment
	for _, a := range m.active {
		if a.TimeSlotID == slotID {
			found = append(found, a)
		}
	}
	return found, nil
}

type mockTimeSlotRepo struct {
	slot *domain.TimeSlot
}

func (m *mockTimeSlotRepo) GetByID(ctx context.Context, id int64) (*domain.TimeSlot, error) {
	if m.slot == nil || m.slot.ID != id {
		return nil, timeslotRepo.ErrSlotNotFound
	}
	return m.slot, nil
}

type mockServiceRepo struct {
	service *domain.ProviderService
}

func (m *mockServiceRepo) GetByID(ctx context.Context, id int64) (*domain.ProviderService, error) {
	if m.service == nil || m.service.ID != id {
		return nil, providerServiceRepo.ErrServiceNotFound
	}
	return m.service, nil
}

type mockMailer struct {
	sent []*mailer.BookingConfirmation
	err  error
}

func (m *mockMailer) SendBookingConfirmation(ctx context.Context, msg *mailer.BookingConfirmation) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, msg)
	return nil
}

type passthroughTxManager struct{}

func (passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type testEnv struct {
	uc           *UseCase
	appointments *mockAppointmentRepo
	slots        *mockTimeSlotRepo
	services     *mockServiceRepo
	mail         *mockMailer
}

func setupUseCase() *testEnv {
	appointments := &mockAppointmentRepo{}
	slots := &mockTimeSlotRepo{
		slot: &domain.TimeSlot{
			ID:         7,
			ProviderID: 42,
			Date:       time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC),
			StartTime:  types.TimeString("10:00"),
			EndTime:    types.TimeString("11:00"),
		},
	}
	services := &mockServiceRepo{
		service: &domain.ProviderService{
			ID:           3,
			ProviderID:   42,
			Name:         "Стрижка",
			Price:        1500,
			ProviderName: "Barbershop",
		},
	}
	mail := &mockMailer{}
	uc := NewUseCase(appointments, slots, services, mail, passthroughTxManager{}, nopLogger{})
	return &testEnv{uc: uc, appointments: appointments, slots: slots, services: services, mail: mail}
}

func validRequest() *Request {
	return &Request{
		ClientID:    5,
		ClientEmail: "client@example.com",
		ServiceID:   3,
		TimeSlotID:  7,
	}
}

// --- тесты ---

func TestExecute_Success(t *testing.T) {
	env := setupUseCase()

	resp, err := env.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(100), resp.ID)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, types.TimeString("10:00"), resp.StartTime)
	assert.Equal(t, "Стрижка", resp.ServiceName)
	assert.Equal(t, 1500.0, resp.ServicePrice)

	// в запись денормализованы данные услуги и дата слота
	require.NotNil(t, env.appointments.created)
	assert.Equal(t, domain.StatusPending, env.appointments.created.Status)
	assert.Equal(t, env.slots.slot.Date, env.appointments.created.Date)
	assert.Equal(t, "Стрижка", env.appointments.created.ServiceName)

	// письмо-подтверждение ушло клиенту
	require.Len(t, env.mail.sent, 1)
	assert.Equal(t, "client@example.com", env.mail.sent[0].To)
	assert.Equal(t, int64(100), env.mail.sent[0].AppointmentID)
}

func TestExecute_SlotBooked(t *testing.T) {
	env := setupUseCase()
	env.slots.slot.IsBooked = true

	_, err := env.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.Nil(t, env.appointments.created)
}

func TestExecute_SlotHasActiveAppointment(t *testing.T) {
	env := setupUseCase()
	env.appointments.active = []*domain.Appointment{
		{ID: 55, TimeSlotID: 7, Status: domain.StatusPending},
	}

	_, err := env.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.Nil(t, env.appointments.created)
}

func TestExecute_SlotMismatch(t *testing.T) {
	env := setupUseCase()
	env.slots.slot.ProviderID = 99

	_, err := env.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotMismatch)
}

func TestExecute_ServiceNotFound(t *testing.T) {
	env := setupUseCase()

	req := validRequest()
	req.ServiceID = 404

	_, err := env.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_SlotNotFound(t *testing.T) {
	env := setupUseCase()

	req := validRequest()
	req.TimeSlotID = 404

	_, err := env.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestExecute_MailerFailure(t *testing.T) {
	env := setupUseCase()
	env.mail.err = errors.New("smtp: connection refused")

	// запись создана и остается в хранилище, но запрос завершается ошибкой
	_, err := env.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrNotificationFailed)
	assert.NotNil(t, env.appointments.created)
}

func TestExecute_InvalidInput(t *testing.T) {
	env := setupUseCase()

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"zero client", func(r *Request) { r.ClientID = 0 }},
		{"empty email", func(r *Request) { r.ClientEmail = "" }},
		{"email without at", func(r *Request) { r.ClientEmail = "not-an-email" }},
		{"zero service", func(r *Request) { r.ServiceID = 0 }},
		{"zero slot", func(r *Request) { r.TimeSlotID = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := env.uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
