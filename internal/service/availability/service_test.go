package availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pratik1Bhuwad/BookSmart-Service/internal/domain"
	workingHoursRepo "github.com/Pratik1Bhuwad/BookSmart-Service/internal/infra/storage/workinghours"
	"github.com/Pratik1Bhuwad/BookSmart-Service/pkg/types"
)

// --- тестовые моки ---

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// overlaps строгое пересечение открытых интервалов: касание границ -
// не конфликт
func overlaps(aStart, aEnd, bStart, bEnd types.TimeString) bool {
	return aStart.IsBefore(bEnd) && bStart.IsBefore(aEnd)
}

// bookedSlot активная запись вместе с интервалом её слота: в хранилище
// интервал лежит в time_slots, а не в самой записи
type bookedSlot struct {
	appointment *domain.Appointment
	start       types.TimeString
	end         types.TimeString
}

type mockAppointmentRepo struct {
	booked []bookedSlot
	err    error
}

func (m *mockAppointmentRepo) FindActiveOverlapping(ctx context.Context, providerID int64, date time.Time, start, end types.TimeString, excludeSlotID *int64) ([]*domain.Appointment, error) {
	if m.err != nil {
		return nil, m.err
	}
	var found []*domain.Appointment
	for _, b := range m.booked {
		a := b.appointment
		if a.ProviderID != providerID || !a.Date.Equal(date) {
			continue
		}
		if excludeSlotID != nil && a.TimeSlotID == *excludeSlotID {
			continue
		}
		if overlaps(b.start, b.end, start, end) {
			found = append(found, a)
		}
	}
	return found, nil
}

type mockBlockedSlotRepo struct {
	blocked []*domain.BlockedSlot
	err     error
}

func (m *mockBlockedSlotRepo) FindOverlapping(ctx context.Context, providerID int64, date time.Time, start, end types.TimeString, excludeID *int64) ([]*domain.BlockedSlot, error) {
	if m.err != nil {
		return nil, m.err
	}
	var found []*domain.BlockedSlot
	for _, b := range m.blocked {
		// общие блокировки (ProviderID == nil) действуют на всех провайдеров
		if b.ProviderID != nil && *b.ProviderID != providerID {
			continue
		}
		if !b.Date.Equal(date) {
			continue
		}
		if excludeID != nil && b.ID == *excludeID {
			continue
		}
		if overlaps(b.StartTime, b.EndTime, start, end) {
			found = append(found, b)
		}
	}
	return found, nil
}

type mockWorkingHoursRepo struct {
	byDay map[int]*domain.WorkingHours
	err   error
}

func (m *mockWorkingHoursRepo) GetByProviderAndDay(ctx context.Context, providerID int64, dayOfWeek int) (*domain.WorkingHours, error) {
	if m.err != nil {
		return nil, m.err
	}
	wh, ok := m.byDay[dayOfWeek]
	if !ok {
		return nil, workingHoursRepo.ErrWorkingHoursNotFound
	}
	return wh, nil
}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

// --- тестовая сборка ---

// 2026-09-07 - понедельник (day_of_week = 0)
var testDate = time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

type testEnv struct {
	svc          *Service
	appointments *mockAppointmentRepo
	blocked      *mockBlockedSlotRepo
	hours        *mockWorkingHoursRepo
}

func setupService(t *testing.T) *testEnv {
	t.Helper()

	appointments := &mockAppointmentRepo{}
	blocked := &mockBlockedSlotRepo{}
	hours := &mockWorkingHoursRepo{
		byDay: map[int]*domain.WorkingHours{
			0: {ID: 1, ProviderID: 42, DayOfWeek: 0, StartTime: "09:00", EndTime: "18:00"},
		},
	}

	svc := NewService(appointments, blocked, hours, nopLogger{}).
		WithTimeProvider(fixedTime{t: time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)})

	return &testEnv{svc: svc, appointments: appointments, blocked: blocked, hours: hours}
}

func slotRequest(start, end types.TimeString) *SlotRequest {
	return &SlotRequest{
		ProviderID: 42,
		Date:       testDate,
		StartTime:  start,
		EndTime:    end,
	}
}

func activeBooking(slotID int64, start, end types.TimeString) bookedSlot {
	return bookedSlot{
		appointment: &domain.Appointment{
			ID:         slotID,
			ProviderID: 42,
			TimeSlotID: slotID,
			Date:       testDate,
			Status:     domain.StatusPending,
		},
		start: start,
		end:   end,
	}
}

// --- ValidateTimeSlot ---

func TestValidateTimeSlot_Success(t *testing.T) {
	env := setupService(t)

	err := env.svc.ValidateTimeSlot(context.Background(), slotRequest("10:00", "11:00"))
	require.NoError(t, err)
}

func TestValidateTimeSlot_AppointmentOverlap(t *testing.T) {
	env := setupService(t)
	env.appointments.booked = []bookedSlot{
		activeBooking(7, "10:00", "11:00"),
	}

	err := env.svc.ValidateTimeSlot(context.Background(), slotRequest("10:30", "11:30"))
	assert.ErrorIs(t, err, ErrAppointmentOverlap)
}

func TestValidateTimeSlot_TouchingBoundariesAllowed(t *testing.T) {
	env := setupService(t)
	env.appointments.booked = []bookedSlot{
		activeBooking(7, "10:00", "11:00"),
	}
	env.blocked.blocked = []*domain.BlockedSlot{
		{ID: 1, Date: testDate, StartTime: "12:00", EndTime: "13:00"},
	}

	// конец кандидата совпадает с началом записи, начало - с концом блокировки
	err := env.svc.ValidateTimeSlot(context.Background(), slotRequest("09:00", "10:00"))
	require.NoError(t, err)

	err = env.svc.ValidateTimeSlot(context.Background(), slotRequest("13:00", "14:00"))
	require.NoError(t, err)
}

func TestValidateTimeSlot_ContainedIntervalOverlaps(t *testing.T) {
	env := setupService(t)
	env.appointments.booked = []bookedSlot{
		activeBooking(7, "10:00", "12:00"),
	}

	// кандидат целиком внутри занятого интервала
	err := env.svc.ValidateTimeSlot(context.Background(), slotRequest("10:30", "11:00"))
	assert.ErrorIs(t, err, ErrAppointmentOverlap)
}

func TestValidateTimeSlot_ExcludeSlotID(t *testing.T) {
	env := setupService(t)
	env.appointments.booked = []bookedSlot{
		activeBooking(7, "10:00", "11:00"),
	}

	// редактирование слота 7 против самого себя - не конфликт
	req := slotRequest("10:00", "11:30")
	slotID := int64(7)
	req.ExcludeSlotID = &slotID

	err := env.svc.ValidateTimeSlot(context.Background(), req)
	require.NoError(t, err)

	// но против чужой записи - конфликт, несмотря на исключение
	otherID := int64(99)
	req.ExcludeSlotID = &otherID
	err = env.svc.ValidateTimeSlot(context.Background(), req)
	assert.ErrorIs(t, err, ErrAppointmentOverlap)
}

func TestValidateTimeSlot_BlockedOverlap(t *testing.T) {
	env := setupService(t)
	env.blocked.blocked = []*domain.BlockedSlot{
		{ID: 1, Date: testDate, StartTime: "14:00", EndTime: "15:00"},
	}

	err := env.svc.ValidateTimeSlot(context.Background(), slotRequest("14:30", "15:30"))
	assert.ErrorIs(t, err, ErrBlockedOverlap)
}

func TestValidateTimeSlot_PastDate(t *testing.T) {
	env := setupService(t)

	req := slotRequest("10:00", "11:00")
	req.Date = time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	err := env.svc.ValidateTimeSlot(context.Background(), req)
	assert.ErrorIs(t, err, ErrPastDate)
}

func TestValidateTimeSlot_TodayIsNotPast(t *testing.T) {
	env := setupService(t)
	env.hours.byDay[1] = &domain.WorkingHours{
		ID: 2, ProviderID: 42, DayOfWeek: 1, StartTime: "09:00", EndTime: "18:00",
	}

	// сегодняшняя дата допустима, даже если время уже прошло
	req := slotRequest("09:00", "10:00")
	req.Date = time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	err := env.svc.ValidateTimeSlot(context.Background(), req)
	require.NoError(t, err)
}

func TestValidateTimeSlot_NoWorkingHours(t *testing.T) {
	env := setupService(t)

	// 2026-09-08 - вторник, рабочие часы заданы только на понедельник
	req := slotRequest("10:00", "11:00")
	req.Date = testDate.AddDate(0, 0, 1)

	err := env.svc.ValidateTimeSlot(context.Background(), req)
	assert.ErrorIs(t, err, ErrNoWorkingHours)
}

func TestValidateTimeSlot_WorkingHoursBoundaries(t *testing.T) {
	env := setupService(t)

	// интервал, совпадающий с окном целиком, допустим
	err := env.svc.ValidateTimeSlot(context.Background(), slotRequest("09:00", "18:00"))
	require.NoError(t, err)

	// выход за границу на одну минуту - отказ
	err = env.svc.ValidateTimeSlot(context.Background(), slotRequest("08:59", "10:00"))
	assert.ErrorIs(t, err, ErrTimeOutOfRange)

	err = env.svc.ValidateTimeSlot(context.Background(), slotRequest("17:00", "18:01"))
	assert.ErrorIs(t, err, ErrTimeOutOfRange)
}

func TestValidateTimeSlot_CheckOrder(t *testing.T) {
	env := setupService(t)

	// кандидат нарушает все проверки сразу: прошедшая дата, нет рабочих
	// часов, пересечение с записью и блокировкой. Первой должна быть
	// показана причина пересечения с записью
	past := time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC) // вторник
	env.appointments.booked = []bookedSlot{
		{
			appointment: &domain.Appointment{ID: 7, ProviderID: 42, TimeSlotID: 7, Date: past, Status: domain.StatusApproved},
			start:       "10:00",
			end:         "11:00",
		},
	}
	env.blocked.blocked = []*domain.BlockedSlot{
		{ID: 1, Date: past, StartTime: "10:00", EndTime: "11:00"},
	}

	req := slotRequest("10:00", "11:00")
	req.Date = past

	err := env.svc.ValidateTimeSlot(context.Background(), req)
	assert.ErrorIs(t, err, ErrAppointmentOverlap)

	// без записей следующей причиной становится блокировка
	env.appointments.booked = nil
	err = env.svc.ValidateTimeSlot(context.Background(), req)
	assert.ErrorIs(t, err, ErrBlockedOverlap)

	// без блокировок - прошедшая дата
	env.blocked.blocked = nil
	err = env.svc.ValidateTimeSlot(context.Background(), req)
	assert.ErrorIs(t, err, ErrPastDate)
}

func TestValidateTimeSlot_GeneralBlockAppliesToAll(t *testing.T) {
	env := setupService(t)
	env.blocked.blocked = []*domain.BlockedSlot{
		{ID: 1, ProviderID: nil, Date: testDate, StartTime: "10:00", EndTime: "11:00"},
	}

	err := env.svc.ValidateTimeSlot(context.Background(), slotRequest("10:00", "11:00"))
	assert.ErrorIs(t, err, ErrBlockedOverlap)
}

func TestValidateTimeSlot_InvalidInput(t *testing.T) {
	env := setupService(t)

	tests := []struct {
		name string
		req  *SlotRequest
	}{
		{
			name: "zero provider",
			req:  &SlotRequest{ProviderID: 0, Date: testDate, StartTime: "10:00", EndTime: "11:00"},
		},
		{
			name: "zero date",
			req:  &SlotRequest{ProviderID: 42, StartTime: "10:00", EndTime: "11:00"},
		},
		{
			name: "malformed start time",
			req:  slotRequest("25:00", "11:00"),
		},
		{
			name: "end equals start",
			req:  slotRequest("10:00", "10:00"),
		},
		{
			name: "end before start",
			req:  slotRequest("11:00", "10:00"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := env.svc.ValidateTimeSlot(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestValidateTimeSlot_RepoErrorWrapped(t *testing.T) {
	env := setupService(t)
	env.appointments.err = errors.New("connection refused")

	err := env.svc.ValidateTimeSlot(context.Background(), slotRequest("10:00", "11:00"))
	assert.ErrorIs(t, err, ErrInternal)
}

// --- ValidateBlockedSlot ---

func TestValidateBlockedSlot_Success(t *testing.T) {
	env := setupService(t)

	err := env.svc.ValidateBlockedSlot(context.Background(), slotRequest("10:00", "11:00"))
	require.NoError(t, err)
}

func TestValidateBlockedSlot_AppointmentOverlap(t *testing.T) {
	env := setupService(t)
	env.appointments.booked = []bookedSlot{
		activeBooking(7, "10:00", "11:00"),
	}

	err := env.svc.ValidateBlockedSlot(context.Background(), slotRequest("10:30", "11:30"))
	assert.ErrorIs(t, err, ErrAppointmentOverlap)
}

func TestValidateBlockedSlot_SkipsScheduleChecks(t *testing.T) {
	env := setupService(t)
	env.blocked.blocked = []*domain.BlockedSlot{
		{ID: 1, Date: testDate, StartTime: "10:00", EndTime: "11:00"},
	}

	// блокировка может пересекаться с другой блокировкой, быть в прошлом
	// и вне рабочих часов - проверяются только активные записи
	req := slotRequest("10:00", "11:00")
	req.Date = time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	req.StartTime = "06:00"
	req.EndTime = "07:00"

	err := env.svc.ValidateBlockedSlot(context.Background(), req)
	require.NoError(t, err)
}
