package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pratik1Bhuwad/BookSmart-Service/internal/domain"
	blockedSlotRepo "github.com/Pratik1Bhuwad/BookSmart-Service/internal/infra/storage/blockedslot"
	timeslotRepo "github.com/Pratik1Bhuwad/BookSmart-Service/internal/infra/storage/timeslot"
	workingHoursRepo "github.com/Pratik1Bhuwad/BookSmart-Service/internal/infra/storage/workinghours"
	"github.com/Pratik1Bhuwad/BookSmart-Service/internal/service/schedule/models"
	"github.com/Pratik1Bhuwad/BookSmart-Service/pkg/types"
)

// --- тестовые моки ---

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type mockWorkingHoursRepo struct {
	hours  map[int]*domain.WorkingHours // по дню недели
	nextID int64
}

func newMockWorkingHoursRepo() *mockWorkingHoursRepo {
	return &mockWorkingHoursRepo{hours: make(map[int]*domain.WorkingHours), nextID: 1}
}

func (m *mockWorkingHoursRepo) Create(ctx context.Context, wh *domain.WorkingHours) (*domain.WorkingHours, error) {
	if _, exists := m.hours[wh.DayOfWeek]; exists {
		return nil, workingHoursRepo.ErrDuplicateWorkingHours
	}
	created := *wh
	created.ID = m.nextID
	m.nextID++
	m.hours[wh.DayOfWeek] = &created
	return &created, nil
}

func (m *mockWorkingHoursRepo) GetByID(ctx context.Context, id int64) (*domain.WorkingHours, error) {
	for _, wh := range m.hours {
		if wh.ID == id {
			return wh, nil
		}
	}
	return nil, workingHoursRepo.ErrWorkingHoursNotFound
}

func (m *mockWorkingHoursRepo) Delete(ctx context.Context, id int64) error {
	for day, wh := range m.hours {
		if wh.ID == id {
			delete(m.hours, day)
			return nil
		}
	}
	return workingHoursRepo.ErrWorkingHoursNotFound
}

func (m *mockWorkingHoursRepo) ListByProvider(ctx context.Context, providerID int64) ([]*domain.WorkingHours, error) {
	var result []*domain.WorkingHours
	for day := domain.MinDayOfWeek; day <= domain.MaxDayOfWeek; day++ {
		if wh, ok := m.hours[day]; ok && wh.ProviderID == providerID {
			result = append(result, wh)
		}
	}
	return result, nil
}

type mockTimeSlotRepo struct {
	slots map[int64]*domain.TimeSlot
}

func (m *mockTimeSlotRepo) GetByID(ctx context.Context, id int64) (*domain.TimeSlot, error) {
	slot, ok := m.slots[id]
	if !ok {
		return nil, timeslotRepo.ErrSlotNotFound
	}
	return slot, nil
}

func (m *mockTimeSlotRepo) ListByProvider(ctx context.Context, providerID int64) ([]*domain.TimeSlot, error) {
	var result []*domain.TimeSlot
	for _, slot := range m.slots {
		if slot.ProviderID == providerID {
			result = append(result, slot)
		}
	}
	return result, nil
}

func (m *mockTimeSlotRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := m.slots[id]; !ok {
		return timeslotRepo.ErrSlotNotFound
	}
	delete(m.slots, id)
	return nil
}

type mockBlockedSlotRepo struct {
	blocked map[int64]*domain.BlockedSlot
}

func (m *mockBlockedSlotRepo) GetByID(ctx context.Context, id int64) (*domain.BlockedSlot, error) {
	b, ok := m.blocked[id]
	if !ok {
		return nil, blockedSlotRepo.ErrBlockedSlotNotFound
	}
	return b, nil
}

func (m *mockBlockedSlotRepo) ListByProvider(ctx context.Context, providerID int64) ([]*domain.BlockedSlot, error) {
	var result []*domain.BlockedSlot
	for _, b := range m.blocked {
		if b.ProviderID == nil || *b.ProviderID == providerID {
			result = append(result, b)
		}
	}
	return result, nil
}

func (m *mockBlockedSlotRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := m.blocked[id]; !ok {
		return blockedSlotRepo.ErrBlockedSlotNotFound
	}
	delete(m.blocked, id)
	return nil
}

func setupService() (*Service, *mockWorkingHoursRepo, *mockTimeSlotRepo, *mockBlockedSlotRepo) {
	hours := newMockWorkingHoursRepo()
	slots := &mockTimeSlotRepo{slots: make(map[int64]*domain.TimeSlot)}
	blocked := &mockBlockedSlotRepo{blocked: make(map[int64]*domain.BlockedSlot)}
	svc := NewService(hours, slots, blocked, nopLogger{})
	return svc, hours, slots, blocked
}

// --- SetWorkingHours ---

func TestSetWorkingHours_Success(t *testing.T) {
	svc, _, _, _ := setupService()

	resp, err := svc.SetWorkingHours(context.Background(), &models.SetWorkingHoursRequest{
		ProviderID: 42,
		DayOfWeek:  0,
		StartTime:  "09:00",
		EndTime:    "18:00",
	})
	require.NoError(t, err)
	assert.Equal(t, 0, resp.DayOfWeek)
	assert.Equal(t, "09:00", resp.StartTime)
	assert.Equal(t, "18:00", resp.EndTime)
}

func TestSetWorkingHours_Duplicate(t *testing.T) {
	svc, _, _, _ := setupService()

	req := &models.SetWorkingHoursRequest{ProviderID: 42, DayOfWeek: 2, StartTime: "09:00", EndTime: "18:00"}
	_, err := svc.SetWorkingHours(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.SetWorkingHours(context.Background(), req)
	assert.ErrorIs(t, err, ErrDuplicateWorkingHours)
}

func TestSetWorkingHours_InvalidInput(t *testing.T) {
	svc, _, _, _ := setupService()

	tests := []struct {
		name string
		req  *models.SetWorkingHoursRequest
	}{
		{"day below range", &models.SetWorkingHoursRequest{ProviderID: 42, DayOfWeek: -1, StartTime: "09:00", EndTime: "18:00"}},
		{"day above range", &models.SetWorkingHoursRequest{ProviderID: 42, DayOfWeek: 7, StartTime: "09:00", EndTime: "18:00"}},
		{"malformed start", &models.SetWorkingHoursRequest{ProviderID: 42, DayOfWeek: 0, StartTime: "9am", EndTime: "18:00"}},
		{"end before start", &models.SetWorkingHoursRequest{ProviderID: 42, DayOfWeek: 0, StartTime: "18:00", EndTime: "09:00"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.SetWorkingHours(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

// --- DeleteWorkingHours ---

func TestDeleteWorkingHours_Success(t *testing.T) {
	svc, hours, _, _ := setupService()
	hours.hours[0] = &domain.WorkingHours{ID: 1, ProviderID: 42, DayOfWeek: 0, StartTime: "09:00", EndTime: "18:00"}

	err := svc.DeleteWorkingHours(context.Background(), 1, 42)
	require.NoError(t, err)
	assert.Empty(t, hours.hours)
}

func TestDeleteWorkingHours_AccessDenied(t *testing.T) {
	svc, hours, _, _ := setupService()
	hours.hours[0] = &domain.WorkingHours{ID: 1, ProviderID: 42, DayOfWeek: 0, StartTime: "09:00", EndTime: "18:00"}

	err := svc.DeleteWorkingHours(context.Background(), 1, 99)
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Contains(t, hours.hours, 0)
}

func TestDeleteWorkingHours_NotFound(t *testing.T) {
	svc, _, _, _ := setupService()

	err := svc.DeleteWorkingHours(context.Background(), 404, 42)
	assert.ErrorIs(t, err, ErrWorkingHoursNotFound)
}

// --- DeleteTimeSlot ---

func timeSlot(id, providerID int64, booked bool) *domain.TimeSlot {
	return &domain.TimeSlot{
		ID:         id,
		ProviderID: providerID,
		Date:       time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC),
		StartTime:  types.TimeString("10:00"),
		EndTime:    types.TimeString("11:00"),
		IsBooked:   booked,
	}
}

func TestDeleteTimeSlot_Success(t *testing.T) {
	svc, _, slots, _ := setupService()
	slots.slots[7] = timeSlot(7, 42, false)

	err := svc.DeleteTimeSlot(context.Background(), 7, 42)
	require.NoError(t, err)
	assert.Empty(t, slots.slots)
}

func TestDeleteTimeSlot_BookedRefused(t *testing.T) {
	svc, _, slots, _ := setupService()
	slots.slots[7] = timeSlot(7, 42, true)

	err := svc.DeleteTimeSlot(context.Background(), 7, 42)
	assert.ErrorIs(t, err, ErrSlotBooked)

	// слот остается на месте
	assert.Contains(t, slots.slots, int64(7))
}

func TestDeleteTimeSlot_AccessDenied(t *testing.T) {
	svc, _, slots, _ := setupService()
	slots.slots[7] = timeSlot(7, 42, false)

	err := svc.DeleteTimeSlot(context.Background(), 7, 99)
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Contains(t, slots.slots, int64(7))
}

func TestDeleteTimeSlot_NotFound(t *testing.T) {
	svc, _, _, _ := setupService()

	err := svc.DeleteTimeSlot(context.Background(), 404, 42)
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

// --- DeleteBlockedSlot ---

func TestDeleteBlockedSlot_OwnBlock(t *testing.T) {
	svc, _, _, blocked := setupService()
	providerID := int64(42)
	blocked.blocked[3] = &domain.BlockedSlot{ID: 3, ProviderID: &providerID}

	err := svc.DeleteBlockedSlot(context.Background(), 3, 42)
	require.NoError(t, err)
	assert.Empty(t, blocked.blocked)
}

func TestDeleteBlockedSlot_ForeignBlock(t *testing.T) {
	svc, _, _, blocked := setupService()
	providerID := int64(42)
	blocked.blocked[3] = &domain.BlockedSlot{ID: 3, ProviderID: &providerID}

	err := svc.DeleteBlockedSlot(context.Background(), 3, 99)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestDeleteBlockedSlot_GeneralBlock(t *testing.T) {
	svc, _, _, blocked := setupService()
	blocked.blocked[3] = &domain.BlockedSlot{ID: 3, ProviderID: nil}

	// общую блокировку может удалить любой провайдер
	err := svc.DeleteBlockedSlot(context.Background(), 3, 99)
	require.NoError(t, err)
}

func TestDeleteBlockedSlot_NotFound(t *testing.T) {
	svc, _, _, _ := setupService()

	err := svc.DeleteBlockedSlot(context.Background(), 404, 42)
	assert.ErrorIs(t, err, ErrBlockedSlotNotFound)
}
