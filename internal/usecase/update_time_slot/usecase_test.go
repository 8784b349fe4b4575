package update_time_slot

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pratik1Bhuwad/BookSmart-Service/internal/domain"
	timeslotRepo "github.com/Pratik1Bhuwad/BookSmart-Service/internal/infra/storage/timeslot"
	"github.com/Pratik1Bhuwad/BookSmart-Service/internal/service/availability"
	"github.com/Pratik1Bhuwad/BookSmart-Service/pkg/types"
)

// --- тестовые моки ---

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type mockAvailability struct {
	err     error
	lastReq *availability.SlotRequest
}

func (m *mockAvailability) ValidateTimeSlot(ctx context.Context, req *availability.SlotRequest) error {
	m.lastReq = req
	return m.err
}

type mockTimeSlotRepo struct {
	slot      *domain.TimeSlot
	updateErr error
}

func (m *mockTimeSlotRepo) GetByID(ctx context.Context, id int64) (*domain.TimeSlot, error) {
	if m.slot == nil || m.slot.ID != id {
		return nil, timeslotRepo.ErrSlotNotFound
	}
	copied := *m.slot
	return &copied, nil
}

func (m *mockTimeSlotRepo) Update(ctx context.Context, slot *domain.TimeSlot) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	updated := *slot
	updated.UpdatedAt = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	m.slot = &updated
	return nil
}

type passthroughTxManager struct{}

func (passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func setupUseCase() (*UseCase, *mockAvailability, *mockTimeSlotRepo) {
	avail := &mockAvailability{}
	slots := &mockTimeSlotRepo{
		slot: &domain.TimeSlot{
			ID:         7,
			ProviderID: 42,
			Date:       time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC),
			StartTime:  types.TimeString("10:00"),
			EndTime:    types.TimeString("11:00"),
		},
	}
	uc := NewUseCase(avail, slots, passthroughTxManager{}, nopLogger{})
	return uc, avail, slots
}

func validRequest() *Request {
	return &Request{
		SlotID:     7,
		ProviderID: 42,
		Date:       time.Date(2026, 9, 8, 0, 0, 0, 0, time.UTC),
		StartTime:  types.TimeString("14:00"),
		EndTime:    types.TimeString("15:00"),
	}
}

// --- тесты ---

func TestExecute_Success(t *testing.T) {
	uc, avail, slots := setupUseCase()

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, types.TimeString("14:00"), resp.StartTime)
	assert.Equal(t, types.TimeString("15:00"), resp.EndTime)
	assert.False(t, resp.UpdatedAt.IsZero())

	// редактируемый слот исключается из поиска конфликтов
	require.NotNil(t, avail.lastReq)
	require.NotNil(t, avail.lastReq.ExcludeSlotID)
	assert.Equal(t, int64(7), *avail.lastReq.ExcludeSlotID)

	assert.Equal(t, types.TimeString("14:00"), slots.slot.StartTime)
}

func TestExecute_ValidationErrorPassedThrough(t *testing.T) {
	uc, avail, slots := setupUseCase()
	avail.err = availability.ErrAppointmentOverlap

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, availability.ErrAppointmentOverlap)

	// слот не изменился
	assert.Equal(t, types.TimeString("10:00"), slots.slot.StartTime)
}

func TestExecute_AccessDenied(t *testing.T) {
	uc, _, _ := setupUseCase()

	req := validRequest()
	req.ProviderID = 99

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestExecute_NotFound(t *testing.T) {
	uc, _, _ := setupUseCase()

	req := validRequest()
	req.SlotID = 404

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestExecute_DuplicateSlot(t *testing.T) {
	uc, _, slots := setupUseCase()
	slots.updateErr = timeslotRepo.ErrDuplicateSlot

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrDuplicateSlot)
}
