package create_blocked_slot

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pratik1Bhuwad/BookSmart-Service/internal/domain"
	blockedSlotRepo "github.com/Pratik1Bhuwad/BookSmart-Service/internal/infra/storage/blockedslot"
	"github.com/Pratik1Bhuwad/BookSmart-Service/internal/service/availability"
	"github.com/Pratik1Bhuwad/BookSmart-Service/pkg/types"
)

// --- тестовые моки ---

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type mockAvailability struct {
	err error
}

func (m *mockAvailability) ValidateBlockedSlot(ctx context.Context, req *availability.SlotRequest) error {
	return m.err
}

type mockBlockedSlotRepo struct {
	createErr error
	created   *domain.BlockedSlot
}

func (m *mockBlockedSlotRepo) Create(ctx context.Context, slot *domain.BlockedSlot) (*domain.BlockedSlot, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	created := *slot
	created.ID = 3
	m.created = &created
	return &created, nil
}

type passthroughTxManager struct{}

func (passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func setupUseCase() (*UseCase, *mockAvailability, *mockBlockedSlotRepo) {
	avail := &mockAvailability{}
	repo := &mockBlockedSlotRepo{}
	uc := NewUseCase(avail, repo, passthroughTxManager{}, nopLogger{})
	return uc, avail, repo
}

func validRequest() *Request {
	return &Request{
		ProviderID: 42,
		Date:       time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC),
		StartTime:  types.TimeString("12:00"),
		EndTime:    types.TimeString("13:00"),
	}
}

// --- тесты ---

func TestExecute_Success(t *testing.T) {
	uc, _, repo := setupUseCase()

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(3), resp.ID)
	require.NotNil(t, repo.created)
	require.NotNil(t, repo.created.ProviderID)
	assert.Equal(t, int64(42), *repo.created.ProviderID)
}

func TestExecute_DuplicateSlot(t *testing.T) {
	uc, _, repo := setupUseCase()
	repo.createErr = blockedSlotRepo.ErrDuplicateSlot

	// дубликат из хранилища не теряется в ErrInternal
	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrDuplicateSlot)
	assert.NotErrorIs(t, err, ErrInternal)
}

func TestExecute_AppointmentOverlapPassedThrough(t *testing.T) {
	uc, avail, repo := setupUseCase()
	avail.err = availability.ErrAppointmentOverlap

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, availability.ErrAppointmentOverlap)
	assert.Nil(t, repo.created)
}
