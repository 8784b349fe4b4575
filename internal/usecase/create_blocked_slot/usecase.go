package create_blocked_slot

import (
	"context"
	"errors"
	"fmt"

	"github.com/Pratik1Bhuwad/BookSmart-Service/internal/domain"
	blockedSlotRepo "github.com/Pratik1Bhuwad/BookSmart-Service/internal/infra/storage/blockedslot"
	"github.com/Pratik1Bhuwad/BookSmart-Service/internal/service/availability"
	"github.com/Pratik1Bhuwad/BookSmart-Service/pkg/ptr"
)

// UseCase use case для создания блокировки времени провайдером
type UseCase struct {
	availability    AvailabilityService
	blockedSlotRepo BlockedSlotRepository
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	availabilityService AvailabilityService,
	blockedSlotRepo BlockedSlotRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		availability:    availabilityService,
		blockedSlotRepo: blockedSlotRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute выполняет use case создания блокировки
// Блокировка проверяется только против активных записей: пересечение
// с существующими слотами и другими блокировками допустимо
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBlockedSlot: provider=%d, date=%s, %s-%s",
		req.ProviderID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)

	var result *domain.BlockedSlot

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 1. Проверяем пересечение с активными записями
		slotReq := &availability.SlotRequest{
			ProviderID: req.ProviderID,
			Date:       req.Date,
			StartTime:  req.StartTime,
			EndTime:    req.EndTime,
		}

		if err := uc.availability.ValidateBlockedSlot(txCtx, slotReq); err != nil {
			uc.logger.Warn("CreateBlockedSlot: validation failed: %v", err)
			return err
		}

		// 2. Сохраняем блокировку
		slot := &domain.BlockedSlot{
			ProviderID: ptr.Ptr(req.ProviderID),
			Date:       req.Date,
			StartTime:  req.StartTime,
			EndTime:    req.EndTime,
			Reason:     req.Reason,
		}

		created, err := uc.blockedSlotRepo.Create(txCtx, slot)
		if err != nil {
			if errors.Is(err, blockedSlotRepo.ErrDuplicateSlot) {
				uc.logger.Warn("CreateBlockedSlot: duplicate blocked slot for provider=%d", req.ProviderID)
				return ErrDuplicateSlot
			}
			uc.logger.Error("CreateBlockedSlot: failed to create blocked slot: %v", err)
			return fmt.Errorf("%w: failed to create blocked slot: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBlockedSlot: created blocked slot id=%d for provider=%d", result.ID, req.ProviderID)

	return &Response{
		ID:        result.ID,
		Date:      result.Date,
		StartTime: result.StartTime,
		EndTime:   result.EndTime,
		Reason:    result.Reason,
	}, nil
}
