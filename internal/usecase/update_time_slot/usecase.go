package update_time_slot

import (
	"context"
	"errors"
	"fmt"

	"github.com/Pratik1Bhuwad/BookSmart-Service/internal/domain"
	timeslotRepo "github.com/Pratik1Bhuwad/BookSmart-Service/internal/infra/storage/timeslot"
	"github.com/Pratik1Bhuwad/BookSmart-Service/internal/service/availability"
	"github.com/Pratik1Bhuwad/BookSmart-Service/pkg/ptr"
)

// UseCase use case для редактирования слота провайдером
type UseCase struct {
	availability AvailabilityService
	timeSlotRepo TimeSlotRepository
	txManager    TransactionManager
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	availabilityService AvailabilityService,
	timeSlotRepo TimeSlotRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		availability: availabilityService,
		timeSlotRepo: timeSlotRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// Execute выполняет use case редактирования слота
// Слот исключается из поиска конфликтов через ExcludeSlotID:
// сохранение без изменения времени не должно конфликтовать само с собой
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateTimeSlot: slot=%d, provider=%d, date=%s, %s-%s",
		req.SlotID, req.ProviderID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)

	var result *domain.TimeSlot

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 1. Получаем слот с блокировкой и проверяем владельца
		slot, err := uc.timeSlotRepo.GetByID(txCtx, req.SlotID)
		if err != nil {
			if errors.Is(err, timeslotRepo.ErrSlotNotFound) {
				uc.logger.Warn("UpdateTimeSlot: slot=%d not found", req.SlotID)
				return ErrSlotNotFound
			}
			uc.logger.Error("UpdateTimeSlot: failed to get slot=%d: %v", req.SlotID, err)
			return fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
		}

		if slot.ProviderID != req.ProviderID {
			uc.logger.Warn("UpdateTimeSlot: slot=%d belongs to provider=%d, not %d",
				req.SlotID, slot.ProviderID, req.ProviderID)
			return ErrAccessDenied
		}

		// 2. Проверяем новый диапазон движком доступности
		slotReq := &availability.SlotRequest{
			ProviderID:    req.ProviderID,
			Date:          req.Date,
			StartTime:     req.StartTime,
			EndTime:       req.EndTime,
			ExcludeSlotID: ptr.Ptr(req.SlotID),
		}

		if err := uc.availability.ValidateTimeSlot(txCtx, slotReq); err != nil {
			uc.logger.Warn("UpdateTimeSlot: validation failed: %v", err)
			return err
		}

		// 3. Обновляем слот
		slot.Date = req.Date
		slot.StartTime = req.StartTime
		slot.EndTime = req.EndTime

		if err := uc.timeSlotRepo.Update(txCtx, slot); err != nil {
			if errors.Is(err, timeslotRepo.ErrDuplicateSlot) {
				uc.logger.Warn("UpdateTimeSlot: duplicate slot for provider=%d", req.ProviderID)
				return ErrDuplicateSlot
			}
			uc.logger.Error("UpdateTimeSlot: failed to update slot=%d: %v", req.SlotID, err)
			return fmt.Errorf("%w: failed to update slot: %v", ErrInternal, err)
		}

		// 4. Перечитываем слот, чтобы вернуть актуальный updated_at
		updated, err := uc.timeSlotRepo.GetByID(txCtx, req.SlotID)
		if err != nil {
			uc.logger.Error("UpdateTimeSlot: failed to reload slot=%d: %v", req.SlotID, err)
			return fmt.Errorf("%w: failed to reload slot: %v", ErrInternal, err)
		}

		result = updated
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdateTimeSlot: slot=%d updated", result.ID)

	return &Response{
		ID:        result.ID,
		Date:      result.Date,
		StartTime: result.StartTime,
		EndTime:   result.EndTime,
		IsBooked:  result.IsBooked,
		UpdatedAt: result.UpdatedAt,
	}, nil
}
