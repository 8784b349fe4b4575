package create_time_slot

import (
	"context"
	"errors"
	"fmt"

	"github.com/Pratik1Bhuwad/BookSmart-Service/internal/domain"
	timeslotRepo "github.com/Pratik1Bhuwad/BookSmart-Service/internal/infra/storage/timeslot"
	"github.com/Pratik1Bhuwad/BookSmart-Service/internal/service/availability"
)

// UseCase use case для создания слота провайдером
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

// Execute выполняет use case создания слота
// Проверка конфликтов и вставка идут в сериализуемой транзакции,
// чтобы параллельное создание пересекающейся записи не прошло между ними
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateTimeSlot: provider=%d, date=%s, %s-%s",
		req.ProviderID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)

	var result *domain.TimeSlot

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 1. Проверяем кандидата движком доступности
		slotReq := &availability.SlotRequest{
			ProviderID: req.ProviderID,
			Date:       req.Date,
			StartTime:  req.StartTime,
			EndTime:    req.EndTime,
		}

		if err := uc.availability.ValidateTimeSlot(txCtx, slotReq); err != nil {
			uc.logger.Warn("CreateTimeSlot: validation failed: %v", err)
			return err
		}

		// 2. Сохраняем слот
		slot := &domain.TimeSlot{
			ProviderID: req.ProviderID,
			Date:       req.Date,
			StartTime:  req.StartTime,
			EndTime:    req.EndTime,
			IsBooked:   false,
		}

		created, err := uc.timeSlotRepo.Create(txCtx, slot)
		if err != nil {
			if errors.Is(err, timeslotRepo.ErrDuplicateSlot) {
				uc.logger.Warn("CreateTimeSlot: duplicate slot for provider=%d", req.ProviderID)
				return ErrDuplicateSlot
			}
			uc.logger.Error("CreateTimeSlot: failed to create slot: %v", err)
			return fmt.Errorf("%w: failed to create slot: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateTimeSlot: created slot id=%d for provider=%d", result.ID, req.ProviderID)

	return &Response{
		ID:        result.ID,
		Date:      result.Date,
		StartTime: result.StartTime,
		EndTime:   result.EndTime,
		IsBooked:  result.IsBooked,
		CreatedAt: result.CreatedAt,
	}, nil
}
