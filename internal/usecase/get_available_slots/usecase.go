package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/Pratik1Bhuwad/BookSmart-Service/internal/domain"
	providerServiceRepo "github.com/Pratik1Bhuwad/BookSmart-Service/internal/infra/storage/providerservice"
)

// UseCase use case для получения свободных слотов по услуге
type UseCase struct {
	serviceRepo  ProviderServiceRepository
	timeSlotRepo TimeSlotRepository
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	serviceRepo ProviderServiceRepository,
	timeSlotRepo TimeSlotRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		serviceRepo:  serviceRepo,
		timeSlotRepo: timeSlotRepo,
		logger:       logger,
	}
}

// Execute выполняет use case получения свободных слотов
// Свободный слот - слот провайдера услуги на дату с is_booked = false
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.ServiceID <= 0 {
		return nil, fmt.Errorf("%w: serviceId must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// 1. Получаем услугу, чтобы определить провайдера
	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, providerServiceRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 2. Получаем свободные слоты провайдера на дату
	slots, err := uc.timeSlotRepo.ListFreeByProviderAndDate(ctx, service.ProviderID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list slots for provider=%d: %v",
			service.ProviderID, err)
		return nil, fmt.Errorf("%w: failed to list free slots: %v", ErrInternal, err)
	}

	uc.logger.Info("GetAvailableSlots: service=%d, date=%s, found %d free slots",
		req.ServiceID, req.Date.Format(domain.DateFormat), len(slots))

	result := make([]Slot, len(slots))
	for i, slot := range slots {
		result[i] = Slot{
			ID:        slot.ID,
			StartTime: slot.StartTime,
			EndTime:   slot.EndTime,
		}
	}

	return &Response{
		ServiceID:  req.ServiceID,
		ProviderID: service.ProviderID,
		Date:       req.Date,
		Slots:      result,
	}, nil
}
