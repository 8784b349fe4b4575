package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/Pratik1Bhuwad/BookSmart-Service/internal/domain"
	blockedSlotRepo "github.com/Pratik1Bhuwad/BookSmart-Service/internal/infra/storage/blockedslot"
	timeslotRepo "github.com/Pratik1Bhuwad/BookSmart-Service/internal/infra/storage/timeslot"
	workingHoursRepo "github.com/Pratik1Bhuwad/BookSmart-Service/internal/infra/storage/workinghours"
	"github.com/Pratik1Bhuwad/BookSmart-Service/internal/service/schedule/models"
	"github.com/Pratik1Bhuwad/BookSmart-Service/pkg/types"
)

// Service сервис управления расписанием провайдера:
// рабочие часы, просмотр и удаление слотов и блокировок
// Создание слотов и блокировок идет через usecases с проверкой доступности
type Service struct {
	workingHours TimeslotWorkingHours
	logger       Logger
}

// TimeslotWorkingHours объединяет репозитории расписания
type TimeslotWorkingHours struct {
	WorkingHours WorkingHoursRepository
	TimeSlots    TimeSlotRepository
	BlockedSlots BlockedSlotRepository
}

// NewService создает новый экземпляр сервиса расписания
func NewService(
	workingHoursRepository WorkingHoursRepository,
	timeSlotRepository TimeSlotRepository,
	blockedSlotRepository BlockedSlotRepository,
	logger Logger,
) *Service {
	return &Service{
		workingHours: TimeslotWorkingHours{
			WorkingHours: workingHoursRepository,
			TimeSlots:    timeSlotRepository,
			BlockedSlots: blockedSlotRepository,
		},
		logger: logger,
	}
}

// SetWorkingHours добавляет рабочие часы на день недели
// На пару (провайдер, день недели) допускается одна запись
func (s *Service) SetWorkingHours(ctx context.Context, req *models.SetWorkingHoursRequest) (*models.WorkingHoursResponse, error) {
	s.logger.Info("SetWorkingHours: provider=%d, day=%d, %s-%s",
		req.ProviderID, req.DayOfWeek, req.StartTime, req.EndTime)

	if req.DayOfWeek < domain.MinDayOfWeek || req.DayOfWeek > domain.MaxDayOfWeek {
		s.logger.Warn("SetWorkingHours: invalid day of week %d", req.DayOfWeek)
		return nil, fmt.Errorf("%w: dayOfWeek must be in [0..6]", ErrInvalidInput)
	}

	startTime, err := types.NewTimeStringFromString(req.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}

	endTime, err := types.NewTimeStringFromString(req.EndTime)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid endTime: %v", ErrInvalidInput, err)
	}

	if !startTime.IsBefore(endTime) {
		return nil, fmt.Errorf("%w: endTime must be after startTime", ErrInvalidInput)
	}

	wh := &domain.WorkingHours{
		ProviderID: req.ProviderID,
		DayOfWeek:  req.DayOfWeek,
		StartTime:  startTime,
		EndTime:    endTime,
	}

	created, err := s.workingHours.WorkingHours.Create(ctx, wh)
	if err != nil {
		if errors.Is(err, workingHoursRepo.ErrDuplicateWorkingHours) {
			s.logger.Warn("SetWorkingHours: duplicate for provider=%d, day=%d", req.ProviderID, req.DayOfWeek)
			return nil, ErrDuplicateWorkingHours
		}
		s.logger.Error("SetWorkingHours: repository error: %v", err)
		return nil, fmt.Errorf("%w: SetWorkingHours - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("SetWorkingHours: created id=%d for provider=%d", created.ID, req.ProviderID)
	return models.FromDomainWorkingHours(created), nil
}

// ListWorkingHours возвращает рабочие часы провайдера по дням недели
func (s *Service) ListWorkingHours(ctx context.Context, providerID int64) ([]*models.WorkingHoursResponse, error) {
	hours, err := s.workingHours.WorkingHours.ListByProvider(ctx, providerID)
	if err != nil {
		s.logger.Error("ListWorkingHours: repository error for provider=%d: %v", providerID, err)
		return nil, fmt.Errorf("%w: ListWorkingHours - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainWorkingHoursList(hours), nil
}

// DeleteWorkingHours удаляет рабочие часы провайдера на день недели
func (s *Service) DeleteWorkingHours(ctx context.Context, workingHoursID int64, providerID int64) error {
	s.logger.Info("DeleteWorkingHours: working_hours=%d, provider=%d", workingHoursID, providerID)

	wh, err := s.workingHours.WorkingHours.GetByID(ctx, workingHoursID)
	if err != nil {
		if errors.Is(err, workingHoursRepo.ErrWorkingHoursNotFound) {
			s.logger.Warn("DeleteWorkingHours: working_hours=%d not found", workingHoursID)
			return ErrWorkingHoursNotFound
		}
		s.logger.Error("DeleteWorkingHours: repository error for working_hours=%d: %v", workingHoursID, err)
		return fmt.Errorf("%w: DeleteWorkingHours - repository error: %v", ErrInternal, err)
	}

	if wh.ProviderID != providerID {
		s.logger.Warn("DeleteWorkingHours: working_hours=%d belongs to provider=%d, not %d",
			workingHoursID, wh.ProviderID, providerID)
		return ErrAccessDenied
	}

	if err := s.workingHours.WorkingHours.Delete(ctx, workingHoursID); err != nil {
		if errors.Is(err, workingHoursRepo.ErrWorkingHoursNotFound) {
			return ErrWorkingHoursNotFound
		}
		s.logger.Error("DeleteWorkingHours: repository error for working_hours=%d: %v", workingHoursID, err)
		return fmt.Errorf("%w: DeleteWorkingHours - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteWorkingHours: working_hours=%d deleted", workingHoursID)
	return nil
}

// ListTimeSlots возвращает все слоты провайдера
func (s *Service) ListTimeSlots(ctx context.Context, providerID int64) ([]*models.TimeSlotResponse, error) {
	slots, err := s.workingHours.TimeSlots.ListByProvider(ctx, providerID)
	if err != nil {
		s.logger.Error("ListTimeSlots: repository error for provider=%d: %v", providerID, err)
		return nil, fmt.Errorf("%w: ListTimeSlots - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainTimeSlotList(slots), nil
}

// DeleteTimeSlot удаляет слот провайдера
// Забронированный слот (is_booked=true) удалить нельзя - ErrSlotBooked;
// состояние хранилища при отказе не меняется
func (s *Service) DeleteTimeSlot(ctx context.Context, slotID int64, providerID int64) error {
	s.logger.Info("DeleteTimeSlot: slot=%d, provider=%d", slotID, providerID)

	slot, err := s.workingHours.TimeSlots.GetByID(ctx, slotID)
	if err != nil {
		if errors.Is(err, timeslotRepo.ErrSlotNotFound) {
			s.logger.Warn("DeleteTimeSlot: slot=%d not found", slotID)
			return ErrSlotNotFound
		}
		s.logger.Error("DeleteTimeSlot: repository error for slot=%d: %v", slotID, err)
		return fmt.Errorf("%w: DeleteTimeSlot - repository error: %v", ErrInternal, err)
	}

	if slot.ProviderID != providerID {
		s.logger.Warn("DeleteTimeSlot: slot=%d belongs to provider=%d, not %d",
			slotID, slot.ProviderID, providerID)
		return ErrAccessDenied
	}

	if slot.IsBooked {
		s.logger.Warn("DeleteTimeSlot: slot=%d is booked, refusing deletion", slotID)
		return ErrSlotBooked
	}

	if err := s.workingHours.TimeSlots.Delete(ctx, slotID); err != nil {
		if errors.Is(err, timeslotRepo.ErrSlotNotFound) {
			return ErrSlotNotFound
		}
		s.logger.Error("DeleteTimeSlot: repository error for slot=%d: %v", slotID, err)
		return fmt.Errorf("%w: DeleteTimeSlot - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteTimeSlot: slot=%d deleted", slotID)
	return nil
}

// ListBlockedSlots возвращает все блокировки провайдера
func (s *Service) ListBlockedSlots(ctx context.Context, providerID int64) ([]*models.BlockedSlotResponse, error) {
	slots, err := s.workingHours.BlockedSlots.ListByProvider(ctx, providerID)
	if err != nil {
		s.logger.Error("ListBlockedSlots: repository error for provider=%d: %v", providerID, err)
		return nil, fmt.Errorf("%w: ListBlockedSlots - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBlockedSlotList(slots), nil
}

// DeleteBlockedSlot удаляет блокировку провайдера
func (s *Service) DeleteBlockedSlot(ctx context.Context, blockedSlotID int64, providerID int64) error {
	s.logger.Info("DeleteBlockedSlot: blocked_slot=%d, provider=%d", blockedSlotID, providerID)

	slot, err := s.workingHours.BlockedSlots.GetByID(ctx, blockedSlotID)
	if err != nil {
		if errors.Is(err, blockedSlotRepo.ErrBlockedSlotNotFound) {
			s.logger.Warn("DeleteBlockedSlot: blocked_slot=%d not found", blockedSlotID)
			return ErrBlockedSlotNotFound
		}
		s.logger.Error("DeleteBlockedSlot: repository error for blocked_slot=%d: %v", blockedSlotID, err)
		return fmt.Errorf("%w: DeleteBlockedSlot - repository error: %v", ErrInternal, err)
	}

	// Общие блокировки (без провайдера) может удалить любой провайдер
	if slot.ProviderID != nil && *slot.ProviderID != providerID {
		s.logger.Warn("DeleteBlockedSlot: blocked_slot=%d belongs to provider=%d, not %d",
			blockedSlotID, *slot.ProviderID, providerID)
		return ErrAccessDenied
	}

	if err := s.workingHours.BlockedSlots.Delete(ctx, blockedSlotID); err != nil {
		if errors.Is(err, blockedSlotRepo.ErrBlockedSlotNotFound) {
			return ErrBlockedSlotNotFound
		}
		s.logger.Error("DeleteBlockedSlot: repository error for blocked_slot=%d: %v", blockedSlotID, err)
		return fmt.Errorf("%w: DeleteBlockedSlot - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteBlockedSlot: blocked_slot=%d deleted", blockedSlotID)
	return nil
}
