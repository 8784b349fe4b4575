package availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/Pratik1Bhuwad/BookSmart-Service/internal/domain"
	workingHoursRepo "github.com/Pratik1Bhuwad/BookSmart-Service/internal/infra/storage/workinghours"
)

// Service сервис проверки доступности временных интервалов
//
// Проверки для слота выполняются строго по порядку: записи -> блокировки ->
// прошедшая дата -> рабочие часы. Порядок не влияет на итоговое решение
// принять/отклонить, но определяет, какая из причин отказа будет показана
// пользователю первой, поэтому он зафиксирован явным списком предикатов
type Service struct {
	appointmentRepo AppointmentRepository
	blockedSlotRepo BlockedSlotRepository
	workingHours    WorkingHoursRepository
	timeProvider    TimeProvider
	logger          Logger
}

// checkFunc одна проверка кандидата; возвращает sentinel-ошибку причины отказа
type checkFunc func(ctx context.Context, req *SlotRequest) error

// NewService создает новый экземпляр сервиса доступности
func NewService(
	appointmentRepo AppointmentRepository,
	blockedSlotRepo BlockedSlotRepository,
	workingHours WorkingHoursRepository,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		blockedSlotRepo: blockedSlotRepo,
		workingHours:    workingHours,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// WithTimeProvider заменяет провайдер времени (для тестирования)
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// ValidateTimeSlot проверяет, что слот может быть создан или отредактирован
// Возвращает nil, если слот допустим, либо первую причину отказа:
// ErrAppointmentOverlap, ErrBlockedOverlap, ErrPastDate, ErrNoWorkingHours,
// ErrTimeOutOfRange
// Сервис ничего не пишет в хранилище
func (s *Service) ValidateTimeSlot(ctx context.Context, req *SlotRequest) error {
	if err := validateRequest(req); err != nil {
		return err
	}

	checks := []checkFunc{
		s.checkAppointmentOverlap,
		s.checkBlockedOverlap,
		s.checkPastDate,
		s.checkWorkingHours,
	}

	for _, check := range checks {
		if err := check(ctx, req); err != nil {
			return err
		}
	}

	return nil
}

// ValidateBlockedSlot проверяет, что блокировка может быть создана
// Проверяются только пересечения с активными записями; рабочие часы и
// прошедшие даты для блокировок не проверяются
func (s *Service) ValidateBlockedSlot(ctx context.Context, req *SlotRequest) error {
	if err := validateRequest(req); err != nil {
		return err
	}

	return s.checkAppointmentOverlap(ctx, req)
}

// checkAppointmentOverlap ищет активные записи, чьи слоты строго
// пересекаются с кандидатом
func (s *Service) checkAppointmentOverlap(ctx context.Context, req *SlotRequest) error {
	conflicts, err := s.appointmentRepo.FindActiveOverlapping(
		ctx, req.ProviderID, req.Date, req.StartTime, req.EndTime, req.ExcludeSlotID,
	)
	if err != nil {
		s.logger.Error("ValidateSlot: failed to find overlapping appointments: %v", err)
		return fmt.Errorf("%w: failed to find overlapping appointments: %v", ErrInternal, err)
	}

	if len(conflicts) > 0 {
		s.logger.Warn("ValidateSlot: provider=%d date=%s %s-%s overlaps %d appointment(s)",
			req.ProviderID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime, len(conflicts))
		return ErrAppointmentOverlap
	}

	return nil
}

// checkBlockedOverlap ищет блокировки, строго пересекающиеся с кандидатом
func (s *Service) checkBlockedOverlap(ctx context.Context, req *SlotRequest) error {
	conflicts, err := s.blockedSlotRepo.FindOverlapping(
		ctx, req.ProviderID, req.Date, req.StartTime, req.EndTime, req.ExcludeSlotID,
	)
	if err != nil {
		s.logger.Error("ValidateSlot: failed to find overlapping blocked slots: %v", err)
		return fmt.Errorf("%w: failed to find overlapping blocked slots: %v", ErrInternal, err)
	}

	if len(conflicts) > 0 {
		s.logger.Warn("ValidateSlot: provider=%d date=%s %s-%s overlaps %d blocked slot(s)",
			req.ProviderID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime, len(conflicts))
		return ErrBlockedOverlap
	}

	return nil
}

// checkPastDate отклоняет даты строго раньше сегодняшней
// Оценивается на момент вызова, без грейс-периода
func (s *Service) checkPastDate(ctx context.Context, req *SlotRequest) error {
	if isDateInPast(req.Date, s.timeProvider.Now()) {
		return ErrPastDate
	}
	return nil
}

// checkWorkingHours требует заданных рабочих часов на день недели кандидата
// и полного вложения интервала в окно (границы включительно)
func (s *Service) checkWorkingHours(ctx context.Context, req *SlotRequest) error {
	hours, err := s.workingHours.GetByProviderAndDay(ctx, req.ProviderID, domain.WeekdayIndex(req.Date))
	if err != nil {
		if errors.Is(err, workingHoursRepo.ErrWorkingHoursNotFound) {
			return ErrNoWorkingHours
		}
		s.logger.Error("ValidateSlot: failed to get working hours: %v", err)
		return fmt.Errorf("%w: failed to get working hours: %v", ErrInternal, err)
	}

	if !hours.Contains(req.StartTime, req.EndTime) {
		return ErrTimeOutOfRange
	}

	return nil
}
