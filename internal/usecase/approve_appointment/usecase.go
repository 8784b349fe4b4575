package approve_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/Pratik1Bhuwad/BookSmart-Service/internal/domain"
	appointmentRepo "github.com/Pratik1Bhuwad/BookSmart-Service/internal/infra/storage/appointment"
)

// UseCase use case для подтверждения записи провайдером
type UseCase struct {
	appointmentRepo AppointmentRepository
	timeSlotRepo    TimeSlotRepository
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	timeSlotRepo TimeSlotRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		timeSlotRepo:    timeSlotRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute выполняет use case подтверждения записи
// Статус записи и флаг слота меняются в одной сериализуемой транзакции:
// два параллельных подтверждения по пересекающимся записям не пройдут оба
// Повторное подтверждение уже подтвержденной записи - no-op
func (uc *UseCase) Execute(ctx context.Context, appointmentID int64, providerID int64) error {
	uc.logger.Info("ApproveAppointment: appointment=%d, provider=%d", appointmentID, providerID)

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 1. Получаем запись с блокировкой
		appt, err := uc.appointmentRepo.GetByID(txCtx, appointmentID)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				uc.logger.Warn("ApproveAppointment: appointment=%d not found", appointmentID)
				return ErrAppointmentNotFound
			}
			uc.logger.Error("ApproveAppointment: failed to get appointment=%d: %v", appointmentID, err)
			return fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
		}

		// 2. Проверяем владельца услуги
		if appt.ProviderID != providerID {
			uc.logger.Warn("ApproveAppointment: appointment=%d belongs to provider=%d, not %d",
				appointmentID, appt.ProviderID, providerID)
			return ErrAccessDenied
		}

		// 3. Идемпотентность: уже подтвержденная запись - успех без изменений
		if appt.IsApproved() {
			uc.logger.Info("ApproveAppointment: appointment=%d already approved", appointmentID)
			return nil
		}

		if !appt.CanBeApproved() {
			uc.logger.Warn("ApproveAppointment: appointment=%d has status %s, cannot approve",
				appointmentID, appt.Status)
			return ErrCannotApprove
		}

		// 4. Подтверждаем запись и занимаем слот
		if err := uc.appointmentRepo.UpdateStatus(txCtx, appointmentID, domain.StatusApproved); err != nil {
			uc.logger.Error("ApproveAppointment: failed to update status for appointment=%d: %v",
				appointmentID, err)
			return fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
		}

		if err := uc.timeSlotRepo.SetBooked(txCtx, appt.TimeSlotID, true); err != nil {
			uc.logger.Error("ApproveAppointment: failed to book slot=%d: %v", appt.TimeSlotID, err)
			return fmt.Errorf("%w: failed to book slot: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return err
	}

	uc.logger.Info("ApproveAppointment: appointment=%d approved", appointmentID)
	return nil
}
