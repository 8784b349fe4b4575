package appointments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Pratik1Bhuwad/BookSmart-Service/internal/domain"
	appointmentRepo "github.com/Pratik1Bhuwad/BookSmart-Service/internal/infra/storage/appointment"
	"github.com/Pratik1Bhuwad/BookSmart-Service/internal/service/appointments/models"
)

// Service сервис работы с записями: просмотр, отклонение,
// обновление статуса по результату оплаты
// Создание и подтверждение записи идут через usecases с транзакциями
type Service struct {
	appointments AppointmentRepository
	txManager    TransactionManager
	logger       Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(appointmentRepository AppointmentRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		appointments: appointmentRepository,
		txManager:    txManager,
		logger:       logger,
	}
}

// GetByID возвращает запись, если она принадлежит клиенту или провайдеру услуги
func (s *Service) GetByID(ctx context.Context, appointmentID int64, userID int64) (*models.AppointmentResponse, error) {
	appt, err := s.appointments.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment=%d: %v", appointmentID, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if appt.ClientID != userID && appt.ProviderID != userID {
		s.logger.Warn("GetByID: user=%d has no access to appointment=%d", userID, appointmentID)
		return nil, ErrAccessDenied
	}

	return models.FromDomainAppointment(appt), nil
}

// ListProviderAppointments возвращает записи на услуги провайдера,
// опционально отфильтрованные по дате и статусу
func (s *Service) ListProviderAppointments(ctx context.Context, filter *models.ProviderAppointmentsFilter) ([]*models.AppointmentResponse, error) {
	domainFilter := domain.AppointmentFilter{
		ProviderID: filter.ProviderID,
	}

	if filter.Date != nil {
		date, err := time.Parse(domain.DateFormat, *filter.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid date %q", ErrInvalidInput, *filter.Date)
		}
		domainFilter.Date = &date
	}

	if filter.Status != nil {
		status := domain.AppointmentStatus(*filter.Status)
		if !status.IsValid() {
			return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *filter.Status)
		}
		domainFilter.Status = &status
	}

	appts, err := s.appointments.ListByProvider(ctx, domainFilter)
	if err != nil {
		s.logger.Error("ListProviderAppointments: repository error for provider=%d: %v", filter.ProviderID, err)
		return nil, fmt.Errorf("%w: ListProviderAppointments - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointmentList(appts), nil
}

// ListClientAppointments возвращает записи клиента
func (s *Service) ListClientAppointments(ctx context.Context, clientID int64) ([]*models.AppointmentResponse, error) {
	appts, err := s.appointments.ListByClient(ctx, clientID)
	if err != nil {
		s.logger.Error("ListClientAppointments: repository error for client=%d: %v", clientID, err)
		return nil, fmt.Errorf("%w: ListClientAppointments - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointmentList(appts), nil
}

// Reject отклоняет запись провайдером
// Отклонить можно только запись в статусе pending: слот еще не занят,
// поэтому освобождение слота не требуется
// Чтение статуса и отклонение идут в одной сериализуемой транзакции,
// чтобы параллельное подтверждение не было перезаписано
func (s *Service) Reject(ctx context.Context, appointmentID int64, providerID int64) error {
	s.logger.Info("Reject: appointment=%d, provider=%d", appointmentID, providerID)

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		appt, err := s.appointments.GetByID(txCtx, appointmentID)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				s.logger.Warn("Reject: appointment=%d not found", appointmentID)
				return ErrAppointmentNotFound
			}
			s.logger.Error("Reject: repository error for appointment=%d: %v", appointmentID, err)
			return fmt.Errorf("%w: Reject - repository error: %v", ErrInternal, err)
		}

		if appt.ProviderID != providerID {
			s.logger.Warn("Reject: appointment=%d belongs to provider=%d, not %d",
				appointmentID, appt.ProviderID, providerID)
			return ErrAccessDenied
		}

		if !appt.CanBeRejected() {
			s.logger.Warn("Reject: appointment=%d has status %s, cannot reject", appointmentID, appt.Status)
			return ErrCannotReject
		}

		if err := s.appointments.UpdateStatus(txCtx, appointmentID, domain.StatusRejected); err != nil {
			s.logger.Error("Reject: update status error for appointment=%d: %v", appointmentID, err)
			return fmt.Errorf("%w: Reject - update status error: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return err
	}

	s.logger.Info("Reject: appointment=%d rejected", appointmentID)
	return nil
}

// ApplyPaymentStatus выставляет статус записи по результату оплаты
// Вызывается из обработчика вебхука: неизвестный id не считается ошибкой,
// событие просто игнорируется
func (s *Service) ApplyPaymentStatus(ctx context.Context, appointmentID int64, paid bool) error {
	status := domain.StatusPaid
	if !paid {
		status = domain.StatusFailed
	}

	s.logger.Info("ApplyPaymentStatus: appointment=%d, status=%s", appointmentID, status)

	return s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		_, err := s.appointments.GetByID(txCtx, appointmentID)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				s.logger.Warn("ApplyPaymentStatus: appointment=%d not found, ignoring event", appointmentID)
				return nil
			}
			s.logger.Error("ApplyPaymentStatus: repository error for appointment=%d: %v", appointmentID, err)
			return fmt.Errorf("%w: ApplyPaymentStatus - repository error: %v", ErrInternal, err)
		}

		if err := s.appointments.UpdateStatus(txCtx, appointmentID, status); err != nil {
			s.logger.Error("ApplyPaymentStatus: update status error for appointment=%d: %v", appointmentID, err)
			return fmt.Errorf("%w: ApplyPaymentStatus - update status error: %v", ErrInternal, err)
		}

		return nil
	})
}
