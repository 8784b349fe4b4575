package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/Pratik1Bhuwad/BookSmart-Service/internal/domain"
	providerServiceRepo "github.com/Pratik1Bhuwad/BookSmart-Service/internal/infra/storage/providerservice"
	timeslotRepo "github.com/Pratik1Bhuwad/BookSmart-Service/internal/infra/storage/timeslot"
	"github.com/Pratik1Bhuwad/BookSmart-Service/internal/integrations/mailer"
)

// UseCase use case для создания записи клиентом
type UseCase struct {
	appointmentRepo AppointmentRepository
	timeSlotRepo    TimeSlotRepository
	serviceRepo     ProviderServiceRepository
	mailerClient    MailerClient
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	timeSlotRepo TimeSlotRepository,
	serviceRepo ProviderServiceRepository,
	mailerClient MailerClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		timeSlotRepo:    timeSlotRepo,
		serviceRepo:     serviceRepo,
		mailerClient:    mailerClient,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute выполняет use case создания записи
// Запись создается в статусе pending, слот при этом не помечается занятым:
// это происходит при подтверждении провайдером
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: client=%d, service=%d, slot=%d",
		req.ClientID, req.ServiceID, req.TimeSlotID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем услугу
	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, providerServiceRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateAppointment: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	var result *domain.Appointment
	var slot *domain.TimeSlot

	// 3. Проверка слота и создание записи в сериализуемой транзакции:
	// две параллельные записи на один слот не должны пройти обе
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Получаем слот с блокировкой
		s, err := uc.timeSlotRepo.GetByID(txCtx, req.TimeSlotID)
		if err != nil {
			if errors.Is(err, timeslotRepo.ErrSlotNotFound) {
				uc.logger.Warn("CreateAppointment: slot id=%d not found", req.TimeSlotID)
				return ErrSlotNotFound
			}
			uc.logger.Error("CreateAppointment: failed to get slot id=%d: %v", req.TimeSlotID, err)
			return fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
		}

		// 3.2. Слот должен принадлежать провайдеру услуги
		if s.ProviderID != service.ProviderID {
			uc.logger.Warn("CreateAppointment: slot=%d belongs to provider=%d, service provider=%d",
				req.TimeSlotID, s.ProviderID, service.ProviderID)
			return ErrSlotMismatch
		}

		// 3.3. Подтвержденный слот занят
		if s.IsBooked {
			uc.logger.Warn("CreateAppointment: slot=%d is already booked", req.TimeSlotID)
			return ErrSlotTaken
		}

		// 3.4. На слот может претендовать не более одной активной записи
		active, err := uc.appointmentRepo.FindActiveBySlot(txCtx, req.TimeSlotID)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to find active appointments for slot=%d: %v",
				req.TimeSlotID, err)
			return fmt.Errorf("%w: failed to find active appointments: %v", ErrInternal, err)
		}

		if len(active) > 0 {
			uc.logger.Warn("CreateAppointment: slot=%d already has active appointment id=%d",
				req.TimeSlotID, active[0].ID)
			return ErrSlotTaken
		}

		// 3.5. Создаем запись с денормализацией данных услуги
		appt := &domain.Appointment{
			ClientID:          req.ClientID,
			ProviderServiceID: req.ServiceID,
			TimeSlotID:        req.TimeSlotID,
			LocationID:        req.LocationID,
			Date:              s.Date,
			Status:            domain.StatusPending,
			ServiceName:       service.Name,
			ServicePrice:      service.Price,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appt)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		slot = s
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: created appointment id=%d for client=%d", result.ID, req.ClientID)

	// 4. Отправляем письмо-подтверждение после коммита
	// Неотправленное письмо - ошибка всего запроса, запись при этом остается
	confirmation := &mailer.BookingConfirmation{
		To:            req.ClientEmail,
		ServiceName:   service.Name,
		ProviderName:  service.ProviderName,
		Date:          slot.Date,
		StartTime:     slot.StartTime,
		EndTime:       slot.EndTime,
		Price:         service.Price,
		AppointmentID: result.ID,
	}

	if err := uc.mailerClient.SendBookingConfirmation(ctx, confirmation); err != nil {
		uc.logger.Error("CreateAppointment: confirmation email failed for appointment=%d: %v", result.ID, err)
		return nil, fmt.Errorf("%w: %v", ErrNotificationFailed, err)
	}

	return &Response{
		ID:           result.ID,
		ServiceID:    result.ProviderServiceID,
		TimeSlotID:   result.TimeSlotID,
		Date:         result.Date,
		StartTime:    slot.StartTime,
		EndTime:      slot.EndTime,
		Status:       string(result.Status),
		BookedOn:     result.BookedOn,
		ServiceName:  result.ServiceName,
		ServicePrice: result.ServicePrice,
	}, nil
}
