package create_appointment

import (
	"context"

	"github.com/Pratik1Bhuwad/BookSmart-Service/internal/domain"
	"github.com/Pratik1Bhuwad/BookSmart-Service/internal/integrations/mailer"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	FindActiveBySlot(ctx context.Context, slotID int64) ([]*domain.Appointment, error)
}

// TimeSlotRepository интерфейс репозитория слотов
type TimeSlotRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.TimeSlot, error)
}

// ProviderServiceRepository интерфейс репозитория услуг
type ProviderServiceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.ProviderService, error)
}

// MailerClient интерфейс клиента почтовых уведомлений
type MailerClient interface {
	SendBookingConfirmation(ctx context.Context, msg *mailer.BookingConfirmation) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
