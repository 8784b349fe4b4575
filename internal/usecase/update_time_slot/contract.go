package update_time_slot

import (
	"context"

	"github.com/Pratik1Bhuwad/BookSmart-Service/internal/domain"
	"github.com/Pratik1Bhuwad/BookSmart-Service/internal/service/availability"
)

// AvailabilityService интерфейс движка проверки доступности
type AvailabilityService interface {
	ValidateTimeSlot(ctx context.Context, req *availability.SlotRequest) error
}

// TimeSlotRepository интерфейс репозитория слотов
type TimeSlotRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.TimeSlot, error)
	Update(ctx context.Context, slot *domain.TimeSlot) error
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
