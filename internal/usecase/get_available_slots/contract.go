package get_available_slots

import (
	"context"
	"time"

	"github.com/Pratik1Bhuwad/BookSmart-Service/internal/domain"
)

// ProviderServiceRepository интерфейс репозитория услуг
type ProviderServiceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.ProviderService, error)
}

// TimeSlotRepository интерфейс репозитория слотов
type TimeSlotRepository interface {
	ListFreeByProviderAndDate(ctx context.Context, providerID int64, date time.Time) ([]*domain.TimeSlot, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
