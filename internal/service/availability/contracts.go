package availability

import (
	"context"
	"time"

	"github.com/Pratik1Bhuwad/BookSmart-Service/internal/domain"
	"github.com/Pratik1Bhuwad/BookSmart-Service/pkg/types"
)

// AppointmentRepository интерфейс поиска активных записей
type AppointmentRepository interface {
	FindActiveOverlapping(ctx context.Context, providerID int64, date time.Time, start, end types.TimeString, excludeSlotID *int64) ([]*domain.Appointment, error)
}

// BlockedSlotRepository интерфейс поиска блокировок
type BlockedSlotRepository interface {
	FindOverlapping(ctx context.Context, providerID int64, date time.Time, start, end types.TimeString, excludeID *int64) ([]*domain.BlockedSlot, error)
}

// WorkingHoursRepository интерфейс чтения рабочих часов
type WorkingHoursRepository interface {
	GetByProviderAndDay(ctx context.Context, providerID int64, dayOfWeek int) (*domain.WorkingHours, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
