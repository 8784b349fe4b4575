package schedule

import (
	"context"

	"github.com/Pratik1Bhuwad/BookSmart-Service/internal/domain"
)

// WorkingHoursRepository интерфейс репозитория рабочих часов
type WorkingHoursRepository interface {
	Create(ctx context.Context, wh *domain.WorkingHours) (*domain.WorkingHours, error)
	GetByID(ctx context.Context, id int64) (*domain.WorkingHours, error)
	ListByProvider(ctx context.Context, providerID int64) ([]*domain.WorkingHours, error)
	Delete(ctx context.Context, id int64) error
}

// TimeSlotRepository интерфейс репозитория слотов
type TimeSlotRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.TimeSlot, error)
	ListByProvider(ctx context.Context, providerID int64) ([]*domain.TimeSlot, error)
	Delete(ctx context.Context, id int64) error
}

// BlockedSlotRepository интерфейс репозитория блокировок
type BlockedSlotRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.BlockedSlot, error)
	ListByProvider(ctx context.Context, providerID int64) ([]*domain.BlockedSlot, error)
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
