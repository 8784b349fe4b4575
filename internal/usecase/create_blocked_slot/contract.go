package create_blocked_slot

import (
	"context"

	"github.com/Pratik1Bhuwad/BookSmart-Service/internal/domain"
	"github.com/Pratik1Bhuwad/BookSmart-Service/internal/service/availability"
)

// AvailabilityService интерфейс движка проверки доступности
// Для блокировок проверяется только пересечение с активными записями
type AvailabilityService interface {
	ValidateBlockedSlot(ctx context.Context, req *availability.SlotRequest) error
}

// BlockedSlotRepository интерфейс репозитория блокировок
type BlockedSlotRepository interface {
	Create(ctx context.Context, slot *domain.BlockedSlot) (*domain.BlockedSlot, error)
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
