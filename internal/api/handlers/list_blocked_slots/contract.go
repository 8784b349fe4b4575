package list_blocked_slots

import (
	"context"

	"github.com/Pratik1Bhuwad/BookSmart-Service/internal/service/schedule/models"
)

type ScheduleService interface {
	ListBlockedSlots(ctx context.Context, providerID int64) ([]*models.BlockedSlotResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
