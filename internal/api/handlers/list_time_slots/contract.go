package list_time_slots

import (
	"context"

	"github.com/Pratik1Bhuwad/BookSmart-Service/internal/service/schedule/models"
)

type ScheduleService interface {
	ListTimeSlots(ctx context.Context, providerID int64) ([]*models.TimeSlotResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
