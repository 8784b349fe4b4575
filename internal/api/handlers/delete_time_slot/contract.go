package delete_time_slot

import "context"

type ScheduleService interface {
	DeleteTimeSlot(ctx context.Context, slotID int64, providerID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
