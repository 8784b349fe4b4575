package create_time_slot

import (
	"context"

	createTimeSlot "github.com/Pratik1Bhuwad/BookSmart-Service/internal/usecase/create_time_slot"
)

type CreateTimeSlotUseCase interface {
	Execute(ctx context.Context, req *createTimeSlot.Request) (*createTimeSlot.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
