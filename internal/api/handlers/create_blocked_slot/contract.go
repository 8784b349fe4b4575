package create_blocked_slot

import (
	"context"

	createBlockedSlot "github.com/Pratik1Bhuwad/BookSmart-Service/internal/usecase/create_blocked_slot"
)

type CreateBlockedSlotUseCase interface {
	Execute(ctx context.Context, req *createBlockedSlot.Request) (*createBlockedSlot.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
