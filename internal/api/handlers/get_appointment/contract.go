package get_appointment

import (
	"context"

	"github.com/Pratik1Bhuwad/BookSmart-Service/internal/service/appointments/models"
)

type AppointmentsService interface {
	GetByID(ctx context.Context, appointmentID int64, userID int64) (*models.AppointmentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
