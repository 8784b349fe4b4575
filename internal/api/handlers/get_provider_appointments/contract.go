package get_provider_appointments

import (
	"context"

	"github.com/Pratik1Bhuwad/BookSmart-Service/internal/service/appointments/models"
)

type AppointmentsService interface {
	ListProviderAppointments(ctx context.Context, filter *models.ProviderAppointmentsFilter) ([]*models.AppointmentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
