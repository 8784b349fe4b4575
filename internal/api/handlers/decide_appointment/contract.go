package decide_appointment

import "context"

type ApproveAppointmentUseCase interface {
	Execute(ctx context.Context, appointmentID int64, providerID int64) error
}

type AppointmentsService interface {
	Reject(ctx context.Context, appointmentID int64, providerID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
