package create_checkout_session

import (
	"context"

	"github.com/Pratik1Bhuwad/BookSmart-Service/internal/integrations/paymentgateway"
	"github.com/Pratik1Bhuwad/BookSmart-Service/internal/service/appointments/models"
)

type AppointmentsService interface {
	GetByID(ctx context.Context, appointmentID int64, userID int64) (*models.AppointmentResponse, error)
}

type PaymentGateway interface {
	CreateCheckoutSession(ctx context.Context, p *paymentgateway.CheckoutParams) (*paymentgateway.CheckoutSession, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
