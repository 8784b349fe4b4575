package stripe_webhook

import (
	"context"

	"github.com/Pratik1Bhuwad/BookSmart-Service/internal/integrations/paymentgateway"
)

type PaymentGateway interface {
	VerifyEvent(payload []byte, sigHeader string) (*paymentgateway.PaymentEvent, error)
}

type AppointmentsService interface {
	ApplyPaymentStatus(ctx context.Context, appointmentID int64, paid bool) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
