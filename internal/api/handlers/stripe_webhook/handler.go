package stripe_webhook

import (
	"errors"
	"io"
	"net/http"

	"github.com/Pratik1Bhuwad/BookSmart-Service/internal/api/handlers"
	"github.com/Pratik1Bhuwad/BookSmart-Service/internal/integrations/paymentgateway"
)

// maxBodySize жесткий лимит на тело вебхука
const maxBodySize = 1 << 20 // 1 MiB

const (
	msgMissingSignature = "отсутствует заголовок Stripe-Signature"
	msgInvalidSignature = "невалидная подпись"
	msgInvalidBody      = "не удалось прочитать тело запроса"
)

type Handler struct {
	gateway PaymentGateway
	service AppointmentsService
	logger  Logger
}

func NewHandler(gateway PaymentGateway, service AppointmentsService, logger Logger) *Handler {
	return &Handler{
		gateway: gateway,
		service: service,
		logger:  logger,
	}
}

// Handle POST /webhooks/stripe
// Аутентификация - проверка подписи, JWT и X-User-ID здесь не участвуют
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sigHeader := r.Header.Get("Stripe-Signature")
	if sigHeader == "" {
		h.logger.Warn("POST /webhooks/stripe - Missing Stripe-Signature header")
		handlers.RespondBadRequest(w, msgMissingSignature)
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		h.logger.Warn("POST /webhooks/stripe - Failed to read body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	event, err := h.gateway.VerifyEvent(body, sigHeader)
	if err != nil {
		switch {
		case errors.Is(err, paymentgateway.ErrUnsupportedEvent):
			// Неинтересные события подтверждаем, чтобы Stripe их не ретраил
			h.logger.Info("POST /webhooks/stripe - Unsupported event ignored: %v", err)
			handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "ignored"})

		case errors.Is(err, paymentgateway.ErrInvalidPayload):
			h.logger.Warn("POST /webhooks/stripe - Invalid payload: %v", err)
			handlers.RespondBadRequest(w, msgInvalidBody)

		default:
			h.logger.Warn("POST /webhooks/stripe - Invalid signature: %v", err)
			handlers.RespondBadRequest(w, msgInvalidSignature)
		}
		return
	}

	if err := h.service.ApplyPaymentStatus(r.Context(), event.AppointmentID, event.Paid); err != nil {
		h.logger.Error("POST /webhooks/stripe - Failed to apply payment status: appointment_id=%d, error=%v",
			event.AppointmentID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /webhooks/stripe - Payment status applied: appointment_id=%d, paid=%t",
		event.AppointmentID, event.Paid)
	handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "processed"})
}
