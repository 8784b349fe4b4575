package create_checkout_session

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Pratik1Bhuwad/BookSmart-Service/internal/api/handlers"
	"github.com/Pratik1Bhuwad/BookSmart-Service/internal/api/middleware"
	"github.com/Pratik1Bhuwad/BookSmart-Service/internal/domain"
	"github.com/Pratik1Bhuwad/BookSmart-Service/internal/integrations/paymentgateway"
	"github.com/Pratik1Bhuwad/BookSmart-Service/internal/service/appointments"
)

const (
	msgInvalidAppointmentID = "некорректный ID записи"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgNotFound             = "запись не найдена"
	msgForbidden            = "доступ запрещен"
	msgNotApproved          = "оплатить можно только подтвержденную запись"
	msgGatewayError         = "платежный шлюз недоступен"
)

// CheckoutSessionResponse HTTP response model
type CheckoutSessionResponse struct {
	SessionID string `json:"sessionId"`
	URL       string `json:"url"`
}

type Handler struct {
	service AppointmentsService
	gateway PaymentGateway
	logger  Logger
}

func NewHandler(service AppointmentsService, gateway PaymentGateway, logger Logger) *Handler {
	return &Handler{
		service: service,
		gateway: gateway,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments/{appointmentId}/checkout
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	appointmentID, err := strconv.ParseInt(vars["appointmentId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /appointments/{id}/checkout - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	clientID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /appointments/{id}/checkout - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	appt, err := h.service.GetByID(r.Context(), appointmentID, clientID)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("POST /appointments/{id}/checkout - Not found: appointment_id=%d", appointmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, appointments.ErrAccessDenied):
			h.logger.Warn("POST /appointments/{id}/checkout - Access denied: appointment_id=%d, user_id=%d",
				appointmentID, clientID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("POST /appointments/{id}/checkout - Failed to get appointment: appointment_id=%d, error=%v",
				appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Оплата доступна только после подтверждения провайдером
	if appt.Status != string(domain.StatusApproved) {
		h.logger.Warn("POST /appointments/{id}/checkout - Not approved: appointment_id=%d, status=%s",
			appointmentID, appt.Status)
		handlers.RespondError(w, http.StatusConflict, msgNotApproved)
		return
	}

	session, err := h.gateway.CreateCheckoutSession(r.Context(), &paymentgateway.CheckoutParams{
		AppointmentID: appointmentID,
		ServiceName:   appt.ServiceName,
		Price:         appt.ServicePrice,
	})
	if err != nil {
		h.logger.Error("POST /appointments/{id}/checkout - Gateway error: appointment_id=%d, error=%v",
			appointmentID, err)
		handlers.RespondError(w, http.StatusBadGateway, msgGatewayError)
		return
	}

	h.logger.Info("POST /appointments/{id}/checkout - Checkout session created: appointment_id=%d, session=%s",
		appointmentID, session.ID)
	handlers.RespondJSON(w, http.StatusCreated, &CheckoutSessionResponse{
		SessionID: session.ID,
		URL:       session.URL,
	})
}
