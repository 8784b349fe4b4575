package decide_appointment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Pratik1Bhuwad/BookSmart-Service/internal/api/handlers"
	"github.com/Pratik1Bhuwad/BookSmart-Service/internal/api/middleware"
	"github.com/Pratik1Bhuwad/BookSmart-Service/internal/service/appointments"
	approveAppointment "github.com/Pratik1Bhuwad/BookSmart-Service/internal/usecase/approve_appointment"
)

const (
	actionApprove = "approve"
	actionReject  = "reject"
)

const (
	msgInvalidAppointmentID = "некорректный ID записи"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidAction        = "некорректное действие, ожидается approve или reject"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgNotFound             = "запись не найдена"
	msgForbidden            = "доступ запрещен"
	msgCannotApprove        = "запись нельзя подтвердить в текущем статусе"
	msgCannotReject         = "запись нельзя отклонить в текущем статусе"
)

// DecisionRequest HTTP request model
type DecisionRequest struct {
	Action string `json:"action"` // approve | reject
}

type Handler struct {
	approveUC ApproveAppointmentUseCase
	service   AppointmentsService
	logger    Logger
}

func NewHandler(approveUC ApproveAppointmentUseCase, service AppointmentsService, logger Logger) *Handler {
	return &Handler{
		approveUC: approveUC,
		service:   service,
		logger:    logger,
	}
}

// Handle PATCH /api/v1/appointments/{appointmentId}/decision
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	appointmentID, err := strconv.ParseInt(vars["appointmentId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /appointments/{id}/decision - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	providerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /appointments/{id}/decision - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req DecisionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /appointments/{id}/decision - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	switch req.Action {
	case actionApprove:
		h.handleApprove(w, r, appointmentID, providerID)
	case actionReject:
		h.handleReject(w, r, appointmentID, providerID)
	default:
		h.logger.Warn("PATCH /appointments/{id}/decision - Invalid action: %q", req.Action)
		handlers.RespondBadRequest(w, msgInvalidAction)
	}
}

func (h *Handler) handleApprove(w http.ResponseWriter, r *http.Request, appointmentID, providerID int64) {
	if err := h.approveUC.Execute(r.Context(), appointmentID, providerID); err != nil {
		switch {
		case errors.Is(err, approveAppointment.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /appointments/{id}/decision - Not found: appointment_id=%d", appointmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, approveAppointment.ErrAccessDenied):
			h.logger.Warn("PATCH /appointments/{id}/decision - Access denied: appointment_id=%d, provider_id=%d",
				appointmentID, providerID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, approveAppointment.ErrCannotApprove):
			h.logger.Warn("PATCH /appointments/{id}/decision - Cannot approve: appointment_id=%d", appointmentID)
			handlers.RespondError(w, http.StatusConflict, msgCannotApprove)

		default:
			h.logger.Error("PATCH /appointments/{id}/decision - Approve failed: appointment_id=%d, error=%v",
				appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /appointments/{id}/decision - Appointment approved: appointment_id=%d, provider_id=%d",
		appointmentID, providerID)
	handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "approved"})
}

func (h *Handler) handleReject(w http.ResponseWriter, r *http.Request, appointmentID, providerID int64) {
	if err := h.service.Reject(r.Context(), appointmentID, providerID); err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /appointments/{id}/decision - Not found: appointment_id=%d", appointmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, appointments.ErrAccessDenied):
			h.logger.Warn("PATCH /appointments/{id}/decision - Access denied: appointment_id=%d, provider_id=%d",
				appointmentID, providerID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, appointments.ErrCannotReject):
			h.logger.Warn("PATCH /appointments/{id}/decision - Cannot reject: appointment_id=%d", appointmentID)
			handlers.RespondError(w, http.StatusConflict, msgCannotReject)

		default:
			h.logger.Error("PATCH /appointments/{id}/decision - Reject failed: appointment_id=%d, error=%v",
				appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /appointments/{id}/decision - Appointment rejected: appointment_id=%d, provider_id=%d",
		appointmentID, providerID)
	handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "rejected"})
}
