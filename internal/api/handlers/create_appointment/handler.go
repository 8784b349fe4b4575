package create_appointment

import (
	"errors"
	"net/http"

	"github.com/Pratik1Bhuwad/BookSmart-Service/internal/api/handlers"
	"github.com/Pratik1Bhuwad/BookSmart-Service/internal/api/middleware"
	createAppointment "github.com/Pratik1Bhuwad/BookSmart-Service/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgServiceNotFound    = "услуга не найдена"
	msgSlotNotFound       = "слот не найден"
	msgSlotMismatch       = "слот не принадлежит провайдеру услуги"
	msgSlotTaken          = "слот уже занят"
	msgInvalidInput       = "некорректные данные записи"
	msgNotificationFailed = "не удалось отправить письмо-подтверждение"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	clientID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /appointments - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(clientID))
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrServiceNotFound):
			h.logger.Warn("POST /appointments - Service not found: service_id=%d", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createAppointment.ErrSlotNotFound):
			h.logger.Warn("POST /appointments - Slot not found: slot_id=%d", req.TimeSlotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, createAppointment.ErrSlotMismatch):
			h.logger.Warn("POST /appointments - Slot mismatch: service_id=%d, slot_id=%d",
				req.ServiceID, req.TimeSlotID)
			handlers.RespondBadRequest(w, msgSlotMismatch)

		case errors.Is(err, createAppointment.ErrSlotTaken):
			h.logger.Warn("POST /appointments - Slot taken: slot_id=%d", req.TimeSlotID)
			handlers.RespondError(w, http.StatusConflict, msgSlotTaken)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: client_id=%d, error=%v", clientID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createAppointment.ErrNotificationFailed):
			h.logger.Error("POST /appointments - Notification failed: client_id=%d, error=%v", clientID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgNotificationFailed)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: client_id=%d, error=%v",
				clientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created: appointment_id=%d, client_id=%d",
		result.ID, clientID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
