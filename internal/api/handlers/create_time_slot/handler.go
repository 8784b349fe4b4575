package create_time_slot

import (
	"errors"
	"net/http"

	"github.com/Pratik1Bhuwad/BookSmart-Service/internal/api/handlers"
	"github.com/Pratik1Bhuwad/BookSmart-Service/internal/api/middleware"
	"github.com/Pratik1Bhuwad/BookSmart-Service/internal/service/availability"
	createTimeSlot "github.com/Pratik1Bhuwad/BookSmart-Service/internal/usecase/create_time_slot"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidDateOrTime   = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgMissingUserID       = "отсутствует ID пользователя"
	msgAppointmentOverlap  = "интервал пересекается с существующей записью"
	msgBlockedOverlap      = "интервал пересекается с заблокированным временем"
	msgPastDate            = "дата уже прошла"
	msgNoWorkingHours      = "на этот день недели не задано рабочее время"
	msgTimeOutOfRange      = "интервал выходит за рамки рабочего времени"
	msgInvalidSlotInterval = "некорректный временной интервал"
	msgDuplicateSlot       = "идентичный слот уже существует"
)

type Handler struct {
	useCase CreateTimeSlotUseCase
	logger  Logger
}

func NewHandler(useCase CreateTimeSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	providerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /slots - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateTimeSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /slots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(providerID)
	if err != nil {
		h.logger.Warn("POST /slots - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrAppointmentOverlap):
			h.logger.Warn("POST /slots - Appointment overlap: provider_id=%d", providerID)
			handlers.RespondError(w, http.StatusConflict, msgAppointmentOverlap)

		case errors.Is(err, availability.ErrBlockedOverlap):
			h.logger.Warn("POST /slots - Blocked overlap: provider_id=%d", providerID)
			handlers.RespondError(w, http.StatusConflict, msgBlockedOverlap)

		case errors.Is(err, availability.ErrPastDate):
			h.logger.Warn("POST /slots - Past date: provider_id=%d", providerID)
			handlers.RespondBadRequest(w, msgPastDate)

		case errors.Is(err, availability.ErrNoWorkingHours):
			h.logger.Warn("POST /slots - No working hours: provider_id=%d", providerID)
			handlers.RespondBadRequest(w, msgNoWorkingHours)

		case errors.Is(err, availability.ErrTimeOutOfRange):
			h.logger.Warn("POST /slots - Time out of working hours: provider_id=%d", providerID)
			handlers.RespondBadRequest(w, msgTimeOutOfRange)

		case errors.Is(err, availability.ErrInvalidInput):
			h.logger.Warn("POST /slots - Invalid interval: provider_id=%d, error=%v", providerID, err)
			handlers.RespondBadRequest(w, msgInvalidSlotInterval)

		case errors.Is(err, createTimeSlot.ErrDuplicateSlot):
			h.logger.Warn("POST /slots - Duplicate slot: provider_id=%d", providerID)
			handlers.RespondError(w, http.StatusConflict, msgDuplicateSlot)

		default:
			h.logger.Error("POST /slots - Failed to create slot: provider_id=%d, error=%v", providerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /slots - Slot created successfully: slot_id=%d, provider_id=%d", result.ID, providerID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
