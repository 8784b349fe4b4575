package update_time_slot

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Pratik1Bhuwad/BookSmart-Service/internal/api/handlers"
	"github.com/Pratik1Bhuwad/BookSmart-Service/internal/api/middleware"
	"github.com/Pratik1Bhuwad/BookSmart-Service/internal/service/availability"
	updateTimeSlot "github.com/Pratik1Bhuwad/BookSmart-Service/internal/usecase/update_time_slot"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidSlotID       = "некорректный ID слота"
	msgInvalidDateOrTime   = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgMissingUserID       = "отсутствует ID пользователя"
	msgSlotNotFound        = "слот не найден"
	msgForbidden           = "доступ запрещен"
	msgAppointmentOverlap  = "интервал пересекается с существующей записью"
	msgBlockedOverlap      = "интервал пересекается с заблокированным временем"
	msgPastDate            = "дата уже прошла"
	msgNoWorkingHours      = "на этот день недели не задано рабочее время"
	msgTimeOutOfRange      = "интервал выходит за рамки рабочего времени"
	msgInvalidSlotInterval = "некорректный временной интервал"
	msgDuplicateSlot       = "идентичный слот уже существует"
)

type Handler struct {
	useCase UpdateTimeSlotUseCase
	logger  Logger
}

func NewHandler(useCase UpdateTimeSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/slots/{slotId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	slotID, err := strconv.ParseInt(vars["slotId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /slots/{id} - Invalid slot ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSlotID)
		return
	}

	providerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /slots/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req UpdateTimeSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /slots/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(slotID, providerID)
	if err != nil {
		h.logger.Warn("PUT /slots/{id} - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, updateTimeSlot.ErrSlotNotFound):
			h.logger.Warn("PUT /slots/{id} - Slot not found: slot_id=%d", slotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, updateTimeSlot.ErrAccessDenied):
			h.logger.Warn("PUT /slots/{id} - Access denied: slot_id=%d, provider_id=%d", slotID, providerID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, availability.ErrAppointmentOverlap):
			h.logger.Warn("PUT /slots/{id} - Appointment overlap: slot_id=%d", slotID)
			handlers.RespondError(w, http.StatusConflict, msgAppointmentOverlap)

		case errors.Is(err, availability.ErrBlockedOverlap):
			h.logger.Warn("PUT /slots/{id} - Blocked overlap: slot_id=%d", slotID)
			handlers.RespondError(w, http.StatusConflict, msgBlockedOverlap)

		case errors.Is(err, availability.ErrPastDate):
			h.logger.Warn("PUT /slots/{id} - Past date: slot_id=%d", slotID)
			handlers.RespondBadRequest(w, msgPastDate)

		case errors.Is(err, availability.ErrNoWorkingHours):
			h.logger.Warn("PUT /slots/{id} - No working hours: slot_id=%d", slotID)
			handlers.RespondBadRequest(w, msgNoWorkingHours)

		case errors.Is(err, availability.ErrTimeOutOfRange):
			h.logger.Warn("PUT /slots/{id} - Time out of working hours: slot_id=%d", slotID)
			handlers.RespondBadRequest(w, msgTimeOutOfRange)

		case errors.Is(err, availability.ErrInvalidInput):
			h.logger.Warn("PUT /slots/{id} - Invalid interval: slot_id=%d, error=%v", slotID, err)
			handlers.RespondBadRequest(w, msgInvalidSlotInterval)

		case errors.Is(err, updateTimeSlot.ErrDuplicateSlot):
			h.logger.Warn("PUT /slots/{id} - Duplicate slot: slot_id=%d", slotID)
			handlers.RespondError(w, http.StatusConflict, msgDuplicateSlot)

		default:
			h.logger.Error("PUT /slots/{id} - Failed to update slot: slot_id=%d, error=%v", slotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /slots/{id} - Slot updated successfully: slot_id=%d, provider_id=%d", slotID, providerID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
