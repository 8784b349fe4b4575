package create_blocked_slot

import (
	"errors"
	"net/http"

	"github.com/Pratik1Bhuwad/BookSmart-Service/internal/api/handlers"
	"github.com/Pratik1Bhuwad/BookSmart-Service/internal/api/middleware"
	"github.com/Pratik1Bhuwad/BookSmart-Service/internal/service/availability"
	createBlockedSlot "github.com/Pratik1Bhuwad/BookSmart-Service/internal/usecase/create_blocked_slot"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidDateOrTime   = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgMissingUserID       = "отсутствует ID пользователя"
	msgAppointmentOverlap  = "интервал пересекается с существующей записью"
	msgDuplicateSlot       = "идентичная блокировка уже существует"
	msgInvalidSlotInterval = "некорректный временной интервал"
)

type Handler struct {
	useCase CreateBlockedSlotUseCase
	logger  Logger
}

func NewHandler(useCase CreateBlockedSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/blocked-slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	providerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /blocked-slots - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBlockedSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /blocked-slots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(providerID)
	if err != nil {
		h.logger.Warn("POST /blocked-slots - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrAppointmentOverlap):
			h.logger.Warn("POST /blocked-slots - Appointment overlap: provider_id=%d", providerID)
			handlers.RespondError(w, http.StatusConflict, msgAppointmentOverlap)

		case errors.Is(err, createBlockedSlot.ErrDuplicateSlot):
			h.logger.Warn("POST /blocked-slots - Duplicate blocked slot: provider_id=%d", providerID)
			handlers.RespondError(w, http.StatusConflict, msgDuplicateSlot)

		case errors.Is(err, availability.ErrInvalidInput):
			h.logger.Warn("POST /blocked-slots - Invalid interval: provider_id=%d, error=%v", providerID, err)
			handlers.RespondBadRequest(w, msgInvalidSlotInterval)

		default:
			h.logger.Error("POST /blocked-slots - Failed to create blocked slot: provider_id=%d, error=%v",
				providerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /blocked-slots - Blocked slot created: blocked_slot_id=%d, provider_id=%d",
		result.ID, providerID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
