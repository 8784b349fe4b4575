package delete_blocked_slot

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Pratik1Bhuwad/BookSmart-Service/internal/api/handlers"
	"github.com/Pratik1Bhuwad/BookSmart-Service/internal/api/middleware"
	"github.com/Pratik1Bhuwad/BookSmart-Service/internal/service/schedule"
)

const (
	msgInvalidBlockedSlotID = "некорректный ID блокировки"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgNotFound             = "блокировка не найдена"
	msgForbidden            = "доступ запрещен"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/blocked-slots/{blockedSlotId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	blockedSlotID, err := strconv.ParseInt(vars["blockedSlotId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /blocked-slots/{id} - Invalid blocked slot ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBlockedSlotID)
		return
	}

	providerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /blocked-slots/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if err := h.service.DeleteBlockedSlot(r.Context(), blockedSlotID, providerID); err != nil {
		switch {
		case errors.Is(err, schedule.ErrBlockedSlotNotFound):
			h.logger.Warn("DELETE /blocked-slots/{id} - Not found: blocked_slot_id=%d", blockedSlotID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, schedule.ErrAccessDenied):
			h.logger.Warn("DELETE /blocked-slots/{id} - Access denied: blocked_slot_id=%d, provider_id=%d",
				blockedSlotID, providerID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("DELETE /blocked-slots/{id} - Failed to delete: blocked_slot_id=%d, error=%v",
				blockedSlotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /blocked-slots/{id} - Blocked slot deleted: blocked_slot_id=%d, provider_id=%d",
		blockedSlotID, providerID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
