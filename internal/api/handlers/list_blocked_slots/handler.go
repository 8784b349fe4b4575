package list_blocked_slots

import (
	"net/http"

	"github.com/Pratik1Bhuwad/BookSmart-Service/internal/api/handlers"
	"github.com/Pratik1Bhuwad/BookSmart-Service/internal/api/middleware"
)

const (
	msgMissingUserID = "отсутствует ID пользователя"
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

// Handle GET /api/v1/blocked-slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	providerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /blocked-slots - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	slots, err := h.service.ListBlockedSlots(r.Context(), providerID)
	if err != nil {
		h.logger.Error("GET /blocked-slots - Failed to list: provider_id=%d, error=%v", providerID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /blocked-slots - Retrieved %d blocked slots: provider_id=%d", len(slots), providerID)
	handlers.RespondJSON(w, http.StatusOK, slots)
}
