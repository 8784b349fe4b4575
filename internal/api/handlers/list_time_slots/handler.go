package list_time_slots

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

// Handle GET /api/v1/slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	providerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /slots - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	slots, err := h.service.ListTimeSlots(r.Context(), providerID)
	if err != nil {
		h.logger.Error("GET /slots - Failed to list slots: provider_id=%d, error=%v", providerID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /slots - Retrieved %d slots: provider_id=%d", len(slots), providerID)
	handlers.RespondJSON(w, http.StatusOK, slots)
}
