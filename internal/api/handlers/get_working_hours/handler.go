package get_working_hours

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Pratik1Bhuwad/BookSmart-Service/internal/api/handlers"
)

const (
	msgInvalidProviderID = "некорректный ID провайдера"
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

// Handle GET /api/v1/providers/{providerId}/working-hours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	providerID, err := strconv.ParseInt(vars["providerId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /providers/{id}/working-hours - Invalid provider ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProviderID)
		return
	}

	hours, err := h.service.ListWorkingHours(r.Context(), providerID)
	if err != nil {
		h.logger.Error("GET /providers/{id}/working-hours - Failed to list: provider_id=%d, error=%v",
			providerID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /providers/{id}/working-hours - Retrieved %d entries: provider_id=%d",
		len(hours), providerID)
	handlers.RespondJSON(w, http.StatusOK, hours)
}
