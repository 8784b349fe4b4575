package delete_working_hours

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
	msgInvalidID     = "некорректный ID рабочих часов"
	msgMissingUserID = "отсутствует ID пользователя"
	msgNotFound      = "рабочие часы не найдены"
	msgForbidden     = "доступ запрещен"
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

// Handle DELETE /api/v1/working-hours/{workingHoursId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	workingHoursID, err := strconv.ParseInt(vars["workingHoursId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /working-hours/{id} - Invalid working hours ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	providerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /working-hours/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if err := h.service.DeleteWorkingHours(r.Context(), workingHoursID, providerID); err != nil {
		switch {
		case errors.Is(err, schedule.ErrWorkingHoursNotFound):
			h.logger.Warn("DELETE /working-hours/{id} - Not found: working_hours_id=%d", workingHoursID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, schedule.ErrAccessDenied):
			h.logger.Warn("DELETE /working-hours/{id} - Access denied: working_hours_id=%d, provider_id=%d",
				workingHoursID, providerID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("DELETE /working-hours/{id} - Failed to delete: working_hours_id=%d, error=%v",
				workingHoursID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /working-hours/{id} - Deleted successfully: working_hours_id=%d, provider_id=%d",
		workingHoursID, providerID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
