package set_working_hours

import (
	"errors"
	"net/http"

	"github.com/Pratik1Bhuwad/BookSmart-Service/internal/api/handlers"
	"github.com/Pratik1Bhuwad/BookSmart-Service/internal/api/middleware"
	"github.com/Pratik1Bhuwad/BookSmart-Service/internal/service/schedule"
	"github.com/Pratik1Bhuwad/BookSmart-Service/internal/service/schedule/models"
)

const (
	msgInvalidRequestBody    = "некорректное тело запроса"
	msgMissingUserID         = "отсутствует ID пользователя"
	msgInvalidWorkingHours   = "некорректные рабочие часы"
	msgDuplicateWorkingHours = "рабочие часы на этот день недели уже заданы"
)

// SetWorkingHoursRequest HTTP request model
type SetWorkingHoursRequest struct {
	DayOfWeek int    `json:"dayOfWeek"` // Monday=0 .. Sunday=6
	StartTime string `json:"startTime"` // "09:00"
	EndTime   string `json:"endTime"`   // "17:00"
}

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

// Handle POST /api/v1/working-hours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	providerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /working-hours - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req SetWorkingHoursRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /working-hours - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.SetWorkingHours(r.Context(), &models.SetWorkingHoursRequest{
		ProviderID: providerID,
		DayOfWeek:  req.DayOfWeek,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
	})
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("POST /working-hours - Invalid input: provider_id=%d, error=%v", providerID, err)
			handlers.RespondBadRequest(w, msgInvalidWorkingHours)

		case errors.Is(err, schedule.ErrDuplicateWorkingHours):
			h.logger.Warn("POST /working-hours - Duplicate: provider_id=%d, day=%d", providerID, req.DayOfWeek)
			handlers.RespondError(w, http.StatusConflict, msgDuplicateWorkingHours)

		default:
			h.logger.Error("POST /working-hours - Failed to set working hours: provider_id=%d, error=%v",
				providerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /working-hours - Working hours set: id=%d, provider_id=%d, day=%d",
		result.ID, providerID, req.DayOfWeek)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
