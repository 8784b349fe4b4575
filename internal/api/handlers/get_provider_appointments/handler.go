package get_provider_appointments

import (
	"errors"
	"net/http"

	"github.com/Pratik1Bhuwad/BookSmart-Service/internal/api/handlers"
	"github.com/Pratik1Bhuwad/BookSmart-Service/internal/api/middleware"
	"github.com/Pratik1Bhuwad/BookSmart-Service/internal/service/appointments"
	"github.com/Pratik1Bhuwad/BookSmart-Service/internal/service/appointments/models"
)

const (
	msgMissingUserID = "отсутствует ID пользователя"
	msgInvalidFilter = "некорректные параметры фильтра"
)

type Handler struct {
	service AppointmentsService
	logger  Logger
}

func NewHandler(service AppointmentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/provider/appointments?date=YYYY-MM-DD&status=pending
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	providerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /provider/appointments - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	filter := &models.ProviderAppointmentsFilter{
		ProviderID: providerID,
	}

	query := r.URL.Query()
	if date := query.Get("date"); date != "" {
		filter.Date = &date
	}
	if status := query.Get("status"); status != "" {
		filter.Status = &status
	}

	appts, err := h.service.ListProviderAppointments(r.Context(), filter)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("GET /provider/appointments - Invalid filter: provider_id=%d, error=%v",
				providerID, err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /provider/appointments - Failed to list: provider_id=%d, error=%v",
				providerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /provider/appointments - Retrieved %d appointments: provider_id=%d",
		len(appts), providerID)
	handlers.RespondJSON(w, http.StatusOK, appts)
}
