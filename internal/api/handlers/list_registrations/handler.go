package list_registrations

import (
	"net/http"

	"github.com/m04kA/SMC-TennisBooking/internal/api/handlers"
	"github.com/m04kA/SMC-TennisBooking/internal/service/registrations/models"
	"github.com/m04kA/SMC-TennisBooking/pkg/types"
)

const msgInvalidTimeSlot = "некорректный формат времени, ожидается HH:MM"

type Handler struct {
	service RegistrationService
	logger  Logger
}

func NewHandler(service RegistrationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/registrations?day=Monday&timeSlot=10:00
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.ListRequest{}

	// Фильтры из query параметров (опционально)
	if day := r.URL.Query().Get("day"); day != "" {
		req.Day = &day
	}

	if slotStr := r.URL.Query().Get("timeSlot"); slotStr != "" {
		slot, err := types.NewTimeStringFromString(slotStr)
		if err != nil {
			h.logger.Warn("GET /registrations - Invalid timeSlot: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)
			return
		}
		req.TimeSlot = &slot
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		h.logger.Error("GET /registrations - Failed to list registrations: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
