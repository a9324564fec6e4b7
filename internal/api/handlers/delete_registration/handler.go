package delete_registration

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TennisBooking/internal/api/handlers"
	"github.com/m04kA/SMC-TennisBooking/internal/service/registrations"
)

const (
	msgInvalidPosition = "некорректный номер строки"
	msgNotFound        = "строка с таким номером не найдена"
)

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

// Handle DELETE /api/v1/registrations/{position}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем position из URL
	vars := mux.Vars(r)
	position, err := strconv.Atoi(vars["position"])
	if err != nil || position <= 0 {
		h.logger.Warn("DELETE /registrations/{position} - Invalid position: %q", vars["position"])
		handlers.RespondBadRequest(w, msgInvalidPosition)
		return
	}

	if err := h.service.Delete(r.Context(), position); err != nil {
		switch {
		case errors.Is(err, registrations.ErrNotFound):
			h.logger.Warn("DELETE /registrations/{position} - Not found: position=%d", position)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, registrations.ErrInvalidInput):
			h.logger.Warn("DELETE /registrations/{position} - Invalid input: position=%d", position)
			handlers.RespondBadRequest(w, msgInvalidPosition)

		case errors.Is(err, registrations.ErrInternal):
			h.logger.Error("DELETE /registrations/{position} - Store unavailable: position=%d, error=%v", position, err)
			handlers.RespondServiceUnavailable(w)

		default:
			h.logger.Error("DELETE /registrations/{position} - Failed to delete: position=%d, error=%v", position, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /registrations/{position} - Deleted: position=%d", position)
	handlers.RespondNoContent(w)
}
