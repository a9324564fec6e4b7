package create_registration

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TennisBooking/internal/api/handlers"
	createRegistration "github.com/m04kA/SMC-TennisBooking/internal/usecase/create_registration"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgValidationFailed   = "заполните имя, фамилию, уровень и выберите сеанс из расписания"
	msgSessionFull        = "в этом сеансе нет свободных мест"
)

type Handler struct {
	useCase CreateRegistrationUseCase
	logger  Logger
}

func NewHandler(useCase CreateRegistrationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/registrations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateRegistrationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /registrations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, createRegistration.ErrValidationFailed):
			h.logger.Warn("POST /registrations - Validation failed: %v", err)
			handlers.RespondBadRequest(w, msgValidationFailed)

		case errors.Is(err, createRegistration.ErrSessionFull):
			h.logger.Warn("POST /registrations - Session full: day=%s, time=%s", req.Day, req.TimeSlot)
			handlers.RespondConflict(w, msgSessionFull)

		case errors.Is(err, createRegistration.ErrStoreUnavailable):
			h.logger.Error("POST /registrations - Store unavailable: %v", err)
			handlers.RespondServiceUnavailable(w)

		default:
			h.logger.Error("POST /registrations - Failed to create registration: day=%s, time=%s, error=%v",
				req.Day, req.TimeSlot, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /registrations - Registration created: %s %s, day=%s, time=%s",
		result.FirstName, result.LastName, result.Day, result.TimeSlot)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
