package list_registrations

import (
	"context"

	"github.com/m04kA/SMC-TennisBooking/internal/service/registrations/models"
)

type RegistrationService interface {
	List(ctx context.Context, req *models.ListRequest) (*models.RegistrationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
