package create_registration

import (
	"context"

	createRegistration "github.com/m04kA/SMC-TennisBooking/internal/usecase/create_registration"
)

type CreateRegistrationUseCase interface {
	Execute(ctx context.Context, req *createRegistration.Request) (*createRegistration.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
