package delete_registration

import "context"

type RegistrationService interface {
	Delete(ctx context.Context, position int) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
