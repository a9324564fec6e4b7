package registrations

import (
	"context"

	"github.com/m04kA/SMC-TennisBooking/internal/domain"
)

// RegistrationStore интерфейс хранилища записей
type RegistrationStore interface {
	ReadAll(ctx context.Context) domain.Table
	DeleteAt(ctx context.Context, position int) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
