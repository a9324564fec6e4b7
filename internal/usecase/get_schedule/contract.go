package get_schedule

import (
	"context"

	"github.com/m04kA/SMC-TennisBooking/internal/domain"
	"github.com/m04kA/SMC-TennisBooking/pkg/types"
)

// RegistrationStore интерфейс хранилища записей
type RegistrationStore interface {
	// ReadAll возвращает снимок таблицы (из кэша, если он свежий); при ошибке - пустой снимок
	ReadAll(ctx context.Context) domain.Table
}

// AvailabilityEngine интерфейс расчёта заполненности сеансов
type AvailabilityEngine interface {
	AllSessionsForDisplay(table domain.Table, days []string, timeSlots []types.TimeString) [][]domain.SessionStats
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
