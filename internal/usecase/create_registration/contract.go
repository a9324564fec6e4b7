package create_registration

import (
	"context"
	"time"

	"github.com/m04kA/SMC-TennisBooking/internal/domain"
	"github.com/m04kA/SMC-TennisBooking/pkg/types"
)

// RegistrationStore интерфейс хранилища записей
type RegistrationStore interface {
	// Refresh читает таблицу в обход кэша
	Refresh(ctx context.Context) (domain.Table, error)
	// Append добавляет запись и сбрасывает кэш
	Append(ctx context.Context, reg *domain.Registration) error
}

// AvailabilityEngine интерфейс расчёта заполненности сеансов
type AvailabilityEngine interface {
	// CanAccept проверяет наличие свободных мест
	CanAccept(table domain.Table, day string, timeSlot types.TimeString) bool
	// SessionStats состояние сеанса для ответа
	SessionStats(table domain.Table, day string, timeSlot types.TimeString) domain.SessionStats
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
