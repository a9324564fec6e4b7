package create_registration

import (
	"time"

	"github.com/m04kA/SMC-TennisBooking/internal/domain"
	"github.com/m04kA/SMC-TennisBooking/pkg/types"
)

// Request модель запроса на запись в сеанс
type Request struct {
	FirstName string            `validate:"required,max=100"`
	LastName  string            `validate:"required,max=100"`
	Level     domain.Level      `validate:"required,oneof=Beginner Intermediate Advanced"`
	Day       string            `validate:"required"`
	TimeSlot  types.TimeString  `validate:"required"`
	EndTime   *types.TimeString // Конец занятия (опционально), должен быть позже TimeSlot
}

// Response модель ответа
type Response struct {
	FirstName string
	LastName  string
	Level     domain.Level
	Day       string
	TimeSlot  types.TimeString
	CreatedAt time.Time
	Session   domain.SessionStats // Состояние сеанса с учётом новой записи
}
