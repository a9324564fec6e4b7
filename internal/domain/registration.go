package domain

import (
	"time"

	"github.com/m04kA/SMC-TennisBooking/pkg/types"
)

// Level уровень подготовки ученика
type Level string

const (
	LevelBeginner     Level = "Beginner"
	LevelIntermediate Level = "Intermediate"
	LevelAdvanced     Level = "Advanced"

	// LevelNone уровень сеанса без записей
	LevelNone Level = "none"
)

// Levels допустимые уровни в порядке отображения
var Levels = []Level{LevelBeginner, LevelIntermediate, LevelAdvanced}

// IsValid returns true if the level is one of the offered levels
func (l Level) IsValid() bool {
	for _, lvl := range Levels {
		if l == lvl {
			return true
		}
	}
	return false
}

// Registration одна строка таблицы-хранилища
type Registration struct {
	// Position номер строки в таблице (с 1, заголовок учитывается); 0 - ещё не сохранена
	Position  int
	FirstName string
	LastName  string
	Level     Level
	Day       string
	TimeSlot  types.TimeString
	CreatedAt time.Time
}

// InSession returns true if the registration belongs to the (day, timeSlot) session
func (r *Registration) InSession(day string, timeSlot types.TimeString) bool {
	return r.Day == day && r.TimeSlot == timeSlot
}

// FullName returns "FirstName LastName"
func (r *Registration) FullName() string {
	return r.FirstName + " " + r.LastName
}
