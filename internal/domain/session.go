package domain

import "github.com/m04kA/SMC-TennisBooking/pkg/types"

// SessionStats состояние сеанса (день, время), вычисленное по снимку таблицы
type SessionStats struct {
	Day      string
	TimeSlot types.TimeString
	Count    int   // Количество записей, может превышать Capacity
	Capacity int   // Максимум записей на сеанс
	Level    Level // Уровень первой записи или LevelNone
}

// IsEmpty returns true if nobody is registered for the session
func (s *SessionStats) IsEmpty() bool {
	return s.Count == 0
}

// IsFull returns true if the session accepts no more registrations
func (s *SessionStats) IsFull() bool {
	return s.Count >= s.Capacity
}

// HasLevel returns true if the session has a representative level
func (s *SessionStats) HasLevel() bool {
	return s.Level != LevelNone
}

// Remaining returns the number of free places, never negative
func (s *SessionStats) Remaining() int {
	if s.Count >= s.Capacity {
		return 0
	}
	return s.Capacity - s.Count
}

// IsOverbooked returns true if the table holds more rows than capacity allows
func (s *SessionStats) IsOverbooked() bool {
	return s.Count > s.Capacity
}
