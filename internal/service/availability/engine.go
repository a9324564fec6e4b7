package availability

import (
	"github.com/m04kA/SMC-TennisBooking/internal/domain"
	"github.com/m04kA/SMC-TennisBooking/pkg/types"
)

// Engine вычисляет заполненность сеансов по снимку таблицы
// Не хранит состояния: один и тот же снимок всегда даёт один и тот же результат
type Engine struct {
	maxCapacity int
}

// NewEngine создает движок с заданной вместимостью сеанса
func NewEngine(maxCapacity int) *Engine {
	return &Engine{maxCapacity: maxCapacity}
}

// SessionStats считает записи сеанса (day, timeSlot)
// Уровень сеанса - уровень первой найденной записи в порядке хранения
func (e *Engine) SessionStats(table domain.Table, day string, timeSlot types.TimeString) domain.SessionStats {
	stats := domain.SessionStats{
		Day:      day,
		TimeSlot: timeSlot,
		Capacity: e.maxCapacity,
		Level:    domain.LevelNone,
	}

	for i := range table.Registrations {
		reg := &table.Registrations[i]
		if !reg.InSession(day, timeSlot) {
			continue
		}
		if stats.Count == 0 {
			stats.Level = reg.Level
		}
		stats.Count++
	}

	return stats
}

// CanAccept возвращает true, если в сеансе есть свободные места
// Перед записью вызывать на свежем (не кэшированном) снимке
func (e *Engine) CanAccept(table domain.Table, day string, timeSlot types.TimeString) bool {
	stats := e.SessionStats(table, day, timeSlot)
	return !stats.IsFull()
}

// AllSessionsForDisplay строит сетку [день][слот] по одному снимку таблицы
func (e *Engine) AllSessionsForDisplay(table domain.Table, days []string, timeSlots []types.TimeString) [][]domain.SessionStats {
	type sessionKey struct {
		day      string
		timeSlot types.TimeString
	}

	// Один проход по таблице, чтобы все ячейки были согласованы между собой
	counts := make(map[sessionKey]int, len(table.Registrations))
	levels := make(map[sessionKey]domain.Level)
	for i := range table.Registrations {
		reg := &table.Registrations[i]
		key := sessionKey{day: reg.Day, timeSlot: reg.TimeSlot}
		if counts[key] == 0 {
			levels[key] = reg.Level
		}
		counts[key]++
	}

	grid := make([][]domain.SessionStats, len(days))
	for d, day := range days {
		row := make([]domain.SessionStats, len(timeSlots))
		for s, slot := range timeSlots {
			key := sessionKey{day: day, timeSlot: slot}
			level, ok := levels[key]
			if !ok {
				level = domain.LevelNone
			}
			row[s] = domain.SessionStats{
				Day:      day,
				TimeSlot: slot,
				Count:    counts[key],
				Capacity: e.maxCapacity,
				Level:    level,
			}
		}
		grid[d] = row
	}

	return grid
}
