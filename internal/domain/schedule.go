package domain

import "github.com/m04kA/SMC-TennisBooking/pkg/types"

// Schedule сетка недели: дни и предлагаемые временные слоты
type Schedule struct {
	Days      []string
	TimeSlots []types.TimeString
}

// HasDay returns true if the day is offered
func (s *Schedule) HasDay(day string) bool {
	for _, d := range s.Days {
		if d == day {
			return true
		}
	}
	return false
}

// HasTimeSlot returns true if the time slot is offered
func (s *Schedule) HasTimeSlot(slot types.TimeString) bool {
	for _, ts := range s.TimeSlots {
		if ts == slot {
			return true
		}
	}
	return false
}
