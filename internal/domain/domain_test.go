package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTable_PositionOf(t *testing.T) {
	withHeader := Table{
		Registrations: []Registration{{FirstName: "A"}, {FirstName: "B"}},
		Strategy:      ParseByHeader,
	}
	assert.Equal(t, 1, withHeader.HeaderRows())
	assert.Equal(t, 2, withHeader.PositionOf(0))
	assert.Equal(t, 3, withHeader.PositionOf(1))

	positional := Table{Registrations: []Registration{{FirstName: "A"}}, Strategy: ParsePositional}
	assert.Equal(t, 0, positional.HeaderRows())
	assert.Equal(t, 1, positional.PositionOf(0))

	stored := Table{
		Registrations: []Registration{{FirstName: "A", Position: 2}, {FirstName: "B", Position: 5}},
		Strategy:      ParseByHeader,
	}
	assert.Equal(t, 5, stored.PositionOf(1))
}

func TestSessionStats(t *testing.T) {
	full := SessionStats{Count: 7, Capacity: 6, Level: LevelBeginner}
	assert.True(t, full.IsFull())
	assert.True(t, full.IsOverbooked())
	assert.Equal(t, 0, full.Remaining())

	empty := SessionStats{Capacity: 6, Level: LevelNone}
	assert.True(t, empty.IsEmpty())
	assert.False(t, empty.HasLevel())
	assert.Equal(t, 6, empty.Remaining())
}

func TestLevel_IsValid(t *testing.T) {
	assert.True(t, LevelAdvanced.IsValid())
	assert.False(t, LevelNone.IsValid())
	assert.False(t, Level("Expert").IsValid())
}

func TestSchedule(t *testing.T) {
	s := Schedule{Days: DefaultDays, TimeSlots: nil}
	assert.True(t, s.HasDay("Sunday"))
	assert.False(t, s.HasDay("Pazar"))
	assert.False(t, s.HasTimeSlot("10:00"))
}
