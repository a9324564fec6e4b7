package availability

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TennisBooking/internal/domain"
	"github.com/m04kA/SMC-TennisBooking/pkg/types"
)

func reg(first string, level domain.Level, day string, slot types.TimeString) domain.Registration {
	return domain.Registration{
		FirstName: first,
		LastName:  "Test",
		Level:     level,
		Day:       day,
		TimeSlot:  slot,
	}
}

func tableOf(regs ...domain.Registration) domain.Table {
	return domain.Table{Registrations: regs, Strategy: domain.ParseByHeader}
}

func nOf(n int, level domain.Level, day string, slot types.TimeString) []domain.Registration {
	regs := make([]domain.Registration, n)
	for i := range regs {
		regs[i] = reg("Player", level, day, slot)
	}
	return regs
}

func TestEngine_SessionStats(t *testing.T) {
	engine := NewEngine(6)

	table := tableOf(
		reg("Ayse", domain.LevelIntermediate, "Monday", "10:00"),
		reg("Mehmet", domain.LevelBeginner, "Monday", "10:00"),
		reg("Can", domain.LevelAdvanced, "Monday", "11:00"),
		reg("Elif", domain.LevelBeginner, "Tuesday", "10:00"),
	)

	t.Run("counts only exact day and slot matches", func(t *testing.T) {
		stats := engine.SessionStats(table, "Monday", "10:00")

		assert.Equal(t, 2, stats.Count)
		assert.Equal(t, 6, stats.Capacity)
		assert.Equal(t, 4, stats.Remaining())
		assert.False(t, stats.IsFull())
		assert.False(t, stats.IsEmpty())
	})

	t.Run("level is taken from the first matching row", func(t *testing.T) {
		stats := engine.SessionStats(table, "Monday", "10:00")

		assert.Equal(t, domain.LevelIntermediate, stats.Level)
		assert.True(t, stats.HasLevel())
	})

	t.Run("empty session reports none and is explicitly empty", func(t *testing.T) {
		stats := engine.SessionStats(table, "Sunday", "10:00")

		assert.Equal(t, 0, stats.Count)
		assert.Equal(t, domain.LevelNone, stats.Level)
		assert.True(t, stats.IsEmpty())
		assert.False(t, stats.HasLevel())
		assert.False(t, stats.IsFull())
	})

	t.Run("empty and zero-value tables", func(t *testing.T) {
		for _, tbl := range []domain.Table{{}, domain.EmptyTable()} {
			stats := engine.SessionStats(tbl, "Monday", "10:00")
			assert.Equal(t, 0, stats.Count)
			assert.Equal(t, domain.LevelNone, stats.Level)
			assert.False(t, stats.IsFull())
		}
	})
}

func TestEngine_FullBoundary(t *testing.T) {
	engine := NewEngine(6)

	tests := []struct {
		name     string
		count    int
		wantFull bool
	}{
		{name: "capacity minus one", count: 5, wantFull: false},
		{name: "exactly capacity", count: 6, wantFull: true},
		{name: "written out of band above capacity", count: 7, wantFull: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := tableOf(nOf(tt.count, domain.LevelBeginner, "Monday", "10:00")...)

			stats := engine.SessionStats(table, "Monday", "10:00")

			assert.Equal(t, tt.count, stats.Count)
			assert.Equal(t, tt.wantFull, stats.IsFull())
			assert.Equal(t, !tt.wantFull, engine.CanAccept(table, "Monday", "10:00"))
			assert.GreaterOrEqual(t, stats.Remaining(), 0)
		})
	}
}

func TestEngine_AllSessionsForDisplay(t *testing.T) {
	engine := NewEngine(2)
	days := []string{"Monday", "Tuesday"}
	slots := []types.TimeString{"10:00", "11:00"}

	table := tableOf(
		reg("A", domain.LevelAdvanced, "Monday", "11:00"),
		reg("B", domain.LevelBeginner, "Monday", "11:00"),
		reg("C", domain.LevelBeginner, "Tuesday", "10:00"),
		reg("D", domain.LevelBeginner, "Wednesday", "10:00"),
	)

	grid := engine.AllSessionsForDisplay(table, days, slots)

	want := [][]domain.SessionStats{
		{
			{Day: "Monday", TimeSlot: "10:00", Count: 0, Capacity: 2, Level: domain.LevelNone},
			{Day: "Monday", TimeSlot: "11:00", Count: 2, Capacity: 2, Level: domain.LevelAdvanced},
		},
		{
			{Day: "Tuesday", TimeSlot: "10:00", Count: 1, Capacity: 2, Level: domain.LevelBeginner},
			{Day: "Tuesday", TimeSlot: "11:00", Count: 0, Capacity: 2, Level: domain.LevelNone},
		},
	}
	if diff := cmp.Diff(want, grid); diff != "" {
		t.Errorf("grid mismatch (-want +got):\n%s", diff)
	}
}

func TestEngine_GridMatchesSessionStats(t *testing.T) {
	engine := NewEngine(6)
	days := domain.DefaultDays
	slots, err := GenerateTimeSlots("07:00", "22:00", 60)
	require.NoError(t, err)

	regs := append(nOf(3, domain.LevelBeginner, "Friday", "18:00"), nOf(6, domain.LevelAdvanced, "Monday", "07:00")...)
	regs = append(regs, reg("X", domain.LevelIntermediate, "Friday", "18:00"))
	table := tableOf(regs...)

	grid := engine.AllSessionsForDisplay(table, days, slots)

	require.Len(t, grid, len(days))
	for d, day := range days {
		require.Len(t, grid[d], len(slots))
		for s, slot := range slots {
			assert.Equal(t, engine.SessionStats(table, day, slot), grid[d][s], "%s %s", day, slot)
		}
	}
}
