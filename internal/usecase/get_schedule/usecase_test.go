package get_schedule

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TennisBooking/internal/domain"
	"github.com/m04kA/SMC-TennisBooking/internal/service/availability"
	"github.com/m04kA/SMC-TennisBooking/pkg/logger"
	"github.com/m04kA/SMC-TennisBooking/pkg/types"
)

type stubStore struct {
	table domain.Table
	reads int
}

func (s *stubStore) ReadAll(_ context.Context) domain.Table {
	s.reads++
	return s.table
}

func TestUseCase_Execute(t *testing.T) {
	store := &stubStore{table: domain.Table{
		Registrations: []domain.Registration{
			{FirstName: "A", Level: domain.LevelAdvanced, Day: "Monday", TimeSlot: "10:00"},
			{FirstName: "B", Level: domain.LevelBeginner, Day: "Monday", TimeSlot: "10:00"},
			{FirstName: "C", Level: domain.LevelBeginner, Day: "Tuesday", TimeSlot: "11:00"},
		},
		Strategy: domain.ParseByHeader,
	}}
	schedule := domain.Schedule{
		Days:      []string{"Monday", "Tuesday"},
		TimeSlots: []types.TimeString{"10:00", "11:00"},
	}
	uc := NewUseCase(store, availability.NewEngine(6), schedule, logger.NewNop())

	resp, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, store.reads, "grid must be built from one snapshot")
	assert.Equal(t, 3, resp.Total)
	assert.Equal(t, schedule.Days, resp.Days)
	require.Len(t, resp.Sessions, 2)
	require.Len(t, resp.Sessions[0], 2)

	monday10 := resp.Sessions[0][0]
	assert.Equal(t, 2, monday10.Count)
	assert.Equal(t, domain.LevelAdvanced, monday10.Level)

	monday11 := resp.Sessions[0][1]
	assert.True(t, monday11.IsEmpty())

	tuesday11 := resp.Sessions[1][1]
	assert.Equal(t, 1, tuesday11.Count)
}

func TestUseCase_ExecuteOnEmptyTable(t *testing.T) {
	store := &stubStore{table: domain.EmptyTable()}
	schedule := domain.Schedule{Days: domain.DefaultDays, TimeSlots: []types.TimeString{"10:00"}}
	uc := NewUseCase(store, availability.NewEngine(6), schedule, logger.NewNop())

	resp, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, resp.Total)
	for _, row := range resp.Sessions {
		for _, cell := range row {
			assert.True(t, cell.IsEmpty())
			assert.False(t, cell.IsFull())
		}
	}
}
