package get_schedule

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TennisBooking/internal/domain"
	"github.com/m04kA/SMC-TennisBooking/internal/infra/sheet/memory"
	"github.com/m04kA/SMC-TennisBooking/internal/infra/storage/registration"
	"github.com/m04kA/SMC-TennisBooking/internal/service/availability"
	getSchedule "github.com/m04kA/SMC-TennisBooking/internal/usecase/get_schedule"
	"github.com/m04kA/SMC-TennisBooking/pkg/logger"
	"github.com/m04kA/SMC-TennisBooking/pkg/types"
)

func TestHandler_Handle(t *testing.T) {
	backend := memory.New(domain.SheetHeader,
		[]string{"Ann", "Smith", "Intermediate", "Monday", "10:00", ""},
		[]string{"Bob", "Brown", "Advanced", "Monday", "10:00", ""},
	)
	store := registration.NewStore(backend, registration.NewMemoryCache(time.Minute, time.Now), nil, logger.NewNop())
	schedule := domain.Schedule{
		Days:      []string{"Monday", "Tuesday"},
		TimeSlots: []types.TimeString{"10:00", "11:00"},
	}
	uc := getSchedule.NewUseCase(store, availability.NewEngine(2), schedule, logger.NewNop())
	h := NewHandler(uc, logger.NewNop())

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/schedule", nil).WithContext(context.Background()))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ScheduleResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, []string{"Monday", "Tuesday"}, resp.Days)
	assert.Equal(t, []string{"10:00", "11:00"}, resp.TimeSlots)
	assert.Equal(t, 2, resp.Total)
	require.Len(t, resp.Sessions, 2)

	full := resp.Sessions[0][0]
	assert.Equal(t, 2, full.Count)
	assert.True(t, full.IsFull)
	require.NotNil(t, full.Level)
	assert.Equal(t, "Intermediate", *full.Level)

	empty := resp.Sessions[1][1]
	assert.True(t, empty.IsEmpty)
	assert.False(t, empty.IsFull)
	assert.Nil(t, empty.Level)
	assert.Equal(t, 2, empty.Remaining)
}
