package create_registration

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TennisBooking/internal/domain"
	createRegistration "github.com/m04kA/SMC-TennisBooking/internal/usecase/create_registration"
	"github.com/m04kA/SMC-TennisBooking/pkg/logger"
)

type stubUseCase struct {
	got  *createRegistration.Request
	resp *createRegistration.Response
	err  error
}

func (s *stubUseCase) Execute(_ context.Context, req *createRegistration.Request) (*createRegistration.Response, error) {
	s.got = req
	return s.resp, s.err
}

const validBody = `{"firstName":"Ann","lastName":"Smith","level":"Beginner","day":"Monday","timeSlot":"10:00"}`

func TestHandler_Handle(t *testing.T) {
	created := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		body       string
		useCase    *stubUseCase
		wantStatus int
	}{
		{
			name: "created",
			body: validBody,
			useCase: &stubUseCase{resp: &createRegistration.Response{
				FirstName: "Ann", LastName: "Smith", Level: domain.LevelBeginner,
				Day: "Monday", TimeSlot: "10:00", CreatedAt: created,
				Session: domain.SessionStats{Day: "Monday", TimeSlot: "10:00", Count: 1, Capacity: 6, Level: domain.LevelBeginner},
			}},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "malformed json",
			body:       `{"firstName":`,
			useCase:    &stubUseCase{},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown field",
			body:       `{"firstName":"Ann","age":30}`,
			useCase:    &stubUseCase{},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "validation failed",
			body:       validBody,
			useCase:    &stubUseCase{err: fmt.Errorf("%w: empty name", createRegistration.ErrValidationFailed)},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "session full",
			body:       validBody,
			useCase:    &stubUseCase{err: fmt.Errorf("%w: 6/6", createRegistration.ErrSessionFull)},
			wantStatus: http.StatusConflict,
		},
		{
			name:       "store unavailable",
			body:       validBody,
			useCase:    &stubUseCase{err: createRegistration.ErrStoreUnavailable},
			wantStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(tt.useCase, logger.NewNop())

			req := httptest.NewRequest(http.MethodPost, "/api/v1/registrations", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			h.Handle(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		})
	}
}

func TestHandler_HandleResponseBody(t *testing.T) {
	uc := &stubUseCase{resp: &createRegistration.Response{
		FirstName: "Ann", LastName: "Smith", Level: domain.LevelBeginner,
		Day: "Monday", TimeSlot: "10:00", CreatedAt: time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC),
		Session: domain.SessionStats{Day: "Monday", TimeSlot: "10:00", Count: 6, Capacity: 6, Level: domain.LevelBeginner},
	}}
	h := NewHandler(uc, logger.NewNop())

	body := `{"firstName":"Ann","lastName":"Smith","level":"Beginner","day":"Monday","timeSlot":"10:00","endTime":"11:00"}`
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/registrations", strings.NewReader(body)))
	require.Equal(t, http.StatusCreated, rec.Code)

	require.NotNil(t, uc.got.EndTime)
	assert.Equal(t, "11:00", uc.got.EndTime.String())

	var resp RegistrationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "2026-01-05T09:00:00Z", resp.CreatedAt)
	assert.True(t, resp.Session.IsFull)
	assert.Equal(t, 0, resp.Session.Remaining)
	require.NotNil(t, resp.Session.Level)
	assert.Equal(t, "Beginner", *resp.Session.Level)
}
