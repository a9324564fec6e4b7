package delete_registration

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-TennisBooking/internal/service/registrations"
	"github.com/m04kA/SMC-TennisBooking/pkg/logger"
)

type stubService struct {
	calls int
	err   error
}

func (s *stubService) Delete(_ context.Context, _ int) error {
	s.calls++
	return s.err
}

func TestHandler_Handle(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		err        error
		wantStatus int
		wantCalls  int
	}{
		{name: "deleted", path: "/api/v1/registrations/2", wantStatus: http.StatusNoContent, wantCalls: 1},
		{name: "not a number", path: "/api/v1/registrations/abc", wantStatus: http.StatusBadRequest},
		{name: "zero", path: "/api/v1/registrations/0", wantStatus: http.StatusBadRequest},
		{name: "out of range", path: "/api/v1/registrations/42", err: registrations.ErrNotFound, wantStatus: http.StatusNotFound, wantCalls: 1},
		{
			name:       "store unavailable",
			path:       "/api/v1/registrations/2",
			err:        fmt.Errorf("%w: Delete - store error", registrations.ErrInternal),
			wantStatus: http.StatusServiceUnavailable,
			wantCalls:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubService{err: tt.err}
			router := mux.NewRouter()
			router.HandleFunc("/api/v1/registrations/{position}", NewHandler(svc, logger.NewNop()).Handle).
				Methods(http.MethodDelete)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCalls, svc.calls)
		})
	}
}
