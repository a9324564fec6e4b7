package registrations

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/m04kA/SMC-TennisBooking/internal/domain"
	"github.com/m04kA/SMC-TennisBooking/internal/infra/sheet"
	"github.com/m04kA/SMC-TennisBooking/internal/infra/sheet/memory"
	"github.com/m04kA/SMC-TennisBooking/internal/infra/sheet/mocks"
	"github.com/m04kA/SMC-TennisBooking/internal/infra/storage/registration"
	"github.com/m04kA/SMC-TennisBooking/internal/service/registrations/models"
	"github.com/m04kA/SMC-TennisBooking/pkg/logger"
	"github.com/m04kA/SMC-TennisBooking/pkg/types"
)

func newStore(backend sheet.Sheet) *registration.Store {
	return registration.NewStore(backend, registration.NewMemoryCache(time.Minute, time.Now), nil, logger.NewNop())
}

func sampleRows() [][]string {
	return [][]string{
		domain.SheetHeader,
		{"Ann", "Smith", "Beginner", "Monday", "10:00", "2026-01-05T09:00:00Z"},
		{"Bob", "Brown", "Advanced", "Tuesday", "11:00", ""},
		{"Eve", "Stone", "Beginner", "Monday", "10:00", ""},
	}
}

func TestService_List(t *testing.T) {
	svc := NewService(newStore(memory.New(sampleRows()...)), logger.NewNop())

	resp, err := svc.List(context.Background(), nil)
	require.NoError(t, err)

	require.Len(t, resp.Registrations, 3)
	assert.Equal(t, string(domain.ParseByHeader), resp.Strategy)
	assert.Equal(t, 2, resp.Registrations[0].Position)
	assert.Equal(t, 4, resp.Registrations[2].Position)
	require.NotNil(t, resp.Registrations[0].CreatedAt)
	assert.Nil(t, resp.Registrations[1].CreatedAt)
}

func TestService_ListFiltered(t *testing.T) {
	svc := NewService(newStore(memory.New(sampleRows()...)), logger.NewNop())

	day := "Monday"
	slot := types.TimeString("10:00")
	resp, err := svc.List(context.Background(), &models.ListRequest{Day: &day, TimeSlot: &slot})
	require.NoError(t, err)

	require.Len(t, resp.Registrations, 2)
	assert.Equal(t, "Ann", resp.Registrations[0].FirstName)
	assert.Equal(t, "Eve", resp.Registrations[1].FirstName)
	assert.Equal(t, 4, resp.Registrations[1].Position)
}

func TestService_ListBackendDown(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockSheet(ctrl)
	backend.EXPECT().ReadRows(gomock.Any()).Return(nil, sheet.ErrUnavailable)

	svc := NewService(newStore(backend), logger.NewNop())

	resp, err := svc.List(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, resp.Registrations)
}

func TestService_DeleteThenList(t *testing.T) {
	backend := memory.New(sampleRows()...)
	svc := NewService(newStore(backend), logger.NewNop())
	ctx := context.Background()

	before, err := svc.List(ctx, nil)
	require.NoError(t, err)

	// Удаляем вторую запись по позиции из списка
	require.NoError(t, svc.Delete(ctx, before.Registrations[1].Position))

	after, err := svc.List(ctx, nil)
	require.NoError(t, err)
	require.Len(t, after.Registrations, 2)
	assert.Equal(t, "Ann", after.Registrations[0].FirstName)
	assert.Equal(t, "Eve", after.Registrations[1].FirstName)
	assert.Equal(t, 3, after.Registrations[1].Position)
}

func TestService_DeleteErrors(t *testing.T) {
	tests := []struct {
		name     string
		position int
		wantErr  error
	}{
		{name: "zero position", position: 0, wantErr: ErrInvalidInput},
		{name: "negative position", position: -3, wantErr: ErrInvalidInput},
		{name: "header row", position: 1, wantErr: ErrNotFound},
		{name: "past the end", position: 99, wantErr: ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := memory.New(sampleRows()...)
			svc := NewService(newStore(backend), logger.NewNop())

			err := svc.Delete(context.Background(), tt.position)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr))
			assert.Equal(t, 4, backend.Len(), "table must not be mutated")
		})
	}
}

func TestService_DeleteBackendDown(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockSheet(ctrl)
	backend.EXPECT().ReadRows(gomock.Any()).Return(nil, sheet.ErrUnavailable)

	svc := NewService(newStore(backend), logger.NewNop())

	err := svc.Delete(context.Background(), 2)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInternal))
}
