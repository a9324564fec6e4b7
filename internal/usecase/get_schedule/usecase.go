package get_schedule

import (
	"context"

	"github.com/m04kA/SMC-TennisBooking/internal/domain"
)

// UseCase use case построения недельной сетки сеансов
type UseCase struct {
	store    RegistrationStore
	engine   AvailabilityEngine
	schedule domain.Schedule
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	store RegistrationStore,
	engine AvailabilityEngine,
	schedule domain.Schedule,
	logger Logger,
) *UseCase {
	return &UseCase{
		store:    store,
		engine:   engine,
		schedule: schedule,
		logger:   logger,
	}
}

// Execute строит сетку по одному снимку таблицы
func (uc *UseCase) Execute(ctx context.Context) (*Response, error) {
	table := uc.store.ReadAll(ctx)

	sessions := uc.engine.AllSessionsForDisplay(table, uc.schedule.Days, uc.schedule.TimeSlots)

	uc.logger.Info("GetSchedule: built grid %dx%d from %d registrations",
		len(uc.schedule.Days), len(uc.schedule.TimeSlots), table.Len())

	return &Response{
		Days:      uc.schedule.Days,
		TimeSlots: uc.schedule.TimeSlots,
		Sessions:  sessions,
		Total:     table.Len(),
	}, nil
}
