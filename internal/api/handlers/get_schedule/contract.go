package get_schedule

import (
	"context"

	getSchedule "github.com/m04kA/SMC-TennisBooking/internal/usecase/get_schedule"
)

type GetScheduleUseCase interface {
	Execute(ctx context.Context) (*getSchedule.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
