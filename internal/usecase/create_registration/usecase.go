package create_registration

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-TennisBooking/internal/domain"
)

// UseCase use case для записи на сеанс
type UseCase struct {
	store        RegistrationStore
	engine       AvailabilityEngine
	schedule     domain.Schedule
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	store RegistrationStore,
	engine AvailabilityEngine,
	schedule domain.Schedule,
	logger Logger,
) *UseCase {
	return &UseCase{
		store:        store,
		engine:       engine,
		schedule:     schedule,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case записи на сеанс
// Заполненность перепроверяется по свежему чтению таблицы, блокировок нет
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	normalizeRequest(req)
	if err := validateRequest(req, uc.schedule); err != nil {
		uc.logger.Warn("CreateRegistration: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("CreateRegistration: name=%s %s, level=%s, day=%s, time=%s",
		req.FirstName, req.LastName, req.Level, req.Day, req.TimeSlot)

	// 2. Свежее чтение в обход кэша
	table, err := uc.store.Refresh(ctx)
	if err != nil {
		uc.logger.Error("CreateRegistration: failed to read table: %v", err)
		return nil, fmt.Errorf("%w: failed to read table: %v", ErrStoreUnavailable, err)
	}

	// 3. Проверяем наличие мест
	stats := uc.engine.SessionStats(table, req.Day, req.TimeSlot)
	if !uc.engine.CanAccept(table, req.Day, req.TimeSlot) {
		uc.logger.Warn("CreateRegistration: session %s %s is full (%d/%d)",
			req.Day, req.TimeSlot, stats.Count, stats.Capacity)
		return nil, fmt.Errorf("%w: %s %s has %d/%d", ErrSessionFull, req.Day, req.TimeSlot, stats.Count, stats.Capacity)
	}

	// 4. Сохраняем запись
	reg := &domain.Registration{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Level:     req.Level,
		Day:       req.Day,
		TimeSlot:  req.TimeSlot,
		CreatedAt: uc.timeProvider.Now().UTC().Truncate(time.Second),
	}
	if err := uc.store.Append(ctx, reg); err != nil {
		uc.logger.Error("CreateRegistration: failed to append registration: %v", err)
		return nil, fmt.Errorf("%w: failed to append registration: %v", ErrStoreUnavailable, err)
	}

	// Состояние сеанса с учётом новой записи
	stats.Count++
	if stats.Count == 1 {
		stats.Level = reg.Level
	}

	uc.logger.Info("CreateRegistration: registered %s for %s %s (%d/%d)",
		reg.FullName(), reg.Day, reg.TimeSlot, stats.Count, stats.Capacity)

	return &Response{
		FirstName: reg.FirstName,
		LastName:  reg.LastName,
		Level:     reg.Level,
		Day:       reg.Day,
		TimeSlot:  reg.TimeSlot,
		CreatedAt: reg.CreatedAt,
		Session:   stats,
	}, nil
}
