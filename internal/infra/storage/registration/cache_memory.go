package registration

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/SMC-TennisBooking/internal/domain"
)

// MemoryCache кэш снимка в памяти процесса
// Устаревание проверяется лениво при чтении, фоновых таймеров нет
type MemoryCache struct {
	mu          sync.Mutex
	ttl         time.Duration
	now         Clock
	lastRefresh time.Time
	table       domain.Table
	valid       bool
}

// NewMemoryCache создает кэш с заданным временем жизни
func NewMemoryCache(ttl time.Duration, now Clock) *MemoryCache {
	if now == nil {
		now = time.Now
	}
	return &MemoryCache{ttl: ttl, now: now}
}

// Get возвращает снимок, если с момента заполнения прошло меньше TTL
func (c *MemoryCache) Get(_ context.Context) (domain.Table, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.valid || c.now().Sub(c.lastRefresh) >= c.ttl {
		return domain.Table{}, false
	}
	return cloneTable(c.table), true
}

// Set заполняет кэш и запоминает время заполнения
func (c *MemoryCache) Set(_ context.Context, table domain.Table) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.table = cloneTable(table)
	c.lastRefresh = c.now()
	c.valid = true
}

// Invalidate сбрасывает кэш: следующее чтение пойдёт в хранилище
func (c *MemoryCache) Invalidate(_ context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.table = domain.Table{}
	c.valid = false
}

func cloneTable(t domain.Table) domain.Table {
	regs := make([]domain.Registration, len(t.Registrations))
	copy(regs, t.Registrations)
	return domain.Table{Registrations: regs, Strategy: t.Strategy}
}
