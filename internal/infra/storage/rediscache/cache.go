package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-TennisBooking/internal/domain"
)

// DefaultKey ключ снимка таблицы по умолчанию
const DefaultKey = "tennis:registrations:table"

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Cache снимок таблицы в Redis, общий для нескольких экземпляров сервиса
// TTL выставляется самим Redis (SET ... EX), сброс - DEL
// Любая ошибка Redis считается промахом
type Cache struct {
	client *redis.Client
	key    string
	ttl    time.Duration
	logger Logger
}

// New создает кэш поверх готового клиента
func New(client *redis.Client, key string, ttl time.Duration, logger Logger) *Cache {
	if key == "" {
		key = DefaultKey
	}
	return &Cache{
		client: client,
		key:    key,
		ttl:    ttl,
		logger: logger,
	}
}

// Get возвращает снимок, если ключ ещё жив
func (c *Cache) Get(ctx context.Context) (domain.Table, bool) {
	data, err := c.client.Get(ctx, c.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.Table{}, false
	}
	if err != nil {
		c.logger.Warn("rediscache: get %s failed, treating as miss: %v", c.key, err)
		return domain.Table{}, false
	}

	var table domain.Table
	if err := json.Unmarshal(data, &table); err != nil {
		c.logger.Warn("rediscache: corrupted snapshot under %s, treating as miss: %v", c.key, err)
		return domain.Table{}, false
	}
	if table.Registrations == nil {
		table.Registrations = []domain.Registration{}
	}

	return table, true
}

// Set сохраняет снимок с TTL
func (c *Cache) Set(ctx context.Context, table domain.Table) {
	data, err := json.Marshal(table)
	if err != nil {
		c.logger.Error("rediscache: marshal snapshot: %v", err)
		return
	}

	if err := c.client.Set(ctx, c.key, data, c.ttl).Err(); err != nil {
		c.logger.Warn("rediscache: set %s failed: %v", c.key, err)
	}
}

// Invalidate удаляет снимок
func (c *Cache) Invalidate(ctx context.Context) {
	if err := c.client.Del(ctx, c.key).Err(); err != nil {
		// Другие экземпляры могут увидеть устаревший снимок до истечения TTL
		c.logger.Error("rediscache: del %s failed, stale snapshot may be served up to ttl=%s: %v", c.key, c.ttl, err)
	}
}
