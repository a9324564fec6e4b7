package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-TennisBooking/internal/domain"
	"github.com/m04kA/SMC-TennisBooking/pkg/types"
)

const (
	StorageDriverMemory       = "memory"
	StorageDriverPostgres     = "postgres"
	StorageDriverGoogleSheets = "googlesheets"

	CacheDriverMemory = "memory"
	CacheDriverRedis  = "redis"
)

// ErrInvalidConfig возвращается, когда конфигурация не прошла проверку
var ErrInvalidConfig = errors.New("invalid config")

// Config конфигурация сервиса
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Logs    LogsConfig    `toml:"logs"`
	Metrics MetricsConfig `toml:"metrics"`
	Booking BookingConfig `toml:"booking"`
	Storage StorageConfig `toml:"storage"`
	Cache   CacheConfig   `toml:"cache"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"` // Пусто - только stdout
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// BookingConfig параметры расписания и вместимости
type BookingConfig struct {
	MaxCapacity     int      `toml:"max_capacity"`
	CacheTTLSeconds int      `toml:"cache_ttl_seconds"`
	Days            []string `toml:"days"`
	SlotStart       string   `toml:"slot_start"`        // Первый слот, "07:00"
	SlotEnd         string   `toml:"slot_end"`          // Конец сетки (не включается), "22:00"
	SlotStepMinutes int      `toml:"slot_step_minutes"` // Шаг сетки
}

// CacheTTL returns the read cache lifetime
func (c BookingConfig) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLSeconds) * time.Second
}

type StorageConfig struct {
	Driver       string             `toml:"driver"` // memory | postgres | googlesheets
	Postgres     PostgresConfig     `toml:"postgres"`
	GoogleSheets GoogleSheetsConfig `toml:"google_sheets"`
}

type PostgresConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
	AutoMigrate     bool   `toml:"auto_migrate"`      // Создать таблицу листа при старте
}

// DSN returns the lib/pq connection string
func (c PostgresConfig) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     c.DBName,
		RawQuery: url.Values{"sslmode": []string{c.SSLMode}}.Encode(),
	}
	return u.String()
}

type GoogleSheetsConfig struct {
	CredentialsFile string `toml:"credentials_file"`
	SpreadsheetID   string `toml:"spreadsheet_id"`
	SheetName       string `toml:"sheet_name"`
	SheetID         int64  `toml:"sheet_id"`
	Timeout         int    `toml:"timeout"` // секунды
}

type CacheConfig struct {
	Driver   string `toml:"driver"` // memory | redis
	RedisURL string `toml:"redis_url"`
	RedisKey string `toml:"redis_key"`
	PoolSize int    `toml:"pool_size"`
}

// Load читает конфигурацию из TOML файла, подставляет значения по умолчанию и проверяет её
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 10
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 10
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 15
	}

	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}

	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "tennis-booking"
	}

	if c.Booking.MaxCapacity == 0 {
		c.Booking.MaxCapacity = domain.DefaultMaxCapacity
	}
	if c.Booking.CacheTTLSeconds == 0 {
		c.Booking.CacheTTLSeconds = domain.DefaultCacheTTLSeconds
	}
	if len(c.Booking.Days) == 0 {
		c.Booking.Days = append([]string(nil), domain.DefaultDays...)
	}
	if c.Booking.SlotStart == "" {
		c.Booking.SlotStart = domain.DefaultSlotStart
	}
	if c.Booking.SlotEnd == "" {
		c.Booking.SlotEnd = domain.DefaultSlotEnd
	}
	if c.Booking.SlotStepMinutes == 0 {
		c.Booking.SlotStepMinutes = domain.DefaultSlotStepMinutes
	}

	if c.Storage.Driver == "" {
		c.Storage.Driver = StorageDriverMemory
	}
	if c.Storage.Postgres.Port == 0 {
		c.Storage.Postgres.Port = 5432
	}
	if c.Storage.Postgres.SSLMode == "" {
		c.Storage.Postgres.SSLMode = "disable"
	}
	if c.Storage.Postgres.MaxOpenConns == 0 {
		c.Storage.Postgres.MaxOpenConns = 10
	}
	if c.Storage.Postgres.MaxIdleConns == 0 {
		c.Storage.Postgres.MaxIdleConns = 5
	}
	if c.Storage.Postgres.ConnMaxLifetime == 0 {
		c.Storage.Postgres.ConnMaxLifetime = 300
	}
	if c.Storage.GoogleSheets.SheetName == "" {
		c.Storage.GoogleSheets.SheetName = "Sheet1"
	}
	if c.Storage.GoogleSheets.Timeout == 0 {
		c.Storage.GoogleSheets.Timeout = 10
	}

	if c.Cache.Driver == "" {
		c.Cache.Driver = CacheDriverMemory
	}
}

// Validate проверяет согласованность значений
func (c *Config) Validate() error {
	if c.Booking.MaxCapacity < 1 {
		return fmt.Errorf("%w: booking.max_capacity must be positive, got %d", ErrInvalidConfig, c.Booking.MaxCapacity)
	}
	if c.Booking.CacheTTLSeconds < 0 {
		return fmt.Errorf("%w: booking.cache_ttl_seconds must not be negative", ErrInvalidConfig)
	}
	if c.Booking.SlotStepMinutes < domain.MinSlotStepMinutes {
		return fmt.Errorf("%w: booking.slot_step_minutes must be at least %d", ErrInvalidConfig, domain.MinSlotStepMinutes)
	}

	start, err := types.NewTimeStringFromString(c.Booking.SlotStart)
	if err != nil {
		return fmt.Errorf("%w: booking.slot_start: %v", ErrInvalidConfig, err)
	}
	end, err := types.NewTimeStringFromString(c.Booking.SlotEnd)
	if err != nil {
		return fmt.Errorf("%w: booking.slot_end: %v", ErrInvalidConfig, err)
	}
	if !start.IsBefore(end) {
		return fmt.Errorf("%w: booking.slot_start %s must be before slot_end %s", ErrInvalidConfig, start, end)
	}

	if len(c.Booking.Days) != domain.DaysPerWeek {
		return fmt.Errorf("%w: booking.days must list %d labels, got %d",
			ErrInvalidConfig, domain.DaysPerWeek, len(c.Booking.Days))
	}

	seen := make(map[string]struct{}, len(c.Booking.Days))
	for _, day := range c.Booking.Days {
		if day == "" {
			return fmt.Errorf("%w: booking.days contains an empty label", ErrInvalidConfig)
		}
		if _, dup := seen[day]; dup {
			return fmt.Errorf("%w: booking.days contains %q twice", ErrInvalidConfig, day)
		}
		seen[day] = struct{}{}
	}

	switch c.Storage.Driver {
	case StorageDriverMemory:
	case StorageDriverPostgres:
		if c.Storage.Postgres.Host == "" || c.Storage.Postgres.DBName == "" {
			return fmt.Errorf("%w: storage.postgres host and dbname are required", ErrInvalidConfig)
		}
	case StorageDriverGoogleSheets:
		gs := c.Storage.GoogleSheets
		if gs.CredentialsFile == "" || gs.SpreadsheetID == "" {
			return fmt.Errorf("%w: storage.google_sheets credentials_file and spreadsheet_id are required", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown storage.driver %q", ErrInvalidConfig, c.Storage.Driver)
	}

	switch c.Cache.Driver {
	case CacheDriverMemory:
	case CacheDriverRedis:
		if c.Cache.RedisURL == "" {
			return fmt.Errorf("%w: cache.redis_url is required for redis cache", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown cache.driver %q", ErrInvalidConfig, c.Cache.Driver)
	}

	return nil
}
