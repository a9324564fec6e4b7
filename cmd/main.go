package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createRegistrationHandler "github.com/m04kA/SMC-TennisBooking/internal/api/handlers/create_registration"
	deleteRegistrationHandler "github.com/m04kA/SMC-TennisBooking/internal/api/handlers/delete_registration"
	getScheduleHandler "github.com/m04kA/SMC-TennisBooking/internal/api/handlers/get_schedule"
	listRegistrationsHandler "github.com/m04kA/SMC-TennisBooking/internal/api/handlers/list_registrations"
	"github.com/m04kA/SMC-TennisBooking/internal/api/middleware"
	"github.com/m04kA/SMC-TennisBooking/internal/config"
	"github.com/m04kA/SMC-TennisBooking/internal/domain"
	"github.com/m04kA/SMC-TennisBooking/internal/infra/sheet"
	memorySheet "github.com/m04kA/SMC-TennisBooking/internal/infra/sheet/memory"
	postgresSheet "github.com/m04kA/SMC-TennisBooking/internal/infra/sheet/postgres"
	"github.com/m04kA/SMC-TennisBooking/internal/infra/storage/rediscache"
	registrationStore "github.com/m04kA/SMC-TennisBooking/internal/infra/storage/registration"
	"github.com/m04kA/SMC-TennisBooking/internal/integrations/googlesheets"
	"github.com/m04kA/SMC-TennisBooking/internal/service/availability"
	registrationsService "github.com/m04kA/SMC-TennisBooking/internal/service/registrations"
	createRegistrationUC "github.com/m04kA/SMC-TennisBooking/internal/usecase/create_registration"
	getScheduleUC "github.com/m04kA/SMC-TennisBooking/internal/usecase/get_schedule"
	"github.com/m04kA/SMC-TennisBooking/pkg/logger"
	"github.com/m04kA/SMC-TennisBooking/pkg/metrics"
	"github.com/m04kA/SMC-TennisBooking/pkg/types"
)

func main() {
	configPath := "config.toml"
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		configPath = p
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-TennisBooking...")
	log.Info("Configuration loaded from %s", configPath)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	ctx := context.Background()

	// Подключаем таблицу-хранилище
	backend, closeBackend, err := newSheet(ctx, cfg, log)
	if err != nil {
		log.Fatal("Failed to initialize sheet backend %s: %v", cfg.Storage.Driver, err)
	}
	defer closeBackend()

	// Кэш чтения таблицы
	cache, closeCache, err := newCache(ctx, cfg, log)
	if err != nil {
		log.Fatal("Failed to initialize cache %s: %v", cfg.Cache.Driver, err)
	}
	defer closeCache()

	store := registrationStore.NewStore(backend, cache, metricsCollector, log)

	// Сетка расписания
	slotStart, _ := types.NewTimeStringFromString(cfg.Booking.SlotStart)
	slotEnd, _ := types.NewTimeStringFromString(cfg.Booking.SlotEnd)
	timeSlots, err := availability.GenerateTimeSlots(slotStart, slotEnd, cfg.Booking.SlotStepMinutes)
	if err != nil {
		log.Fatal("Failed to generate time slots: %v", err)
	}
	schedule := domain.Schedule{
		Days:      cfg.Booking.Days,
		TimeSlots: timeSlots,
	}
	log.Info("Schedule: %d days x %d slots (%s-%s, step %d min), capacity %d",
		len(schedule.Days), len(schedule.TimeSlots), slotStart, slotEnd,
		cfg.Booking.SlotStepMinutes, cfg.Booking.MaxCapacity)

	engine := availability.NewEngine(cfg.Booking.MaxCapacity)

	// Инициализируем сервисы
	registrationsSvc := registrationsService.NewService(store, log)

	// Инициализируем use cases
	getScheduleUseCase := getScheduleUC.NewUseCase(store, engine, schedule, log)
	createRegistrationUseCase := createRegistrationUC.NewUseCase(store, engine, schedule, log)

	// Инициализируем handlers
	getSchedule := getScheduleHandler.NewHandler(getScheduleUseCase, log)
	createRegistration := createRegistrationHandler.NewHandler(createRegistrationUseCase, log)
	listRegistrations := listRegistrationsHandler.NewHandler(registrationsSvc, log)
	deleteRegistration := deleteRegistrationHandler.NewHandler(registrationsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Недельная сетка сеансов
	api.HandleFunc("/schedule", getSchedule.Handle).Methods(http.MethodGet)

	// --- Записи ---
	api.HandleFunc("/registrations", createRegistration.Handle).Methods(http.MethodPost)
	api.HandleFunc("/registrations", listRegistrations.Handle).Methods(http.MethodGet)

	// Удаление строки администратором
	api.HandleFunc("/registrations/{position:[0-9]+}", deleteRegistration.Handle).Methods(http.MethodDelete)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}

// newSheet выбирает бэкенд таблицы по storage.driver
func newSheet(ctx context.Context, cfg *config.Config, log *logger.Logger) (sheet.Sheet, func(), error) {
	switch cfg.Storage.Driver {
	case config.StorageDriverPostgres:
		pg := cfg.Storage.Postgres

		db, err := sql.Open("postgres", pg.DSN())
		if err != nil {
			return nil, nil, fmt.Errorf("open database: %w", err)
		}

		// Настраиваем connection pool
		db.SetMaxOpenConns(pg.MaxOpenConns)
		db.SetMaxIdleConns(pg.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(pg.ConnMaxLifetime) * time.Second)

		if err := db.PingContext(ctx); err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("ping database: %w", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)", pg.Host, pg.Port, pg.DBName)

		repo := postgresSheet.NewRepository(db)
		if pg.AutoMigrate {
			if err := repo.Migrate(ctx); err != nil {
				_ = db.Close()
				return nil, nil, err
			}
			log.Info("Sheet table migrated")
		}

		return repo, func() { _ = db.Close() }, nil

	case config.StorageDriverGoogleSheets:
		gs := cfg.Storage.GoogleSheets
		client, err := googlesheets.NewClient(ctx, googlesheets.Config{
			CredentialsFile: gs.CredentialsFile,
			SpreadsheetID:   gs.SpreadsheetID,
			SheetName:       gs.SheetName,
			SheetID:         gs.SheetID,
			Timeout:         time.Duration(gs.Timeout) * time.Second,
		}, log)
		if err != nil {
			return nil, nil, err
		}
		log.Info("Google Sheets client initialized (spreadsheet=%s, sheet=%s)", gs.SpreadsheetID, gs.SheetName)
		return client, func() {}, nil

	default:
		log.Warn("Using in-memory sheet, registrations are lost on restart")
		return memorySheet.New(domain.SheetHeader), func() {}, nil
	}
}

// newCache выбирает кэш чтения по cache.driver
func newCache(ctx context.Context, cfg *config.Config, log *logger.Logger) (registrationStore.Cache, func(), error) {
	ttl := cfg.Booking.CacheTTL()

	if cfg.Cache.Driver != config.CacheDriverRedis {
		return registrationStore.NewMemoryCache(ttl, time.Now), func() {}, nil
	}

	client, err := rediscache.NewClient(ctx, rediscache.ClientConfig{
		URL:      cfg.Cache.RedisURL,
		PoolSize: cfg.Cache.PoolSize,
	})
	if err != nil {
		return nil, nil, err
	}

	key := cfg.Cache.RedisKey
	if key == "" {
		key = rediscache.DefaultKey
	}
	log.Info("Redis cache enabled (key=%s, ttl=%s)", key, ttl)

	return rediscache.New(client, key, ttl, log), func() { _ = client.Close() }, nil
}
