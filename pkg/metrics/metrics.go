package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	CacheResultHit  = "hit"
	CacheResultMiss = "miss"

	StatusOK    = "ok"
	StatusError = "error"
)

// Metrics набор prometheus-метрик сервиса
// Все методы безопасны для nil-получателя: при выключенных метриках передаётся nil
type Metrics struct {
	serviceName string

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	cacheLookupsTotal   *prometheus.CounterVec
	sheetOpsTotal       *prometheus.CounterVec
	sheetOpDuration     *prometheus.HistogramVec
}

// New регистрирует метрики в глобальном registry (его отдаёт promhttp.Handler)
func New(serviceName string) *Metrics {
	return NewWithRegistry(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegistry регистрирует метрики в переданном registry
func NewWithRegistry(serviceName string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		serviceName: serviceName,
		httpRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"service", "method", "route", "status"}),
		httpRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "method", "route"}),
		cacheLookupsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "registration_cache_lookups_total",
			Help: "Registration table cache lookups by result",
		}, []string{"service", "result"}),
		sheetOpsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "sheet_operations_total",
			Help: "Backing sheet operations by type and outcome",
		}, []string{"service", "operation", "status"}),
		sheetOpDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "sheet_operation_duration_seconds",
			Help:    "Backing sheet operation latency in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"service", "operation"}),
	}
}

// ObserveHTTP фиксирует завершённый HTTP запрос
func (m *Metrics) ObserveHTTP(method, route, status string, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(m.serviceName, method, route, status).Inc()
	m.httpRequestDuration.WithLabelValues(m.serviceName, method, route).Observe(duration.Seconds())
}

// ObserveCacheLookup фиксирует попадание или промах кэша
func (m *Metrics) ObserveCacheLookup(hit bool) {
	if m == nil {
		return
	}
	result := CacheResultMiss
	if hit {
		result = CacheResultHit
	}
	m.cacheLookupsTotal.WithLabelValues(m.serviceName, result).Inc()
}

// ObserveSheetOperation фиксирует операцию с таблицей-хранилищем
func (m *Metrics) ObserveSheetOperation(operation string, started time.Time, err error) {
	if m == nil {
		return
	}
	status := StatusOK
	if err != nil {
		status = StatusError
	}
	m.sheetOpsTotal.WithLabelValues(m.serviceName, operation, status).Inc()
	m.sheetOpDuration.WithLabelValues(m.serviceName, operation).Observe(time.Since(started).Seconds())
}
