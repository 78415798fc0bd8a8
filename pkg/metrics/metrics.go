package metrics

import (
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

var (
	// HTTP 请求指标
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "requests_total",
			Help: "Total number of requests",
		},
		[]string{"service", "method", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "request_duration_seconds",
			Help:    "Request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service", "method"},
	)

	// 数据库连接池指标
	DatabaseConnections = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "database_connections",
			Help: "Current database connections",
		},
		[]string{"service", "status"},
	)

	// 业务指标
	DocumentsCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "documents_created_total",
			Help: "Total number of documents registered",
		},
		[]string{"type"},
	)

	DocumentsDeleted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "documents_deleted_total",
			Help: "Total number of documents soft-deleted",
		},
		[]string{"type"},
	)

	AuthAttempts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_attempts_total",
			Help: "Authentication attempts by outcome",
		},
		[]string{"outcome"},
	)
)

func init() {
	// 注册所有指标
	prometheus.MustRegister(
		RequestsTotal,
		RequestDuration,
		DatabaseConnections,
		DocumentsCreated,
		DocumentsDeleted,
		AuthAttempts,
	)
}

// StartMetricsServer 启动独立的 metrics HTTP 服务器，返回值用于优雅关闭
func StartMetricsServer(port string, log logrus.FieldLogger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: ":" + port, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Error("metrics server stopped")
		}
	}()
	return srv
}

// RecordRequest 记录请求指标的助手函数
func RecordRequest(service, method, status string, duration time.Duration) {
	RequestsTotal.WithLabelValues(service, method, status).Inc()
	RequestDuration.WithLabelValues(service, method).Observe(duration.Seconds())
}

// RecordConnections 记录连接池状态
func RecordConnections(service string, open, inUse, idle int) {
	DatabaseConnections.WithLabelValues(service, "open").Set(float64(open))
	DatabaseConnections.WithLabelValues(service, "in_use").Set(float64(inUse))
	DatabaseConnections.WithLabelValues(service, "idle").Set(float64(idle))
}
