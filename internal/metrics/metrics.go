// Package metrics provides Prometheus metrics for observability.
// Metrics are organized by domain: HTTP requests, the push channel,
// publish submissions, sessions and database operations.
package metrics

import (
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	namespace = "superdesk_publisher"
)

var (
	// HTTP metrics - track request volume and latency
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests by method, path, and status code",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_in_flight",
			Help:      "Number of HTTP requests currently being processed",
		},
	)

	// Channel metrics - track the push connection to the ingestion pipeline
	ChannelDialsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "channel",
			Name:      "dials_total",
			Help:      "Total number of connection attempts by result",
		},
		[]string{"result"},
	)

	ChannelReconnectsScheduled = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "channel",
			Name:      "reconnects_scheduled_total",
			Help:      "Total number of reconnect attempts scheduled after a close",
		},
	)

	ChannelFramesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "channel",
			Name:      "frames_total",
			Help:      "Total number of inbound frames by type",
		},
		[]string{"type"},
	)

	ChannelEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "channel",
			Name:      "events_total",
			Help:      "Total number of domain events by topic and delivery result",
		},
		[]string{"topic", "result"},
	)

	ChannelState = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "channel",
			Name:      "state",
			Help:      "Current channel state (0 closed, 1 connecting, 2 open)",
		},
	)

	// Publish metrics - track submissions to the publishing backend
	PublishRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "publish",
			Name:      "requests_total",
			Help:      "Total number of publish/unpublish submissions by kind and result",
		},
		[]string{"kind", "result"},
	)

	PublishRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "publish",
			Name:      "request_duration_seconds",
			Help:      "Publishing backend call duration in seconds",
			Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		},
		[]string{"kind"},
	)

	PublishDestinations = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "publish",
			Name:      "destinations",
			Help:      "Number of tenants per submission",
			Buckets:   []float64{1, 2, 3, 5, 8, 13, 21},
		},
		[]string{"kind"},
	)

	// Feed metrics - track refresh signals pushed to browsers
	RefreshSignalsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "feed",
			Name:      "signals_total",
			Help:      "Total number of refresh signals by reason and delivery result",
		},
		[]string{"reason", "result"},
	)

	FeedSubscribers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "feed",
			Name:      "subscribers",
			Help:      "Number of browsers listening for refresh signals",
		},
	)

	// Session metrics - track open publish panels
	SessionsOpen = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "sessions",
			Name:      "open",
			Help:      "Number of publish sessions currently open",
		},
	)

	// Database metrics - track database operation performance
	DBConnectionPoolSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "db",
			Name:      "pool_connections",
			Help:      "Database connection pool stats",
		},
		[]string{"state"},
	)
)

// PoolStats is an interface for getting pool statistics
// This allows for easier testing by mocking the pool stats
type PoolStats interface {
	TotalConns() int32
	IdleConns() int32
	AcquiredConns() int32
}

// PoolStatsProvider is an interface for providing pool stats
type PoolStatsProvider interface {
	Stat() PoolStats
}

// pgxPoolAdapter adapts pgxpool.Pool to PoolStatsProvider
type pgxPoolAdapter struct {
	pool *pgxpool.Pool
}

func (a *pgxPoolAdapter) Stat() PoolStats {
	return a.pool.Stat()
}

// PoolStatsCollector collects database pool statistics periodically
type PoolStatsCollector struct {
	provider PoolStatsProvider
	stopChan chan struct{}
	wg       sync.WaitGroup
}

// NewPoolStatsCollector creates a new pool stats collector
func NewPoolStatsCollector(pool *pgxpool.Pool) *PoolStatsCollector {
	return NewPoolStatsCollectorWithProvider(&pgxPoolAdapter{pool: pool})
}

// NewPoolStatsCollectorWithProvider creates a new pool stats collector with a custom provider (for testing)
func NewPoolStatsCollectorWithProvider(provider PoolStatsProvider) *PoolStatsCollector {
	return &PoolStatsCollector{
		provider: provider,
		stopChan: make(chan struct{}),
	}
}

// Start begins collecting pool stats every interval
func (c *PoolStatsCollector) Start(interval time.Duration) {
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		c.collect()

		for {
			select {
			case <-ticker.C:
				c.collect()
			case <-c.stopChan:
				return
			}
		}
	}()
}

func (c *PoolStatsCollector) collect() {
	stats := c.provider.Stat()
	DBConnectionPoolSize.WithLabelValues("total").Set(float64(stats.TotalConns()))
	DBConnectionPoolSize.WithLabelValues("idle").Set(float64(stats.IdleConns()))
	DBConnectionPoolSize.WithLabelValues("in_use").Set(float64(stats.AcquiredConns()))
}

// Stop stops the pool stats collector
func (c *PoolStatsCollector) Stop() {
	close(c.stopChan)
	c.wg.Wait()
}

// ObservePublish records the outcome of a publish or unpublish submission
func ObservePublish(kind, result string, durationSeconds float64, tenants int) {
	PublishRequestsTotal.WithLabelValues(kind, result).Inc()
	PublishRequestDuration.WithLabelValues(kind).Observe(durationSeconds)
	PublishDestinations.WithLabelValues(kind).Observe(float64(tenants))
}

// ObserveFrame counts an inbound channel frame
func ObserveFrame(frameType string) {
	ChannelFramesTotal.WithLabelValues(frameType).Inc()
}

// ObserveEvent counts a dispatched domain event; dropped is the number of
// subscribers that could not take it
func ObserveEvent(topic string, dropped int) {
	ChannelEventsTotal.WithLabelValues(topic, "dispatched").Inc()
	if dropped > 0 {
		ChannelEventsTotal.WithLabelValues(topic, "dropped").Add(float64(dropped))
	}
}

// ObserveRefresh counts a refresh signal sent to browsers
func ObserveRefresh(reason string, dropped int) {
	RefreshSignalsTotal.WithLabelValues(reason, "sent").Inc()
	if dropped > 0 {
		RefreshSignalsTotal.WithLabelValues(reason, "dropped").Add(float64(dropped))
	}
}

// Timer is a helper for measuring operation duration
type Timer struct {
	start time.Time
}

// NewTimer creates a new timer starting now
func NewTimer() *Timer {
	return &Timer{start: time.Now()}
}

// Seconds returns the elapsed time in seconds
func (t *Timer) Seconds() float64 {
	return time.Since(t.start).Seconds()
}

// ObserveDuration records the elapsed time since the timer was created
func (t *Timer) ObserveDuration(observer prometheus.Observer) {
	observer.Observe(t.Seconds())
}
