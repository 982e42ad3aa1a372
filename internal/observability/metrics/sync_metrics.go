package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	PassPayments = "payments"
	PassPayouts  = "payouts"

	OutcomeCreated = "created"
	OutcomeUpdated = "updated"
	OutcomeSkipped = "skipped"
	OutcomeFailed  = "failed"

	ResultOK    = "ok"
	ResultError = "error"
)

// SyncMetrics captures reconciliation health signals.
type SyncMetrics struct {
	runs        *prometheus.CounterVec
	runDuration prometheus.Histogram
	records     *prometheus.CounterVec
	skips       *prometheus.CounterVec
	timeouts    prometheus.Counter
}

var (
	syncMetricsOnce sync.Once
	syncMetrics     *SyncMetrics
)

// Sync returns the singleton sync metrics registry.
func Sync() *SyncMetrics {
	syncMetricsOnce.Do(func() {
		m := &SyncMetrics{
			runs: prometheus.NewCounterVec(prometheus.CounterOpts{
				Name: "sync_runs_total",
				Help: "Reconciliation runs by trigger and result.",
			}, []string{"trigger", "result"}),
			runDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
				Name:    "sync_run_duration_seconds",
				Help:    "Wall time of a full reconciliation run.",
				Buckets: prometheus.ExponentialBuckets(0.1, 2, 12),
			}),
			records: prometheus.NewCounterVec(prometheus.CounterOpts{
				Name: "sync_records_total",
				Help: "External records processed by pass and outcome.",
			}, []string{"pass", "outcome"}),
			skips: prometheus.NewCounterVec(prometheus.CounterOpts{
				Name: "sync_skips_total",
				Help: "Flagged skips by pass and reason.",
			}, []string{"pass", "reason"}),
			timeouts: prometheus.NewCounter(prometheus.CounterOpts{
				Name: "sync_run_timeouts_total",
				Help: "Runs cut short by the run deadline.",
			}),
		}
		prometheus.MustRegister(m.runs, m.runDuration, m.records, m.skips, m.timeouts)
		syncMetrics = m
	})
	return syncMetrics
}

func (m *SyncMetrics) IncRun(trigger, result string) {
	m.runs.WithLabelValues(trigger, result).Inc()
}

func (m *SyncMetrics) ObserveRunDuration(d time.Duration) {
	m.runDuration.Observe(d.Seconds())
}

func (m *SyncMetrics) IncRecord(pass, outcome string) {
	m.records.WithLabelValues(pass, outcome).Inc()
}

func (m *SyncMetrics) IncSkip(pass, reason string) {
	m.skips.WithLabelValues(pass, reason).Inc()
}

func (m *SyncMetrics) IncTimeout() {
	m.timeouts.Inc()
}
