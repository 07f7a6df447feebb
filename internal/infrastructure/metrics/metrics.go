package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/johnquangdev/meeting-recap/internal/domain/entities"
)

// PipelineMetrics holds the Prometheus collectors for transcript processing.
type PipelineMetrics struct {
	RunsTotal         *prometheus.CounterVec
	RunSeconds        *prometheus.HistogramVec
	ExtractedEntities *prometheus.HistogramVec
	StoreOpsTotal     *prometheus.CounterVec
}

// DefaultPipelineMetrics registers the metrics with the default registry.
func DefaultPipelineMetrics() *PipelineMetrics {
	return NewPipelineMetrics(prometheus.DefaultRegisterer)
}

// NewPipelineMetrics creates the pipeline metrics on reg.
func NewPipelineMetrics(reg prometheus.Registerer) *PipelineMetrics {
	factory := promauto.With(reg)

	return &PipelineMetrics{
		RunsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "meeting_recap_pipeline_runs_total",
				Help: "Total pipeline runs by detected format and terminal stage",
			},
			[]string{"format", "stage"},
		),
		RunSeconds: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "meeting_recap_pipeline_run_seconds",
				Help:    "Pipeline latency per detected format",
				Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2},
			},
			[]string{"format"},
		),
		ExtractedEntities: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "meeting_recap_extracted_entities",
				Help:    "Entities extracted per run by kind",
				Buckets: []float64{0, 1, 2, 3, 5, 8, 10, 20},
			},
			[]string{"kind"},
		),
		StoreOpsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "meeting_recap_store_operations_total",
				Help: "Result store operations by backend, operation and status",
			},
			[]string{"backend", "op", "status"},
		),
	}
}

// ObserveRun records one pipeline run
func (m *PipelineMetrics) ObserveRun(format, stage string, duration time.Duration, record entities.MeetingRecord) {
	m.RunsTotal.WithLabelValues(format, stage).Inc()
	m.RunSeconds.WithLabelValues(format).Observe(duration.Seconds())

	m.ExtractedEntities.WithLabelValues("participants").Observe(float64(len(record.Participants)))
	m.ExtractedEntities.WithLabelValues("decisions").Observe(float64(len(record.KeyDecisions)))
	m.ExtractedEntities.WithLabelValues("action_items").Observe(float64(len(record.ActionItems)))
}

// ObserveStore records one result store operation
func (m *PipelineMetrics) ObserveStore(backend, op string, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.StoreOpsTotal.WithLabelValues(backend, op, status).Inc()
}
