package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the relay's collectors on its own registry.
type Metrics struct {
	reg *prometheus.Registry

	Uploads         *prometheus.CounterVec
	UploadBytes     prometheus.Histogram
	UploadDuration  prometheus.Histogram
	StoredContracts prometheus.Gauge
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	f := promauto.With(reg)

	return &Metrics{
		reg: reg,
		Uploads: f.NewCounterVec(prometheus.CounterOpts{
			Name: "contratos_uploads_total",
			Help: "Contract uploads by result",
		}, []string{"status", "created"}),
		UploadBytes: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "contratos_upload_bytes",
			Help:    "Decoded size of stored contracts",
			Buckets: prometheus.ExponentialBuckets(16<<10, 4, 8),
		}),
		UploadDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "contratos_upload_duration_seconds",
			Help:    "Duration of an upload including the GitHub round trips",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}),
		StoredContracts: f.NewGauge(prometheus.GaugeOpts{
			Name: "contratos_stored",
			Help: "Contracts currently in the repository directory",
		}),
	}
}

// ObserveUpload records one upload attempt. Call with time.Now() taken at the
// start of the attempt.
func (m *Metrics) ObserveUpload(start time.Time, status string, created bool, size int64) {
	createdLabel := "false"
	if created {
		createdLabel = "true"
	}

	m.Uploads.WithLabelValues(status, createdLabel).Inc()
	m.UploadDuration.Observe(time.Since(start).Seconds())

	if size > 0 {
		m.UploadBytes.Observe(float64(size))
	}
}

func (m *Metrics) SetStoredContracts(n int) {
	m.StoredContracts.Set(float64(n))
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{Registry: m.reg})
}
