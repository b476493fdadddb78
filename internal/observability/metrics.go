package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the import pipeline's instrumentation.
type Metrics struct {
	ImportsTotal    *prometheus.CounterVec
	ImportDuration  prometheus.Histogram
	GeocodeMisses   prometheus.Counter
	PendingProfiles prometheus.Counter
}

// NewMetrics registers and returns the pipeline metrics.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		ImportsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "dancehub",
			Name:      "imports_total",
			Help:      "Facebook event imports by result",
		}, []string{"result"}),
		ImportDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "dancehub",
			Name:      "import_duration_seconds",
			Help:      "End-to-end duration of one import",
			Buckets:   prometheus.DefBuckets,
		}),
		GeocodeMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "dancehub",
			Name:      "geocode_miss_total",
			Help:      "Imports whose venue could not be geocoded",
		}),
		PendingProfiles: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "dancehub",
			Name:      "pending_profiles_total",
			Help:      "Organizer profiles auto-created during import",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.ImportsTotal, m.ImportDuration, m.GeocodeMisses, m.PendingProfiles)
	}
	return m
}
