package metrics

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	matchTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ats_match_total",
		Help: "Total ATS match computations",
	})
	generateTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "content_generate_total",
		Help: "Total content generations by section",
	}, []string{"section"})
	importTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "resume_import_total",
		Help: "Total resume imports by source type",
	}, []string{"type"})
	exportTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "resume_export_total",
		Help: "Total resume exports by format",
	}, []string{"format"})
	resumeSaveDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "resume_save_duration_ms",
		Help:    "Resume save duration in milliseconds",
		Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000},
	})
)

// IncMatch increments the ATS match counter.
func IncMatch() {
	matchTotal.Inc()
}

// IncGenerate increments the generation counter for a section.
func IncGenerate(section string) {
	generateTotal.WithLabelValues(section).Inc()
}

// IncImport increments the import counter for a source type.
func IncImport(importType string) {
	importTotal.WithLabelValues(importType).Inc()
}

// IncExport increments the export counter for a format.
func IncExport(format string) {
	exportTotal.WithLabelValues(format).Inc()
}

// ObserveResumeSaveDurationMs records a resume save duration in milliseconds.
func ObserveResumeSaveDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	resumeSaveDuration.Observe(value)
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
