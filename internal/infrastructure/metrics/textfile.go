// Package metrics writes health reports in the node_exporter textfile format,
// so a cron-driven run can be scraped by a local node_exporter.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/doeshing/hostcheck/internal/domain"
	"github.com/doeshing/hostcheck/internal/ports"
)

const namespace = "hostcheck"

// TextfileExporter renders one report per file, replacing the previous one.
type TextfileExporter struct {
	path string
}

// NewTextfileExporter targets path, normally a *.prom file inside the
// node_exporter --collector.textfile.directory.
func NewTextfileExporter(path string) *TextfileExporter {
	return &TextfileExporter{path: path}
}

// Path returns the output file.
func (e *TextfileExporter) Path() string {
	return e.path
}

// Export implements ports.ReportExporter.
func (e *TextfileExporter) Export(report domain.HealthReport) error {
	registry := prometheus.NewRegistry()

	checkHealthy := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "check_healthy",
		Help:      "1 if the check passed on the last run, 0 otherwise.",
	}, []string{"check"})
	checkValue := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "check_value",
		Help:      "Raw measurement observed by the check on the last run.",
	}, []string{"check"})
	checkDuration := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "check_duration_seconds",
		Help:      "Time spent in the check on the last run.",
	}, []string{"check"})
	healthy := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "healthy",
		Help:      "1 if every check passed on the last run.",
	})
	runDuration := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "run_duration_seconds",
		Help:      "Wall-clock duration of the last run.",
	})
	lastRun := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "last_run_timestamp_seconds",
		Help:      "Unix time the last run started.",
	})

	registry.MustRegister(checkHealthy, checkValue, checkDuration, healthy, runDuration, lastRun)

	for _, check := range report.Checks {
		checkHealthy.WithLabelValues(check.Name).Set(boolToFloat(check.Healthy))
		checkValue.WithLabelValues(check.Name).Set(check.Value)
		checkDuration.WithLabelValues(check.Name).Set(check.Duration.Seconds())
	}
	healthy.Set(boolToFloat(report.Passed()))
	runDuration.Set(report.Duration.Seconds())
	if !report.StartedAt.IsZero() {
		lastRun.Set(float64(report.StartedAt.Unix()))
	}

	return prometheus.WriteToTextfile(e.path, registry)
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

var _ ports.ReportExporter = (*TextfileExporter)(nil)
