package telemetry

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the benchmark gauges of a single timed run. Each instance
// owns its registry so that repeated runs in one process never collide.
type Metrics struct {
	registry *prometheus.Registry

	PartDuration *prometheus.GaugeVec
	DayDuration  *prometheus.GaugeVec
	TotalMillis  prometheus.Gauge
	DaysRun      *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	m := &Metrics{registry: prometheus.NewRegistry()}

	m.PartDuration = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "aoc_solution_duration_nanoseconds",
			Help: "Mean duration of a solution part",
		},
		[]string{"day", "part"},
	)

	m.DayDuration = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "aoc_day_duration_nanoseconds",
			Help: "Sum of part durations for a day",
		},
		[]string{"day"},
	)

	m.TotalMillis = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "aoc_benchmark_total_milliseconds",
			Help: "Sum of all stored day durations in milliseconds",
		},
	)

	m.DaysRun = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "aoc_days_benchmarked_total",
			Help: "Days run by the benchmark command",
		},
		[]string{"status"},
	)

	m.registry.MustRegister(m.PartDuration, m.DayDuration, m.TotalMillis, m.DaysRun)
	return m
}

func (m *Metrics) ObservePart(day string, part int, nanos float64) {
	m.PartDuration.WithLabelValues(day, strconv.Itoa(part)).Set(nanos)
}

func (m *Metrics) ObserveDay(day string, nanos float64) {
	m.DayDuration.WithLabelValues(day).Set(nanos)
}

func (m *Metrics) SetTotalMillis(millis float64) {
	m.TotalMillis.Set(millis)
}

// TrackDay counts a day by outcome: "solved", "partial", "unsolved" or "failed".
func (m *Metrics) TrackDay(status string) {
	m.DaysRun.WithLabelValues(status).Inc()
}

// WriteTextfile writes the metrics in the text exposition format, suitable
// for the node exporter textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create metrics directory: %w", err)
	}
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("failed to write metrics to %s: %w", path, err)
	}
	return nil
}
