// Package metrics counts trace generation and replay activity in a private
// Prometheus registry and dumps it in the text exposition format.
//
// A nil *Collector is valid and records nothing.
package metrics

import (
	"bytes"
	"io"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// Trace outcomes.
const (
	OutcomeOK      = "ok"
	OutcomeInvalid = "invalid"
	OutcomeFailed  = "failed"
)

// Collector captures metrics for one process run.
type Collector struct {
	registry      *prometheus.Registry
	tracesTotal   *prometheus.CounterVec
	traceSteps    *prometheus.HistogramVec
	traceDuration *prometheus.HistogramVec
	commandsTotal *prometheus.CounterVec
	ticksTotal    prometheus.Counter
}

// NewCollector initializes a new metrics registry.
func NewCollector() *Collector {
	registry := prometheus.NewRegistry()
	c := &Collector{
		registry: registry,
		tracesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "mstreplay_traces_total", Help: "Traces generated, by dataset and outcome"},
			[]string{"dataset", "outcome"},
		),
		traceSteps: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "mstreplay_trace_steps",
				Help:    "Number of steps per generated trace",
				Buckets: prometheus.ExponentialBuckets(4, 2, 8),
			},
			[]string{"dataset"},
		),
		traceDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "mstreplay_trace_duration_seconds",
				Help:    "Trace generation time in seconds",
				Buckets: prometheus.ExponentialBuckets(1e-5, 4, 10),
			},
			[]string{"dataset"},
		),
		commandsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "mstreplay_commands_total", Help: "Replay commands, by command"},
			[]string{"command"},
		),
		ticksTotal: prometheus.NewCounter(
			prometheus.CounterOpts{Name: "mstreplay_ticks_total", Help: "Autoplay ticks delivered"},
		),
	}

	registry.MustRegister(c.tracesTotal, c.traceSteps, c.traceDuration, c.commandsTotal, c.ticksTotal)
	return c
}

// ObserveTrace records one generation attempt. steps and duration are only
// observed for OutcomeOK.
func (c *Collector) ObserveTrace(dataset, outcome string, steps int, duration time.Duration) {
	if c == nil {
		return
	}
	c.tracesTotal.WithLabelValues(dataset, outcome).Inc()
	if outcome != OutcomeOK {
		return
	}
	c.traceSteps.WithLabelValues(dataset).Observe(float64(steps))
	c.traceDuration.WithLabelValues(dataset).Observe(duration.Seconds())
}

// ObserveCommand records a replay command by name.
func (c *Collector) ObserveCommand(name string) {
	if c == nil {
		return
	}
	c.commandsTotal.WithLabelValues(name).Inc()
}

// ObserveTick records one autoplay tick.
func (c *Collector) ObserveTick() {
	if c == nil {
		return
	}
	c.ticksTotal.Inc()
}

// Encode writes all metrics to w in the Prometheus text format.
func (c *Collector) Encode(w io.Writer) error {
	if c == nil {
		return nil
	}
	metricFamilies, err := c.registry.Gather()
	if err != nil {
		return err
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, family := range metricFamilies {
		if err := enc.Encode(family); err != nil {
			return err
		}
	}
	return nil
}

// Write writes all metrics to a Prometheus text file.
func (c *Collector) Write(path string) error {
	var buf bytes.Buffer
	if err := c.Encode(&buf); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}
