package metrics_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mstreplay/metrics"
	"github.com/katalvlaran/mstreplay/replay"
)

var _ replay.Recorder = (*metrics.Collector)(nil)

func TestCollector_Encode(t *testing.T) {
	c := metrics.NewCollector()
	c.ObserveTrace("simple", metrics.OutcomeOK, 10, 3*time.Millisecond)
	c.ObserveTrace("simple", metrics.OutcomeOK, 10, time.Millisecond)
	c.ObserveTrace("broken", metrics.OutcomeInvalid, 0, 0)
	c.ObserveCommand("play")
	c.ObserveCommand("play")
	c.ObserveCommand("step")
	c.ObserveTick()

	var buf bytes.Buffer
	require.NoError(t, c.Encode(&buf))
	out := buf.String()

	assert.Contains(t, out, `mstreplay_traces_total{dataset="simple",outcome="ok"} 2`)
	assert.Contains(t, out, `mstreplay_traces_total{dataset="broken",outcome="invalid"} 1`)
	assert.Contains(t, out, `mstreplay_trace_steps_count{dataset="simple"} 2`)
	assert.Contains(t, out, `mstreplay_trace_steps_sum{dataset="simple"} 20`)
	assert.NotContains(t, out, `mstreplay_trace_steps_count{dataset="broken"}`)
	assert.Contains(t, out, `mstreplay_commands_total{command="play"} 2`)
	assert.Contains(t, out, `mstreplay_commands_total{command="step"} 1`)
	assert.Contains(t, out, "mstreplay_ticks_total 1")
	assert.Contains(t, out, "# TYPE mstreplay_trace_duration_seconds histogram")
}

func TestCollector_Write(t *testing.T) {
	c := metrics.NewCollector()
	c.ObserveTick()
	path := filepath.Join(t.TempDir(), "metrics.prom")

	require.NoError(t, c.Write(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "mstreplay_ticks_total 1")

	assert.Error(t, c.Write(filepath.Join(t.TempDir(), "missing", "metrics.prom")))
}

func TestCollector_Nil(t *testing.T) {
	var c *metrics.Collector
	c.ObserveTrace("x", metrics.OutcomeOK, 1, time.Second)
	c.ObserveCommand("play")
	c.ObserveTick()

	var buf bytes.Buffer
	require.NoError(t, c.Encode(&buf))
	assert.Empty(t, buf.String())
}
