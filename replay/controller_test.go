package replay_test

import (
	"math"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/mstreplay/mst"
	"github.com/katalvlaran/mstreplay/replay"
)

// fakeSteps returns n steps whose descriptions are their indices.
func fakeSteps(n int) []mst.Step {
	steps := make([]mst.Step, n)
	for i := range steps {
		steps[i] = mst.Step{Description: strconv.Itoa(i), Operation: mst.OpNone}
	}

	return steps
}

// TestController_StateMachine walks every transition.
func TestController_StateMachine(t *testing.T) {
	c := replay.NewController(fakeSteps(4))
	assert.Equal(t, replay.Stopped, c.State())
	assert.Equal(t, 0, c.Cursor())

	// Tick while stopped does nothing.
	assert.False(t, c.Tick())

	c.Play()
	assert.Equal(t, replay.Playing, c.State())
	c.Play()
	assert.True(t, c.Playing(), "Play is idempotent")

	assert.True(t, c.Tick())
	assert.Equal(t, 1, c.Cursor())
	assert.True(t, c.Playing())

	c.Pause()
	assert.False(t, c.Playing())

	c.Toggle()
	assert.True(t, c.Playing())
	c.Toggle()
	assert.False(t, c.Playing())

	c.Play()
	c.StepForward()
	assert.Equal(t, 2, c.Cursor())
	assert.False(t, c.Playing(), "manual step pauses")

	c.Play()
	assert.True(t, c.Tick())
	assert.Equal(t, 3, c.Cursor())
	assert.False(t, c.Playing(), "reaching the end stops")

	// No wrap.
	c.StepForward()
	assert.Equal(t, 3, c.Cursor())
	c.Play()
	assert.False(t, c.Playing(), "cannot play from the last step")
	assert.False(t, c.Tick())

	c.Reset()
	assert.Equal(t, 0, c.Cursor())
	assert.Equal(t, replay.Stopped, c.State())
}

// TestController_Speed covers clamping, the selector and Interval.
func TestController_Speed(t *testing.T) {
	c := replay.NewController(fakeSteps(2))
	assert.Equal(t, replay.DefaultSpeed, c.Speed())
	assert.Equal(t, 2*time.Second, c.Interval())

	for in, want := range map[float64]float64{
		2:            2,
		0.1:          replay.MinSpeed,
		0:            replay.MinSpeed,
		-3:           replay.MinSpeed,
		10:           replay.MaxSpeed,
		math.Inf(1):  replay.MinSpeed,
		math.Inf(-1): replay.MinSpeed,
	} {
		c.SetSpeed(in)
		assert.Equal(t, want, c.Speed(), "SetSpeed(%v)", in)
	}
	c.SetSpeed(math.NaN())
	assert.Equal(t, replay.MinSpeed, c.Speed())

	c.SetSpeed(2)
	assert.Equal(t, time.Second, c.Interval())

	c.SetSpeed(1)
	var seen []float64
	for i := 0; i < 6; i++ {
		c.Faster()
		seen = append(seen, c.Speed())
	}
	assert.Equal(t, []float64{1.5, 2, 2.5, 3, 3, 3}, seen)

	seen = seen[:0]
	for i := 0; i < 6; i++ {
		c.Slower()
		seen = append(seen, c.Speed())
	}
	assert.Equal(t, []float64{2.5, 2, 1.5, 1, 0.5, 0.5}, seen)

	c.SetSpeed(1.2)
	c.Faster()
	assert.Equal(t, 1.5, c.Speed())

	c = replay.NewController(nil, replay.WithSpeed(3), replay.WithBaseInterval(time.Second))
	assert.Equal(t, time.Second/3, c.Interval())
}

// TestController_LoadKeepsSpeed checks Load semantics.
func TestController_LoadKeepsSpeed(t *testing.T) {
	c := replay.NewController(fakeSteps(5), replay.WithSpeed(2.5))
	c.StepForward()
	c.Play()

	c.Load(fakeSteps(3))
	assert.Equal(t, 0, c.Cursor())
	assert.False(t, c.Playing())
	assert.Equal(t, 2.5, c.Speed())
	assert.Equal(t, 3, c.Len())
}

// TestController_EmptyTrace makes every operation a safe no-op.
func TestController_EmptyTrace(t *testing.T) {
	c := replay.NewController(nil)
	c.Play()
	c.StepForward()
	c.Toggle()
	assert.False(t, c.Tick())
	c.Reset()

	f := c.Frame()
	assert.False(t, f.HasStep)
	assert.Equal(t, 0, f.Total)
	assert.True(t, f.AtEnd())
	assert.Zero(t, f.Progress())
	assert.Equal(t, "Step 0 of 0", f.Position())
	assert.Equal(t, replay.Stopped, f.State)
}

// TestFrame is fully determined by the step at the cursor.
func TestFrame(t *testing.T) {
	c := replay.NewController(fakeSteps(4), replay.WithSpeed(1.5))
	c.StepForward()

	f := c.Frame()
	assert.True(t, f.HasStep)
	assert.Equal(t, "1", f.Step.Description)
	assert.Equal(t, "Step 2 of 4", f.Position())
	assert.InDelta(t, 1.0/3, f.Progress(), 1e-12)
	assert.False(t, f.AtEnd())
	assert.Equal(t, 1.5, f.Speed)
	assert.Equal(t, "stopped", f.State.String())
	assert.Equal(t, "playing", replay.Playing.String())
}
