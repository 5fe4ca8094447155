package replay

import (
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/mstreplay/mst"
)

// Speed bounds and the discrete selector values.
const (
	MinSpeed     = 0.5
	MaxSpeed     = 3.0
	DefaultSpeed = 1.0
	SpeedStep    = 0.5

	// DefaultBaseInterval is the autoplay delay at speed 1.
	DefaultBaseInterval = 2 * time.Second
)

// State is the autoplay state.
type State int

const (
	Stopped State = iota
	Playing
)

// String returns "stopped" or "playing".
func (s State) String() string {
	switch s {
	case Stopped:
		return "stopped"
	case Playing:
		return "playing"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Controller is a read-only cursor over a trace plus autoplay state.
// It is not safe for concurrent use; exactly one event loop owns it.
type Controller struct {
	steps   []mst.Step
	cursor  int
	playing bool
	speed   float64
	base    time.Duration
}

// ControllerOption configures a Controller.
type ControllerOption func(*Controller)

// WithSpeed sets the initial speed (clamped like SetSpeed).
func WithSpeed(x float64) ControllerOption {
	return func(c *Controller) { c.SetSpeed(x) }
}

// WithBaseInterval sets the delay between ticks at speed 1.
// Non-positive values keep DefaultBaseInterval.
func WithBaseInterval(d time.Duration) ControllerOption {
	return func(c *Controller) {
		if d > 0 {
			c.base = d
		}
	}
}

// NewController returns a stopped controller at step 0 of steps.
// The slice is owned by the controller from here on.
func NewController(steps []mst.Step, opts ...ControllerOption) *Controller {
	c := &Controller{steps: steps, speed: DefaultSpeed, base: DefaultBaseInterval}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// last returns the final index, -1 for an empty trace.
func (c *Controller) last() int { return len(c.steps) - 1 }

// Play starts autoplay unless the cursor is already at the last step.
func (c *Controller) Play() {
	if c.cursor < c.last() {
		c.playing = true
	}
}

// Pause stops autoplay.
func (c *Controller) Pause() { c.playing = false }

// Toggle pauses when playing, plays otherwise.
func (c *Controller) Toggle() {
	if c.playing {
		c.Pause()
		return
	}
	c.Play()
}

// StepForward advances one step and stops autoplay. No-op at the end.
func (c *Controller) StepForward() {
	if c.cursor < c.last() {
		c.cursor++
		c.playing = false
	}
}

// Reset rewinds to step 0 and stops autoplay.
func (c *Controller) Reset() {
	c.cursor = 0
	c.playing = false
}

// SetSpeed stores x clamped to [MinSpeed, MaxSpeed]. Non-finite and non-positive
// values become MinSpeed.
func (c *Controller) SetSpeed(x float64) {
	switch {
	case math.IsNaN(x) || math.IsInf(x, 0) || x <= 0:
		x = MinSpeed
	case x < MinSpeed:
		x = MinSpeed
	case x > MaxSpeed:
		x = MaxSpeed
	}
	c.speed = x
}

// Faster moves to the next selector value above the current speed.
func (c *Controller) Faster() {
	next := math.Floor(c.speed/SpeedStep+1e-9)*SpeedStep + SpeedStep
	c.SetSpeed(next)
}

// Slower moves to the next selector value below the current speed.
func (c *Controller) Slower() {
	prev := math.Ceil(c.speed/SpeedStep-1e-9)*SpeedStep - SpeedStep
	c.SetSpeed(prev)
}

// Tick advances one step while playing. Reaching the last step stops
// autoplay. It reports whether the cursor moved.
func (c *Controller) Tick() bool {
	if !c.playing {
		return false
	}
	if c.cursor >= c.last() {
		c.playing = false
		return false
	}
	c.cursor++
	if c.cursor == c.last() {
		c.playing = false
	}

	return true
}

// Interval returns the autoplay delay: base interval divided by speed.
func (c *Controller) Interval() time.Duration {
	return time.Duration(float64(c.base) / c.speed)
}

// Load swaps in a new trace: cursor 0, stopped, speed retained.
func (c *Controller) Load(steps []mst.Step) {
	c.steps = steps
	c.cursor = 0
	c.playing = false
}

// Cursor returns the current step index.
func (c *Controller) Cursor() int { return c.cursor }

// Len returns the number of steps.
func (c *Controller) Len() int { return len(c.steps) }

// Speed returns the current multiplier.
func (c *Controller) Speed() float64 { return c.speed }

// Playing reports whether autoplay is on.
func (c *Controller) Playing() bool { return c.playing }

// State returns Playing or Stopped.
func (c *Controller) State() State {
	if c.playing {
		return Playing
	}

	return Stopped
}

// Frame captures everything a view needs at the current cursor.
func (c *Controller) Frame() Frame {
	f := Frame{
		Index:    c.cursor,
		Total:    len(c.steps),
		Speed:    c.speed,
		State:    c.State(),
		Interval: c.Interval(),
	}
	if len(c.steps) > 0 {
		f.Step = c.steps[c.cursor].Clone()
		f.HasStep = true
	}

	return f
}

// Frame is a self-contained view of the replay at one cursor position.
type Frame struct {
	Step     mst.Step
	HasStep  bool
	Index    int
	Total    int
	Speed    float64
	State    State
	Interval time.Duration
}

// AtEnd reports whether the cursor sits on the last step.
func (f Frame) AtEnd() bool { return f.Total == 0 || f.Index == f.Total-1 }

// Progress returns Index/(Total-1) in [0,1]: 0 on the first step, 1 on
// the last. A single-step trace is complete; an empty one reports 0.
func (f Frame) Progress() float64 {
	switch {
	case f.Total == 0:
		return 0
	case f.Total == 1:
		return 1
	}

	return float64(f.Index) / float64(f.Total-1)
}

// Position renders "Step i of n" with a 1-based i.
func (f Frame) Position() string {
	if f.Total == 0 {
		return "Step 0 of 0"
	}

	return fmt.Sprintf("Step %d of %d", f.Index+1, f.Total)
}
