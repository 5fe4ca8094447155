package replay

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"k8s.io/utils/clock"

	"github.com/katalvlaran/mstreplay/mst"
)

var (
	// ErrPlayerStopped is returned by commands issued after Run returned.
	ErrPlayerStopped = errors.New("replay: player stopped")

	// ErrPlayerRunning is returned by a second call to Run.
	ErrPlayerRunning = errors.New("replay: player already running")
)

// Observer receives a Frame after every change. Observers run on the
// player goroutine and must not call back into the Player.
type Observer func(Frame)

// Recorder counts replay activity. *metrics.Collector satisfies it.
type Recorder interface {
	ObserveCommand(name string)
	ObserveTick()
}

type nopRecorder struct{}

// NopRecorder returns a Recorder that discards everything.
func NopRecorder() Recorder { return nopRecorder{} }

func (nopRecorder) ObserveCommand(string) {}
func (nopRecorder) ObserveTick()          {}

// request is one serialized command.
type request struct {
	name  string
	apply func(*Controller)
	reply chan Frame
}

// Player drives a Controller from a single goroutine. Commands are queued
// onto that goroutine; the autoplay timer fires on the same goroutine, so the
// Controller never sees concurrent access.
type Player struct {
	ctrl      *Controller
	clock     clock.Clock
	logger    *zap.Logger
	recorder  Recorder
	observers []Observer

	reqs    chan request
	stopped chan struct{}
	running atomic.Bool
}

// PlayerOption configures a Player.
type PlayerOption func(*Player)

// WithClock replaces the real clock, typically with a fake in tests.
func WithClock(c clock.Clock) PlayerOption {
	return func(p *Player) {
		if c != nil {
			p.clock = c
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) PlayerOption {
	return func(p *Player) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithRecorder sets the activity recorder.
func WithRecorder(r Recorder) PlayerOption {
	return func(p *Player) {
		if r != nil {
			p.recorder = r
		}
	}
}

// WithObserver registers an observer; several may be added.
func WithObserver(o Observer) PlayerOption {
	return func(p *Player) {
		if o != nil {
			p.observers = append(p.observers, o)
		}
	}
}

// NewPlayer wraps ctrl. The Player owns ctrl from here on.
func NewPlayer(ctrl *Controller, opts ...PlayerOption) *Player {
	p := &Player{
		ctrl:     ctrl,
		clock:    clock.RealClock{},
		logger:   zap.NewNop(),
		recorder: nopRecorder{},
		reqs:     make(chan request),
		stopped:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Run processes commands and timer ticks until ctx is cancelled.
//
// Loop:
//  1. Command: apply it; if cursor, state or speed changed, stop the pending
//     timer, re-arm it when playing, notify observers; reply with a Frame.
//  2. Timer: Tick the controller, re-arm when still playing, notify.
//  3. ctx.Done: stop the timer and return ctx.Err().
func (p *Player) Run(ctx context.Context) error {
	if !p.running.CompareAndSwap(false, true) {
		return ErrPlayerRunning
	}
	defer close(p.stopped)

	var (
		timer clock.Timer
		fire  <-chan time.Time
	)
	rearm := func() {
		if timer != nil {
			timer.Stop()
			timer, fire = nil, nil
		}
		if p.ctrl.Playing() {
			timer = p.clock.NewTimer(p.ctrl.Interval())
			fire = timer.C()
		}
	}
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	p.logger.Debug("player started", zap.Int("steps", p.ctrl.Len()))
	for {
		select {
		case <-ctx.Done():
			p.logger.Debug("player stopped", zap.Int("cursor", p.ctrl.Cursor()))
			return ctx.Err()

		case req := <-p.reqs:
			before := signature(p.ctrl)
			req.apply(p.ctrl)
			p.recorder.ObserveCommand(req.name)
			frame := p.ctrl.Frame()
			if signature(p.ctrl) != before {
				rearm()
				p.notify(frame)
			}
			p.logger.Debug("command",
				zap.String("command", req.name),
				zap.Int("cursor", frame.Index),
				zap.Stringer("state", frame.State))
			req.reply <- frame

		case <-fire:
			timer, fire = nil, nil
			p.ctrl.Tick()
			p.recorder.ObserveTick()
			rearm()
			p.notify(p.ctrl.Frame())
		}
	}
}

// state is the part of a Controller that affects timing or views.
type state struct {
	cursor, total int
	playing       bool
	speed         float64
	trace         *mst.Step
}

func signature(c *Controller) state {
	s := state{cursor: c.cursor, total: len(c.steps), playing: c.playing, speed: c.speed}
	if len(c.steps) > 0 {
		s.trace = &c.steps[0]
	}

	return s
}

func (p *Player) notify(f Frame) {
	for _, o := range p.observers {
		o(f)
	}
}

// do queues a command and waits for its Frame.
func (p *Player) do(name string, apply func(*Controller)) (Frame, error) {
	req := request{name: name, apply: apply, reply: make(chan Frame, 1)}
	select {
	case p.reqs <- req:
	case <-p.stopped:
		return Frame{}, ErrPlayerStopped
	}

	return <-req.reply, nil
}

// Play starts autoplay.
func (p *Player) Play() (Frame, error) { return p.do("play", (*Controller).Play) }

// Pause stops autoplay.
func (p *Player) Pause() (Frame, error) { return p.do("pause", (*Controller).Pause) }

// Toggle flips autoplay.
func (p *Player) Toggle() (Frame, error) { return p.do("toggle", (*Controller).Toggle) }

// StepForward advances one step and pauses.
func (p *Player) StepForward() (Frame, error) { return p.do("step", (*Controller).StepForward) }

// Reset rewinds to the first step and pauses.
func (p *Player) Reset() (Frame, error) { return p.do("reset", (*Controller).Reset) }

// Faster raises the speed one selector notch.
func (p *Player) Faster() (Frame, error) { return p.do("faster", (*Controller).Faster) }

// Slower lowers the speed one selector notch.
func (p *Player) Slower() (Frame, error) { return p.do("slower", (*Controller).Slower) }

// SetSpeed sets the speed multiplier.
func (p *Player) SetSpeed(x float64) (Frame, error) {
	return p.do("speed", func(c *Controller) { c.SetSpeed(x) })
}

// Load swaps the trace and cancels any pending tick.
func (p *Player) Load(steps []mst.Step) (Frame, error) {
	return p.do("load", func(c *Controller) { c.Load(steps) })
}

// Snapshot returns the current Frame without changing anything.
func (p *Player) Snapshot() (Frame, error) {
	return p.do("snapshot", func(*Controller) {})
}
