package tui_test

import (
	"errors"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/katalvlaran/mstreplay/core"
	"github.com/katalvlaran/mstreplay/mst"
	"github.com/katalvlaran/mstreplay/replay"
	"github.com/katalvlaran/mstreplay/tui"
)

var errBroken = errors.New("broken dataset")

// source serves a triangle (6 steps), a pair (4 steps) and a failing entry.
func source(name string) (*mst.Trace, error) {
	switch name {
	case "triangle":
		return mst.NewTrace(core.MustGraph(
			[]core.Node{{ID: "A"}, {ID: "B", X: 10}, {ID: "C", X: 5, Y: 10}},
			[]core.Edge{
				{Source: "A", Target: "B", Weight: 1},
				{Source: "B", Target: "C", Weight: 2},
				{Source: "A", Target: "C", Weight: 3},
			},
		), "A")
	case "pair":
		return mst.NewTrace(core.MustGraph(
			[]core.Node{{ID: "P"}, {ID: "Q", X: 10}},
			[]core.Edge{{Source: "P", Target: "Q", Weight: 7}},
		), "P")
	default:
		return nil, errBroken
	}
}

type recorder struct {
	commands []string
	ticks    int
}

func (r *recorder) ObserveCommand(name string) { r.commands = append(r.commands, name) }
func (r *recorder) ObserveTick()               { r.ticks++ }

func newModel(t *testing.T, names []string, opts ...tui.Option) tui.Model {
	t.Helper()
	opts = append([]tui.Option{
		tui.WithLogger(zaptest.NewLogger(t)),
		tui.WithController(replay.WithBaseInterval(time.Millisecond)),
	}, opts...)
	m, err := tui.New(names, source, opts...)
	require.NoError(t, err)

	return m
}

func press(m tui.Model, k tea.KeyPressMsg) (tui.Model, tea.Cmd) {
	next, cmd := m.Update(k)
	return next.(tui.Model), cmd
}

func char(r rune) tea.KeyPressMsg    { return tea.KeyPressMsg{Code: r, Text: string(r)} }
func special(r rune) tea.KeyPressMsg { return tea.KeyPressMsg{Code: r} }

func TestNew(t *testing.T) {
	_, err := tui.New(nil, source)
	assert.ErrorIs(t, err, tui.ErrNoDatasets)

	_, err = tui.New([]string{"broken"}, source)
	assert.ErrorIs(t, err, errBroken)

	m := newModel(t, []string{"triangle", "pair"}, tui.WithInitial("pair"))
	assert.Equal(t, "pair", m.Dataset())
	assert.Equal(t, 4, m.Frame().Total)
	assert.Nil(t, m.Init(), "no tick while stopped")

	m = newModel(t, []string{"triangle"}, tui.WithInitial("missing"), tui.WithAutoplay())
	assert.Equal(t, "triangle", m.Dataset())
	assert.Equal(t, replay.Playing, m.Frame().State)
	assert.NotNil(t, m.Init())
}

// TestAutoplay_FromInit follows the tick chain started by Init.
func TestAutoplay_FromInit(t *testing.T) {
	rec := &recorder{}
	m := newModel(t, []string{"triangle"}, tui.WithAutoplay(), tui.WithRecorder(rec))

	cmd := m.Init()
	require.NotNil(t, cmd)
	next, cmd := m.Update(cmd())
	m = next.(tui.Model)
	assert.Equal(t, 1, m.Frame().Index)
	require.NotNil(t, cmd, "next tick scheduled")

	for cmd != nil {
		next, cmd = m.Update(cmd())
		m = next.(tui.Model)
	}
	assert.Equal(t, 5, m.Frame().Index)
	assert.Equal(t, replay.Stopped, m.Frame().State)
	assert.Equal(t, 5, rec.ticks)
	assert.Empty(t, rec.commands)
}

// TestAutoplay_TicksAdvance runs the tick command chain to the last step.
func TestAutoplay_TicksAdvance(t *testing.T) {
	rec := &recorder{}
	m := newModel(t, []string{"triangle"}, tui.WithRecorder(rec))

	m, cmd := press(m, special(tea.KeySpace))
	require.NotNil(t, cmd)
	assert.Equal(t, replay.Playing, m.Frame().State)

	for cmd != nil {
		var next tea.Model
		next, cmd = m.Update(cmd())
		m = next.(tui.Model)
	}
	assert.Equal(t, 5, m.Frame().Index)
	assert.Equal(t, replay.Stopped, m.Frame().State)
	assert.Equal(t, 5, rec.ticks)
	assert.Equal(t, []string{"toggle"}, rec.commands)
}

// TestAutoplay_StaleTickDropped checks that a re-schedule orphans the old tick.
func TestAutoplay_StaleTickDropped(t *testing.T) {
	m := newModel(t, []string{"triangle"})

	m, first := press(m, special(tea.KeySpace))
	require.NotNil(t, first)
	stale := first()

	m, second := press(m, char('+'))
	require.NotNil(t, second)
	assert.Equal(t, 1.5, m.Frame().Speed)

	next, cmd := m.Update(stale)
	m = next.(tui.Model)
	assert.Nil(t, cmd)
	assert.Equal(t, 0, m.Frame().Index, "stale tick ignored")

	next, _ = m.Update(second())
	m = next.(tui.Model)
	assert.Equal(t, 1, m.Frame().Index)
}

func TestKeys(t *testing.T) {
	rec := &recorder{}
	m := newModel(t, []string{"triangle", "pair", "broken"}, tui.WithRecorder(rec))

	m, cmd := press(m, char('n'))
	assert.Nil(t, cmd, "stepping pauses")
	m, _ = press(m, special(tea.KeyRight))
	assert.Equal(t, 2, m.Frame().Index)

	m, _ = press(m, char('r'))
	assert.Equal(t, 0, m.Frame().Index)

	m, _ = press(m, char('-'))
	assert.Equal(t, 0.5, m.Frame().Speed)
	m, _ = press(m, char('-'))
	assert.Equal(t, 0.5, m.Frame().Speed, "clamped")

	m, _ = press(m, special(tea.KeyTab))
	assert.Equal(t, "pair", m.Dataset())
	assert.Equal(t, 0.5, m.Frame().Speed, "speed survives a switch")

	m, _ = press(m, char(']'))
	assert.Equal(t, "pair", m.Dataset(), "failed switch keeps the graph")
	require.Error(t, m.Err())
	assert.ErrorIs(t, m.Err(), errBroken)
	assert.Contains(t, ansi.Strip(m.Render()), "broken dataset")

	m, _ = press(m, char('['))
	assert.Equal(t, "triangle", m.Dataset())
	assert.NoError(t, m.Err())

	m, _ = press(m, char('['))
	assert.Error(t, m.Err(), "wraps to the last entry")

	m, cmd = press(m, char('x'))
	assert.Nil(t, cmd)

	_, cmd = press(m, char('q'))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())

	assert.Equal(t, []string{"step", "step", "reset", "slower", "slower", "load", "load", "load", "load"}, rec.commands)
}

// TestSwitchCancelsTick loads another graph while a tick is pending.
func TestSwitchCancelsTick(t *testing.T) {
	m := newModel(t, []string{"triangle", "pair"})
	m, tick := press(m, special(tea.KeySpace))
	require.NotNil(t, tick)

	m, cmd := press(m, special(tea.KeyTab))
	assert.Nil(t, cmd, "loading stops autoplay")
	next, cmd := m.Update(tick())
	m = next.(tui.Model)
	assert.Nil(t, cmd)
	assert.Equal(t, 0, m.Frame().Index)
	assert.Equal(t, "pair", m.Dataset())
}

func TestRender(t *testing.T) {
	m := newModel(t, []string{"triangle"})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 32})
	m = next.(tui.Model)

	out := ansi.Strip(m.Render())
	assert.Contains(t, out, "Prim's MST replay")
	assert.Contains(t, out, "triangle (1/1)")
	assert.Contains(t, out, "Step 1 of 6")
	assert.Contains(t, out, "Heap is empty")
	assert.Contains(t, out, "MST Weight: 0")
	assert.Contains(t, out, "space play/pause")

	m, _ = press(m, char('n'))
	m, _ = press(m, char('n'))
	out = ansi.Strip(m.Render())
	assert.Contains(t, out, "Step 3 of 6")
	assert.Contains(t, out, "A-C  3")
	assert.Contains(t, out, "MST Weight: 1")
	assert.Contains(t, out, "Min-heap (extract)")

	assert.True(t, m.View().AltScreen)
}
