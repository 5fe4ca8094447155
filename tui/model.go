package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/katalvlaran/mstreplay/mst"
	"github.com/katalvlaran/mstreplay/render"
	"github.com/katalvlaran/mstreplay/replay"
)

// ErrNoDatasets is returned by New when there is nothing to show.
var ErrNoDatasets = errors.New("tui: no datasets")

// Source produces the trace of a named dataset.
type Source func(name string) (*mst.Trace, error)

// Layout defaults used before the first WindowSizeMsg.
const (
	defaultWidth  = 100
	defaultHeight = 30
	panelWidth    = 44
	barWidth      = 30
)

// tickMsg is an autoplay tick tagged with the generation that scheduled it.
type tickMsg struct{ gen int }

// Model is the root Bubble Tea model.
type Model struct {
	names    []string
	index    int
	source   Source
	trace    *mst.Trace
	ctrl     *replay.Controller
	gen      int
	width    int
	height   int
	err      error
	keys     keyMap
	logger   *zap.Logger
	recorder replay.Recorder
	autoplay bool
}

// Option configures a Model.
type Option func(*Model)

// WithController passes options to the underlying replay.Controller.
func WithController(opts ...replay.ControllerOption) Option {
	return func(m *Model) {
		for _, opt := range opts {
			opt(m.ctrl)
		}
	}
}

// WithLogger sets the logger; nil keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithRecorder counts commands and ticks.
func WithRecorder(r replay.Recorder) Option {
	return func(m *Model) {
		if r != nil {
			m.recorder = r
		}
	}
}

// WithInitial selects the first dataset by name. Unknown names are ignored.
func WithInitial(name string) Option {
	return func(m *Model) {
		for i, n := range m.names {
			if n == name {
				m.index = i
				return
			}
		}
	}
}

// WithAutoplay starts playing as soon as the program starts.
func WithAutoplay() Option {
	return func(m *Model) { m.autoplay = true }
}

// New loads the selected dataset of names through src.
func New(names []string, src Source, opts ...Option) (Model, error) {
	if len(names) == 0 {
		return Model{}, ErrNoDatasets
	}
	m := Model{
		names:    names,
		source:   src,
		ctrl:     replay.NewController(nil),
		keys:     defaultKeys(),
		logger:   zap.NewNop(),
		recorder: replay.NopRecorder(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	if err := m.load(m.index); err != nil {
		return Model{}, err
	}
	if m.autoplay {
		m.ctrl.Play()
	}

	return m, nil
}

// load replaces the trace with the one of names[i]. On error the current
// trace stays.
func (m *Model) load(i int) error {
	name := m.names[i]
	t, err := m.source(name)
	if err != nil {
		return fmt.Errorf("tui: dataset %q: %w", name, err)
	}
	m.index, m.trace = i, t
	m.ctrl.Load(t.Steps())
	m.logger.Debug("dataset loaded",
		zap.String("dataset", name),
		zap.Stringer("trace", t.ID),
		zap.Int("steps", t.Len()))

	return nil
}

// Dataset returns the name of the dataset on screen.
func (m Model) Dataset() string { return m.names[m.index] }

// Frame returns the current replay frame.
func (m Model) Frame() replay.Frame { return m.ctrl.Frame() }

// Err returns the last dataset switch error, nil after a successful one.
func (m Model) Err() error { return m.err }

// Init schedules the first tick when autoplay is on. The tick carries the
// current generation; Init cannot bump it on a value receiver.
func (m Model) Init() tea.Cmd {
	return m.tick()
}

// schedule bumps the generation, dropping any tick in flight, and returns
// the next tick when playing.
func (m *Model) schedule() tea.Cmd {
	m.gen++

	return m.tick()
}

// tick returns a tick tagged with the current generation, nil when stopped.
func (m Model) tick() tea.Cmd {
	if !m.ctrl.Playing() {
		return nil
	}
	gen := m.gen

	return tea.Tick(m.ctrl.Interval(), func(time.Time) tea.Msg {
		return tickMsg{gen: gen}
	})
}

// Update handles keys, ticks and resizes.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tickMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		m.ctrl.Tick()
		m.recorder.ObserveTick()
		return m, m.schedule()

	case tea.KeyPressMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	var command string
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Toggle):
		command = "toggle"
		m.ctrl.Toggle()
	case key.Matches(msg, m.keys.Step):
		command = "step"
		m.ctrl.StepForward()
	case key.Matches(msg, m.keys.Reset):
		command = "reset"
		m.ctrl.Reset()
	case key.Matches(msg, m.keys.Faster):
		command = "faster"
		m.ctrl.Faster()
	case key.Matches(msg, m.keys.Slower):
		command = "slower"
		m.ctrl.Slower()
	case key.Matches(msg, m.keys.Next):
		command = "load"
		m.switchTo(m.index + 1)
	case key.Matches(msg, m.keys.Prev):
		command = "load"
		m.switchTo(m.index - 1)
	default:
		return m, nil
	}
	m.recorder.ObserveCommand(command)

	return m, m.schedule()
}

// switchTo loads names[i] with wrap-around and records any failure.
func (m *Model) switchTo(i int) {
	n := len(m.names)
	i = ((i % n) + n) % n
	m.err = m.load(i)
	if m.err != nil {
		m.logger.Warn("dataset switch failed", zap.Error(m.err))
	}
}

// View renders the frame on the alternate screen.
func (m Model) View() tea.View {
	v := tea.NewView(m.Render())
	v.AltScreen = true

	return v
}

// Render lays out the title, the drawing next to the step panel, the
// progress line, the legend and the help line.
func (m Model) Render() string {
	width, height := m.width, m.height
	if width == 0 || height == 0 {
		width, height = defaultWidth, defaultHeight
	}
	f := m.ctrl.Frame()

	title := titleStyle.Render("Prim's MST replay") + " " +
		subtitleStyle.Render(fmt.Sprintf("%s (%d/%d)", m.Dataset(), m.index+1, len(m.names)))

	cols := max(width-panelWidth-2, render.MinCols)
	rows := max(height-8, render.MinRows)
	drawing := m.drawing(f, cols, rows)
	body := lipgloss.JoinHorizontal(lipgloss.Top, drawing, " ", m.panel(f))

	progress := fmt.Sprintf("%s %s  %s  %s",
		f.Position(), render.ProgressBar(f.Progress(), barWidth), f.State, render.Speed(f.Speed))

	sections := []string{title, body, progress, legend()}
	if m.err != nil {
		sections = append(sections, errorStyle.Render(m.err.Error()))
	}
	sections = append(sections, m.keys.helpLine())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// drawing styles the canvas run by run.
func (m Model) drawing(f replay.Frame, cols, rows int) string {
	c := render.Draw(m.trace.Graph(), f.Step, cols, rows)
	lines := make([]string, rows)
	for r := 0; r < rows; r++ {
		var b strings.Builder
		for _, run := range c.Runs(r) {
			b.WriteString(cellStyles[run.Class].Render(run.Text))
		}
		lines[r] = b.String()
	}

	return strings.Join(lines, "\n")
}

// panel shows the description, explanation, heap and running weight.
func (m Model) panel(f replay.Frame) string {
	inner := panelWidth - 4
	if !f.HasStep {
		return panelStyle.Width(panelWidth).Render("No steps.")
	}
	s := f.Step
	wrap := lipgloss.NewStyle().Width(inner)

	heap := []string{opStyles[s.Operation].Render(fmt.Sprintf("Min-heap (%s)", s.Operation))}
	for _, line := range render.HeapPanel(m.trace.Graph(), s.Heap) {
		style := heapStyle
		if line.First {
			style = heapFirstStyle
		}
		heap = append(heap, style.Render(line.Text))
	}

	return panelStyle.Width(panelWidth).Render(lipgloss.JoinVertical(lipgloss.Left,
		wrap.Inherit(descStyle).Render(s.Description),
		"",
		wrap.Inherit(explainStyle).Render(s.Explanation),
		"",
		strings.Join(heap, "\n"),
		"",
		weightStyle.Render(render.Weight(s.Weight())),
	))
}

// legend explains the colors.
func legend() string {
	return strings.Join([]string{
		cellStyles[render.ClassNodeMST].Render("● in tree"),
		cellStyles[render.ClassNodeHighlight].Render("● highlighted"),
		cellStyles[render.ClassEdgeCurrent].Render("─ current edge"),
		cellStyles[render.ClassEdgeMST].Render("─ tree edge"),
		cellStyles[render.ClassEdgeIdle].Render("─ candidate"),
	}, "  ")
}
