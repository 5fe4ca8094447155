package tui

import (
	"charm.land/lipgloss/v2"

	"github.com/katalvlaran/mstreplay/mst"
	"github.com/katalvlaran/mstreplay/render"
)

// Palette
var (
	colorIdle    = lipgloss.Color("#64748B") // Slate
	colorTree    = lipgloss.Color("#22C55E") // Green
	colorCurrent = lipgloss.Color("#F43F5E") // Rose
	colorNode    = lipgloss.Color("#F8FAFC") // White
	colorHigh    = lipgloss.Color("#F97316") // Orange
	colorAccent  = lipgloss.Color("#8B5CF6") // Purple
	colorDim     = lipgloss.Color("#94A3B8")
	colorBorder  = lipgloss.Color("#334155")
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	subtitleStyle = lipgloss.NewStyle().Foreground(colorDim)
	descStyle     = lipgloss.NewStyle().Bold(true).Foreground(colorNode)
	explainStyle  = lipgloss.NewStyle().Foreground(colorDim).Italic(true)
	weightStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorTree)
	errorStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorCurrent)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)

	helpKeyStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	helpDescStyle = lipgloss.NewStyle().Foreground(colorDim)
	helpSepStyle  = lipgloss.NewStyle().Foreground(colorBorder)
)

// cellStyles colors canvas cells by class.
var cellStyles = map[render.Class]lipgloss.Style{
	render.ClassBlank:         lipgloss.NewStyle(),
	render.ClassEdgeIdle:      lipgloss.NewStyle().Foreground(colorIdle),
	render.ClassEdgeMST:       lipgloss.NewStyle().Foreground(colorTree).Bold(true),
	render.ClassEdgeCurrent:   lipgloss.NewStyle().Foreground(colorCurrent).Bold(true),
	render.ClassWeightIdle:    lipgloss.NewStyle().Foreground(colorDim),
	render.ClassWeightMST:     lipgloss.NewStyle().Foreground(colorTree),
	render.ClassWeightCurrent: lipgloss.NewStyle().Foreground(colorCurrent),
	render.ClassNode:          lipgloss.NewStyle().Foreground(colorNode).Bold(true),
	render.ClassNodeMST:       lipgloss.NewStyle().Foreground(colorTree).Bold(true),
	render.ClassNodeHighlight: lipgloss.NewStyle().Foreground(colorHigh).Bold(true).Reverse(true),
}

// opStyles colors the heap panel header by the step's heap operation.
var opStyles = map[mst.HeapOperation]lipgloss.Style{
	mst.OpNone:    lipgloss.NewStyle().Foreground(colorDim),
	mst.OpInsert:  lipgloss.NewStyle().Foreground(colorTree),
	mst.OpExtract: lipgloss.NewStyle().Foreground(colorCurrent),
	mst.OpUpdate:  lipgloss.NewStyle().Foreground(colorHigh),
}

var (
	heapFirstStyle = lipgloss.NewStyle().Foreground(colorCurrent).Bold(true)
	heapStyle      = lipgloss.NewStyle().Foreground(colorNode)
)
