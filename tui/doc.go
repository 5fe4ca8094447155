// Package tui is the interactive front end: a Bubble Tea model that owns a
// replay.Controller and draws each frame with lipgloss.
//
// Autoplay is a tea.Tick command. Every tick carries the generation that
// scheduled it; any command or dataset switch bumps the generation, so a
// tick scheduled before the change is dropped on arrival.
//
// Keys:
//
//	space        play / pause
//	n, →         step forward
//	r            reset
//	+, -         faster / slower
//	tab, ]       next dataset
//	shift+tab, [ previous dataset
//	q, ctrl+c    quit
package tui
