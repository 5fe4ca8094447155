package tui

import (
	"strings"

	"charm.land/bubbles/v2/key"
)

// keyMap binds every replay command.
type keyMap struct {
	Toggle key.Binding
	Step   key.Binding
	Reset  key.Binding
	Faster key.Binding
	Slower key.Binding
	Next   key.Binding
	Prev   key.Binding
	Quit   key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Toggle: key.NewBinding(key.WithKeys("space"), key.WithHelp("space", "play/pause")),
		Step:   key.NewBinding(key.WithKeys("n", "right"), key.WithHelp("n/→", "step")),
		Reset:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Faster: key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "faster")),
		Slower: key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "slower")),
		Next:   key.NewBinding(key.WithKeys("tab", "]"), key.WithHelp("tab", "next graph")),
		Prev:   key.NewBinding(key.WithKeys("shift+tab", "["), key.WithHelp("shift+tab", "prev graph")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// bindings lists the keys in help order.
func (k keyMap) bindings() []key.Binding {
	return []key.Binding{k.Toggle, k.Step, k.Reset, k.Faster, k.Slower, k.Next, k.Prev, k.Quit}
}

// helpLine renders "key desc • key desc ...".
func (k keyMap) helpLine() string {
	parts := make([]string, 0, 8)
	for _, b := range k.bindings() {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		parts = append(parts, helpKeyStyle.Render(h.Key)+" "+helpDescStyle.Render(h.Desc))
	}

	return strings.Join(parts, helpSepStyle.Render(" • "))
}
