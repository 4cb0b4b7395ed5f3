package components

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	toggleOnStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	toggleOffStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

// Toggle is a stateless two-label switch. Which side is lit is supplied at
// render time, so the switch never disagrees with the state it reflects.
type Toggle struct {
	off        string
	on         string
	onActivate func()
}

// NewToggle creates a toggle with labels for its off and on sides.
func NewToggle(off, on string) *Toggle {
	return &Toggle{off: off, on: on}
}

// OnActivate registers the handler invoked on every activation.
func (t *Toggle) OnActivate(handler func()) {
	t.onActivate = handler
}

// Activate fires the registered handler.
func (t *Toggle) Activate() {
	if t.onActivate != nil {
		t.onActivate()
	}
}

// View renders both labels with the active side highlighted.
func (t *Toggle) View(active bool) string {
	offLabel, onLabel := toggleOnStyle.Render(t.off), toggleOffStyle.Render(t.on)
	knob := "(●  )"
	if active {
		offLabel, onLabel = toggleOffStyle.Render(t.off), toggleOnStyle.Render(t.on)
		knob = "(  ●)"
	}
	return lipgloss.JoinHorizontal(lipgloss.Left, offLabel, " ", knob, " ", onLabel)
}
