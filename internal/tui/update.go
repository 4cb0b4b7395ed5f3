package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles Bubbletea messages. Input reaches the controller only
// through the slider and toggle it is bound to.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		if msg.Width > 20 {
			m.slider.SetWidth(min(msg.Width-20, 40))
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var err error

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Left):
		err = m.slider.Step(m.controller.SelectedTier(), -1)
	case key.Matches(msg, m.keys.Right):
		err = m.slider.Step(m.controller.SelectedTier(), 1)
	case key.Matches(msg, m.keys.Jump):
		err = m.slider.Set(int(msg.Runes[0] - '0'))
	case key.Matches(msg, m.keys.Toggle):
		m.toggle.Activate()
	}

	if err != nil {
		// A rejected tier means the slider and the table disagree on bounds.
		m.log.Error(err, "pricing update failed")
		m.err = err
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}
