package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the widget from the board the controller writes into.
func (m Model) View() string {
	if m.quitting {
		if m.err != nil {
			return errorStyle.Render("✗ "+m.err.Error()) + "\n"
		}
		return ""
	}

	sections := []string{
		titleStyle.Render("Pageview pricing"),
		viewCountStyle.Render(strings.ToUpper(m.board.viewCount) + " PAGEVIEWS"),
		m.slider.View(m.controller.SelectedTier()),
		lipgloss.JoinHorizontal(lipgloss.Bottom, priceStyle.Render(m.board.price), periodStyle.Render(" / month")),
		lipgloss.JoinHorizontal(lipgloss.Left, m.toggle.View(m.board.discountActive), "  ", m.discountMarker()),
	}

	panel := panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
	return lipgloss.JoinVertical(lipgloss.Left, panel, m.help.View(m.keys)) + "\n"
}

func (m Model) discountMarker() string {
	if m.board.discountActive {
		return discountOnStyle.Render(m.discount + " applied")
	}
	return discountOffStyle.Render(m.discount + " yearly")
}
