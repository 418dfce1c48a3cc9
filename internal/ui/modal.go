package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Modal is the interface for modal dialogs.
// Update returns the updated modal and whether it should close.
type Modal interface {
	Update(msg tea.KeyMsg, keys keyMap) (Modal, bool)
	View(theme Theme, width, height int) string
}

// confirmModal asks a yes/no question and reports the answer once.
type confirmModal struct {
	title  string
	body   string
	answer func(accept bool)
}

func newConfirmModal(title, body string, answer func(bool)) confirmModal {
	return confirmModal{title: title, body: body, answer: answer}
}

func (c confirmModal) Update(msg tea.KeyMsg, keys keyMap) (Modal, bool) {
	switch {
	case key.Matches(msg, keys.Yes):
		c.answer(true)
		return c, true
	case key.Matches(msg, keys.No):
		c.answer(false)
		return c, true
	}
	return c, false
}

func (c confirmModal) View(theme Theme, width, height int) string {
	styles := theme.Styles()
	content := lipgloss.JoinVertical(lipgloss.Left,
		styles.DangerText.Render(c.title),
		"",
		styles.Text.Render(c.body),
		"",
		styles.WarningText.Render("y")+styles.MutedText.Render(" eliminar   ")+
			styles.WarningText.Render("n")+styles.MutedText.Render(" cancelar"),
	)
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Danger)).
		Padding(1, 2).
		Width(min(56, max(width-4, 20))).
		Render(content)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
