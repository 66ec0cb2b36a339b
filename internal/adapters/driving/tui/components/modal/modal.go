// Package modal provides the notification dialog for the TUI.
package modal

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/ycard/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/ycard/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/ycard/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/ycard/internal/core/domain"
)

// Modal shows the title and message of one outcome until dismissed.
type Modal struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	outcome domain.Outcome
	visible bool
	width   int
}

// New creates a hidden modal.
func New(s *styles.Styles, km *keymap.KeyMap) *Modal {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	return &Modal{styles: s, keymap: km, width: 80}
}

// Show displays an outcome.
func (m *Modal) Show(out domain.Outcome) {
	m.outcome = out
	m.visible = true
}

// Hide closes the modal.
func (m *Modal) Hide() {
	m.visible = false
}

// Visible reports whether the modal is open.
func (m *Modal) Visible() bool {
	return m.visible
}

// Outcome returns the outcome being shown.
func (m *Modal) Outcome() domain.Outcome {
	return m.outcome
}

// Update closes the modal on the dismiss keys and swallows all other keys.
func (m *Modal) Update(msg tea.Msg) (*Modal, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !m.visible {
		return m, nil
	}
	if keymap.Matches(keyMsg.String(), m.keymap.Dismiss) {
		m.visible = false
		return m, func() tea.Msg { return messages.ModalDismissed{} }
	}
	return m, nil
}

// View renders the dialog, or nothing when hidden.
func (m *Modal) View() string {
	if !m.visible {
		return ""
	}

	title := m.styles.ForCategory(m.outcome.Category).Bold(true).
		Render(m.outcome.Category.Icon() + " " + m.outcome.Title)
	body := m.styles.Normal.Width(min(m.width-10, 60)).Render(m.outcome.Message)
	help := m.styles.Help.Render("enter: ok")

	return m.styles.Modal.Render(strings.Join([]string{title, "", body, "", help}, "\n"))
}

// Place centres the dialog over an area of the given size.
func (m *Modal) Place(width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, m.View())
}

// SetWidth sets the available width.
func (m *Modal) SetWidth(width int) {
	m.width = width
}

// SetStyles replaces the styles, used after a theme switch.
func (m *Modal) SetStyles(s *styles.Styles) {
	if s != nil {
		m.styles = s
	}
}
