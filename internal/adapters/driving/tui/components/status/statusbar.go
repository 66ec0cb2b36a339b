// Package status provides status bar components for the TUI.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/ycard/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/ycard/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/ycard/internal/core/domain"
)

// Bar displays the session state, the latest message and keybinding hints.
type Bar struct {
	styles   *styles.Styles
	keymap   *keymap.KeyMap
	state    domain.SessionState
	category domain.LogCategory
	message  string
	diffMode bool
	width    int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles: s,
		keymap: km,
		state:  domain.SessionIdle,
		width:  80,
	}
}

// Init initialises the status bar.
func (s *Bar) Init() tea.Cmd {
	return nil
}

// Update handles status bar messages.
func (s *Bar) Update(msg tea.Msg) (*Bar, tea.Cmd) {
	// Bar is passive, updated via Set methods
	return s, nil
}

// View renders the status bar.
func (s *Bar) View() string {
	left := s.renderLeft()
	right := s.renderRight()

	padding := s.width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}

	return s.styles.StatusBar.Width(s.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

// renderLeft renders the state label and the latest message.
func (s *Bar) renderLeft() string {
	label := s.styles.Muted.Render(stateLabel(s.state))
	if s.message == "" {
		return label
	}
	return label + "  " + s.styles.ForCategory(s.category).Render(s.category.Icon()+" "+s.message)
}

func stateLabel(state domain.SessionState) string {
	switch state {
	case domain.SessionEditing:
		return "Modified"
	case domain.SessionReady:
		return "Ready"
	case domain.SessionClosed:
		return "Closed"
	default:
		return "Loading"
	}
}

// renderRight renders keybinding hints.
func (s *Bar) renderRight() string {
	bindings := s.keymap.ShortHelp()
	if s.diffMode {
		bindings = s.keymap.DiffHelp()
	}

	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		hints = append(hints, hint(b))
	}
	return s.styles.Muted.Render(strings.Join(hints, " | "))
}

func hint(b key.Binding) string {
	h := b.Help()
	return fmt.Sprintf("%s: %s", h.Key, h.Desc)
}

// SetState sets the session state shown.
func (s *Bar) SetState(state domain.SessionState) {
	s.state = state
}

// State returns the session state shown.
func (s *Bar) State() domain.SessionState {
	return s.state
}

// SetMessage sets the latest message and its category.
func (s *Bar) SetMessage(category domain.LogCategory, message string) {
	s.category = category
	s.message = message
}

// Message returns the current message.
func (s *Bar) Message() string {
	return s.message
}

// SetDiffMode switches the hints shown while the diff view is open.
func (s *Bar) SetDiffMode(on bool) {
	s.diffMode = on
}

// SetWidth sets the status bar width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}

// Width returns the current width.
func (s *Bar) Width() int {
	return s.width
}

// SetStyles replaces the styles, used after a theme switch.
func (s *Bar) SetStyles(st *styles.Styles) {
	if st != nil {
		s.styles = st
	}
}

// Clear removes the message.
func (s *Bar) Clear() {
	s.category = ""
	s.message = ""
}
