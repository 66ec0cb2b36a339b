// Package editarea provides the document editing component for the TUI.
package editarea

import (
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/ycard/internal/adapters/driven/editor"
	"github.com/custodia-labs/ycard/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/ycard/internal/core/domain"
	"github.com/custodia-labs/ycard/internal/core/ports/driven"
)

// Ensure Area implements the interface.
var _ driven.EditorSurface = (*Area)(nil)

// Area wraps a bubbles textarea with an undo history.
// It is the editor surface a session mounts.
type Area struct {
	textarea textarea.Model
	buffer   *editor.Buffer
	styles   *styles.Styles
	width    int
	height   int
}

// New creates an editing area holding text.
func New(s *styles.Styles, text string) *Area {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ta := textarea.New()
	ta.ShowLineNumbers = true
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.Placeholder = "people:\n  - uid: ..."
	ta.SetValue(text)
	ta.Focus()

	return &Area{
		textarea: ta,
		buffer:   editor.NewBuffer(text),
		styles:   s,
		width:    80,
		height:   20,
	}
}

// Init initialises the editing area.
func (a *Area) Init() tea.Cmd {
	return textarea.Blink
}

// Update forwards input to the textarea and records changed text in the history.
func (a *Area) Update(msg tea.Msg) (*Area, tea.Cmd) {
	var cmd tea.Cmd
	a.textarea, cmd = a.textarea.Update(msg)
	a.buffer.SetValue(a.textarea.Value())
	return a, cmd
}

// View renders the editing area.
func (a *Area) View() string {
	return a.styles.Editor.Render(a.textarea.View())
}

// Value returns the current text.
func (a *Area) Value() string {
	return a.buffer.Value()
}

// Trigger runs an editor command and shows the resulting text.
func (a *Area) Trigger(cmd domain.EditorCommand) error {
	if err := a.buffer.Trigger(cmd); err != nil {
		return err
	}
	a.textarea.SetValue(a.buffer.Value())
	return nil
}

// CanUndo reports whether an undo step is available.
func (a *Area) CanUndo() bool {
	return a.buffer.CanUndo()
}

// CanRedo reports whether a redo step is available.
func (a *Area) CanRedo() bool {
	return a.buffer.CanRedo()
}

// SetSize sets the outer dimensions, border included.
func (a *Area) SetSize(width, height int) {
	a.width = width
	a.height = height
	a.textarea.SetWidth(max(width-2, 10))
	a.textarea.SetHeight(max(height-2, 3))
}

// SetStyles replaces the styles, used after a theme switch.
func (a *Area) SetStyles(s *styles.Styles) {
	if s != nil {
		a.styles = s
	}
}

// Width returns the current width.
func (a *Area) Width() int {
	return a.width
}

// Height returns the current height.
func (a *Area) Height() int {
	return a.height
}
