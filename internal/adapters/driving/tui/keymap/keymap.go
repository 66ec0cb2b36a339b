// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	// Quit exits the application.
	Quit key.Binding

	// Undo and Redo step through the editor history.
	Undo key.Binding
	Redo key.Binding

	// Validate checks the document.
	Validate key.Binding

	// Save validates and stores the document.
	Save key.Binding

	// Diff compares the document with the text it was opened with.
	Diff key.Binding

	// Logs toggles the activity log panel.
	Logs key.Binding

	// Theme switches between dark and light.
	Theme key.Binding

	// Dismiss closes a notification dialog.
	Dismiss key.Binding

	// Back leaves the diff view.
	Back key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Undo: key.NewBinding(
			key.WithKeys("ctrl+z"),
			key.WithHelp("ctrl+z", "undo"),
		),
		Redo: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "redo"),
		),
		Validate: key.NewBinding(
			key.WithKeys("ctrl+v"),
			key.WithHelp("ctrl+v", "validate"),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save"),
		),
		Diff: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "diff"),
		),
		Logs: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "logs"),
		),
		Theme: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "theme"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("enter", "esc"),
			key.WithHelp("enter", "ok"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "ctrl+d"),
			key.WithHelp("esc", "back"),
		),
	}
}

// ToolbarHelp returns the editor actions in toolbar order.
func (k *KeyMap) ToolbarHelp() []key.Binding {
	return []key.Binding{k.Undo, k.Redo, k.Validate, k.Save, k.Diff, k.Logs, k.Theme}
}

// ShortHelp returns the bindings shown in the status bar.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Logs, k.Quit}
}

// DiffHelp returns the bindings shown while the diff view is open.
func (k *KeyMap) DiffHelp() []key.Binding {
	return []key.Binding{k.Back, k.Quit}
}

// Matches checks if a key string matches a binding.
func Matches(keyStr string, binding key.Binding) bool {
	for _, k := range binding.Keys() {
		if k == keyStr {
			return true
		}
	}
	return false
}
