// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/ycard/internal/core/domain"
)

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewEditor is the document editor.
	ViewEditor ViewType = iota
	// ViewDiff is the side-by-side comparison with the opening text.
	ViewDiff
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewEditor:
		return "editor"
	case ViewDiff:
		return "diff"
	default:
		return "unknown"
	}
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// OutcomeReceived carries the result of a session action back to the model.
type OutcomeReceived struct {
	Outcome domain.Outcome
}

// ThemeChanged is sent after the theme was switched.
type ThemeChanged struct {
	Theme domain.Theme
	Err   error
}

// ModalDismissed is sent when the notification dialog is closed.
type ModalDismissed struct{}
