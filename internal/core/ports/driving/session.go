package driving

import (
	"context"

	"github.com/custodia-labs/ycard/internal/core/domain"
	"github.com/custodia-labs/ycard/internal/core/ports/driven"
)

// SessionService is one open-editor lifecycle. Hosts trigger actions and
// present the returned outcomes; every action appends exactly one log entry.
type SessionService interface {
	// ID returns the session identifier.
	ID() string

	// Mount attaches the editing surface and captures the baseline snapshot.
	Mount(editor driven.EditorSurface) domain.Outcome

	// Validate parses and checks the current editor text.
	Validate() domain.Outcome

	// Save validates and persists the current editor text.
	Save(ctx context.Context) domain.Outcome

	// Diff compares the current editor text with the baseline.
	Diff() domain.Outcome

	// Undo forwards an undo command to the editor.
	Undo() domain.Outcome

	// Redo forwards a redo command to the editor.
	Redo() domain.Outcome

	// ToggleLogs flips the activity log panel visibility.
	ToggleLogs() domain.Outcome

	// LogsVisible reports whether the activity log panel is shown.
	LogsVisible() bool

	// Entries returns the activity log, oldest first.
	Entries() []domain.LogEntry

	// State returns the current lifecycle state.
	State() domain.SessionState

	// Close discards the session.
	Close()
}

// SessionFactory opens new editing sessions sharing one record store.
type SessionFactory interface {
	NewSession() SessionService
}
