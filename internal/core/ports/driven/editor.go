package driven

import "github.com/custodia-labs/ycard/internal/core/domain"

// EditorSurface is the text editing component the session drives.
// The session only reads its text and forwards commands to it.
type EditorSurface interface {
	// Value returns the current text.
	Value() string

	// Trigger runs an editor command such as undo or redo.
	Trigger(cmd domain.EditorCommand) error
}
