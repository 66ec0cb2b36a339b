// Package editor provides a text buffer with undo/redo history that serves as
// the editing surface for sessions hosted outside a terminal UI.
package editor

import (
	"fmt"
	"sync"

	"github.com/custodia-labs/ycard/internal/core/domain"
	"github.com/custodia-labs/ycard/internal/core/ports/driven"
)

// DefaultHistory is the number of undo steps kept by NewBuffer.
const DefaultHistory = 100

// Ensure Buffer implements the interface.
var _ driven.EditorSurface = (*Buffer)(nil)

// Buffer holds editable text. Every SetValue that changes the text becomes an
// undo step; undo and redo with an empty history are no-ops.
type Buffer struct {
	mu    sync.Mutex
	text  string
	undo  []string
	redo  []string
	limit int
}

// NewBuffer creates a buffer holding text with DefaultHistory undo steps.
func NewBuffer(text string) *Buffer {
	return NewBufferWithHistory(text, DefaultHistory)
}

// NewBufferWithHistory creates a buffer keeping at most limit undo steps.
func NewBufferWithHistory(text string, limit int) *Buffer {
	if limit < 1 {
		limit = 1
	}
	return &Buffer{text: text, limit: limit}
}

// Value returns the current text.
func (b *Buffer) Value() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.text
}

// SetValue replaces the text and records an undo step. It clears the redo stack.
func (b *Buffer) SetValue(text string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if text == b.text {
		return
	}
	b.undo = append(b.undo, b.text)
	if len(b.undo) > b.limit {
		b.undo = b.undo[len(b.undo)-b.limit:]
	}
	b.redo = nil
	b.text = text
}

// Trigger runs an editor command.
func (b *Buffer) Trigger(cmd domain.EditorCommand) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch cmd {
	case domain.EditorUndo:
		if n := len(b.undo); n > 0 {
			b.redo = append(b.redo, b.text)
			b.text = b.undo[n-1]
			b.undo = b.undo[:n-1]
		}
		return nil
	case domain.EditorRedo:
		if n := len(b.redo); n > 0 {
			b.undo = append(b.undo, b.text)
			b.text = b.redo[n-1]
			b.redo = b.redo[:n-1]
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", domain.ErrUnsupportedCommand, cmd)
	}
}

// CanUndo reports whether an undo step is available.
func (b *Buffer) CanUndo() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.undo) > 0
}

// CanRedo reports whether a redo step is available.
func (b *Buffer) CanRedo() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.redo) > 0
}
