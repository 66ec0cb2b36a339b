package services

import (
	"sync"

	"github.com/custodia-labs/ycard/internal/core/domain"
)

// SnapshotTracker holds the baseline text captured when the editor became
// ready. The baseline is set once and never changes afterwards.
type SnapshotTracker struct {
	mu       sync.RWMutex
	baseline string
	captured bool
}

// NewSnapshotTracker creates a tracker with no baseline.
func NewSnapshotTracker() *SnapshotTracker {
	return &SnapshotTracker{}
}

// Capture stores text as the baseline. Calls after the first are ignored and
// return domain.ErrAlreadyCaptured.
func (s *SnapshotTracker) Capture(text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.captured {
		return domain.ErrAlreadyCaptured
	}
	s.baseline = text
	s.captured = true
	return nil
}

// Captured reports whether a baseline exists.
func (s *SnapshotTracker) Captured() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.captured
}

// Baseline returns the captured text.
func (s *SnapshotTracker) Baseline() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.baseline
}

// RequestDiff compares current with the baseline using exact string equality.
// Whitespace and line-ending differences count as changes.
func (s *SnapshotTracker) RequestDiff(current string) domain.DiffOutcome {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if current == s.baseline {
		return domain.NoChanges()
	}
	return domain.Changes(s.baseline, current)
}
