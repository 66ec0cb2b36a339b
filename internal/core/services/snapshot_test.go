package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/ycard/internal/core/domain"
)

func TestSnapshotTracker_CaptureOnce(t *testing.T) {
	tracker := NewSnapshotTracker()
	assert.False(t, tracker.Captured())

	assert.NoError(t, tracker.Capture("first"))
	assert.ErrorIs(t, tracker.Capture("second"), domain.ErrAlreadyCaptured)

	assert.True(t, tracker.Captured())
	assert.Equal(t, "first", tracker.Baseline())
}

func TestSnapshotTracker_RequestDiff(t *testing.T) {
	tracker := NewSnapshotTracker()
	_ = tracker.Capture("people: []\n")

	tests := []struct {
		name    string
		current string
		changed bool
	}{
		{"identical", "people: []\n", false},
		{"edited", "people:\n  - uid: 1\n", true},
		{"trailing whitespace", "people: [] \n", true},
		{"line endings", "people: []\r\n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diff := tracker.RequestDiff(tt.current)

			assert.Equal(t, tt.changed, diff.Changed)
			if tt.changed {
				assert.Equal(t, "people: []\n", diff.Original)
				assert.Equal(t, tt.current, diff.Modified)
			} else {
				assert.Empty(t, diff.Original)
				assert.Empty(t, diff.Modified)
			}
		})
	}
}
