package services

import (
	"sync"
	"time"

	"github.com/custodia-labs/ycard/internal/core/domain"
	"github.com/custodia-labs/ycard/internal/logger"
)

// ActivityLog is a fixed-capacity FIFO of log entries. Once full, each append
// overwrites the oldest slot, so appends are O(1) and the log never holds more
// than its capacity.
type ActivityLog struct {
	mu      sync.Mutex
	entries []domain.LogEntry
	head    int // index of the oldest entry
	size    int
	now     func() time.Time
}

// NewActivityLog creates a log holding at most domain.LogCapacity entries.
func NewActivityLog() *ActivityLog {
	return NewActivityLogWithCapacity(domain.LogCapacity)
}

// NewActivityLogWithCapacity creates a log with a custom capacity.
// A capacity below one is raised to one.
func NewActivityLogWithCapacity(capacity int) *ActivityLog {
	if capacity < 1 {
		capacity = 1
	}
	return &ActivityLog{
		entries: make([]domain.LogEntry, capacity),
		now:     time.Now,
	}
}

// WithClock replaces the wall clock used to stamp entries.
func (l *ActivityLog) WithClock(now func() time.Time) *ActivityLog {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.now = now
	return l
}

// Append records a new entry, evicting the oldest one when full.
// It never fails.
func (l *ActivityLog) Append(category domain.LogCategory, message string) domain.LogEntry {
	l.mu.Lock()
	entry := domain.NewLogEntry(category, message, l.now())
	capacity := len(l.entries)
	if l.size < capacity {
		l.entries[(l.head+l.size)%capacity] = entry
		l.size++
	} else {
		l.entries[l.head] = entry
		l.head = (l.head + 1) % capacity
	}
	l.mu.Unlock()

	mirror(entry)
	return entry
}

// Entries returns a copy of the current contents, oldest first.
func (l *ActivityLog) Entries() []domain.LogEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]domain.LogEntry, l.size)
	capacity := len(l.entries)
	for i := 0; i < l.size; i++ {
		out[i] = l.entries[(l.head+i)%capacity]
	}
	return out
}

// Len returns the number of retained entries.
func (l *ActivityLog) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.size
}

// Capacity returns the maximum number of retained entries.
func (l *ActivityLog) Capacity() int {
	return len(l.entries)
}

// mirror forwards an entry to the verbose logger.
func mirror(entry domain.LogEntry) {
	switch entry.Category {
	case domain.LogError:
		logger.Error("%s", entry.Message)
	case domain.LogWarning:
		logger.Warn("%s", entry.Message)
	case domain.LogSuccess, domain.LogInfo:
		logger.Info("%s", entry.Message)
	default:
		logger.Debug("%s", entry.Message)
	}
}
