package domain

import "time"

// LogCapacity is the maximum number of entries an activity log retains.
const LogCapacity = 50

// LogCategory classifies an activity log entry.
type LogCategory string

// Log categories.
const (
	LogSuccess LogCategory = "success"
	LogError   LogCategory = "error"
	LogWarning LogCategory = "warning"
	LogInfo    LogCategory = "info"
)

// IsValid returns true if the category is recognised.
func (c LogCategory) IsValid() bool {
	switch c {
	case LogSuccess, LogError, LogWarning, LogInfo:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (c LogCategory) String() string {
	return string(c)
}

// Icon returns the single-glyph marker shown next to an entry.
func (c LogCategory) Icon() string {
	switch c {
	case LogSuccess:
		return "✓"
	case LogError:
		return "✗"
	case LogWarning:
		return "⚠"
	case LogInfo:
		return "ℹ"
	default:
		return "·"
	}
}

// LogEntry is one immutable activity record.
type LogEntry struct {
	Category  LogCategory `json:"category"`
	Message   string      `json:"message"`
	Timestamp string      `json:"timestamp"`
}

// TimestampLayout formats the wall-clock time of an entry.
const TimestampLayout = "15:04:05"

// NewLogEntry builds an entry stamped with at.
func NewLogEntry(category LogCategory, message string, at time.Time) LogEntry {
	return LogEntry{
		Category:  category,
		Message:   message,
		Timestamp: at.Format(TimestampLayout),
	}
}
