package domain

import (
	"encoding/json"
	"time"
)

// RecordKey is the fixed key under which the validated document is stored.
const RecordKey = "ycard-data"

// SaveStatus is the outcome class of a save.
type SaveStatus int

const (
	// SaveSaved means the document was written.
	SaveSaved SaveStatus = iota

	// SaveRejected means validation failed and nothing was written.
	SaveRejected

	// SaveFailed means the store refused the write; the prior value is intact.
	SaveFailed
)

// String returns the string representation.
func (s SaveStatus) String() string {
	switch s {
	case SaveSaved:
		return "saved"
	case SaveRejected:
		return "rejected"
	case SaveFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// SaveResult reports what happened to a save request.
type SaveResult struct {
	Status SaveStatus

	// Count is the number of people written when Status is SaveSaved.
	Count int

	// Violation is set when Status is SaveRejected.
	Violation *Violation

	// Reason describes the store failure when Status is SaveFailed.
	Reason string
}

// Saved returns a successful save result.
func Saved(count int) SaveResult {
	return SaveResult{Status: SaveSaved, Count: count}
}

// SaveRejectedBy returns a rejected save result.
func SaveRejectedBy(v Violation) SaveResult {
	return SaveResult{Status: SaveRejected, Violation: &v}
}

// SaveFailedWith returns a failed save result.
func SaveFailedWith(reason string) SaveResult {
	return SaveResult{Status: SaveFailed, Reason: reason}
}

// StoredValue is what a record store holds under a key.
type StoredValue struct {
	Value     []byte
	Revision  string
	UpdatedAt time.Time
}

// PersistedRecord is the committed document as read back from the store.
type PersistedRecord struct {
	Key       string
	Revision  string
	UpdatedAt time.Time
	Data      json.RawMessage
	People    []PersonRecord
}

// Count returns the number of stored people.
func (r *PersistedRecord) Count() int {
	if r == nil {
		return 0
	}
	return len(r.People)
}
