package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSaveResult(t *testing.T) {
	assert.Equal(t, SaveSaved, Saved(2).Status)
	assert.Equal(t, 2, Saved(2).Count)

	r := SaveRejectedBy(Violation{Kind: ViolationMissingPeople})
	assert.Equal(t, SaveRejected, r.Status)
	assert.Equal(t, ViolationMissingPeople, r.Violation.Kind)

	f := SaveFailedWith("disk full")
	assert.Equal(t, SaveFailed, f.Status)
	assert.Equal(t, "disk full", f.Reason)
	assert.Equal(t, "failed", f.Status.String())
}

func TestPersistedRecord_Count(t *testing.T) {
	var nilRecord *PersistedRecord
	assert.Zero(t, nilRecord.Count())

	assert.Equal(t, 2, (&PersistedRecord{People: make([]PersonRecord, 2)}).Count())
}
