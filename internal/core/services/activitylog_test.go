package services

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/ycard/internal/core/domain"
)

func TestActivityLog_AppendAndEntries(t *testing.T) {
	fixed := time.Date(2026, 1, 2, 9, 8, 7, 0, time.UTC)
	log := NewActivityLog().WithClock(func() time.Time { return fixed })

	entry := log.Append(domain.LogSuccess, "Editor initialized successfully")
	log.Append(domain.LogInfo, "Logs panel opened")

	assert.Equal(t, "09:08:07", entry.Timestamp)
	entries := log.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, domain.LogSuccess, entries[0].Category)
	assert.Equal(t, "Logs panel opened", entries[1].Message)
}

func TestActivityLog_NeverExceedsCapacity(t *testing.T) {
	log := NewActivityLog()

	for i := 1; i <= 51; i++ {
		log.Append(domain.LogInfo, fmt.Sprintf("entry %d", i))
	}

	entries := log.Entries()
	require.Len(t, entries, domain.LogCapacity)
	assert.Equal(t, "entry 2", entries[0].Message)
	assert.Equal(t, "entry 51", entries[49].Message)
	for i, e := range entries {
		assert.Equal(t, fmt.Sprintf("entry %d", i+2), e.Message)
	}
}

func TestActivityLog_WrapsManyTimes(t *testing.T) {
	log := NewActivityLogWithCapacity(3)

	for i := 1; i <= 10; i++ {
		log.Append(domain.LogInfo, fmt.Sprintf("%d", i))
	}

	assert.Equal(t, 3, log.Len())
	assert.Equal(t, 3, log.Capacity())
	got := make([]string, 0, 3)
	for _, e := range log.Entries() {
		got = append(got, e.Message)
	}
	assert.Equal(t, []string{"8", "9", "10"}, got)
}

func TestActivityLog_MinimumCapacity(t *testing.T) {
	log := NewActivityLogWithCapacity(0)

	log.Append(domain.LogInfo, "a")
	log.Append(domain.LogInfo, "b")

	require.Len(t, log.Entries(), 1)
	assert.Equal(t, "b", log.Entries()[0].Message)
}

func TestActivityLog_EntriesIsCopy(t *testing.T) {
	log := NewActivityLog()
	log.Append(domain.LogInfo, "original")

	entries := log.Entries()
	entries[0].Message = "changed"

	assert.Equal(t, "original", log.Entries()[0].Message)
}

func TestActivityLog_ConcurrentAppends(t *testing.T) {
	log := NewActivityLog()

	var wg sync.WaitGroup
	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			log.Append(domain.LogInfo, "x")
		}()
	}
	wg.Wait()

	assert.Equal(t, domain.LogCapacity, log.Len())
}
