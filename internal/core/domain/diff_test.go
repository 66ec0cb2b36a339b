package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiffOutcome(t *testing.T) {
	assert.Equal(t, DiffOutcome{}, NoChanges())

	d := Changes("a", "b")
	assert.True(t, d.Changed)
	assert.Equal(t, "a", d.Original)
	assert.Equal(t, "b", d.Modified)
}
