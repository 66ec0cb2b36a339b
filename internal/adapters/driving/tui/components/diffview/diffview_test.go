package diffview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/ycard/internal/core/domain"
)

func TestRows_Equal(t *testing.T) {
	rows := Rows("a\nb", "a\nb")

	require.Len(t, rows, 2)
	for _, r := range rows {
		assert.Equal(t, OpEqual, r.Op)
		assert.True(t, r.HasLeft)
		assert.True(t, r.HasRight)
	}
}

func TestRows_Insert(t *testing.T) {
	rows := Rows("a\nc", "a\nb\nc")

	require.Len(t, rows, 3)
	assert.Equal(t, OpInsert, rows[1].Op)
	assert.False(t, rows[1].HasLeft)
	assert.Equal(t, "b", rows[1].Right)
}

func TestRows_Delete(t *testing.T) {
	rows := Rows("a\nb\nc", "a\nc")

	require.Len(t, rows, 3)
	assert.Equal(t, OpDelete, rows[1].Op)
	assert.Equal(t, "b", rows[1].Left)
	assert.False(t, rows[1].HasRight)
}

func TestRows_ReplaceUneven(t *testing.T) {
	rows := Rows("x", "y\nz")

	require.Len(t, rows, 2)
	assert.Equal(t, OpReplace, rows[0].Op)
	assert.Equal(t, "x", rows[0].Left)
	assert.Equal(t, "y", rows[0].Right)
	assert.False(t, rows[1].HasLeft)
	assert.Equal(t, "z", rows[1].Right)
}

func TestView_SetDiff(t *testing.T) {
	v := NewView(nil)
	v.SetDimensions(60, 10)

	v.SetDiff(domain.Changes("name: Ann", "name: Anne"))

	assert.True(t, v.Diff().Changed)
	require.Len(t, v.Rows(), 1)
	out := v.View()
	assert.Contains(t, out, "Original")
	assert.Contains(t, out, "Modified")
	assert.Contains(t, out, "- name: Ann")
	assert.Contains(t, out, "+ name: Anne")
}

func TestPad(t *testing.T) {
	assert.Equal(t, "ab  ", pad("ab", 4))
	assert.Equal(t, "abcd", pad("abcdef", 4))
	assert.Equal(t, "    ", pad("\t", 4))
}
