package keymap

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeyMap_Bindings(t *testing.T) {
	km := DefaultKeyMap()
	require.NotNil(t, km)

	tests := []struct {
		name    string
		binding key.Binding
		key     string
	}{
		{"quit", km.Quit, "ctrl+c"},
		{"undo", km.Undo, "ctrl+z"},
		{"redo", km.Redo, "ctrl+y"},
		{"validate", km.Validate, "ctrl+v"},
		{"save", km.Save, "ctrl+s"},
		{"diff", km.Diff, "ctrl+d"},
		{"logs", km.Logs, "ctrl+l"},
		{"theme", km.Theme, "ctrl+t"},
		{"dismiss enter", km.Dismiss, "enter"},
		{"dismiss esc", km.Dismiss, "esc"},
		{"back", km.Back, "esc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, Matches(tt.key, tt.binding))
		})
	}
}

func TestKeyMap_ToolbarHelp(t *testing.T) {
	km := DefaultKeyMap()

	help := km.ToolbarHelp()

	require.Len(t, help, 7)
	assert.Equal(t, "undo", help[0].Help().Desc)
	assert.Equal(t, "theme", help[6].Help().Desc)
}

func TestKeyMap_ShortAndDiffHelp(t *testing.T) {
	km := DefaultKeyMap()

	assert.Len(t, km.ShortHelp(), 2)
	assert.Len(t, km.DiffHelp(), 2)
}

func TestMatches(t *testing.T) {
	binding := key.NewBinding(key.WithKeys("a", "b"))

	assert.True(t, Matches("a", binding))
	assert.True(t, Matches("b", binding))
	assert.False(t, Matches("c", binding))
}
