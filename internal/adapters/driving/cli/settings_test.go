package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/ycard/internal/core/domain"
)

func TestSettingsCmd_HasSubcommands(t *testing.T) {
	names := make([]string, 0)
	for _, c := range settingsCmd.Commands() {
		names = append(names, c.Name())
	}

	for _, want := range []string{"show", "wizard", "backend", "data-dir", "theme", "verbose"} {
		assert.Contains(t, names, want)
	}
}

func TestSettingsShow_Defaults(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	out, err := execute(t, "", "settings", "show")

	require.NoError(t, err)
	assert.Contains(t, out, "[Storage]")
	assert.Contains(t, out, "Backend: SQLite (durable, on disk)")
	assert.Contains(t, out, "Data Dir: (default)")
	assert.Contains(t, out, "Theme: dark")
	assert.Contains(t, out, "Verbose: no")
}

func TestSettingsSetters(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	_, err := execute(t, "", "settings", "backend", "memory")
	require.NoError(t, err)
	_, err = execute(t, "", "settings", "theme", "LIGHT")
	require.NoError(t, err)
	_, err = execute(t, "", "settings", "verbose", "true")
	require.NoError(t, err)

	settings, err := settingsService.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.StorageMemory, settings.Storage.Backend)
	assert.Equal(t, domain.ThemeLight, settings.Editor.Theme)
	assert.True(t, settings.Logging.Verbose)

	out, err := execute(t, "", "settings")
	require.NoError(t, err)
	assert.NotContains(t, out, "Data Dir")
}

func TestSettingsSetters_RejectInvalid(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	tests := [][]string{
		{"settings", "backend", "postgres"},
		{"settings", "theme", "neon"},
		{"settings", "verbose", "maybe"},
		{"settings", "data-dir", "  "},
	}

	for _, args := range tests {
		t.Run(args[1], func(t *testing.T) {
			_, err := execute(t, "", args...)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestSettingsWizard(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	out, err := execute(t, "1\n/tmp/ycard-data\n2\n", "settings", "wizard")

	require.NoError(t, err)
	assert.Contains(t, out, "Settings saved.")
	settings, err := settingsService.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.StorageSQLite, settings.Storage.Backend)
	assert.Equal(t, "/tmp/ycard-data", settings.Storage.DataDir)
	assert.Equal(t, domain.ThemeLight, settings.Editor.Theme)
}

func TestSettingsCmd_ErrorsWithoutServices(t *testing.T) {
	old := settingsService
	settingsService = nil
	defer func() { settingsService = old }()

	_, err := execute(t, "", "settings", "show")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "settings service not configured")
}

func TestParseChoice(t *testing.T) {
	assert.Equal(t, 1, parseChoice("", 3, 1))
	assert.Equal(t, 2, parseChoice("2", 3, 1))
	assert.Equal(t, 1, parseChoice("9", 3, 1))
	assert.Equal(t, 1, parseChoice("x", 3, 1))
}
