package driving

import "github.com/custodia-labs/ycard/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// SetBackend selects the storage backend.
	SetBackend(backend domain.StorageBackend) error

	// SetDataDir sets the directory used by durable backends.
	SetDataDir(dir string) error

	// SetTheme sets the editor theme.
	SetTheme(theme domain.Theme) error

	// SetVerbose enables or disables debug logging.
	SetVerbose(verbose bool) error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings
}
