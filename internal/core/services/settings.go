package services

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/ycard/internal/core/domain"
	"github.com/custodia-labs/ycard/internal/core/ports/driven"
	"github.com/custodia-labs/ycard/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyStorageBackend = "storage.backend"
	keyStorageDataDir = "storage.data_dir"
	keyEditorTheme    = "editor.theme"
	keyLoggingVerbose = "logging.verbose"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Storage: domain.StorageSettings{
			Backend: s.getBackend(defaults.Storage.Backend),
			DataDir: s.getString(keyStorageDataDir, defaults.Storage.DataDir),
		},
		Editor: domain.EditorSettings{
			Theme: s.getTheme(defaults.Editor.Theme),
		},
		Logging: domain.LoggingSettings{
			Verbose: s.getBool(keyLoggingVerbose, defaults.Logging.Verbose),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if settings == nil {
		return fmt.Errorf("%w: nil settings", domain.ErrInvalidInput)
	}

	if err := s.configStore.Set(keyStorageBackend, settings.Storage.Backend.String()); err != nil {
		return fmt.Errorf("save storage backend: %w", err)
	}
	if err := s.configStore.Set(keyStorageDataDir, settings.Storage.DataDir); err != nil {
		return fmt.Errorf("save storage data_dir: %w", err)
	}
	if err := s.configStore.Set(keyEditorTheme, settings.Editor.Theme.String()); err != nil {
		return fmt.Errorf("save editor theme: %w", err)
	}
	if err := s.configStore.Set(keyLoggingVerbose, settings.Logging.Verbose); err != nil {
		return fmt.Errorf("save logging verbose: %w", err)
	}

	return s.configStore.Save()
}

// SetBackend selects the storage backend.
func (s *SettingsService) SetBackend(backend domain.StorageBackend) error {
	if !backend.IsValid() {
		return fmt.Errorf("%w: storage backend %q", domain.ErrInvalidInput, backend)
	}
	return s.update(func(settings *domain.AppSettings) {
		settings.Storage.Backend = backend
	})
}

// SetDataDir sets the directory used by durable backends.
func (s *SettingsService) SetDataDir(dir string) error {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return fmt.Errorf("%w: data directory is empty", domain.ErrInvalidInput)
	}
	return s.update(func(settings *domain.AppSettings) {
		settings.Storage.DataDir = dir
	})
}

// SetTheme sets the editor theme.
func (s *SettingsService) SetTheme(theme domain.Theme) error {
	if !theme.IsValid() {
		return fmt.Errorf("%w: theme %q", domain.ErrInvalidInput, theme)
	}
	return s.update(func(settings *domain.AppSettings) {
		settings.Editor.Theme = theme
	})
}

// SetVerbose enables or disables debug logging.
func (s *SettingsService) SetVerbose(verbose bool) error {
	return s.update(func(settings *domain.AppSettings) {
		settings.Logging.Verbose = verbose
	})
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

func (s *SettingsService) update(apply func(*domain.AppSettings)) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}
	apply(settings)
	return s.Save(settings)
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}

func (s *SettingsService) getBackend(defaultVal domain.StorageBackend) domain.StorageBackend {
	backend := domain.StorageBackend(s.configStore.GetString(keyStorageBackend))
	if !backend.IsValid() {
		return defaultVal
	}
	return backend
}

func (s *SettingsService) getTheme(defaultVal domain.Theme) domain.Theme {
	theme := domain.Theme(s.configStore.GetString(keyEditorTheme))
	if !theme.IsValid() {
		return defaultVal
	}
	return theme
}
