package domain

const unknownDescription = "Unknown"

// StorageBackend selects where saved documents are kept.
type StorageBackend string

// Available storage backends.
const (
	// StorageSQLite keeps the record in a SQLite database on disk.
	StorageSQLite StorageBackend = "sqlite"

	// StorageMemory keeps the record in process memory only.
	StorageMemory StorageBackend = "memory"
)

// IsValid returns true if the backend is recognised.
func (b StorageBackend) IsValid() bool {
	switch b {
	case StorageSQLite, StorageMemory:
		return true
	default:
		return false
	}
}

// IsDurable returns true if saved data outlives the process.
func (b StorageBackend) IsDurable() bool {
	return b == StorageSQLite
}

// String returns the string representation.
func (b StorageBackend) String() string {
	return string(b)
}

// Description returns a human-readable description of the backend.
func (b StorageBackend) Description() string {
	switch b {
	case StorageSQLite:
		return "SQLite (durable, on disk)"
	case StorageMemory:
		return "Memory (discarded on exit)"
	default:
		return unknownDescription
	}
}

// Theme is the colour scheme of the editor shell.
type Theme string

// Available themes.
const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// IsValid returns true if the theme is recognised.
func (t Theme) IsValid() bool {
	return t == ThemeDark || t == ThemeLight
}

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}

// String returns the string representation.
func (t Theme) String() string {
	return string(t)
}

// StorageSettings holds persistence configuration.
type StorageSettings struct {
	// Backend is the record store implementation.
	Backend StorageBackend

	// DataDir is where durable backends keep their files.
	// Empty means ~/.ycard/data.
	DataDir string
}

// EditorSettings holds editor shell configuration.
type EditorSettings struct {
	// Theme is the initial colour scheme.
	Theme Theme
}

// LoggingSettings holds diagnostic logging configuration.
type LoggingSettings struct {
	// Verbose enables debug output on stderr.
	Verbose bool
}

// AppSettings holds all application settings.
type AppSettings struct {
	Storage StorageSettings
	Editor  EditorSettings
	Logging LoggingSettings
}

// DefaultAppSettings returns settings with sensible defaults.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Storage: StorageSettings{
			Backend: StorageSQLite,
		},
		Editor: EditorSettings{
			Theme: ThemeDark,
		},
	}
}

// AllStorageBackends returns all available storage backends.
func AllStorageBackends() []StorageBackend {
	return []StorageBackend{StorageSQLite, StorageMemory}
}

// AllThemes returns all available themes.
func AllThemes() []Theme {
	return []Theme{ThemeDark, ThemeLight}
}
