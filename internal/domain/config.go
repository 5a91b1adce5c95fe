package domain

// Config mirrors ~/.habits/config.yaml.
type Config struct {
	ConfigFormatVersion string          `yaml:"config_format_version"`
	Storage             StorageSettings `yaml:"storage"`
	Logging             LogSettings     `yaml:"logging"`
}

// StorageBackend selects the habit repository implementation.
type StorageBackend string

const (
	BackendText   StorageBackend = "text"
	BackendSQLite StorageBackend = "sqlite"
)

// StorageSettings configures where habits are persisted.
type StorageSettings struct {
	Backend    StorageBackend `yaml:"backend"`
	DataFile   string         `yaml:"data_file"`
	SQLitePath string         `yaml:"sqlite_path"`
}

// LogSettings configures the zap logger.
type LogSettings struct {
	Level  string `yaml:"level"`
	Output string `yaml:"output"`
}

// Location returns the path of the active backend's storage.
func (s StorageSettings) Location() string {
	if s.Backend == BackendSQLite {
		return s.SQLitePath
	}
	return s.DataFile
}

// Valid reports whether the backend name is known.
func (b StorageBackend) Valid() bool {
	return b == BackendText || b == BackendSQLite
}
