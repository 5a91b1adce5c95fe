package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/doeshing/habits/internal/domain"
	"github.com/doeshing/habits/internal/pkg/filesystem"
	"github.com/doeshing/habits/internal/ports"
)

// EnvConfigPath overrides the default config location.
const EnvConfigPath = "HABITS_CONFIG"

// FileLoader loads YAML configuration from ~/.habits/config.yaml (overridable via HABITS_CONFIG).
type FileLoader struct {
	overridePath string
}

// NewFileLoader builds a new loader. An empty path uses the default resolution.
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{overridePath: path}
}

// Load implements ports.ConfigProvider. On error the returned config is the
// hydrated default so callers can warn and carry on.
func (l *FileLoader) Load(context.Context) (domain.Config, error) {
	path := l.Path()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := DefaultConfig()
			if err := l.Save(cfg); err != nil {
				return hydrateDefaults(cfg), err
			}
			return hydrateDefaults(cfg), nil
		}
		return hydrateDefaults(DefaultConfig()), err
	}

	var cfg domain.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return hydrateDefaults(DefaultConfig()), fmt.Errorf("parse %s: %w", path, err)
	}
	if cfg.Storage.Backend != "" && !cfg.Storage.Backend.Valid() {
		return hydrateDefaults(DefaultConfig()), fmt.Errorf("%s: unknown storage backend %q", path, cfg.Storage.Backend)
	}

	return hydrateDefaults(cfg), nil
}

// Save writes cfg to the resolved path.
func (l *FileLoader) Save(cfg domain.Config) error {
	path := l.Path()
	if err := os.MkdirAll(filepath.Dir(path), domain.DirectoryPermissions); err != nil {
		return err
	}
	raw, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, domain.SecureFilePermissions)
}

// Path returns the config file location.
func (l *FileLoader) Path() string {
	if l.overridePath != "" {
		return filesystem.ExpandPath(l.overridePath)
	}
	if custom := os.Getenv(EnvConfigPath); custom != "" {
		return filesystem.ExpandPath(custom)
	}
	return filepath.Join(filesystem.AppDir(), "config.yaml")
}

// DefaultConfig returns the configuration written on first run.
func DefaultConfig() domain.Config {
	return domain.Config{
		ConfigFormatVersion: "1",
		Storage: domain.StorageSettings{
			Backend:    domain.BackendText,
			DataFile:   domain.DefaultDataFile,
			SQLitePath: "~/.habits/habits.db",
		},
		Logging: domain.LogSettings{
			Level:  domain.DefaultLogLevel,
			Output: domain.DefaultLogOutput,
		},
	}
}

func hydrateDefaults(cfg domain.Config) domain.Config {
	def := DefaultConfig()
	if cfg.ConfigFormatVersion == "" {
		cfg.ConfigFormatVersion = def.ConfigFormatVersion
	}
	if cfg.Storage.Backend == "" {
		cfg.Storage.Backend = def.Storage.Backend
	}
	if cfg.Storage.DataFile == "" {
		cfg.Storage.DataFile = def.Storage.DataFile
	}
	if cfg.Storage.SQLitePath == "" {
		cfg.Storage.SQLitePath = def.Storage.SQLitePath
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = def.Logging.Level
	}
	if cfg.Logging.Output == "" {
		cfg.Logging.Output = def.Logging.Output
	}
	cfg.Storage.DataFile = filesystem.ExpandPath(cfg.Storage.DataFile)
	cfg.Storage.SQLitePath = filesystem.ExpandPath(cfg.Storage.SQLitePath)
	return cfg
}

var _ ports.ConfigProvider = (*FileLoader)(nil)
