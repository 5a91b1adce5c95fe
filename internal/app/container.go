package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/doeshing/habits/internal/application/tracker"
	"github.com/doeshing/habits/internal/domain"
	"github.com/doeshing/habits/internal/infrastructure/codec"
	"github.com/doeshing/habits/internal/infrastructure/config"
	"github.com/doeshing/habits/internal/infrastructure/store"
	"github.com/doeshing/habits/internal/pkg/filesystem"
	"github.com/doeshing/habits/internal/pkg/logger"
	"github.com/doeshing/habits/internal/ports"
)

// Options carries command-line overrides for the container.
type Options struct {
	ConfigPath string
	DataFile   string
	Backend    string
	Verbose    bool
}

// Container wires up the tracker session with infrastructure adapters.
type Container struct {
	Config         domain.Config
	ConfigProvider ports.ConfigProvider
	Logger         *zap.Logger
	Repository     ports.HabitRepository
	Session        *tracker.Session
	// Warnings are problems that were worked around during construction.
	Warnings []error
}

// BuildContainer constructs the dependency graph. Only invalid overrides are
// returned as errors; unreadable config or storage fall back to defaults.
func BuildContainer(ctx context.Context, opts Options) (*Container, error) {
	provider := config.NewFileLoader(opts.ConfigPath)
	cfg, warnings, err := LoadConfig(ctx, provider, opts)
	if err != nil {
		return nil, err
	}

	log, err := logger.New(cfg.Logging, opts.Verbose)
	if err != nil {
		warnings = append(warnings, fmt.Errorf("logger: %w", err))
		log = zap.NewNop()
	}

	repo, err := openRepository(ctx, cfg.Storage, log)
	if err != nil {
		warnings = append(warnings, fmt.Errorf("%w (falling back to %s)", err, cfg.Storage.DataFile))
		log.Debug("sqlite store unavailable, using text file",
			zap.String("data_file", cfg.Storage.DataFile),
			zap.Error(err))
		repo = store.NewFileStore(cfg.Storage.DataFile, codec.NewCommaSeparated(), log)
	}

	return &Container{
		Config:         cfg,
		ConfigProvider: provider,
		Logger:         log,
		Repository:     repo,
		Session:        tracker.NewSession(repo, log),
		Warnings:       warnings,
	}, nil
}

// LoadConfig reads configuration through provider and applies the command-line
// overrides. A provider failure becomes a warning and the defaults it returned
// are used; only invalid overrides are errors.
func LoadConfig(ctx context.Context, provider ports.ConfigProvider, opts Options) (domain.Config, []error, error) {
	var warnings []error
	cfg, err := provider.Load(ctx)
	if err != nil {
		warnings = append(warnings, fmt.Errorf("config: %w (using defaults)", err))
	}
	if err := applyOverrides(&cfg, opts); err != nil {
		return domain.Config{}, warnings, err
	}
	return cfg, warnings, nil
}

func applyOverrides(cfg *domain.Config, opts Options) error {
	if opts.Backend != "" {
		backend := domain.StorageBackend(opts.Backend)
		if !backend.Valid() {
			return fmt.Errorf("unknown backend %q (want %s or %s)", opts.Backend, domain.BackendText, domain.BackendSQLite)
		}
		cfg.Storage.Backend = backend
	}
	if opts.DataFile != "" {
		if cfg.Storage.Backend == domain.BackendSQLite {
			cfg.Storage.SQLitePath = filesystem.ExpandPath(opts.DataFile)
		} else {
			cfg.Storage.DataFile = filesystem.ExpandPath(opts.DataFile)
		}
	}
	return nil
}

func openRepository(ctx context.Context, settings domain.StorageSettings, log *zap.Logger) (ports.HabitRepository, error) {
	switch settings.Backend {
	case domain.BackendSQLite:
		return store.OpenSQLiteStore(ctx, settings.SQLitePath, log)
	default:
		return store.NewFileStore(settings.DataFile, codec.NewCommaSeparated(), log), nil
	}
}
