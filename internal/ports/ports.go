// Package ports defines the interfaces (ports) for the hexagonal architecture.
//
// The tracker session depends only on these abstractions; the infrastructure
// layer supplies adapters for the line format, the storage backends and the
// configuration file. Swapping the comma-separated format for an escaped or
// structured one means writing a new LineCodec, nothing in the domain changes.
package ports

import (
	"context"

	"github.com/doeshing/habits/internal/domain"
)

// ConfigProvider loads the latest configuration from persistent storage.
// Implementations typically read from ~/.habits/config.yaml.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}

// LineCodec converts a habit to and from its one-line persisted form.
type LineCodec interface {
	Encode(*domain.Habit) string
	Decode(line string) (*domain.Habit, error)
}

// HabitRepository persists the full habit collection.
// Load may return a partial collection together with an error that wraps
// domain.ErrMalformedRecord for every line it had to skip.
type HabitRepository interface {
	Load(ctx context.Context) ([]*domain.Habit, error)
	Save(ctx context.Context, habits []*domain.Habit) error
	Location() string
	Close() error
}
