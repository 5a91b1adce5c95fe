// Package store provides the habit repositories: a line-per-habit text file
// and an embedded SQLite database. Both persist the same snapshot columns.
package store

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/doeshing/habits/internal/domain"
	"github.com/doeshing/habits/internal/ports"
)

// SQLiteStore persists habits in a SQLite database.
type SQLiteStore struct {
	db     *sql.DB
	path   string
	logger *zap.Logger
}

// OpenSQLiteStore creates (or opens) the database at path.
func OpenSQLiteStore(ctx context.Context, path string, logger *zap.Logger) (*SQLiteStore, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := os.MkdirAll(filepath.Dir(path), domain.DirectoryPermissions); err != nil {
		return nil, domain.NewIOError("mkdir", filepath.Dir(path), err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, domain.NewIOError("open", path, err)
	}
	store := &SQLiteStore{db: db, path: path, logger: logger}
	if err := store.init(ctx); err != nil {
		_ = db.Close()
		return nil, domain.NewIOError("init", path, err)
	}
	return store, nil
}

func (s *SQLiteStore) init(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS habits (
		position INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT NOT NULL,
		frequency TEXT NOT NULL,
		strength REAL NOT NULL,
		streak INTEGER NOT NULL
	);`)
	return err
}

// Load implements ports.HabitRepository. Stored strength and streak are not restored.
func (s *SQLiteStore) Load(ctx context.Context) ([]*domain.Habit, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT name, description, frequency FROM habits ORDER BY position")
	if err != nil {
		return nil, domain.NewIOError("query", s.path, err)
	}
	defer rows.Close()

	var habits []*domain.Habit
	for rows.Next() {
		var name, description, frequency string
		if err := rows.Scan(&name, &description, &frequency); err != nil {
			return nil, domain.NewIOError("scan", s.path, err)
		}
		habits = append(habits, domain.NewHabit(name, description, frequency))
	}
	if err := rows.Err(); err != nil {
		return nil, domain.NewIOError("query", s.path, err)
	}

	s.logger.Debug("habits loaded", zap.String("path", s.path), zap.Int("count", len(habits)))
	return habits, nil
}

// Save implements ports.HabitRepository. The table is replaced in one transaction.
func (s *SQLiteStore) Save(ctx context.Context, habits []*domain.Habit) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.NewIOError("begin", s.path, err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM habits"); err != nil {
		return domain.NewIOError("delete", s.path, err)
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO habits
		(position, name, description, frequency, strength, streak)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return domain.NewIOError("prepare", s.path, err)
	}
	defer stmt.Close()

	for i, h := range habits {
		if _, err := stmt.ExecContext(ctx,
			i+1,
			h.Name(),
			h.Description(),
			h.Frequency(),
			h.Strength(),
			h.Streak(),
		); err != nil {
			return domain.NewIOError("insert", s.path, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return domain.NewIOError("commit", s.path, err)
	}

	s.logger.Debug("habits saved", zap.String("path", s.path), zap.Int("count", len(habits)))
	return nil
}

// Location returns the sqlite database path.
func (s *SQLiteStore) Location() string {
	return s.path
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

var _ ports.HabitRepository = (*SQLiteStore)(nil)
