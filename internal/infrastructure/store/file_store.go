package store

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/doeshing/habits/internal/domain"
	"github.com/doeshing/habits/internal/ports"
)

// FileStore keeps one encoded habit per line in a plain text file.
type FileStore struct {
	path   string
	codec  ports.LineCodec
	logger *zap.Logger
}

// NewFileStore creates a text store at path using the given line codec.
func NewFileStore(path string, codec ports.LineCodec, logger *zap.Logger) *FileStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FileStore{path: path, codec: codec, logger: logger}
}

// Load implements ports.HabitRepository. A missing file is an empty collection.
func (f *FileStore) Load(ctx context.Context) ([]*domain.Habit, error) {
	file, err := os.Open(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			f.logger.Debug("habit file not found, starting empty", zap.String("path", f.path))
			return nil, nil
		}
		return nil, domain.NewIOError("open", f.path, err)
	}
	defer file.Close()

	var (
		habits  []*domain.Habit
		skipped []error
		lineNo  int
	)
	reader := bufio.NewReader(file)
	for {
		line, readErr := reader.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return habits, domain.NewIOError("read", f.path, readErr)
		}
		if line != "" {
			lineNo++
			if err := ctx.Err(); err != nil {
				return habits, err
			}
			if err := f.decodeLine(line, lineNo, &habits); err != nil {
				skipped = append(skipped, err)
			}
		}
		if readErr != nil {
			break
		}
	}

	f.logger.Debug("habits loaded",
		zap.String("path", f.path),
		zap.Int("count", len(habits)),
		zap.Int("skipped", len(skipped)))
	return habits, errors.Join(skipped...)
}

// decodeLine appends the decoded habit, or returns the decode error. Blank lines are ignored.
func (f *FileStore) decodeLine(line string, lineNo int, habits *[]*domain.Habit) error {
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return nil
	}
	habit, err := f.codec.Decode(line)
	if err != nil {
		var malformed *domain.MalformedRecordError
		if errors.As(err, &malformed) {
			malformed.Line = lineNo
		}
		f.logger.Debug("skipping malformed habit record",
			zap.String("path", f.path),
			zap.Int("line", lineNo),
			zap.Error(err))
		return err
	}
	*habits = append(*habits, habit)
	return nil
}

// Save implements ports.HabitRepository. The file is rewritten in full.
func (f *FileStore) Save(ctx context.Context, habits []*domain.Habit) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}
	if dir := filepath.Dir(f.path); dir != "." {
		if err := os.MkdirAll(dir, domain.DirectoryPermissions); err != nil {
			return domain.NewIOError("mkdir", dir, err)
		}
	}
	file, err := os.OpenFile(f.path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, domain.DataFilePermissions)
	if err != nil {
		return domain.NewIOError("create", f.path, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = domain.NewIOError("close", f.path, cerr)
		}
	}()

	w := bufio.NewWriter(file)
	for _, h := range habits {
		if _, err := w.WriteString(f.codec.Encode(h) + "\n"); err != nil {
			return domain.NewIOError("write", f.path, err)
		}
	}
	if err := w.Flush(); err != nil {
		return domain.NewIOError("write", f.path, err)
	}

	f.logger.Debug("habits saved", zap.String("path", f.path), zap.Int("count", len(habits)))
	return nil
}

// Location returns the backing file path.
func (f *FileStore) Location() string {
	return f.path
}

// Close is a no-op; the file is opened per operation.
func (f *FileStore) Close() error {
	return nil
}

var _ ports.HabitRepository = (*FileStore)(nil)
