package tracker

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/doeshing/habits/internal/domain"
	"github.com/doeshing/habits/internal/ports"
)

// Session owns the habit collection for one run of the program.
// It is built at startup, loaded once, and saved on Close.
type Session struct {
	repo   ports.HabitRepository
	logger *zap.Logger
	habits []*domain.Habit
	// loadFailed blocks Save so a partially read store is never overwritten.
	loadFailed bool
}

// NewSession creates an empty session backed by repo.
func NewSession(repo ports.HabitRepository, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{repo: repo, logger: logger}
}

// Open loads the persisted habits. Records that could not be decoded are
// skipped; the returned error still reports them. The session stays usable
// whatever Open returns.
func (s *Session) Open(ctx context.Context) error {
	if s.repo == nil {
		return errors.New("tracker.Session repository not configured")
	}
	habits, err := s.repo.Load(ctx)
	s.habits = append(s.habits[:0], habits...)
	if err != nil {
		s.loadFailed = !onlyMalformed(err)
		s.logger.Debug("habit load incomplete",
			zap.String("location", s.repo.Location()),
			zap.Int("loaded", len(habits)),
			zap.Bool("save_blocked", s.loadFailed),
			zap.Error(err))
		return fmt.Errorf("load habits: %w", err)
	}
	s.logger.Info("session opened",
		zap.String("location", s.repo.Location()),
		zap.Int("count", len(habits)))
	return nil
}

// onlyMalformed reports whether every joined error is a skipped record.
func onlyMalformed(err error) bool {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			if !onlyMalformed(e) {
				return false
			}
		}
		return true
	}
	var malformed *domain.MalformedRecordError
	return errors.As(err, &malformed)
}

// Create appends a new habit.
func (s *Session) Create(name, description, frequency string) *domain.Habit {
	h := domain.NewHabit(name, description, frequency)
	s.habits = append(s.habits, h)
	s.logger.Debug("habit created", zap.String("name", name), zap.String("frequency", frequency))
	return h
}

// Habits returns the collection in creation order.
func (s *Session) Habits() []*domain.Habit {
	return s.habits
}

// Len reports the number of habits.
func (s *Session) Len() int { return len(s.habits) }

// Empty reports whether there are no habits.
func (s *Session) Empty() bool { return len(s.habits) == 0 }

// Get returns the habit at the 1-based position shown in the menu.
func (s *Session) Get(position int) (*domain.Habit, error) {
	if position < 1 || position > len(s.habits) {
		return nil, fmt.Errorf("%w: %d (have %d)", domain.ErrInvalidSelection, position, len(s.habits))
	}
	return s.habits[position-1], nil
}

// RecordCompletion records today's outcome for the habit at a 1-based position.
func (s *Session) RecordCompletion(position int, completed bool) error {
	h, err := s.Get(position)
	if err != nil {
		return err
	}
	h.RecordCompletion(completed)
	s.logger.Debug("completion recorded",
		zap.String("name", h.Name()),
		zap.Bool("completed", completed),
		zap.Int("streak", h.Streak()))
	return nil
}

// Summaries projects every habit into its report.
func (s *Session) Summaries() []domain.Summary {
	out := make([]domain.Summary, 0, len(s.habits))
	for _, h := range s.habits {
		out = append(out, h.Summary())
	}
	return out
}

// Save persists all habits.
func (s *Session) Save(ctx context.Context) error {
	if s.repo == nil {
		return errors.New("tracker.Session repository not configured")
	}
	if s.loadFailed {
		return fmt.Errorf("save habits: %w: %s was not read completely, not overwriting it",
			domain.ErrIOFailure, s.repo.Location())
	}
	if err := s.repo.Save(ctx, s.habits); err != nil {
		s.logger.Debug("habit save failed", zap.String("location", s.repo.Location()), zap.Error(err))
		return fmt.Errorf("save habits: %w", err)
	}
	s.logger.Info("habits saved", zap.String("location", s.repo.Location()), zap.Int("count", len(s.habits)))
	return nil
}

// Close saves and then releases the repository, reporting both failures.
func (s *Session) Close(ctx context.Context) error {
	saveErr := s.Save(ctx)
	var closeErr error
	if s.repo != nil {
		closeErr = s.repo.Close()
	}
	return errors.Join(saveErr, closeErr)
}

// Location describes where habits are persisted.
func (s *Session) Location() string {
	if s.repo == nil {
		return ""
	}
	return s.repo.Location()
}
