package cli

import (
	"context"
	"errors"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/doeshing/habits/internal/application/tracker"
	"github.com/doeshing/habits/internal/domain"
)

// Menu drives the interactive habit session.
type Menu struct {
	session  *tracker.Session
	prompter *Prompter
	render   *Renderer
	logger   *zap.Logger
}

// NewMenu wires a menu over session reading from in and writing to out.
func NewMenu(session *tracker.Session, in io.Reader, out io.Writer, logger *zap.Logger) *Menu {
	if logger == nil {
		logger = zap.NewNop()
	}
	prompter := NewPrompter(in, out)
	return &Menu{
		session:  session,
		prompter: prompter,
		render:   NewRenderer(prompter.out),
		logger:   logger,
	}
}

// Run loads the session, loops until Save & Exit or end of input, and saves.
// Storage and input failures are reported on the output; Run only returns
// an error when the context is cancelled.
func (m *Menu) Run(ctx context.Context) error {
	if err := m.session.Open(ctx); err != nil {
		m.render.Failure("Error loading habits: " + err.Error())
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		m.render.Menu()
		choice, err := m.prompter.Ask("Choose an option: ")
		if err != nil {
			m.logger.Debug("menu input ended", zap.Error(err))
			return m.saveAndExit(ctx)
		}

		switch cmd := ParseCommand(choice); cmd {
		case CommandCreate:
			err = m.createHabit()
		case CommandMark:
			err = m.markCompletion()
		case CommandSummary:
			m.viewSummary()
		case CommandSaveExit:
			return m.saveAndExit(ctx)
		case CommandInvalid:
			m.render.Failure("Invalid choice. Try again.")
		default:
			m.logger.Warn("unhandled menu command", zap.Int("command", int(cmd)))
			m.render.Failure("Invalid choice. Try again.")
		}
		if err != nil {
			m.logger.Debug("menu input ended", zap.Error(err))
			return m.saveAndExit(ctx)
		}
	}
}

func (m *Menu) createHabit() error {
	name, err := m.prompter.Ask("Enter habit name: ")
	if err != nil {
		return err
	}
	description, err := m.prompter.Ask("Enter description: ")
	if err != nil {
		return err
	}
	frequency, err := m.prompter.Ask("Enter frequency (Daily/Weekly): ")
	if err != nil {
		return err
	}
	m.session.Create(name, description, frequency)
	m.render.Success("Habit created successfully.")
	return nil
}

func (m *Menu) markCompletion() error {
	if m.session.Empty() {
		m.render.Warning("No habits found.")
		return nil
	}
	m.render.HabitList(m.session.Habits())

	answer, err := m.prompter.Ask("Select habit to mark completion: ")
	if err != nil {
		return err
	}
	position, convErr := strconv.Atoi(strings.TrimSpace(answer))
	if convErr != nil {
		m.invalidSelection(answer)
		return nil
	}
	if _, err := m.session.Get(position); err != nil {
		m.invalidSelection(answer)
		return nil
	}

	completed, err := m.prompter.AskYesNo("Did you complete the habit today? (yes/no): ")
	if err != nil {
		return err
	}
	if err := m.session.RecordCompletion(position, completed); err != nil {
		m.invalidSelection(answer)
		return nil
	}
	m.render.Success("Completion recorded.")
	return nil
}

func (m *Menu) invalidSelection(answer string) {
	m.logger.Debug("rejected habit selection",
		zap.String("input", answer),
		zap.Error(domain.ErrInvalidSelection))
	m.render.Failure("Invalid habit selection.")
}

func (m *Menu) viewSummary() {
	if m.session.Empty() {
		m.render.Warning("No habits to display.")
		return
	}
	for _, s := range m.session.Summaries() {
		m.render.Summary(s)
	}
}

func (m *Menu) saveAndExit(ctx context.Context) error {
	if err := m.session.Close(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			return err
		}
		m.render.Failure("Error saving habits: " + err.Error())
		return nil
	}
	m.render.Success("Data saved. Goodbye!")
	return nil
}
