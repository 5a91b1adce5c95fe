package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/doeshing/habits/internal/application/tracker"
	"github.com/doeshing/habits/internal/infrastructure/codec"
	"github.com/doeshing/habits/internal/infrastructure/store"
)

func runMenu(t *testing.T, path string, input ...string) string {
	t.Helper()
	log := zaptest.NewLogger(t)
	repo := store.NewFileStore(path, codec.NewCommaSeparated(), log)
	session := tracker.NewSession(repo, log)

	var out bytes.Buffer
	in := strings.NewReader(strings.Join(input, "\n") + "\n")
	require.NoError(t, NewMenu(session, in, &out, log).Run(context.Background()))
	return out.String()
}

func TestParseCommand(t *testing.T) {
	tests := map[string]Command{
		"1":   CommandCreate,
		" 2 ": CommandMark,
		"3":   CommandSummary,
		"4\r": CommandSaveExit,
		"0":   CommandInvalid,
		"5":   CommandInvalid,
		"abc": CommandInvalid,
		"":    CommandInvalid,
		"1.5": CommandInvalid,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseCommand(in), "ParseCommand(%q)", in)
	}
}

func TestMenuRunScenario(t *testing.T) {
	path := filepath.Join(t.TempDir(), "habits.txt")
	out := runMenu(t, path,
		"1", "Run", "30min jog", "Daily",
		"2", "1", "yes",
		"2", "1", "YES",
		"2", "1", "no",
		"2", "1", "Yes",
		"3",
		"4",
	)

	assert.Contains(t, out, "📋 Habit Strength Tracker")
	assert.Contains(t, out, "1. Create New Habit")
	assert.Contains(t, out, "4. Save & Exit")
	assert.Contains(t, out, "✅ Habit created successfully.")
	assert.Equal(t, 4, strings.Count(out, "✅ Completion recorded."))
	assert.Contains(t, out, "Habit: Run")
	assert.Contains(t, out, "Description: 30min jog")
	assert.Contains(t, out, "Frequency: Daily")
	assert.Contains(t, out, "Strength: 75.00%")
	assert.Contains(t, out, "Streak: 1 days")
	assert.Contains(t, out, "Feedback: Good job! You're making progress, but there's room for improvement.")
	assert.Contains(t, out, "---------------------------")
	assert.Contains(t, out, "✅ Data saved. Goodbye!")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Run,30min jog,Daily,75.0,1\n", string(data))
}

func TestMenuEmptyWarnings(t *testing.T) {
	out := runMenu(t, filepath.Join(t.TempDir(), "habits.txt"), "2", "3", "4")

	assert.Contains(t, out, "No habits found.")
	assert.Contains(t, out, "No habits to display.")
	assert.NotContains(t, out, "Select habit")
}

func TestMenuInvalidInput(t *testing.T) {
	out := runMenu(t, filepath.Join(t.TempDir(), "habits.txt"),
		"9",
		"banana",
		"1", "Read", "", "Weekly",
		"2", "7",
		"2", "x",
		"2", "0",
		"3",
		"4",
	)

	assert.Equal(t, 2, strings.Count(out, "❌ Invalid choice. Try again."))
	assert.Equal(t, 3, strings.Count(out, "❌ Invalid habit selection."))
	assert.NotContains(t, out, "Did you complete the habit today?")
	assert.Contains(t, out, "Strength: 0.00%")
	assert.Contains(t, out, "Feedback: Keep going! Try to be more consistent in completing your habit.")
}

func TestMenuAnythingButYesIsFalse(t *testing.T) {
	out := runMenu(t, filepath.Join(t.TempDir(), "habits.txt"),
		"1", "Floss", "nightly", "Daily",
		"2", "1", "y",
		"3",
		"4",
	)

	assert.Contains(t, out, "Did you complete the habit today? (yes/no): ")
	assert.Contains(t, out, "Strength: 0.00%")
	assert.Contains(t, out, "Streak: 0 days")
}

func TestMenuEOFSaves(t *testing.T) {
	path := filepath.Join(t.TempDir(), "habits.txt")
	log := zaptest.NewLogger(t)
	session := tracker.NewSession(store.NewFileStore(path, codec.NewCommaSeparated(), log), log)

	var out bytes.Buffer
	// No trailing newline and no exit command.
	in := strings.NewReader("1\nWalk\ndog\nDaily")
	require.NoError(t, NewMenu(session, in, &out, log).Run(context.Background()))

	assert.Contains(t, out.String(), "✅ Data saved. Goodbye!")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Walk,dog,Daily,0.0,0\n", string(data))
}

func TestMenuLoadsExistingAndReportsMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "habits.txt")
	require.NoError(t, os.WriteFile(path, []byte("X,Y\nRun,30min jog,Daily,75.0,1\n"), 0o644))

	out := runMenu(t, path, "3", "4")

	assert.Contains(t, out, "❌ Error loading habits:")
	assert.Contains(t, out, "malformed habit record")
	assert.Contains(t, out, "Habit: Run")
	// Stored statistics are not restored on load.
	assert.Contains(t, out, "Strength: 0.00%")
	assert.Contains(t, out, "Streak: 0 days")
}

func TestMenuSaveFailureIsReported(t *testing.T) {
	dir := t.TempDir()
	out := runMenu(t, dir, "1", "Run", "", "Daily", "4")

	assert.Contains(t, out, "❌ Error loading habits:")
	assert.Contains(t, out, "❌ Error saving habits:")
	assert.NotContains(t, out, "Data saved")
}
