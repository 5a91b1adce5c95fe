package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"

	"github.com/doeshing/habits/internal/domain"
)

func TestNewRespectsLevel(t *testing.T) {
	log, err := New(domain.LogSettings{Level: "error"}, false)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if log.Core().Enabled(zapcore.WarnLevel) {
		t.Errorf("warn should be disabled at error level")
	}

	verbose, err := New(domain.LogSettings{Level: "error"}, true)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if !verbose.Core().Enabled(zapcore.DebugLevel) {
		t.Errorf("verbose logger should enable debug")
	}
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	if _, err := New(domain.LogSettings{Level: "chatty"}, false); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "habits.log")
	log, err := New(domain.LogSettings{Level: "info", Output: path}, false)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	log.Info("habit created")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "habit created") {
		t.Errorf("log file missing entry: %q", data)
	}
}
