package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/doeshing/habits/internal/domain"
	"github.com/doeshing/habits/internal/pkg/filesystem"
)

// New builds a console zap logger from the logging settings.
// verbose forces debug level regardless of the configured one.
func New(settings domain.LogSettings, verbose bool) (*zap.Logger, error) {
	level := zapcore.WarnLevel
	if settings.Level != "" {
		if err := level.UnmarshalText([]byte(settings.Level)); err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", settings.Level, err)
		}
	}
	if verbose {
		level = zapcore.DebugLevel
	}

	output := settings.Output
	if output == "" {
		output = domain.DefaultLogOutput
	}
	if output != "stderr" && output != "stdout" {
		output = filesystem.ExpandPath(output)
	}

	config := zap.NewProductionConfig()
	config.Encoding = "console"
	config.Level = zap.NewAtomicLevelAt(level)
	config.OutputPaths = []string{output}
	config.ErrorOutputPaths = []string{"stderr"}
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.DisableStacktrace = !verbose
	config.Sampling = nil

	return config.Build()
}
