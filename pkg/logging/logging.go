// Package logging builds the slog loggers used by the CLI and carries them
// through context.Context.
package logging

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/Manu343726/sizeof/pkg/utils"
	slogmulti "github.com/samber/slog-multi"
)

var ErrUnknownLevel = errors.New("unknown log level")

type contextKeyLogger struct{}

// Settings of the logger built by New
type Settings struct {
	// Minimum level of the records written to the console and the log file
	Level slog.Level

	// Console destination. Defaults to stderr.
	Console io.Writer

	// Optional JSON log destination
	File io.Writer
}

// Parses a level name (debug, info, warn, error). The empty string selects warn.
func ParseLevel(name string) (slog.Level, error) {
	if name == "" {
		return slog.LevelWarn, nil
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(name))); err != nil {
		return 0, utils.MakeError(ErrUnknownLevel, "'%v'", name)
	}

	return level, nil
}

// Builds a logger writing text records to the console and, if a file is
// configured, JSON records to the file.
func New(settings Settings) *slog.Logger {
	console := settings.Console
	if console == nil {
		console = os.Stderr
	}

	options := &slog.HandlerOptions{Level: settings.Level}
	handlers := []slog.Handler{slog.NewTextHandler(console, options)}

	if settings.File != nil {
		handlers = append(handlers, slog.NewJSONHandler(settings.File, options))
	}

	return slog.New(slogmulti.Fanout(handlers...))
}

// Returns a copy of ctx carrying logger
func ContextWithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKeyLogger{}, logger)
}

// Returns the logger carried by ctx, or the default logger if there is none
func FromContext(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return slog.Default()
	}

	if logger, ok := ctx.Value(contextKeyLogger{}).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return slog.Default()
}
