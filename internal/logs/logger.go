// Package logs builds the slog loggers used across the program. The TUI owns
// the terminal, so by default nothing is written anywhere.
package logs

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	slogmulti "github.com/samber/slog-multi"
)

type Options struct {
	// File receives text records. Nil disables file logging.
	File io.Writer
	// Console receives text records too, for non-interactive commands.
	Console io.Writer
	Level   slog.Level
}

func New(opts Options) *slog.Logger {
	var handlers []slog.Handler
	ho := &slog.HandlerOptions{Level: opts.Level}
	if opts.File != nil {
		handlers = append(handlers, slog.NewTextHandler(opts.File, ho))
	}
	if opts.Console != nil {
		handlers = append(handlers, slog.NewTextHandler(opts.Console, ho))
	}
	if len(handlers) == 0 {
		return Discard()
	}
	return slog.New(slogmulti.Fanout(handlers...))
}

func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("logs: unknown level %q", s)
}

// OpenFile opens path for appending. The caller closes the returned file.
func OpenFile(path string) (*os.File, error) {
	return os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
}
