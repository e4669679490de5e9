package logging

import (
	"io"
	"log/slog"
	"os"
)

// DebugEnv turns on debug logging when set to "1".
const DebugEnv = "CALC_REPO_LINES_DEBUG"

// Logger is a minimal structured logger facade over slog.
// Every event the command emits is a debug diagnostic.
type Logger interface {
	Debug(msg string, args ...any)
}

type slogLogger struct{ l *slog.Logger }

func (s *slogLogger) Debug(msg string, args ...any) { s.l.Debug(msg, args...) }

// NewText creates a text-handler logger writing to w with the given level.
func NewText(w io.Writer, level slog.Leveler) Logger {
	if w == nil {
		w = os.Stderr
	}
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return &slogLogger{l: slog.New(h)}
}

// New returns the command-line logger: text on w, at debug level when debug
// is set or DebugEnv is "1", info level otherwise.
func New(w io.Writer, debug bool) Logger {
	if os.Getenv(DebugEnv) == "1" {
		debug = true
	}
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return NewText(w, level)
}
