// Package logger holds the process wide slog logger used by the jdn command.
package logger

import (
	"io"
	"log/slog"
	"sync"
	"time"
)

type Config struct {
	Out   io.Writer
	Debug bool
	JSON  bool
}

var (
	mu     sync.RWMutex
	global = slog.New(slog.NewTextHandler(io.Discard, nil))
)

// Setup replaces the global logger. Without Debug only warnings and errors
// are written, the command's normal output goes to stdout instead.
func Setup(cfg Config) *slog.Logger {
	if cfg.Out == nil {
		cfg.Out = io.Discard
	}
	level := slog.LevelWarn
	addSource := false
	if cfg.Debug {
		level = slog.LevelDebug
		addSource = true
	}
	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: addSource,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
				a.Value = slog.StringValue(a.Value.Time().UTC().Format(time.RFC3339Nano))
			}
			return a
		},
	}
	var h slog.Handler = slog.NewTextHandler(cfg.Out, opts)
	if cfg.JSON {
		h = slog.NewJSONHandler(cfg.Out, opts)
	}
	l := slog.New(h)

	mu.Lock()
	global = l
	mu.Unlock()
	return l
}

func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

// Reset discards all output again.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	global = slog.New(slog.NewTextHandler(io.Discard, nil))
}
