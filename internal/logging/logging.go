// Package logging builds the slog handlers used by the CLI.
//
// Library code takes a *slog.Logger through its options and never
// constructs handlers itself; this package is where the CLI decides
// what those handlers look like. The auto format renders tinted,
// colored output on a terminal and plain timestamped text when the
// output is redirected.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

// Output formats accepted by New.
const (
	FormatAuto = "auto"
	FormatText = "text"
	FormatJSON = "json"
)

// ParseLevel maps a configuration string to a slog.Level.
// Unknown strings fall back to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New builds a logger writing to w. FormatJSON uses the stdlib JSON
// handler; FormatText a tinted handler without colors; FormatAuto
// detects whether w is a terminal.
func New(w io.Writer, level slog.Level, format string) *slog.Logger {
	switch format {
	case FormatJSON:
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
	case FormatText:
		return slog.New(tint.NewHandler(w, &tint.Options{
			Level:      level,
			NoColor:    true,
			TimeFormat: time.RFC3339,
		}))
	default:
		terminal := isTerminal(w)
		timeFormat := time.RFC3339
		if terminal {
			timeFormat = time.Stamp
		}
		return slog.New(tint.NewHandler(w, &tint.Options{
			Level:      level,
			NoColor:    !terminal,
			TimeFormat: timeFormat,
		}))
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
