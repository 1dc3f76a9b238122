/*
PURPOSE:
  Provides the diagnostics logger for the console-kit CLI.
  Wraps slog with a tint handler on stderr so diagnostics never mix with
  the formatted output written to stdout.

REQUIREMENTS:
  User-specified:
  - "Sane" CLI output. Not spammy.

  Implementation-discovered:
  - Needs a debug level behind --verbose.
  - Library packages never log; only internal/cli uses this.

ARCHITECTURE INTEGRATION:
  - Used by: internal/cli

IMPLEMENTATION RULES:
  - Use `log/slog` with github.com/lmittmann/tint.

USAGE:
  output.Logger.Debug("config loaded", "path", path)

RELATED FILES:
  - internal/cli/root.go
*/

package output

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
)

var Logger *slog.Logger

func init() {
	Logger = NewLogger(os.Stderr, false, false)
}

// NewLogger builds a tinted slog logger. Verbose enables debug records.
func NewLogger(w io.Writer, verbose, noColor bool) *slog.Logger {
	lvl := slog.LevelInfo
	if verbose {
		lvl = slog.LevelDebug
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      lvl,
		TimeFormat: time.Kitchen,
		NoColor:    noColor,
	}))
}

// SetLogger allows overriding the default logger (e.g. for testing or config changes)
func SetLogger(l *slog.Logger) {
	Logger = l
}
