package internal

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	// logFileName is the name of the rotating log file written in TUI mode.
	logFileName = "airtoolbox.slog"
	// logFileMaxSizeMB is the size at which the log file is rotated.
	logFileMaxSizeMB = 16
	// logDirName is the directory created below the user config dir.
	logDirName = "airtoolbox"
)

var ErrInvalidLogLevel = errors.New("invalid log level")

// LogParams contains the parameters for logging console output and errors.
// These will vary depending on whether the toolbox runs in ticker or tui mode.
// # Ticker mode
// - console output goes to stdout
// - error logs go to stderr
// # TUI mode
// - console output is discarded, the terminal belongs to the TUI
// - error logs go to a rotating log file
// .
type LogParams struct {
	ConsoleOut io.Writer
	ErrorOut   io.Writer
}

// TickerLogParams writes to the standard streams.
func TickerLogParams() LogParams {
	return LogParams{
		ConsoleOut: os.Stdout,
		ErrorOut:   os.Stderr,
	}
}

// TUILogParams keeps the terminal clean and logs into dir, or into the user
// config dir if dir is empty. The returned logger must be closed on exit.
func TUILogParams(dir string) (LogParams, *lumberjack.Logger) {
	if dir == "" {
		configDir, err := os.UserConfigDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Unable to find user config dir: %v", err)
			configDir = "."
		}
		dir = filepath.Join(configDir, logDirName)
	}

	w := &lumberjack.Logger{
		Filename:   filepath.Join(dir, logFileName),
		MaxSize:    logFileMaxSizeMB,
		MaxBackups: 1,
	}

	return LogParams{
		ConsoleOut: io.Discard,
		ErrorOut:   w,
	}, w
}

// ParseLogLevel maps the --log-level flag onto a slog level.
func ParseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("parseLogLevel: %q: %w", level, ErrInvalidLogLevel)
}

// NewLogger creates a JSON logger writing to the error output of params.
func NewLogger(params LogParams, level slog.Level) *slog.Logger {
	h := slog.NewJSONHandler(params.ErrorOut, &slog.HandlerOptions{Level: level})
	return slog.New(h)
}
