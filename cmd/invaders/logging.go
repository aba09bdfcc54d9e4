package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/alien-attack/internal/storage"
)

const defaultLogPath = "~/.alien-attack/invaders.log"

// openLogger opens the log file for appending. Stdout belongs to the
// TUI, so nothing is ever logged there. The returned closer is never nil.
func openLogger(path, level string) (*log.Logger, io.Closer, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return log.New(io.Discard), io.NopCloser(nil), fmt.Errorf("invalid log level %q: %w", level, err)
	}

	expanded, err := storage.ExpandPath(path)
	if err != nil {
		return log.New(io.Discard), io.NopCloser(nil), err
	}
	if err := os.MkdirAll(filepath.Dir(expanded), 0o755); err != nil {
		return log.New(io.Discard), io.NopCloser(nil), fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(expanded, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return log.New(io.Discard), io.NopCloser(nil), fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "invaders",
		Level:           lvl,
	})
	return logger, f, nil
}

// mustLogger opens the logger and warns on stderr when it cannot.
// A bad --log-level is a usage error and exits.
func mustLogger() (*log.Logger, io.Closer) {
	logger, closer, err := openLogger(flagLogFile, flagLogLevel)
	if err != nil {
		if _, lvlErr := log.ParseLevel(flagLogLevel); lvlErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
	}
	return logger, closer
}
