package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/vovakirdan/kickoff/internal/games/football"
)

// newLogger builds the process logger from --log-file and --log-level.
// Without a log file, interactive commands discard logs so they do not
// scribble over the alt screen; fallback is used otherwise.
func newLogger(fallback io.Writer) (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("kickoff: log level: %w", err)
	}

	var (
		w      = fallback
		closer io.Closer
	)
	if flagLogFile != "" {
		if mkErr := os.MkdirAll(filepath.Dir(flagLogFile), 0o755); mkErr != nil {
			return nil, nil, fmt.Errorf("kickoff: log dir: %w", mkErr)
		}
		file := &lumberjack.Logger{
			Filename:   flagLogFile,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		}
		w = file
		closer = file
	}
	if w == nil {
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "kickoff",
		Level:           level,
	})
	football.SetLogger(logger)
	return logger, closer, nil
}

func closeLog(c io.Closer) {
	if c != nil {
		_ = c.Close()
	}
}
