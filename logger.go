package main

import (
	"fmt"
	"log/slog"
	"os"
)

// defaultLogLevel applies when -loglevel is left empty.
const defaultLogLevel = slog.LevelInfo

// ResolveLogLevel maps a -loglevel value to a slog level. An empty value
// selects defaultLogLevel; names are case-insensitive.
func ResolveLogLevel(level string) (slog.Level, error) {
	if level == "" {
		return defaultLogLevel, nil
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: want debug, info, warn or error", level)
	}
	return l, nil
}

// InitLogger builds the logger handed to every page root and the
// controller. Records go to stderr as text; at debug level the source
// location is added so propagation traces point into the tree code.
func InitLogger(level string) (*slog.Logger, error) {
	logLevel, err := ResolveLogLevel(level)
	if err != nil {
		return nil, err
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level:     logLevel,
		AddSource: logLevel <= slog.LevelDebug,
	})
	return slog.New(handler), nil
}
