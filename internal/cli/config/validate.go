package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/l0b0/indentect/pkg/indent"
)

// Sentinel validation errors.
var (
	ErrInvalidColor    = errors.New("invalid color mode")
	ErrInvalidScope    = errors.New("invalid scope")
	ErrInvalidLogLevel = errors.New("invalid log level")
)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("%w: %q (want auto, always or never)", ErrInvalidColor, c.Color)
	}

	if _, ok := indent.ParseScope(c.Scope); !ok {
		return fmt.Errorf("%w: %q (want file or run)", ErrInvalidScope, c.Scope)
	}

	if _, ok := ParseLogLevel(c.LogLevel); !ok {
		return fmt.Errorf("%w: %q (want debug, info, warn or error)", ErrInvalidLogLevel, c.LogLevel)
	}

	return nil
}

// ParseLogLevel converts a level name to an slog.Level.
func ParseLogLevel(s string) (slog.Level, bool) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelWarn, false
	}
}

// RunScope returns the configured consistency scope.
func (c *Config) RunScope() indent.Scope {
	s, _ := indent.ParseScope(c.Scope)
	return s
}
