package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"gridsim/internal/interpreter"
)

var ErrUnknownEntity = errors.New("unknown entity")

type LogFormat string

const (
	LogFormatText LogFormat = "text"
	LogFormatJSON LogFormat = "json"
)

// entities maps accepted entity names to their display names. Both
// behave identically; only the banners differ.
var entities = map[string]string{
	"pacman": "Pacman",
	"robot":  "Robot",
}

// Config is the complete runtime configuration.
type Config struct {
	Entity    string
	Width     int
	Height    int
	Prompt    string
	Script    string
	NoColor   bool
	LogLevel  string
	LogFormat LogFormat
}

func Default() Config {
	return Config{
		Entity:    "pacman",
		Width:     interpreter.DefaultWidth,
		Height:    interpreter.DefaultHeight,
		Prompt:    interpreter.DefaultPrompt,
		LogLevel:  "warn",
		LogFormat: LogFormatText,
	}
}

// Validate checks every field and normalizes the case of enumerated ones.
func (c *Config) Validate() error {
	if _, err := c.Grid(); err != nil {
		return err
	}
	c.Entity = strings.ToLower(strings.TrimSpace(c.Entity))
	if _, ok := EntityName(c.Entity); !ok {
		return fmt.Errorf("%w %q: must be 'pacman' or 'robot'", ErrUnknownEntity, c.Entity)
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return err
	}
	format, err := ParseLogFormat(string(c.LogFormat))
	if err != nil {
		return err
	}
	c.LogFormat = format
	return nil
}

// DisplayName is the entity name as shown to the user.
func (c Config) DisplayName() string {
	if name, ok := EntityName(c.Entity); ok {
		return name
	}
	return interpreter.DefaultEntity
}

// EntityName returns the display name for an entity, ignoring case and
// surrounding whitespace.
func EntityName(entity string) (string, bool) {
	name, ok := entities[strings.ToLower(strings.TrimSpace(entity))]
	return name, ok
}

// Grid builds the interpreter grid for the configured size.
func (c Config) Grid() (interpreter.Grid, error) {
	return interpreter.NewGrid(c.Width, c.Height)
}

func ParseLogLevel(value string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log level %q: must be 'debug', 'info', 'warn', or 'error'", value)
	}
}

func ParseLogFormat(value string) (LogFormat, error) {
	switch LogFormat(strings.ToLower(strings.TrimSpace(value))) {
	case LogFormatText, "":
		return LogFormatText, nil
	case LogFormatJSON:
		return LogFormatJSON, nil
	default:
		return "", fmt.Errorf("invalid log format %q: must be 'text' or 'json'", value)
	}
}
