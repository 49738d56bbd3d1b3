package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"gridsim/internal/interpreter"
)

func TestDefaultIsValid(t *testing.T) {
	t.Parallel()

	cfg := Default()
	require.NoError(t, cfg.Validate())
	require.Equal(t, "Pacman", cfg.DisplayName())
	require.Equal(t, 5, cfg.Width)
	require.Equal(t, 5, cfg.Height)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
		ok      bool
	}{
		{name: "robot", mutate: func(c *Config) { c.Entity = " ROBOT " }, ok: true},
		{name: "zero width", mutate: func(c *Config) { c.Width = 0 }, wantErr: interpreter.ErrInvalidGrid},
		{name: "negative height", mutate: func(c *Config) { c.Height = -2 }, wantErr: interpreter.ErrInvalidGrid},
		{name: "unknown entity", mutate: func(c *Config) { c.Entity = "ghost" }, wantErr: ErrUnknownEntity},
		{name: "bad level", mutate: func(c *Config) { c.LogLevel = "trace" }},
		{name: "bad format", mutate: func(c *Config) { c.LogFormat = "xml" }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.ok {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
			}
		})
	}
}

func TestValidateNormalizes(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Entity = "Robot"
	cfg.LogFormat = "JSON"
	require.NoError(t, cfg.Validate())
	require.Equal(t, "robot", cfg.Entity)
	require.Equal(t, LogFormatJSON, cfg.LogFormat)
	require.Equal(t, "Robot", cfg.DisplayName())
}

func TestParseLogLevel(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		input string
		want  slog.Level
		ok    bool
	}{
		{input: "debug", want: slog.LevelDebug, ok: true},
		{input: "info", want: slog.LevelInfo, ok: true},
		{input: "warn", want: slog.LevelWarn, ok: true},
		{input: "warning", want: slog.LevelWarn, ok: true},
		{input: "ERROR", want: slog.LevelError, ok: true},
		{input: "trace", ok: false},
	}

	for _, tc := range testCases {
		level, err := ParseLogLevel(tc.input)
		if !tc.ok {
			require.Error(t, err, tc.input)
			continue
		}
		require.NoError(t, err, tc.input)
		require.Equal(t, tc.want, level, tc.input)
	}
}

func TestGrid(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Width, cfg.Height = 7, 3
	grid, err := cfg.Grid()
	require.NoError(t, err)
	require.True(t, grid.IsValidXY(6, 2))
	require.False(t, grid.IsValidXY(2, 6))
}

func TestEntityName(t *testing.T) {
	t.Parallel()

	name, ok := EntityName(" PacMan ")
	require.True(t, ok)
	require.Equal(t, "Pacman", name)

	name, ok = EntityName("robot")
	require.True(t, ok)
	require.Equal(t, "Robot", name)

	_, ok = EntityName("ghost")
	require.False(t, ok)
}
