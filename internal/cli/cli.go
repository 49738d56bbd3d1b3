package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"

	"gridsim/internal/config"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns the configuration,
// whether the program should exit cleanly (help was requested), or an
// ExitError.
func Parse(args []string, output io.Writer) (*config.Config, bool, error) {
	defaults := config.Default()
	flagSet := flag.NewFlagSet("gridsim", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
gridsim - moves a Pacman or a Robot around a square table.

Usage:
  gridsim [options]

Commands are read from standard input, one per line:
  PLACE X,Y,F   put the entity at X,Y facing NORTH, EAST, SOUTH or WEST
  MOVE          move one unit forward
  LEFT, RIGHT   turn 90 degrees
  REPORT        print X,Y,F
  QUIT          end the simulation

Options:
`)
		flagSet.PrintDefaults()
	}

	entity := flagSet.String("entity", defaults.Entity, "Simulated entity: 'pacman' or 'robot'.")
	width := flagSet.Int("width", defaults.Width, "Number of grid units along X.")
	height := flagSet.Int("height", defaults.Height, "Number of grid units along Y.")
	configPath := flagSet.String("config", "", "Path to an HCL configuration file.")
	script := flagSet.String("script", "", "Run the commands in this file and print the reports only.")
	prompt := flagSet.String("prompt", defaults.Prompt, "Interactive prompt.")
	noColor := flagSet.Bool("no-color", false, "Disable banner styling.")
	logLevel := flagSet.String("log-level", defaults.LogLevel, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	logFormat := flagSet.String("log-format", string(defaults.LogFormat), "Log output format. Options: 'text' or 'json'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if flagSet.NArg() > 0 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unexpected argument %q", flagSet.Arg(0))}
	}
	slog.Debug("Arguments parsed successfully.")

	cfg := defaults
	if *configPath != "" {
		loaded, err := config.LoadFile(*configPath, cfg)
		if err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
		cfg = loaded
		slog.Debug("Configuration file loaded.", "path", *configPath)
	}

	// Flags given explicitly win over the configuration file.
	flagSet.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "entity":
			cfg.Entity = *entity
		case "width":
			cfg.Width = *width
		case "height":
			cfg.Height = *height
		case "prompt":
			cfg.Prompt = *prompt
		case "log-level":
			cfg.LogLevel = *logLevel
		case "log-format":
			cfg.LogFormat = config.LogFormat(*logFormat)
		}
	})
	cfg.Script = *script
	cfg.NoColor = *noColor

	if err := cfg.Validate(); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", cfg)
	return &cfg, false, nil
}
