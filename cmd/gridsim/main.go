package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"

	"gridsim/internal/cli"
	"gridsim/internal/interpreter"
)

func main() {
	// Minimal logger until the configured one exists.
	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: slog.LevelWarn})))

	if err := run(os.Stdin, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(in io.Reader, out, errOut io.Writer, args []string) error {
	cfg, shouldExit, err := cli.Parse(args, out)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	logger, err := newLogger(errOut, cfg)
	if err != nil {
		return err
	}
	grid, err := cfg.Grid()
	if err != nil {
		return err
	}
	engine := interpreter.NewEngine(grid, interpreter.WithLogger(logger))

	if cfg.Script != "" {
		return runScript(engine, cfg.Script, out)
	}

	opts := []interpreter.ConsoleOption{
		interpreter.WithEntity(cfg.DisplayName()),
		interpreter.WithPrompt(cfg.Prompt),
		interpreter.WithConsoleLogger(logger),
	}
	if cfg.NoColor {
		opts = append(opts, interpreter.WithoutColor())
	}
	return interpreter.NewConsole(engine, in, out, errOut, opts...).Run()
}

// runScript executes every line of the file at path and prints the reports.
func runScript(engine *interpreter.Engine, path string, out io.Writer) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open script: %w", err)
	}
	defer f.Close()

	lines, err := interpreter.ReadLines(f)
	if err != nil {
		return fmt.Errorf("read script %s: %w", path, err)
	}

	result := engine.ProcessInstructions(lines)
	if result == "" {
		return nil
	}
	_, err = fmt.Fprintln(out, result)
	return err
}
