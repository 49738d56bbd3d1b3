package interpreter

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	DefaultEntity = "Pacman"
	DefaultPrompt = "> "

	welcomeFormat   = "Welcome to the %s simulation!"
	instructionText = "Please enter your commands or 'quit' to end the simulation."
	goodbyeText     = "Simulation ended. Goodbye!"
)

// Console drives an Engine from a line-oriented input stream.
type Console struct {
	engine  *Engine
	in      *bufio.Reader
	out     io.Writer
	errOut  io.Writer
	entity  string
	prompt  string
	noColor bool
	logger  *slog.Logger
}

// ConsoleOption configures a Console.
type ConsoleOption func(*Console)

// WithEntity sets the name shown in the welcome banner.
func WithEntity(name string) ConsoleOption {
	return func(c *Console) {
		if strings.TrimSpace(name) != "" {
			c.entity = name
		}
	}
}

// WithPrompt sets the prompt written before each read and before each report.
func WithPrompt(prompt string) ConsoleOption {
	return func(c *Console) {
		if prompt != "" {
			c.prompt = prompt
		}
	}
}

// WithoutColor disables banner styling.
func WithoutColor() ConsoleOption {
	return func(c *Console) { c.noColor = true }
}

// WithConsoleLogger sets the logger for session events and read failures.
func WithConsoleLogger(logger *slog.Logger) ConsoleOption {
	return func(c *Console) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewConsole binds engine to an input stream and two output streams.
// Nil streams read nothing and discard output.
func NewConsole(engine *Engine, in io.Reader, out, errOut io.Writer, opts ...ConsoleOption) *Console {
	if in == nil {
		in = strings.NewReader("")
	}
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}
	c := &Console{
		engine: engine,
		in:     bufio.NewReader(in),
		out:    out,
		errOut: errOut,
		entity: DefaultEntity,
		prompt: DefaultPrompt,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run prints the banners and processes lines until QUIT or end of input.
// A read failure is reported on the error stream and ends the session
// like QUIT. Only write failures are returned.
func (c *Console) Run() error {
	w := &errWriter{w: c.out}
	title, footer := c.styles()

	w.printf("%s\n", title(fmt.Sprintf(welcomeFormat, c.entity)))
	w.printf("%s\n", footer(instructionText))
	c.logger.Info("simulation started", "entity", c.entity, "grid", c.engine.Grid())

	lines := 0
	for w.err == nil {
		w.printf("%s", c.prompt)
		line, readErr := c.in.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			fmt.Fprintln(c.errOut, readErr)
			c.logger.Error("reading input failed", "err", readErr)
			break
		}
		if line == "" && readErr != nil {
			break
		}
		lines++
		result, err := c.engine.ProcessInstruction(trimLineEnd(line))
		if errors.Is(err, ErrQuit) {
			break
		}
		if strings.TrimSpace(result) != "" {
			w.printf("%s%s", c.prompt, result)
		}
	}

	w.printf("%s\n", title(goodbyeText))
	c.logger.Info("simulation ended", "lines", lines, "placed", c.engine.IsPlaced())
	return w.err
}

// ReadLines splits r into lines without a length limit, dropping the
// line terminators.
func ReadLines(r io.Reader) ([]string, error) {
	br := bufio.NewReader(r)
	var lines []string
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			lines = append(lines, trimLineEnd(line))
		}
		if errors.Is(err, io.EOF) {
			return lines, nil
		}
		if err != nil {
			return lines, err
		}
	}
}

func trimLineEnd(line string) string {
	return strings.TrimRight(line, "\r\n")
}

func (c *Console) styles() (title, footer func(...string) string) {
	if c.noColor {
		plain := func(s ...string) string { return strings.Join(s, " ") }
		return plain, plain
	}
	r := lipgloss.NewRenderer(c.out)
	title = r.NewStyle().Bold(true).Foreground(lipgloss.Color("228")).Render // Bright yellow
	footer = r.NewStyle().Foreground(lipgloss.Color("241")).Render
	return title, footer
}

// errWriter keeps the first write error and drops later writes.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}
