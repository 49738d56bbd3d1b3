package interpreter

import (
	"errors"
	"io"
	"log/slog"
	"strings"
)

// ErrQuit is returned by ProcessInstruction when no more instructions
// should be accepted.
var ErrQuit = errors.New("quit simulation")

// Engine simulates one robot on one grid. Commands issued before the
// first successful placement are ignored, as are malformed commands.
type Engine struct {
	grid   Grid
	robot  Robot
	placed bool
	logger *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for rejected commands. Nil keeps the default.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// NewEngine returns an engine on grid with no robot placed.
func NewEngine(grid Grid, opts ...Option) *Engine {
	e := &Engine{
		grid:   grid,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) Grid() Grid {
	return e.grid
}

// Reset removes the robot from the grid.
func (e *Engine) Reset() {
	e.robot = Robot{}
	e.placed = false
}

func (e *Engine) IsPlaced() bool {
	return e.placed
}

// Place puts the robot at (x,y) facing h, replacing any earlier placement.
// It returns false and changes nothing if h is invalid or (x,y) is off the grid.
func (e *Engine) Place(x, y int, h Heading) bool {
	if !h.Valid() || !e.grid.IsValidXY(x, y) {
		e.logger.Debug("placement rejected", "x", x, "y", y, "heading", h, "grid", e.grid)
		return false
	}
	e.robot.Place(x, y, h)
	e.placed = true
	return true
}

// PlaceText is Place with the heading given by name.
func (e *Engine) PlaceText(x, y int, heading string) bool {
	h, ok := ParseHeading(heading)
	if !ok {
		e.logger.Debug("placement rejected", "x", x, "y", y, "heading", heading)
		return false
	}
	return e.Place(x, y, h)
}

func (e *Engine) TurnLeft() {
	if e.placed {
		e.robot.TurnLeft()
	}
}

func (e *Engine) TurnRight() {
	if e.placed {
		e.robot.TurnRight()
	}
}

// Move advances the robot one unit if the destination is on the grid.
func (e *Engine) Move() bool {
	if !e.canMove() {
		return false
	}
	e.robot.Move()
	return true
}

func (e *Engine) canMove() bool {
	if !e.placed {
		return false
	}
	next := e.robot.Position().Step(e.robot.Heading())
	if !e.grid.IsValidXY(next.X, next.Y) {
		e.logger.Debug("move rejected", "robot", e.robot.Report(), "grid", e.grid)
		return false
	}
	return true
}

// Report returns "x,y,HEADING", or "" if the robot is not placed.
func (e *Engine) Report() string {
	if !e.placed {
		return ""
	}
	return e.robot.Report()
}

// ProcessInstruction executes one command line. REPORT yields the report
// followed by a newline; every other command yields "". QUIT yields ErrQuit.
func (e *Engine) ProcessInstruction(line string) (string, error) {
	if strings.TrimSpace(line) == "" {
		return "", nil
	}
	cmd, err := Parse(line)
	if err != nil {
		e.logger.Debug("instruction ignored", "line", line, "err", err)
		return "", nil
	}
	switch {
	case cmd.Quit:
		return "", ErrQuit
	case cmd.Place != nil:
		x, y, err := cmd.Place.Coordinates()
		if err != nil {
			e.logger.Debug("instruction ignored", "line", line, "err", err)
			return "", nil
		}
		e.PlaceText(x, y, cmd.Place.Heading)
	case cmd.Move:
		e.Move()
	case cmd.Left:
		e.TurnLeft()
	case cmd.Right:
		e.TurnRight()
	case cmd.Report:
		if !e.placed {
			return "", nil
		}
		return e.Report() + "\n", nil
	}
	return "", nil
}

// ProcessInstructions runs lines in order and returns the trimmed
// concatenation of their output, which is the REPORT lines only.
// A QUIT line adds nothing and does not stop the batch.
func (e *Engine) ProcessInstructions(lines []string) string {
	var out strings.Builder
	for _, line := range lines {
		result, err := e.ProcessInstruction(line)
		if err != nil {
			continue
		}
		out.WriteString(result)
	}
	return strings.TrimSpace(out.String())
}
