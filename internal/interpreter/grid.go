package interpreter

import (
	"errors"
	"fmt"
)

// ErrInvalidGrid is returned when a grid dimension is not positive.
var ErrInvalidGrid = errors.New("invalid grid")

const (
	DefaultWidth  = 5
	DefaultHeight = 5
)

// Grid is the rectangle [0,width) x [0,height) the robot may occupy.
// Origin (0,0) is the south-west corner.
type Grid struct {
	width, height int
}

func NewGrid(width, height int) (Grid, error) {
	if width <= 0 || height <= 0 {
		return Grid{}, fmt.Errorf("%w: %dx%d", ErrInvalidGrid, width, height)
	}
	return Grid{width: width, height: height}, nil
}

// DefaultGrid returns the 5x5 table.
func DefaultGrid() Grid {
	return Grid{width: DefaultWidth, height: DefaultHeight}
}

func (g Grid) Width() int  { return g.width }
func (g Grid) Height() int { return g.height }

func (g Grid) IsValidX(x int) bool {
	return x >= 0 && x < g.width
}

func (g Grid) IsValidY(y int) bool {
	return y >= 0 && y < g.height
}

// IsValidXY reports whether (x,y) lies on the grid.
func (g Grid) IsValidXY(x, y int) bool {
	return g.IsValidX(x) && g.IsValidY(y)
}

func (g Grid) String() string {
	return fmt.Sprintf("%dx%d", g.width, g.height)
}
