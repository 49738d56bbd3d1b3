package interpreter

import (
	"fmt"
	"strings"
)

// Heading is the direction the robot faces.
type Heading int

const (
	North Heading = iota
	East
	South
	West
)

// cyclic order, clockwise
var headingNames = [...]string{"NORTH", "EAST", "SOUTH", "WEST"}

var headingDeltas = [...]Position{
	North: {X: 0, Y: 1},
	East:  {X: 1, Y: 0},
	South: {X: 0, Y: -1},
	West:  {X: -1, Y: 0},
}

const headingCount = Heading(len(headingNames))

// ParseHeading matches one of the four heading names, ignoring case and
// surrounding whitespace.
func ParseHeading(text string) (Heading, bool) {
	name := strings.ToUpper(strings.TrimSpace(text))
	for i, n := range headingNames {
		if n == name {
			return Heading(i), true
		}
	}
	return 0, false
}

func (h Heading) Valid() bool {
	return h >= 0 && h < headingCount
}

func (h Heading) Left() Heading {
	return (h + headingCount - 1) % headingCount
}

func (h Heading) Right() Heading {
	return (h + 1) % headingCount
}

// Delta is the unit step taken when moving forward. An invalid heading
// has no step.
func (h Heading) Delta() Position {
	if !h.Valid() {
		return Position{}
	}
	return headingDeltas[h]
}

func (h Heading) String() string {
	if !h.Valid() {
		return fmt.Sprintf("Heading(%d)", int(h))
	}
	return headingNames[h]
}

// Position is a grid coordinate, x eastward and y northward.
type Position struct {
	X, Y int
}

// Step returns the neighbouring position one unit along h.
func (p Position) Step(h Heading) Position {
	d := h.Delta()
	return Position{X: p.X + d.X, Y: p.Y + d.Y}
}

// Robot is the simulated agent. It knows nothing about the grid;
// bounds are checked by the Engine before any call.
type Robot struct {
	pos     Position
	heading Heading
}

// Place overwrites position and heading. It fails only on an invalid heading.
func (r *Robot) Place(x, y int, h Heading) bool {
	if !h.Valid() {
		return false
	}
	r.pos = Position{X: x, Y: y}
	r.heading = h
	return true
}

func (r *Robot) TurnLeft() {
	r.heading = r.heading.Left()
}

func (r *Robot) TurnRight() {
	r.heading = r.heading.Right()
}

// Move advances one unit along the current heading.
func (r *Robot) Move() {
	r.pos = r.pos.Step(r.heading)
}

func (r *Robot) Position() Position {
	return r.pos
}

func (r *Robot) Heading() Heading {
	return r.heading
}

// Report formats the state as "x,y,HEADING", e.g. "2,3,EAST".
func (r *Robot) Report() string {
	return fmt.Sprintf("%d,%d,%s", r.pos.X, r.pos.Y, r.heading)
}

func (r *Robot) String() string {
	return r.Report()
}
