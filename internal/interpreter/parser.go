package interpreter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Command is one input line. Exactly one alternative is set after a
// successful parse.
type Command struct {
	Place  *Place `parser:"  @@"`
	Move   bool   `parser:"| @'MOVE'"`
	Left   bool   `parser:"| @'LEFT'"`
	Right  bool   `parser:"| @'RIGHT'"`
	Report bool   `parser:"| @'REPORT'"`
	Quit   bool   `parser:"| @'QUIT'"`
}

// Place is "PLACE X,Y,F". Coordinates stay textual so that leading zeros
// read as decimal.
type Place struct {
	X       string `parser:"'PLACE' @Int ','"`
	Y       string `parser:"@Int ','"`
	Heading string `parser:"@('NORTH'|'EAST'|'SOUTH'|'WEST')"`
}

// Coordinates converts X and Y to integers.
func (p *Place) Coordinates() (int, int, error) {
	x, err := strconv.Atoi(p.X)
	if err != nil {
		return 0, 0, fmt.Errorf("place x: %w", err)
	}
	y, err := strconv.Atoi(p.Y)
	if err != nil {
		return 0, 0, fmt.Errorf("place y: %w", err)
	}
	return x, y, nil
}

var commandLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Ident", Pattern: `[a-zA-Z]+`},
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Punct", Pattern: `,`},
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
})

var parser = participle.MustBuild[Command](
	participle.Lexer(commandLexer),
	participle.CaseInsensitive("Ident"),
	participle.Elide("Whitespace"),
)

// Parse reads a single command line.
func Parse(line string) (*Command, error) {
	return parser.ParseString("", strings.TrimSpace(line))
}
