package engine

import (
	"fmt"
	"strings"
)

// Axis classifies a direction's line of motion.
type Axis int

const (
	Horizontal Axis = iota
	Vertical
)

// Polarity is the sign of a direction along its axis.
type Polarity int

const (
	Negative Polarity = iota
	Positive
)

// Direction is one of the four move symbols. The zero value is Left.
type Direction int

const (
	Left Direction = iota
	Right
	Forward
	Back
)

// directionSpec holds the fixed attributes of each direction.
type directionSpec struct {
	name     string
	glyph    string
	dRow     int
	dCol     int
	axis     Axis
	polarity Polarity
}

var directions = [...]directionSpec{
	Left:    {"left", "←", 0, -1, Horizontal, Negative},
	Right:   {"right", "→", 0, 1, Horizontal, Positive},
	Forward: {"forward", "↑", -1, 0, Vertical, Negative},
	Back:    {"back", "↓", 1, 0, Vertical, Positive},
}

func (d Direction) String() string { return directions[d].name }

// Glyph returns the arrow used when displaying previous moves.
func (d Direction) Glyph() string { return directions[d].glyph }

// Delta returns the unit row/column offset of the direction.
func (d Direction) Delta() (dRow, dCol int) {
	return directions[d].dRow, directions[d].dCol
}

// Axis reports whether the direction moves along rows or columns.
func (d Direction) Axis() Axis { return directions[d].axis }

// Polarity reports whether the direction increases or decreases the
// in-line coordinate.
func (d Direction) Polarity() Polarity { return directions[d].polarity }

// Next returns the coordinate one step from pos in this direction.
func (d Direction) Next(pos Position) Position {
	return Position{Row: pos.Row + directions[d].dRow, Col: pos.Col + directions[d].dCol}
}

// IsQuit reports whether the input string ends the session.
func IsQuit(input string) bool {
	return strings.EqualFold(strings.TrimSpace(input), "quit")
}

// ParseDirection extracts a Direction from a raw input string. Input is
// trimmed and lowercased; the first occurrence of one of the letters
// l, r, f, b decides the move. Any string without such a letter is
// rejected here so an invalid symbol never reaches the resolver.
func ParseDirection(input string) (Direction, error) {
	input = strings.ToLower(strings.TrimSpace(input))
	for _, ch := range input {
		switch ch {
		case 'l':
			return Left, nil
		case 'r':
			return Right, nil
		case 'f':
			return Forward, nil
		case 'b':
			return Back, nil
		}
	}
	return 0, fmt.Errorf("no direction letter (l, r, f, b) in %q", input)
}

// ParseDirectionName maps a full direction name ("left", "right",
// "forward", "back") to its Direction. Used by the API and MCP
// surfaces, which send whole words rather than interactive input.
func ParseDirectionName(name string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "left", "l":
		return Left, nil
	case "right", "r":
		return Right, nil
	case "forward", "f":
		return Forward, nil
	case "back", "b":
		return Back, nil
	default:
		return 0, fmt.Errorf("unknown direction %q", name)
	}
}
