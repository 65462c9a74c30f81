package geom

import (
	"errors"
	"strings"
)

// Direction is one of the four headings a snake can take.
type Direction int

const (
	// Up moves towards smaller y.
	Up Direction = iota
	// Down moves towards larger y.
	Down
	// Left moves towards smaller x.
	Left
	// Right moves towards larger x.
	Right
)

// Directions lists every heading in declaration order.
var Directions = []Direction{Up, Down, Left, Right}

// ErrUnknownDirection is returned when parsing an unrecognised direction.
var ErrUnknownDirection = errors.New("geom: unknown direction")

// IsX is true for the horizontal headings.
func (d Direction) IsX() bool {
	return d == Left || d == Right
}

// IsY is true for the vertical headings.
func (d Direction) IsY() bool {
	return d == Up || d == Down
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "unknown"
}

// ParseDirection converts "up", "down", "left" or "right" (any case) into a
// Direction.
func ParseDirection(s string) (Direction, error) {
	for _, d := range Directions {
		if strings.EqualFold(s, d.String()) {
			return d, nil
		}
	}
	return 0, ErrUnknownDirection
}
