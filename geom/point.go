// Package geom holds the board geometry shared by the snake, the rules and
// the renderers.
package geom

import "fmt"

// Point is an immutable x,y coordinate in board distance units.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Move returns a new point translated distance units along d.
func (p Point) Move(d Direction, distance int) Point {
	switch d {
	case Up:
		return Point{X: p.X, Y: p.Y - distance}
	case Down:
		return Point{X: p.X, Y: p.Y + distance}
	case Left:
		return Point{X: p.X - distance, Y: p.Y}
	case Right:
		return Point{X: p.X + distance, Y: p.Y}
	}
	return p
}

// Equal checks if 2 points are the same x,y coordinate
func (p Point) Equal(other Point) bool {
	return p.X == other.X && p.Y == other.Y
}

// Intersects reports whether other lies within tolerance units of p on both
// axes.
func (p Point) Intersects(other Point, tolerance int) bool {
	return abs(p.X-other.X) <= tolerance && abs(p.Y-other.Y) <= tolerance
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
