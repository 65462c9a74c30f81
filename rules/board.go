package rules

import (
	"fmt"

	"github.com/battlesnakeio/arcade/geom"
)

const (
	// DefaultWidth is the width of the playable area in distance units.
	DefaultWidth = 760
	// DefaultHeight is the height of the playable area in distance units.
	DefaultHeight = 520
	// CellSize is the size of one grid cell, equal to the snake step.
	CellSize = 10
	// SpawnInset keeps a cherry and its draw footprint off the walls.
	SpawnInset = 60
	// CherryTolerance is the per-axis distance at which the head eats a
	// cherry. It is wider than a cell to keep eating forgiving.
	CherryTolerance = 20
)

// DefaultOrigin is the top left corner of the playable area.
var DefaultOrigin = geom.Point{X: 20, Y: 40}

// Board describes the playable rectangle.
type Board struct {
	Origin geom.Point `json:"origin"`
	Width  int        `json:"width"`
	Height int        `json:"height"`
	Cell   int        `json:"cell"`
}

// DefaultBoard returns the standard 760x520 board.
func DefaultBoard() Board {
	return NewBoard(DefaultWidth, DefaultHeight)
}

// NewBoard returns a board of the given size at the default origin.
func NewBoard(width, height int) Board {
	return Board{
		Origin: DefaultOrigin,
		Width:  width,
		Height: height,
		Cell:   CellSize,
	}
}

// MinX is the left wall; a head at or left of it has crashed.
func (b Board) MinX() int { return b.Origin.X }

// MaxX is the right wall; a head at or right of it has crashed.
func (b Board) MaxX() int { return b.Origin.X + b.Width - b.Cell }

// MinY is the top wall.
func (b Board) MinY() int { return b.Origin.Y }

// MaxY is the bottom wall.
func (b Board) MaxY() int { return b.Origin.Y + b.Height - b.Cell }

// Start is where a new snake's head is placed, the board centre snapped to
// the cell grid.
func (b Board) Start() geom.Point {
	return geom.Point{
		X: b.Width / 2 / b.Cell * b.Cell,
		Y: b.Height / 2 / b.Cell * b.Cell,
	}
}

// Contains reports whether p is strictly inside the walls.
func (b Board) Contains(p geom.Point) bool {
	return p.X > b.MinX() && p.X < b.MaxX() && p.Y > b.MinY() && p.Y < b.MaxY()
}

// Validate checks that the board can host a snake and spawn cherries.
func (b Board) Validate() error {
	if b.Cell <= 0 {
		return fmt.Errorf("rules: invalid cell size %d", b.Cell)
	}
	if b.Width <= SpawnInset || b.Height <= SpawnInset {
		return fmt.Errorf("rules: board %dx%d too small, both sides must exceed %d", b.Width, b.Height, SpawnInset)
	}
	if !b.Contains(b.Start()) {
		return fmt.Errorf("rules: start %s is outside the board", b.Start())
	}
	return nil
}
