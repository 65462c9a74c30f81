package rules

import "github.com/battlesnakeio/arcade/geom"

// Rand is the subset of *rand.Rand used for spawning.
type Rand interface {
	Intn(n int) int
}

// SpawnCherry picks a uniformly random cherry position inside the board,
// inset so the cherry footprint never touches a wall.
func SpawnCherry(b Board, rnd Rand) geom.Point {
	return geom.Point{
		X: b.Origin.X + rnd.Intn(b.Width-SpawnInset),
		Y: b.Origin.Y + rnd.Intn(b.Height-SpawnInset),
	}
}

// Eats reports whether the head is close enough to the cherry to eat it.
func Eats(head, cherry geom.Point) bool {
	return head.Intersects(cherry, CherryTolerance)
}
