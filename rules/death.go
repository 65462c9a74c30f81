package rules

import (
	"github.com/battlesnakeio/arcade/geom"
	"github.com/battlesnakeio/arcade/snake"
)

// checkForDeath looks at the snake after a move and returns the cause of
// death, or an empty string if the snake survived. Walls are checked first.
func checkForDeath(b Board, s *snake.Snake) string {
	if deathByOutOfBounds(s.Head(), b) {
		return DeathCauseWallCollision
	}
	if deathBySelfCollision(s) {
		return DeathCauseSelfCollision
	}
	return ""
}

func deathByOutOfBounds(head geom.Point, b Board) bool {
	return head.X <= b.MinX() || head.X >= b.MaxX() || head.Y <= b.MinY() || head.Y >= b.MaxY()
}

func deathBySelfCollision(s *snake.Snake) bool {
	return s.Bites()
}
