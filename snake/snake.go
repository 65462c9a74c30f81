// Package snake models the player's snake: a head, a heading and a trail of
// body segments that follows it.
package snake

import "github.com/battlesnakeio/arcade/geom"

const (
	// Step is how far the head advances on every move.
	Step = 10
	// InitialLength is the number of body segments a new snake starts with.
	InitialLength = 3
)

var (
	// Origin is where the initial body segments are stacked. They unfold into
	// the trail behind the head over the first few moves.
	Origin = geom.Point{X: 0, Y: 0}
	// GrowthPoint is the off-board position new segments are appended at.
	// Subsequent moves pull them into the trail.
	GrowthPoint = geom.Point{X: -10, Y: -10}
)

// Snake is not safe for concurrent use, the owning world serializes access.
type Snake struct {
	head      geom.Point
	direction geom.Direction
	body      []geom.Point
}

// New creates a snake heading right with its head at the given position.
func New(head geom.Point) *Snake {
	body := make([]geom.Point, InitialLength)
	for i := range body {
		body[i] = Origin
	}
	return &Snake{
		head:      head,
		direction: geom.Right,
		body:      body,
	}
}

// Move advances the snake one step. Every segment takes the position the
// segment ahead of it had before the move, then the head advances.
func (s *Snake) Move() {
	next := make([]geom.Point, len(s.body))
	for i := range s.body {
		if i == 0 {
			next[i] = s.head
			continue
		}
		next[i] = s.body[i-1]
	}
	s.body = next
	s.head = s.head.Move(s.direction, Step)
}

// Grow appends one segment at GrowthPoint.
func (s *Snake) Grow() {
	s.body = append(s.body, GrowthPoint)
}

// Turn changes the heading if d lies on the other axis. Same-axis requests,
// reversals included, are ignored. It reports whether the heading changed.
func (s *Snake) Turn(d geom.Direction) bool {
	if d.IsX() && s.direction.IsY() || d.IsY() && s.direction.IsX() {
		s.direction = d
		return true
	}
	return false
}

// Head returns the head position.
func (s *Snake) Head() geom.Point { return s.head }

// Direction returns the current heading.
func (s *Snake) Direction() geom.Direction { return s.direction }

// Len returns the number of body segments, not counting the head.
func (s *Snake) Len() int { return len(s.body) }

// Body returns a copy of the body segments, nearest to the head first.
func (s *Snake) Body() []geom.Point {
	body := make([]geom.Point, len(s.body))
	copy(body, s.body)
	return body
}

// Bites reports whether the head sits exactly on one of the body segments.
func (s *Snake) Bites() bool {
	for _, b := range s.body {
		if s.head.Equal(b) {
			return true
		}
	}
	return false
}

// Clone returns a deep copy.
func (s *Snake) Clone() *Snake {
	return &Snake{
		head:      s.head,
		direction: s.direction,
		body:      s.Body(),
	}
}
