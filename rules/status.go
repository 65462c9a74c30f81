package rules

import "errors"

// Status is the state of a game.
type Status int

const (
	// StatusNotStarted is the state before the first key press
	StatusNotStarted Status = iota
	// StatusRunning represents a running game
	StatusRunning
	// StatusPaused represents a game frozen by the player
	StatusPaused
	// StatusGameOver represents a game that ended in a collision
	StatusGameOver

	statusCount
)

// Every status needs a name and a transition row; this fails to compile when
// a status is added without extending the tables below.
var _ [4]struct{} = [statusCount]struct{}{}

// ErrInvalidTransition is returned for a status change the table forbids.
var ErrInvalidTransition = errors.New("rules: invalid status transition")

var statusNames = [statusCount]string{
	StatusNotStarted: "not-started",
	StatusRunning:    "running",
	StatusPaused:     "paused",
	StatusGameOver:   "game-over",
}

// transitions lists the statuses reachable from each status. Staying in the
// same status is always allowed and is a no-op.
var transitions = [statusCount][]Status{
	StatusNotStarted: {StatusRunning},
	StatusRunning:    {StatusPaused, StatusGameOver},
	StatusPaused:     {StatusRunning},
	StatusGameOver:   {StatusRunning},
}

// Statuses lists every status in declaration order.
func Statuses() []Status {
	all := make([]Status, 0, statusCount)
	for s := Status(0); s < statusCount; s++ {
		all = append(all, s)
	}
	return all
}

// Valid reports whether s is one of the declared statuses.
func (s Status) Valid() bool {
	return s >= 0 && s < statusCount
}

func (s Status) String() string {
	if !s.Valid() {
		return "unknown"
	}
	return statusNames[s]
}

// CanTransition reports whether a game may move from one status to another.
func CanTransition(from, to Status) bool {
	if !from.Valid() || !to.Valid() {
		return false
	}
	if from == to {
		return true
	}
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}
