package world

import (
	"github.com/battlesnakeio/arcade/config"
	"github.com/battlesnakeio/arcade/geom"
	"github.com/battlesnakeio/arcade/rules"
)

// Snapshot is a copy of the world handed to renderers. Nothing in it aliases
// the world's own state.
type Snapshot struct {
	RunID        string            `json:"run_id"`
	Status       rules.Status      `json:"status"`
	Board        rules.Board       `json:"board"`
	Difficulty   config.Difficulty `json:"difficulty"`
	Head         geom.Point        `json:"head"`
	Direction    geom.Direction    `json:"direction"`
	Body         []geom.Point      `json:"body"`
	Cherry       *geom.Point       `json:"cherry,omitempty"`
	Score        uint              `json:"score"`
	Best         uint              `json:"best"`
	Turn         int64             `json:"turn"`
	DeathCause   string            `json:"death_cause,omitempty"`
	CherryLoaded bool              `json:"cherry_loaded"`
}

// Snapshot returns a consistent copy of the current state.
func (w *World) Snapshot() Snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.snapshot()
}

func (w *World) snapshot() Snapshot {
	s := Snapshot{
		RunID:        w.runID,
		Status:       w.status,
		Board:        w.board,
		Difficulty:   w.difficulty,
		Head:         w.snake.Head(),
		Direction:    w.snake.Direction(),
		Body:         w.snake.Body(),
		Score:        w.score,
		Best:         w.best,
		Turn:         w.turn,
		DeathCause:   w.cause,
		CherryLoaded: w.cherryLoaded,
	}
	if w.cherry != nil {
		c := *w.cherry
		s.Cherry = &c
	}
	return s
}
