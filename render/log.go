package render

import (
	"sync"

	"github.com/battlesnakeio/arcade/rules"
	"github.com/battlesnakeio/arcade/world"
	log "github.com/sirupsen/logrus"
)

// Log is a headless renderer. It logs every finished run once and passes it
// to OnGameOver, which must not trigger a redraw itself.
type Log struct {
	OnGameOver func(world.Snapshot)

	mu   sync.Mutex
	seen map[string]bool
}

// Draw implements worker.Renderer.
func (l *Log) Draw(s world.Snapshot) error {
	if s.Status != rules.StatusGameOver {
		return nil
	}

	l.mu.Lock()
	if l.seen == nil {
		l.seen = map[string]bool{}
	}
	if l.seen[s.RunID] {
		l.mu.Unlock()
		return nil
	}
	l.seen[s.RunID] = true
	l.mu.Unlock()

	log.WithFields(log.Fields{
		"run":   s.RunID,
		"score": s.Score,
		"best":  s.Best,
		"turn":  s.Turn,
		"cause": s.DeathCause,
	}).Info("game over")
	if l.OnGameOver != nil {
		l.OnGameOver(s)
	}
	return nil
}
