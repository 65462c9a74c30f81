// Package world owns all mutable game state. Every exported method takes the
// world's single lock, so the logic task, the render task and the input
// adapter can call into it from their own goroutines. No caller ever gets a
// reference into the state; renderers receive a Snapshot.
package world

import (
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/battlesnakeio/arcade/config"
	"github.com/battlesnakeio/arcade/geom"
	"github.com/battlesnakeio/arcade/rules"
	"github.com/battlesnakeio/arcade/snake"
	uuid "github.com/satori/go.uuid"
	log "github.com/sirupsen/logrus"
)

// ErrResetRequired is returned when a finished game is asked to run again
// without a reset.
var ErrResetRequired = errors.New("world: game over, reset required")

// Starter launches the periodic tasks of a run. Start is called with the
// world lock held, so it must return promptly and must not call back into
// the world from its own goroutine.
type Starter interface {
	Start(run uint64)
}

// Option configures a World.
type Option func(*World)

// WithRand sets the random source used to spawn cherries.
func WithRand(r rules.Rand) Option {
	return func(w *World) { w.rand = r }
}

// WithDifficulty records the difficulty preset the world is played at.
func WithDifficulty(d config.Difficulty) Option {
	return func(w *World) { w.difficulty = d }
}

// WithCherryLoaded records whether the renderer found its cherry asset. The
// simulation never reads it.
func WithCherryLoaded(loaded bool) Option {
	return func(w *World) { w.cherryLoaded = loaded }
}

// World is the game state aggregate.
type World struct {
	mu sync.Mutex

	board      rules.Board
	difficulty config.Difficulty
	rand       rules.Rand
	starter    Starter

	status rules.Status
	snake  *snake.Snake
	cherry *geom.Point
	score  uint
	best   uint
	turn   int64
	cause  string

	// running is true between starting the tasks of a run and asking them
	// to stop. run numbers each start so tasks of an older run can tell
	// they are stale.
	running bool
	run     uint64
	runID   string

	// final is the state the run numbered finalRun ended in.
	final    Snapshot
	finalRun uint64

	cherryLoaded bool
}

// New creates a world in the not started state.
func New(board rules.Board, opts ...Option) *World {
	w := &World{
		board:        board,
		difficulty:   config.Easy,
		status:       rules.StatusNotStarted,
		snake:        rules.CreateSnake(board),
		runID:        uuid.NewV4().String(),
		cherryLoaded: true,
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.rand == nil {
		w.rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return w
}

// Attach sets the starter used whenever the world enters the running state.
func (w *World) Attach(s Starter) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.starter = s
}

// Status returns the current status.
func (w *World) Status() rules.Status {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.status
}

// SetStatus moves the game to a new status. Entering the running state from
// any other state starts a new run of the periodic tasks; pausing or ending
// the game tells them to stop. A finished game can only run again through
// Reset.
func (w *World) SetStatus(s rules.Status) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.status == rules.StatusGameOver && s == rules.StatusRunning {
		return ErrResetRequired
	}
	return w.setStatus(s)
}

func (w *World) setStatus(s rules.Status) error {
	if !rules.CanTransition(w.status, s) {
		log.WithFields(log.Fields{
			"run":  w.runID,
			"from": w.status,
			"to":   s,
		}).Debug("rejected status change")
		return rules.ErrInvalidTransition
	}
	if w.status == s {
		return nil
	}

	switch s {
	case rules.StatusRunning:
		if !w.running {
			w.running = true
			w.run++
			if w.starter != nil {
				w.starter.Start(w.run)
			}
		}
	case rules.StatusPaused, rules.StatusGameOver:
		w.running = false
	}

	log.WithFields(log.Fields{
		"run":   w.runID,
		"from":  w.status,
		"to":    s,
		"score": w.score,
		"turn":  w.turn,
	}).Info("status changed")
	w.status = s
	if s == rules.StatusGameOver {
		w.final = w.snapshot()
		w.finalRun = w.run
	}
	return nil
}

// Active reports whether the tasks of the given run should keep going.
func (w *World) Active(run uint64) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.active(run)
}

func (w *World) active(run uint64) bool {
	return w.running && w.status == rules.StatusRunning && run == w.run
}

// Update runs the game one tick. Ticks from a stale or stopped run are
// ignored.
func (w *World) Update(run uint64) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.active(run) {
		return
	}

	// 1. move
	w.turn++
	w.snake.Move()

	// 2. eat
	if w.cherry != nil && rules.Eats(w.snake.Head(), *w.cherry) {
		w.snake.Grow()
		w.cherry = nil
		w.score++
		cherriesEaten.Inc()
		if w.score > w.best {
			w.best = w.score
			bestScore.Set(float64(w.best))
		}
		log.WithFields(log.Fields{
			"run":   w.runID,
			"turn":  w.turn,
			"score": w.score,
		}).Debug("snake ate")
	}

	// 3. replace the cherry
	if w.cherry == nil {
		w.spawnCherry()
	}

	// 4. check for death
	if cause, over := rules.CheckForGameOver(w.board, w.snake); over {
		w.cause = cause
		gamesOver.WithLabelValues(cause).Inc()
		log.WithFields(log.Fields{
			"run":   w.runID,
			"turn":  w.turn,
			"score": w.score,
			"cause": cause,
			"head":  w.snake.Head(),
		}).Info("snake died")
		if err := w.setStatus(rules.StatusGameOver); err != nil {
			log.WithError(err).WithField("run", w.runID).Error("unable to end game")
		}
	}
}

// Finish is called by the logic task of a run once it stops ticking. It ends
// the game unless the run is stale or the player paused it, and returns the
// state the run stopped in. That state is kept after a reset, so a run that
// ended still reports its game over when a new run has already started. ok is
// false for a stale run that never ended.
func (w *World) Finish(run uint64) (s Snapshot, ok bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if run != 0 && run == w.finalRun {
		return w.final, true
	}
	if run != w.run {
		return Snapshot{}, false
	}
	if w.status == rules.StatusPaused {
		return w.snapshot(), true
	}
	if err := w.setStatus(rules.StatusGameOver); err != nil {
		log.WithError(err).WithField("run", w.runID).Debug("finish ignored")
		return w.snapshot(), true
	}
	return w.final, true
}

// SpawnCherry places the cherry at a new random position. Every call may
// move it.
func (w *World) SpawnCherry() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.spawnCherry()
}

func (w *World) spawnCherry() {
	p := rules.SpawnCherry(w.board, w.rand)
	w.cherry = &p
}

// Reset replaces the snake with a fresh one at the board start, clears the
// score and the cherry and starts running. The best score is kept.
func (w *World) Reset() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.reset()
}

func (w *World) reset() error {
	if w.score > w.best {
		w.best = w.score
		bestScore.Set(float64(w.best))
	}
	w.score = 0
	w.cherry = nil
	w.turn = 0
	w.cause = ""
	w.snake = rules.CreateSnake(w.board)
	w.runID = uuid.NewV4().String()
	return w.setStatus(rules.StatusRunning)
}

// Handle applies one input command. What a command does depends on the
// status it arrives in; commands that mean nothing in the current status
// are dropped. It reports whether the command changed anything.
func (w *World) Handle(cmd Command) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	switch w.status {
	case rules.StatusNotStarted:
		return w.setStatus(rules.StatusRunning) == nil
	case rules.StatusRunning:
		if d, ok := cmd.Direction(); ok {
			return w.snake.Turn(d)
		}
		if cmd == CommandPause {
			return w.setStatus(rules.StatusPaused) == nil
		}
	case rules.StatusPaused:
		if cmd == CommandPause {
			return w.setStatus(rules.StatusRunning) == nil
		}
	case rules.StatusGameOver:
		if cmd == CommandConfirm {
			return w.reset() == nil
		}
	}
	return false
}
