package worker

import (
	"context"
	"sync"
	"time"

	"github.com/battlesnakeio/arcade/world"
	log "github.com/sirupsen/logrus"
)

// Game is the part of the world the scheduler drives.
type Game interface {
	Update(run uint64)
	Active(run uint64) bool
	Finish(run uint64) (world.Snapshot, bool)
	Snapshot() world.Snapshot
}

// Renderer draws snapshots. Draw may be called from several goroutines and
// must not call back into the world.
type Renderer interface {
	Draw(world.Snapshot) error
}

// Scheduler starts a logic task and a render task for every run of a game.
// It implements world.Starter.
type Scheduler struct {
	Game         Game
	Renderer     Renderer
	LogicPeriod  time.Duration
	RenderPeriod time.Duration

	ctx context.Context
	wg  sync.WaitGroup

	// drawMu keeps redraws in snapshot order. It is always taken before the
	// world lock, never while holding it.
	drawMu sync.Mutex
}

// NewScheduler creates a scheduler whose tasks also stop when ctx is done.
func NewScheduler(ctx context.Context, game Game, renderer Renderer, logicPeriod, renderPeriod time.Duration) *Scheduler {
	return &Scheduler{
		Game:         game,
		Renderer:     renderer,
		LogicPeriod:  logicPeriod,
		RenderPeriod: renderPeriod,
		ctx:          ctx,
	}
}

// Start launches both tasks of a run and returns immediately.
func (s *Scheduler) Start(run uint64) {
	runsStarted.Inc()
	log.WithFields(log.Fields{
		"run":    run,
		"logic":  s.LogicPeriod,
		"render": s.RenderPeriod,
	}).Debug("starting tasks")

	active := func() bool { return s.Game.Active(run) }
	logic := &Task{
		Name:   "logic",
		Period: s.LogicPeriod,
		Body:   func() { s.Game.Update(run) },
		Active: active,
	}
	render := &Task{
		Name:   "render",
		Period: s.RenderPeriod,
		Body:   s.Redraw,
		Active: active,
	}

	s.wg.Add(2)
	go func() {
		defer s.wg.Done()
		logic.Run(s.ctx)
		if final, ok := s.Game.Finish(run); ok {
			s.draw(final)
		}
	}()
	go func() {
		defer s.wg.Done()
		render.Run(s.ctx)
	}()
}

// Redraw hands a fresh snapshot to the renderer. The world lock is released
// before drawing starts.
func (s *Scheduler) Redraw() {
	if s.Renderer == nil {
		return
	}
	s.drawMu.Lock()
	defer s.drawMu.Unlock()

	s.render(s.Game.Snapshot())
}

// draw hands a snapshot taken earlier to the renderer.
func (s *Scheduler) draw(snap world.Snapshot) {
	if s.Renderer == nil {
		return
	}
	s.drawMu.Lock()
	defer s.drawMu.Unlock()

	s.render(snap)
}

func (s *Scheduler) render(snap world.Snapshot) {
	if err := s.Renderer.Draw(snap); err != nil {
		renderErrors.Inc()
		log.WithError(err).Warn("redraw failed")
	}
}

// Wait blocks until every task started so far has exited.
func (s *Scheduler) Wait() { s.wg.Wait() }
