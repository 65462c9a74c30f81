// Package worker provides the periodic tasks that drive a game: the logic
// task ticking the world and the render task redrawing it. Tasks never own
// game state, they only call the world's synchronized methods.
package worker

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
)

// Task is a periodic job. Body runs, then the task sleeps for Period, for as
// long as Active reports true. The delay is fixed, a slow Body pushes the
// next run back.
type Task struct {
	Name   string
	Period time.Duration
	Body   func()
	Active func() bool
}

// Run loops until Active returns false or ctx is done. Shutdown is
// cooperative: a stopped task notices at its next check, at most one Period
// later.
func (t *Task) Run(ctx context.Context) {
	for t.Active() && ctx.Err() == nil {
		done := instrument(t.Name)
		t.Body()
		done()

		if !t.Active() {
			return
		}
		if !sleep(ctx, t.Period) {
			log.WithField("task", t.Name).Debug("sleep interrupted")
		}
	}
}

// sleep waits for d and reports false if ctx ended the wait early.
func sleep(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return true
	case <-ctx.Done():
		return false
	}
}
