package input

import (
	"context"

	"github.com/battlesnakeio/arcade/world"
	termbox "github.com/nsf/termbox-go"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

var commandsDropped = prometheus.NewCounter(
	prometheus.CounterOpts{
		Namespace: "arcade",
		Subsystem: "input",
		Name:      "commands_dropped_total",
		Help:      "Commands dropped by the input rate limiter.",
	},
)

func init() {
	prometheus.MustRegister(commandsDropped)
}

// Handler applies commands. *world.World is the Handler used in play.
type Handler interface {
	Handle(world.Command) bool
}

// Adapter feeds key events into a Handler.
type Adapter struct {
	Handler Handler
	// Limiter caps how many commands per second reach the handler. Nil
	// means no limit.
	Limiter *rate.Limiter
	// Redraw is called after a command changed the game or the terminal was
	// resized, so screens that no task is repainting stay current.
	Redraw func()
}

// Run consumes events until the player quits, the channel closes or ctx is
// done.
func (a *Adapter) Run(ctx context.Context, events <-chan termbox.Event) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if a.Dispatch(ev) {
				return nil
			}
		}
	}
}

// Dispatch handles one event and reports whether the player asked to quit.
func (a *Adapter) Dispatch(ev termbox.Event) bool {
	if ev.Type == termbox.EventError {
		log.WithError(ev.Err).Warn("terminal input error")
		return false
	}

	cmd, action := Translate(ev)
	switch action {
	case ActionQuit:
		return true
	case ActionRedraw:
		a.redraw()
		return false
	case ActionIgnore:
		return false
	}

	if a.Limiter != nil && !a.Limiter.Allow() {
		commandsDropped.Inc()
		log.WithField("command", cmd).Debug("dropped command")
		return false
	}
	if a.Handler.Handle(cmd) {
		a.redraw()
	}
	return false
}

func (a *Adapter) redraw() {
	if a.Redraw != nil {
		a.Redraw()
	}
}

// EventQueue polls the terminal for events on its own goroutine so that
// nothing else ever blocks on input. Once ctx is done the poll is
// interrupted and the channel closes; drain it before closing termbox.
func EventQueue(ctx context.Context) <-chan termbox.Event {
	events := make(chan termbox.Event)
	go func() {
		<-ctx.Done()
		termbox.Interrupt()
	}()
	go func() {
		defer close(events)
		for {
			// Keep polling after ctx is done until the interrupt arrives,
			// termbox.Interrupt blocks until a poll takes it.
			ev := termbox.PollEvent()
			if ev.Type == termbox.EventInterrupt {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
			}
		}
	}()
	return events
}
