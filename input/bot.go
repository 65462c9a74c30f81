package input

import (
	"context"
	"time"

	"github.com/battlesnakeio/arcade/rules"
	"github.com/battlesnakeio/arcade/world"
	termbox "github.com/nsf/termbox-go"
)

// Bot is a synthetic player. It presses a key every Period: enter when the
// game is over, space before it starts, and otherwise a random arrow key
// TurnChance percent of the time.
type Bot struct {
	Status     func() rules.Status
	Rand       rules.Rand
	Period     time.Duration
	TurnChance int
}

var arrows = []world.Command{
	world.CommandUp,
	world.CommandDown,
	world.CommandLeft,
	world.CommandRight,
}

// Next picks the key the bot presses for the given status, if any.
func (b *Bot) Next(status rules.Status) (termbox.Event, bool) {
	switch status {
	case rules.StatusNotStarted:
		return KeyEvent(world.CommandAny), true
	case rules.StatusGameOver:
		return KeyEvent(world.CommandConfirm), true
	case rules.StatusRunning:
		if b.Rand.Intn(100) < b.TurnChance {
			return KeyEvent(arrows[b.Rand.Intn(len(arrows))]), true
		}
	}
	return termbox.Event{}, false
}

// Events starts the bot and returns its key presses. The channel closes when
// ctx is done.
func (b *Bot) Events(ctx context.Context) <-chan termbox.Event {
	events := make(chan termbox.Event)
	go func() {
		defer close(events)
		t := time.NewTicker(b.Period)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
			}
			ev, ok := b.Next(b.Status())
			if !ok {
				continue
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()
	return events
}
