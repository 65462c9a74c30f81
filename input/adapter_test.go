package input

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/battlesnakeio/arcade/rules"
	"github.com/battlesnakeio/arcade/world"
	termbox "github.com/nsf/termbox-go"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

type mockHandler struct {
	sync.Mutex
	commands []world.Command
	result   bool
}

func (m *mockHandler) Handle(cmd world.Command) bool {
	m.Lock()
	defer m.Unlock()

	m.commands = append(m.commands, cmd)
	return m.result
}

func key(k termbox.Key) termbox.Event {
	return termbox.Event{Type: termbox.EventKey, Key: k}
}

func TestAdapter_Dispatch(t *testing.T) {
	h := &mockHandler{result: true}
	redraws := 0
	a := &Adapter{Handler: h, Redraw: func() { redraws++ }}

	require.False(t, a.Dispatch(key(termbox.KeyArrowUp)))
	require.False(t, a.Dispatch(key(termbox.KeyEnter)))
	require.False(t, a.Dispatch(termbox.Event{Type: termbox.EventResize}))
	require.False(t, a.Dispatch(termbox.Event{Type: termbox.EventMouse}))
	require.False(t, a.Dispatch(termbox.Event{Type: termbox.EventError, Err: errors.New("broken tty")}))
	require.True(t, a.Dispatch(key(termbox.KeyEsc)))

	require.Equal(t, []world.Command{world.CommandUp, world.CommandConfirm}, h.commands)
	require.Equal(t, 3, redraws)
}

func TestAdapter_NoRedrawWithoutChange(t *testing.T) {
	h := &mockHandler{}
	redraws := 0
	a := &Adapter{Handler: h, Redraw: func() { redraws++ }}

	a.Dispatch(key(termbox.KeyArrowLeft))
	require.Len(t, h.commands, 1)
	require.Zero(t, redraws)
}

func TestAdapter_RateLimit(t *testing.T) {
	h := &mockHandler{}
	a := &Adapter{
		Handler: h,
		Limiter: rate.NewLimiter(rate.Every(time.Hour), 2),
	}

	for i := 0; i < 5; i++ {
		a.Dispatch(key(termbox.KeyArrowUp))
	}
	require.Len(t, h.commands, 2)

	// Quitting is never rate limited.
	require.True(t, a.Dispatch(key(termbox.KeyEsc)))
}

func TestAdapter_Run(t *testing.T) {
	h := &mockHandler{}
	a := &Adapter{Handler: h}

	t.Run("Quit", func(t *testing.T) {
		events := make(chan termbox.Event, 3)
		events <- key(termbox.KeyArrowDown)
		events <- key(termbox.KeyEsc)
		events <- key(termbox.KeyArrowUp)
		require.NoError(t, a.Run(context.Background(), events))
	})

	t.Run("Closed", func(t *testing.T) {
		events := make(chan termbox.Event)
		close(events)
		require.NoError(t, a.Run(context.Background(), events))
	})

	t.Run("Cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		require.Equal(t, context.Canceled, a.Run(ctx, make(chan termbox.Event)))
	})

	require.Equal(t, []world.Command{world.CommandDown}, h.commands)
}

func TestAdapter_DrivesWorld(t *testing.T) {
	w := world.New(rules.DefaultBoard())
	a := &Adapter{Handler: w}

	a.Dispatch(key(termbox.KeySpace))
	require.Equal(t, rules.StatusRunning, w.Status())

	a.Dispatch(termbox.Event{Type: termbox.EventKey, Ch: 'p'})
	require.Equal(t, rules.StatusPaused, w.Status())

	a.Dispatch(termbox.Event{Type: termbox.EventKey, Ch: 'p'})
	require.Equal(t, rules.StatusRunning, w.Status())

	a.Dispatch(key(termbox.KeyArrowDown))
	require.Equal(t, "down", w.Snapshot().Direction.String())
}

func TestBot_Next(t *testing.T) {
	b := &Bot{Rand: rand.New(rand.NewSource(1)), TurnChance: 100}

	ev, ok := b.Next(rules.StatusNotStarted)
	require.True(t, ok)
	cmd, _ := Translate(ev)
	require.Equal(t, world.CommandAny, cmd)

	ev, ok = b.Next(rules.StatusGameOver)
	require.True(t, ok)
	cmd, _ = Translate(ev)
	require.Equal(t, world.CommandConfirm, cmd)

	ev, ok = b.Next(rules.StatusRunning)
	require.True(t, ok)
	cmd, _ = Translate(ev)
	_, isDirection := cmd.Direction()
	require.True(t, isDirection)

	_, ok = b.Next(rules.StatusPaused)
	require.False(t, ok)

	b.TurnChance = 0
	_, ok = b.Next(rules.StatusRunning)
	require.False(t, ok)
}

func TestBot_Events(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	b := &Bot{
		Status:     func() rules.Status { return rules.StatusGameOver },
		Rand:       rand.New(rand.NewSource(1)),
		Period:     time.Millisecond,
		TurnChance: 50,
	}

	events := b.Events(ctx)
	ev := <-events
	cmd, _ := Translate(ev)
	require.Equal(t, world.CommandConfirm, cmd)

	cancel()
	for range events {
	}
}
