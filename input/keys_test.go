package input

import (
	"testing"

	"github.com/battlesnakeio/arcade/world"
	termbox "github.com/nsf/termbox-go"
	"github.com/stretchr/testify/require"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		Name    string
		Event   termbox.Event
		Command world.Command
		Action  Action
	}{
		{"ArrowUp", termbox.Event{Type: termbox.EventKey, Key: termbox.KeyArrowUp}, world.CommandUp, ActionCommand},
		{"ArrowDown", termbox.Event{Type: termbox.EventKey, Key: termbox.KeyArrowDown}, world.CommandDown, ActionCommand},
		{"ArrowLeft", termbox.Event{Type: termbox.EventKey, Key: termbox.KeyArrowLeft}, world.CommandLeft, ActionCommand},
		{"ArrowRight", termbox.Event{Type: termbox.EventKey, Key: termbox.KeyArrowRight}, world.CommandRight, ActionCommand},
		{"Enter", termbox.Event{Type: termbox.EventKey, Key: termbox.KeyEnter}, world.CommandConfirm, ActionCommand},
		{"W", termbox.Event{Type: termbox.EventKey, Ch: 'w'}, world.CommandUp, ActionCommand},
		{"D", termbox.Event{Type: termbox.EventKey, Ch: 'D'}, world.CommandRight, ActionCommand},
		{"Pause", termbox.Event{Type: termbox.EventKey, Ch: 'p'}, world.CommandPause, ActionCommand},
		{"PauseUpper", termbox.Event{Type: termbox.EventKey, Ch: 'P'}, world.CommandPause, ActionCommand},
		{"Other", termbox.Event{Type: termbox.EventKey, Ch: 'x'}, world.CommandAny, ActionCommand},
		{"Space", termbox.Event{Type: termbox.EventKey, Key: termbox.KeySpace}, world.CommandAny, ActionCommand},
		{"Esc", termbox.Event{Type: termbox.EventKey, Key: termbox.KeyEsc}, world.CommandAny, ActionQuit},
		{"CtrlC", termbox.Event{Type: termbox.EventKey, Key: termbox.KeyCtrlC}, world.CommandAny, ActionQuit},
		{"Q", termbox.Event{Type: termbox.EventKey, Ch: 'q'}, world.CommandAny, ActionQuit},
		{"Resize", termbox.Event{Type: termbox.EventResize}, world.CommandAny, ActionRedraw},
		{"Mouse", termbox.Event{Type: termbox.EventMouse}, world.CommandAny, ActionIgnore},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			cmd, action := Translate(test.Event)
			require.Equal(t, test.Command, cmd)
			require.Equal(t, test.Action, action)
		})
	}
}

func TestKeyEventRoundTrip(t *testing.T) {
	commands := []world.Command{
		world.CommandAny,
		world.CommandUp,
		world.CommandDown,
		world.CommandLeft,
		world.CommandRight,
		world.CommandPause,
		world.CommandConfirm,
	}
	for _, cmd := range commands {
		got, action := Translate(KeyEvent(cmd))
		require.Equal(t, ActionCommand, action, cmd.String())
		require.Equal(t, cmd, got)
	}
}
