// Package input turns terminal key events into world commands.
package input

import (
	"github.com/battlesnakeio/arcade/world"
	termbox "github.com/nsf/termbox-go"
)

// Action says what the caller should do with a translated event.
type Action int

const (
	// ActionCommand means the command should be sent to the world.
	ActionCommand Action = iota
	// ActionQuit means the player wants to leave.
	ActionQuit
	// ActionRedraw means the screen changed and needs repainting.
	ActionRedraw
	// ActionIgnore means the event carries nothing for the game.
	ActionIgnore
)

var keyCommands = map[termbox.Key]world.Command{
	termbox.KeyArrowUp:    world.CommandUp,
	termbox.KeyArrowDown:  world.CommandDown,
	termbox.KeyArrowLeft:  world.CommandLeft,
	termbox.KeyArrowRight: world.CommandRight,
	termbox.KeyEnter:      world.CommandConfirm,
}

var runeCommands = map[rune]world.Command{
	'w': world.CommandUp,
	'W': world.CommandUp,
	's': world.CommandDown,
	'S': world.CommandDown,
	'a': world.CommandLeft,
	'A': world.CommandLeft,
	'd': world.CommandRight,
	'D': world.CommandRight,
	'p': world.CommandPause,
	'P': world.CommandPause,
}

// Translate maps a termbox event to a command. Keys without a binding become
// CommandAny, which only matters before the first game starts.
func Translate(ev termbox.Event) (world.Command, Action) {
	switch ev.Type {
	case termbox.EventKey:
	case termbox.EventResize:
		return world.CommandAny, ActionRedraw
	default:
		return world.CommandAny, ActionIgnore
	}

	switch ev.Key {
	case termbox.KeyEsc, termbox.KeyCtrlC:
		return world.CommandAny, ActionQuit
	}
	if cmd, ok := keyCommands[ev.Key]; ok {
		return cmd, ActionCommand
	}
	if ev.Ch == 'q' || ev.Ch == 'Q' {
		return world.CommandAny, ActionQuit
	}
	if cmd, ok := runeCommands[ev.Ch]; ok {
		return cmd, ActionCommand
	}
	return world.CommandAny, ActionCommand
}

// KeyEvent builds the key event that Translate maps to cmd. It lets
// synthetic players drive the same path as a keyboard.
func KeyEvent(cmd world.Command) termbox.Event {
	ev := termbox.Event{Type: termbox.EventKey}
	switch cmd {
	case world.CommandUp:
		ev.Key = termbox.KeyArrowUp
	case world.CommandDown:
		ev.Key = termbox.KeyArrowDown
	case world.CommandLeft:
		ev.Key = termbox.KeyArrowLeft
	case world.CommandRight:
		ev.Key = termbox.KeyArrowRight
	case world.CommandConfirm:
		ev.Key = termbox.KeyEnter
	case world.CommandPause:
		ev.Ch = 'p'
	default:
		ev.Key = termbox.KeySpace
	}
	return ev
}
