package world

import "github.com/battlesnakeio/arcade/geom"

// Command is a discrete input message. Commands are applied by World.Handle
// and never stored.
type Command int

const (
	// CommandAny is any key without a more specific meaning.
	CommandAny Command = iota
	// CommandUp turns the snake up.
	CommandUp
	// CommandDown turns the snake down.
	CommandDown
	// CommandLeft turns the snake left.
	CommandLeft
	// CommandRight turns the snake right.
	CommandRight
	// CommandPause toggles between running and paused.
	CommandPause
	// CommandConfirm restarts a finished game.
	CommandConfirm
)

var commandNames = map[Command]string{
	CommandAny:     "any",
	CommandUp:      "up",
	CommandDown:    "down",
	CommandLeft:    "left",
	CommandRight:   "right",
	CommandPause:   "pause",
	CommandConfirm: "confirm",
}

func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return "unknown"
}

// Direction returns the heading a direction command asks for.
func (c Command) Direction() (geom.Direction, bool) {
	switch c {
	case CommandUp:
		return geom.Up, true
	case CommandDown:
		return geom.Down, true
	case CommandLeft:
		return geom.Left, true
	case CommandRight:
		return geom.Right, true
	}
	return 0, false
}

// DirectionCommand is the inverse of Command.Direction.
func DirectionCommand(d geom.Direction) Command {
	switch d {
	case geom.Up:
		return CommandUp
	case geom.Down:
		return CommandDown
	case geom.Left:
		return CommandLeft
	case geom.Right:
		return CommandRight
	}
	return CommandAny
}
