// Package render draws world snapshots. It sits outside the simulation and
// never mutates the world.
package render

import termbox "github.com/nsf/termbox-go"

// Canvas is the drawing surface. The terminal implementation writes to
// termbox; tests use an in-memory grid.
type Canvas interface {
	Clear(fg, bg termbox.Attribute) error
	SetCell(x, y int, ch rune, fg, bg termbox.Attribute)
	Size() (int, int)
	Flush() error
}

type termboxCanvas struct{}

func (termboxCanvas) Clear(fg, bg termbox.Attribute) error { return termbox.Clear(fg, bg) }

func (termboxCanvas) SetCell(x, y int, ch rune, fg, bg termbox.Attribute) {
	termbox.SetCell(x, y, ch, fg, bg)
}

func (termboxCanvas) Size() (int, int) { return termbox.Size() }

func (termboxCanvas) Flush() error { return termbox.Flush() }
