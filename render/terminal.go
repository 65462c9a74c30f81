package render

import (
	"fmt"
	"sync"

	"github.com/battlesnakeio/arcade/geom"
	"github.com/battlesnakeio/arcade/rules"
	"github.com/battlesnakeio/arcade/world"
	runewidth "github.com/mattn/go-runewidth"
	termbox "github.com/nsf/termbox-go"
)

const (
	defaultColor = termbox.ColorDefault
	bgColor      = termbox.ColorDefault
	snakeColor   = termbox.ColorBlue
	wallColor    = termbox.ColorRed
	cherryColor  = termbox.ColorRed

	// The board is drawn below the score line.
	left = 1
	top  = 2
)

// Terminal draws snapshots with termbox. It is safe for concurrent use.
type Terminal struct {
	mu     sync.Mutex
	canvas Canvas
	cherry rune
}

// NewTerminal returns a renderer for an initialised termbox screen.
func NewTerminal(cherry rune) *Terminal {
	return &Terminal{canvas: termboxCanvas{}, cherry: cherry}
}

// Draw renders one snapshot and flushes it to the screen.
func (t *Terminal) Draw(s world.Snapshot) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.canvas.Clear(defaultColor, bgColor); err != nil {
		return err
	}

	cols, rows := gridSize(s.Board)
	if s.Status == rules.StatusNotStarted {
		t.centered(cols, top+rows/2-2, "S N A K E")
		t.centered(cols, top+rows/2, "G A M E")
		t.centered(cols, top+rows/2+2, fmt.Sprintf("difficulty: %s", s.Difficulty.Name))
		t.centered(cols, top+rows/2+4, "Press any key to begin")
		return t.canvas.Flush()
	}

	t.print(left, 0, defaultColor, fmt.Sprintf("SCORE: %02d", s.Score))
	best := fmt.Sprintf("BEST: %02d", s.Best)
	t.print(left+cols-runewidth.StringWidth(best), 0, defaultColor, best)
	if s.Status == rules.StatusPaused {
		t.centered(cols, 0, "Paused")
	}

	t.renderBoard(cols, rows)
	if s.Cherry != nil {
		t.renderCherry(s.Board, cols, rows, *s.Cherry)
	}
	t.renderSnake(s.Board, cols, rows, s.Head, s.Body)

	if s.Status == rules.StatusGameOver {
		t.centered(cols, top+rows/2, "GAME OVER")
		t.centered(cols, top+rows/2+2, "Press enter to start again")
	}
	return t.canvas.Flush()
}

// gridSize is the board size in terminal cells, walls included.
func gridSize(b rules.Board) (int, int) {
	return b.Width / b.Cell, b.Height / b.Cell
}

// cellOf maps a board position to a board-relative terminal cell.
func cellOf(b rules.Board, p geom.Point) (int, int) {
	return floorDiv(p.X-b.Origin.X, b.Cell), floorDiv(p.Y-b.Origin.Y, b.Cell)
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func (t *Terminal) renderBoard(cols, rows int) {
	for y := top + 1; y < top+rows-1; y++ {
		t.canvas.SetCell(left, y, '│', wallColor, bgColor)
		t.canvas.SetCell(left+cols-1, y, '│', wallColor, bgColor)
	}
	for x := left + 1; x < left+cols-1; x++ {
		t.canvas.SetCell(x, top, '─', wallColor, bgColor)
		t.canvas.SetCell(x, top+rows-1, '─', wallColor, bgColor)
	}
	t.canvas.SetCell(left, top, '┌', wallColor, bgColor)
	t.canvas.SetCell(left+cols-1, top, '┐', wallColor, bgColor)
	t.canvas.SetCell(left, top+rows-1, '└', wallColor, bgColor)
	t.canvas.SetCell(left+cols-1, top+rows-1, '┘', wallColor, bgColor)
}

// renderCherry keeps the cherry inside the walls; its position is not on the
// snake's grid.
func (t *Terminal) renderCherry(b rules.Board, cols, rows int, p geom.Point) {
	x, y := cellOf(b, p)
	x = clamp(x, 1, cols-2)
	y = clamp(y, 1, rows-2)
	t.canvas.SetCell(left+x, top+y, t.cherry, cherryColor, bgColor)
}

func (t *Terminal) renderSnake(b rules.Board, cols, rows int, head geom.Point, body []geom.Point) {
	for _, p := range body {
		t.setBoardCell(b, cols, rows, p, ' ', snakeColor)
	}
	t.setBoardCell(b, cols, rows, head, ' ', snakeColor|termbox.AttrBold)
}

// setBoardCell fills a board cell, dropping positions off the board such as
// segments that have not unfolded yet.
func (t *Terminal) setBoardCell(b rules.Board, cols, rows int, p geom.Point, ch rune, color termbox.Attribute) {
	x, y := cellOf(b, p)
	if x < 0 || y < 0 || x >= cols || y >= rows {
		return
	}
	t.canvas.SetCell(left+x, top+y, ch, color, color)
}

func (t *Terminal) centered(cols, y int, msg string) {
	x := left + (cols-runewidth.StringWidth(msg))/2
	if x < 0 {
		x = 0
	}
	t.print(x, y, defaultColor, msg)
}

func (t *Terminal) print(x, y int, fg termbox.Attribute, msg string) {
	for _, c := range msg {
		t.canvas.SetCell(x, y, c, fg, bgColor)
		x += runewidth.RuneWidth(c)
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
