package render

import (
	"errors"
	"strings"
	"testing"

	"github.com/battlesnakeio/arcade/geom"
	"github.com/battlesnakeio/arcade/rules"
	"github.com/battlesnakeio/arcade/world"
	termbox "github.com/nsf/termbox-go"
	"github.com/stretchr/testify/require"
)

type cell struct {
	ch     rune
	fg, bg termbox.Attribute
}

type memCanvas struct {
	cells    map[[2]int]cell
	flushes  int
	clearErr error
}

func newMemCanvas() *memCanvas {
	return &memCanvas{cells: map[[2]int]cell{}}
}

func (m *memCanvas) Clear(fg, bg termbox.Attribute) error {
	m.cells = map[[2]int]cell{}
	return m.clearErr
}

func (m *memCanvas) SetCell(x, y int, ch rune, fg, bg termbox.Attribute) {
	m.cells[[2]int{x, y}] = cell{ch: ch, fg: fg, bg: bg}
}

func (m *memCanvas) Size() (int, int) { return 80, 60 }

func (m *memCanvas) Flush() error {
	m.flushes++
	return nil
}

func (m *memCanvas) row(y int) string {
	b := strings.Builder{}
	for x := 0; x < 80; x++ {
		c, ok := m.cells[[2]int{x, y}]
		if !ok || c.ch == 0 {
			b.WriteRune(' ')
			continue
		}
		b.WriteRune(c.ch)
	}
	return b.String()
}

func (m *memCanvas) screen() string {
	rows := []string{}
	for y := 0; y < 60; y++ {
		rows = append(rows, m.row(y))
	}
	return strings.Join(rows, "\n")
}

func newTestTerminal() (*Terminal, *memCanvas) {
	c := newMemCanvas()
	return &Terminal{canvas: c, cherry: 'C'}, c
}

func snapshot(status rules.Status) world.Snapshot {
	cherry := geom.Point{X: 120, Y: 140}
	return world.Snapshot{
		Status: status,
		Board:  rules.DefaultBoard(),
		Head:   geom.Point{X: 380, Y: 260},
		Body: []geom.Point{
			{X: 370, Y: 260},
			{X: 360, Y: 260},
			{X: 0, Y: 0},
		},
		Cherry: &cherry,
		Score:  4,
		Best:   12,
	}
}

func TestTerminal_NotStarted(t *testing.T) {
	term, c := newTestTerminal()
	require.NoError(t, term.Draw(snapshot(rules.StatusNotStarted)))

	screen := c.screen()
	require.Contains(t, screen, "S N A K E")
	require.Contains(t, screen, "Press any key to begin")
	require.NotContains(t, screen, "SCORE")
	require.Equal(t, 1, c.flushes)
}

func TestTerminal_Running(t *testing.T) {
	term, c := newTestTerminal()
	require.NoError(t, term.Draw(snapshot(rules.StatusRunning)))

	require.Contains(t, c.row(0), "SCORE: 04")
	require.Contains(t, c.row(0), "BEST: 12")
	require.NotContains(t, c.screen(), "GAME OVER")

	// head (380,260) is board cell (36,22)
	head := c.cells[[2]int{left + 36, top + 22}]
	require.Equal(t, snakeColor|termbox.AttrBold, head.bg)
	body := c.cells[[2]int{left + 35, top + 22}]
	require.Equal(t, snakeColor, body.bg)

	// cherry (120,140) is board cell (10,10)
	require.Equal(t, 'C', c.cells[[2]int{left + 10, top + 10}].ch)

	// corners of the 76x52 board
	require.Equal(t, '┌', c.cells[[2]int{left, top}].ch)
	require.Equal(t, '┘', c.cells[[2]int{left + 75, top + 51}].ch)
}

func TestTerminal_PausedAndGameOver(t *testing.T) {
	term, c := newTestTerminal()

	require.NoError(t, term.Draw(snapshot(rules.StatusPaused)))
	require.Contains(t, c.row(0), "Paused")

	require.NoError(t, term.Draw(snapshot(rules.StatusGameOver)))
	require.Contains(t, c.screen(), "GAME OVER")
	require.Contains(t, c.screen(), "Press enter to start again")
	require.NotContains(t, c.screen(), "Paused")
}

func TestTerminal_CherryStaysInsideWalls(t *testing.T) {
	term, c := newTestTerminal()
	s := snapshot(rules.StatusRunning)
	s.Cherry = &geom.Point{X: 20, Y: 40}

	require.NoError(t, term.Draw(s))
	require.Equal(t, 'C', c.cells[[2]int{left + 1, top + 1}].ch)
}

func TestTerminal_ClearError(t *testing.T) {
	term, c := newTestTerminal()
	c.clearErr = errors.New("not initialised")

	require.Error(t, term.Draw(snapshot(rules.StatusRunning)))
	require.Zero(t, c.flushes)
}

func TestCellOf(t *testing.T) {
	b := rules.DefaultBoard()
	tests := []struct {
		Point geom.Point
		X, Y  int
	}{
		{geom.Point{X: 20, Y: 40}, 0, 0},
		{geom.Point{X: 29, Y: 49}, 0, 0},
		{geom.Point{X: 770, Y: 550}, 75, 51},
		{geom.Point{X: 0, Y: 0}, -2, -4},
		{geom.Point{X: -10, Y: -10}, -3, -5},
		{geom.Point{X: 15, Y: 40}, -1, 0},
	}
	for _, test := range tests {
		x, y := cellOf(b, test.Point)
		require.Equal(t, test.X, x, "Point: %s", test.Point)
		require.Equal(t, test.Y, y, "Point: %s", test.Point)
	}
}
