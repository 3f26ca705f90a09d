package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/battlesnakeio/termsnake/rules"
	"github.com/battlesnakeio/termsnake/worker"
	"github.com/mattn/go-runewidth"
	termbox "github.com/nsf/termbox-go"
)

const (
	defaultColor = termbox.ColorDefault
	bgColor      = termbox.ColorDefault

	// every board cell is two terminal columns so cells look square
	cellWidth   = 2
	scoreHeight = 5
)

var palette = map[rules.Color]termbox.Attribute{
	rules.ColorText:  termbox.ColorWhite,
	rules.ColorSnake: termbox.ColorGreen,
	rules.ColorApple: termbox.ColorRed,
}

// screen is a worker.Screen drawing with termbox.
type screen struct {
	cfg rules.Config
}

func (s *screen) Render(v worker.View) error {
	err := termbox.Clear(defaultColor, defaultColor)
	if err != nil {
		return err
	}

	w, h := termbox.Size()
	l := newLayout(w, h, s.cfg)
	if !l.fits(w, h) {
		renderTooSmall(w, h, l)
		return termbox.Flush()
	}

	renderBox(l.score)
	renderScores(l.score, v)
	renderBox(l.game)
	termbox.SetCell(l.game.x, l.game.y, '├', defaultColor, bgColor)
	termbox.SetCell(l.game.x+l.game.w-1, l.game.y, '┤', defaultColor, bgColor)
	v.Game.Draw(&board{left: l.game.x + 1, top: l.game.y + 1})
	renderStatus(l.game, v)

	return termbox.Flush()
}

// board maps board cells onto the inside of the game window.
type board struct {
	left, top int
}

func (b *board) DrawCell(p rules.Point, c rules.Color) {
	color := palette[c]
	x := b.left + p.X*cellWidth
	for i := 0; i < cellWidth; i++ {
		termbox.SetCell(x+i, b.top+p.Y, ' ', color, color)
	}
}

type rect struct {
	x, y, w, h int
}

type layout struct {
	score rect
	game  rect
}

// newLayout centers the game window on the terminal and stacks the score
// window on top of it, sharing a border row.
func newLayout(termW, termH int, cfg rules.Config) layout {
	game := rect{
		w: cfg.Width*cellWidth + 2,
		h: cfg.Height + 2,
	}
	game.x = termW/2 - game.w/2
	game.y = termH/2 - game.h/2
	if game.x < 0 {
		game.x = 0
	}
	if game.y < scoreHeight-1 {
		game.y = scoreHeight - 1
	}

	return layout{
		score: rect{x: game.x, y: game.y - (scoreHeight - 1), w: game.w, h: scoreHeight},
		game:  game,
	}
}

// fits reports whether the layout, plus the status line, fits the terminal.
func (l layout) fits(termW, termH int) bool {
	return l.game.x+l.game.w <= termW && l.game.y+l.game.h+1 <= termH
}

func renderBox(r rect) {
	right, bottom := r.x+r.w-1, r.y+r.h-1
	for i := r.y + 1; i < bottom; i++ {
		termbox.SetCell(r.x, i, '│', defaultColor, bgColor)
		termbox.SetCell(right, i, '│', defaultColor, bgColor)
	}

	fill(r.x+1, r.y, r.w-2, 1, termbox.Cell{Ch: '─'})
	fill(r.x+1, bottom, r.w-2, 1, termbox.Cell{Ch: '─'})

	termbox.SetCell(r.x, r.y, '┌', defaultColor, bgColor)
	termbox.SetCell(r.x, bottom, '└', defaultColor, bgColor)
	termbox.SetCell(right, r.y, '┐', defaultColor, bgColor)
	termbox.SetCell(right, bottom, '┘', defaultColor, bgColor)
}

func renderScores(r rect, v worker.View) {
	text := palette[rules.ColorText]
	for i, row := range scoreRows(r.w, v) {
		tbprint(r.x+1, r.y+1+i, text, bgColor, row)
	}
}

// scoreRows are the lines of the score window: the running score, the best
// score so far and how many games have ended.
func scoreRows(w int, v worker.View) []string {
	return []string{
		scoreRow(w, "SCORE", v.Game.Score),
		scoreRow(w, "HIGH", v.HighScore),
		scoreRow(w, "GAMES", v.Games),
	}
}

func renderStatus(r rect, v worker.View) {
	msg := statusLine(v)
	if msg == "" {
		return
	}
	msg = runewidth.Truncate(msg, r.w, "")
	x := r.x + (r.w-runewidth.StringWidth(msg))/2
	tbprint(x, r.y+r.h, palette[rules.ColorText], bgColor, msg)
}

func renderTooSmall(termW, termH int, l layout) {
	need := fmt.Sprintf("needs %dx%d, have %dx%d", l.game.w, l.score.h+l.game.h, termW, termH)
	tbprint(0, 0, defaultColor, defaultColor, "terminal too small")
	tbprint(0, 1, defaultColor, defaultColor, need)
}

func statusLine(v worker.View) string {
	switch {
	case v.Game.Over():
		return fmt.Sprintf("%s! r: restart  q: quit", v.Game.Snake.Cause())
	case v.Paused:
		return "paused, space to resume"
	}
	return ""
}

// scoreRow lays out "label | value" across the inside of a box w columns
// wide, with each half centered on its side of the separator.
func scoreRow(w int, label string, value int) string {
	center := w / 2
	return centerText(label, center-1) + "|" + centerText(strconv.Itoa(value), center-2)
}

// centerText pads s with spaces to n columns, the odd space going right.
func centerText(s string, n int) string {
	if n <= 0 {
		return ""
	}
	s = runewidth.Truncate(s, n, "")
	pad := n - runewidth.StringWidth(s)
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}

func fill(x, y, w, h int, cell termbox.Cell) {
	for ly := 0; ly < h; ly++ {
		for lx := 0; lx < w; lx++ {
			termbox.SetCell(x+lx, y+ly, cell.Ch, cell.Fg, cell.Bg)
		}
	}
}

func tbprint(x, y int, fg, bg termbox.Attribute, msg string) {
	for _, c := range msg {
		termbox.SetCell(x, y, c, fg, bg)
		x += runewidth.RuneWidth(c)
	}
}
