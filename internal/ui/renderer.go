package ui

import (
	"fmt"
	"image"
	"image/color"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/diegok/handpong/internal/game"
)

const (
	BallChar    = '\u2B24' // ⬤
	PaddleChar  = '\u2588' // █
	PointerChar = '+'

	// backgroundDim is how far camera pixels are blended toward black so the
	// paddles and ball stay readable on top of them.
	backgroundDim = 0.55
)

// View is everything drawn for one tick.
type View struct {
	State *game.GameState
	// Background is a camera thumbnail sized by CourtCells. Nil draws a
	// solid court.
	Background image.Image
	Pointers   []game.Point
	Status     string
}

// Renderer handles rendering all game screens
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer with the given screen
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// CourtCells returns the size of the court area in terminal cells: the full
// width, minus the scoreboard and status rows.
func (r *Renderer) CourtCells() (int, int) {
	w, h := r.screen.Size()
	rows := h - 2
	if rows < 1 {
		rows = 1
	}
	return w, rows
}

// RenderCourt displays the game screen
func (r *Renderer) RenderCourt(v View) {
	r.screen.Clear()
	screenW, screenH := r.screen.Size()
	cols, rows := r.CourtCells()
	gs := v.State

	// Court coordinates are pixels of the logical window; scale to cells.
	scaleX := float64(cols) / gs.Rules.CourtWidth
	scaleY := float64(rows) / gs.Rules.CourtHeight

	r.renderBackground(v.Background, cols, rows)

	// Draw center dashed line
	centerX := cols / 2
	lineStyle := tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	for y := 1; y <= rows; y += 2 {
		r.screen.SetCell(centerX, y, r.keepBackground(centerX, y, lineStyle), '|')
	}

	paddleStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for _, p := range []*game.Paddle{gs.Left, gs.Right} {
		x0, y0, x1, y1 := cellRect(p.Rect(), scaleX, scaleY)
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				r.plot(x, y, rows, cols, paddleStyle, PaddleChar)
			}
		}
	}

	// Ball turns red while it overlaps a paddle
	ballStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	if gs.Touching() {
		ballStyle = tcell.StyleDefault.Foreground(tcell.ColorRed)
	}
	c := gs.Ball.Center()
	r.plot(int(c.X*scaleX), int(c.Y*scaleY)+1, rows, cols, ballStyle, BallChar)

	pointerStyle := tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	for _, p := range v.Pointers {
		r.plot(int(p.X*scaleX), int(p.Y*scaleY)+1, rows, cols, pointerStyle, PointerChar)
	}

	r.renderScoreboard(gs.Score, screenW)

	// Status bar at bottom
	statusY := screenH - 1
	statusStyle := tcell.StyleDefault.Background(tcell.ColorDarkGray).Foreground(tcell.ColorWhite)
	r.screen.FillRect(0, statusY, screenW, 1, statusStyle, ' ')
	r.screen.DrawText(0, statusY, v.Status, statusStyle)

	r.screen.Show()
}

// plot draws a rune inside the court area, keeping the background colour.
func (r *Renderer) plot(x, y, rows, cols int, style tcell.Style, ch rune) {
	if x < 0 || x >= cols || y < 1 || y > rows {
		return
	}
	r.screen.SetCell(x, y, r.keepBackground(x, y, style), ch)
}

func (r *Renderer) keepBackground(x, y int, style tcell.Style) tcell.Style {
	_, bg, _ := r.screen.Style(x, y).Decompose()
	return style.Background(bg)
}

func (r *Renderer) renderBackground(img image.Image, cols, rows int) {
	if img == nil {
		courtStyle := tcell.StyleDefault.Background(tcell.ColorBlack)
		r.screen.FillRect(0, 1, cols, rows, courtStyle, ' ')
		return
	}

	b := img.Bounds()
	for y := 0; y < rows && b.Min.Y+y < b.Max.Y; y++ {
		for x := 0; x < cols && b.Min.X+x < b.Max.X; x++ {
			bg := dim(img.At(b.Min.X+x, b.Min.Y+y), backgroundDim)
			r.screen.SetCell(x, y+1, tcell.StyleDefault.Background(bg), ' ')
		}
	}
}

// renderScoreboard draws the score at top center: [ LEFT 3 : 1 RIGHT ]
func (r *Renderer) renderScoreboard(score game.Score, screenW int) {
	leftLabel := "LEFT"
	rightLabel := "RIGHT"
	middle := fmt.Sprintf(" %d : %d ", score.Left, score.Right)
	text := "[ " + leftLabel + middle + rightLabel + " ]"
	x := (screenW - len(text)) / 2

	boardStyle := tcell.StyleDefault.Background(tcell.ColorDarkGray).Foreground(tcell.ColorWhite).Bold(true)
	leftStyle := boardStyle.Foreground(tcell.ColorRed)
	rightStyle := boardStyle.Foreground(tcell.ColorBlue)

	r.screen.DrawText(x, 0, "[ ", boardStyle)
	x += 2
	r.screen.DrawText(x, 0, leftLabel, leftStyle)
	x += len(leftLabel)
	r.screen.DrawText(x, 0, middle, boardStyle)
	x += len(middle)
	r.screen.DrawText(x, 0, rightLabel, rightStyle)
	x += len(rightLabel)
	r.screen.DrawText(x, 0, " ]", boardStyle)
}

// RenderMessage displays a centred title, message and hint, used while
// devices are being opened.
func (r *Renderer) RenderMessage(title, message, hint string) {
	r.screen.Clear()
	screenW, screenH := r.screen.Size()

	titleStyle := tcell.StyleDefault.Bold(true).Foreground(tcell.ColorTeal)
	r.screen.DrawText((screenW-len(title))/2, screenH/2-3, title, titleStyle)

	msgStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	r.screen.DrawText((screenW-len(message))/2, screenH/2, message, msgStyle)

	hintStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)
	r.screen.DrawText((screenW-len(hint))/2, screenH/2+3, hint, hintStyle)

	r.screen.Show()
}

// cellRect converts a court rect to inclusive cell bounds, offset by the
// scoreboard row. Every rect covers at least one cell.
func cellRect(rect game.Rect, scaleX, scaleY float64) (x0, y0, x1, y1 int) {
	x0 = int(rect.X * scaleX)
	x1 = int((rect.X+rect.W)*scaleX) - 1
	if x1 < x0 {
		x1 = x0
	}
	y0 = int(rect.Y*scaleY) + 1
	y1 = int((rect.Y+rect.H)*scaleY)
	if y1 < y0 {
		y1 = y0
	}
	return x0, y0, x1, y1
}

// dim blends c toward black and converts it to a terminal colour.
func dim(c color.Color, amount float64) tcell.Color {
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return tcell.ColorBlack
	}
	d := cf.BlendRgb(colorful.Color{}, amount)
	r, g, b := d.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
