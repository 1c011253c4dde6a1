package game

import "github.com/diegok/handpong/internal/mathutil"

// Paddle is a vertically moving rectangle pinned to a fixed column.
type Paddle struct {
	Side        Side
	X           float64 // fixed
	Y           float64 // top edge
	Width       float64
	Height      float64
	CourtHeight float64
}

func NewPaddle(side Side, x, width, height, courtHeight float64) *Paddle {
	p := &Paddle{
		Side:        side,
		X:           x,
		Width:       width,
		Height:      height,
		CourtHeight: courtHeight,
	}
	p.Move(courtHeight/2 - height/2)
	return p
}

// Move sets the top edge to targetY, kept inside the court.
func (p *Paddle) Move(targetY float64) {
	p.Y = mathutil.Clamp(targetY, 0, p.MaxY())
}

// MaxY is the lowest allowed top edge.
func (p *Paddle) MaxY() float64 {
	return p.CourtHeight - p.Height
}

func (p *Paddle) CenterY() float64 {
	return p.Y + p.Height/2
}

func (p *Paddle) Rect() Rect {
	return Rect{X: p.X, Y: p.Y, W: p.Width, H: p.Height}
}
