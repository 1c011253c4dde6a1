package game

import (
	"math"
	"math/rand"

	"github.com/diegok/handpong/internal/mathutil"
)

// Ball is a square hitbox moving with a velocity. SpeedX and SpeedY keep the
// base speed so a reset can undo paddle-hit escalation.
type Ball struct {
	X, Y           float64 // top-left
	Size           float64
	DX, DY         float64
	SpeedX, SpeedY float64
}

func NewBall(size, speedX, speedY float64) *Ball {
	return &Ball{
		Size:   size,
		DX:     speedX,
		DY:     speedY,
		SpeedX: speedX,
		SpeedY: speedY,
	}
}

// Move advances the ball by its velocity
func (b *Ball) Move() {
	b.X += b.DX
	b.Y += b.DY
}

// Step moves the ball and reflects it off the top and bottom walls.
// It reports whether a wall bounce happened.
func (b *Ball) Step(courtHeight float64) bool {
	b.Move()

	maxY := courtHeight - b.Size
	bounced := false
	if b.Y <= 0 && b.DY < 0 {
		b.BounceVertical()
		bounced = true
	} else if b.Y >= maxY && b.DY > 0 {
		b.BounceVertical()
		bounced = true
	}
	b.Y = mathutil.Clamp(b.Y, 0, maxY)
	return bounced
}

// BounceVertical reverses vertical direction (wall bounce)
func (b *Ball) BounceVertical() {
	b.DY = -b.DY
}

// BounceHorizontal reverses horizontal direction (paddle bounce)
func (b *Ball) BounceHorizontal() {
	b.DX = -b.DX
}

// SpeedUp adds increment to both velocity components in the direction they
// already point. A zero component is pushed negative.
func (b *Ball) SpeedUp(increment float64) {
	b.DX += signed(b.DX, increment)
	b.DY += signed(b.DY, increment)
}

// Cap limits each velocity component to factor times its base speed.
// A factor <= 0 leaves the velocity alone.
func (b *Ball) Cap(factor float64) {
	if factor <= 0 {
		return
	}
	b.DX = capAbs(b.DX, factor*math.Abs(b.SpeedX))
	b.DY = capAbs(b.DY, factor*math.Abs(b.SpeedY))
}

// Speed returns current speed
func (b *Ball) Speed() float64 {
	return math.Hypot(b.DX, b.DY)
}

// Reset centres the ball on (cx, cy) and picks a base-speed velocity with an
// independent random sign per axis.
func (b *Ball) Reset(cx, cy float64, rng *rand.Rand) {
	b.CenterOn(cx, cy)
	b.DX = b.SpeedX
	if rng.Intn(2) == 0 {
		b.DX = -b.SpeedX
	}
	b.DY = b.SpeedY
	if rng.Intn(2) == 0 {
		b.DY = -b.SpeedY
	}
}

func (b *Ball) CenterOn(cx, cy float64) {
	b.X = cx - b.Size/2
	b.Y = cy - b.Size/2
}

func (b *Ball) Center() Point {
	return Point{X: b.X + b.Size/2, Y: b.Y + b.Size/2}
}

func (b *Ball) Rect() Rect {
	return Rect{X: b.X, Y: b.Y, W: b.Size, H: b.Size}
}

func signed(v, amount float64) float64 {
	if v > 0 {
		return amount
	}
	return -amount
}

func capAbs(v, limit float64) float64 {
	if v > limit {
		return limit
	}
	if v < -limit {
		return -limit
	}
	return v
}
