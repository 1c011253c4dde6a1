package game

import "github.com/diegok/handpong/internal/mathutil"

// Opponent gains used by the two play presets.
const (
	FastOpponentGain  = 0.7
	HumanOpponentGain = 0.2
)

// Opponent steers a paddle toward the ball with exponential pursuit: each
// tick it closes Gain of the remaining distance. There is no velocity term.
type Opponent struct {
	Gain float64
}

func NewOpponent(gain float64) *Opponent {
	return &Opponent{Gain: gain}
}

// Track moves the paddle so its centre chases the ball's vertical centre.
func (o *Opponent) Track(p *Paddle, b *Ball) {
	target := b.Center().Y - p.Height/2
	p.Move(mathutil.Smooth(target, p.Y, o.Gain))
}
