package input

import "github.com/diegok/handpong/internal/game"

const (
	DefaultPaddleSpeed = 10 // pixels per tick while a key is held
	MovementTimeout    = 8  // Ticks to keep moving after last input (~133ms at 60Hz)
)

// Keyboard moves the player paddle from key presses. Terminals report key
// repeats but never key releases, so a direction stays active for
// MovementTimeout ticks after the last press.
type Keyboard struct {
	Speed     float64
	Direction game.Direction
	ticksLeft int
}

func NewKeyboard(speed float64) *Keyboard {
	return &Keyboard{Speed: speed, Direction: game.DirNone}
}

func (k *Keyboard) SetDirection(dir game.Direction) {
	k.Direction = dir
	if dir != game.DirNone {
		k.ticksLeft = MovementTimeout // Reset timeout on new input
	}
}

// Apply moves the paddle one tick in the active direction.
func (k *Keyboard) Apply(p *game.Paddle) {
	switch k.Direction {
	case game.DirUp:
		p.Move(p.Y - k.Speed)
	case game.DirDown:
		p.Move(p.Y + k.Speed)
	}

	// Decrement movement timeout and stop when it expires
	if k.ticksLeft > 0 {
		k.ticksLeft--
		if k.ticksLeft == 0 {
			k.Direction = game.DirNone
		}
	}
}
