// Package input turns raw control signals (fingertip samples, key presses)
// into paddle movement.
package input

import (
	"github.com/diegok/handpong/internal/game"
	"github.com/diegok/handpong/internal/mathutil"
	"github.com/diegok/handpong/internal/vision"
)

// Smoothing factors used by the two play presets.
const (
	SingleHandSmoothing = 0.2
	DualHandSmoothing   = 0.6
)

// Settings configures an Adapter.
type Settings struct {
	CourtWidth      float64
	CourtHeight     float64
	SmoothingFactor float64
	// MaxHands selects the routing mode: 1 drives only the player paddle,
	// 2 or more also lets a hand on the right half of the frame take over the
	// opponent paddle.
	MaxHands int
}

// Result describes what the adapter did with one frame of samples.
type Result struct {
	// OpponentOverridden is set when a hand drove the opponent paddle this
	// tick, in which case the autopilot must not run.
	OpponentOverridden bool
	// Pointers are the smoothed control points in court coordinates.
	Pointers []game.Point
	// Skipped counts samples with non-finite coordinates.
	Skipped int
}

// Adapter maps camera-space fingertip samples onto the court and smooths
// them into paddle targets. Smoothing state is kept per side and seeded from
// the first observation.
type Adapter struct {
	settings  Settings
	playerY   *float64
	opponentY *float64
}

func NewAdapter(settings Settings) *Adapter {
	return &Adapter{settings: settings}
}

// Reset forgets the smoothing history of both sides.
func (a *Adapter) Reset() {
	a.playerY = nil
	a.opponentY = nil
}

// Apply routes the samples of one frame to the paddles of gs.
// Paddles without a sample this tick keep their position.
func (a *Adapter) Apply(samples []vision.HandSample, frameWidth, frameHeight int, gs *game.GameState) Result {
	var res Result
	if frameWidth <= 0 || frameHeight <= 0 {
		return res
	}

	for _, s := range samples {
		if !mathutil.IsFinite(s.X) || !mathutil.IsFinite(s.Y) {
			res.Skipped++
			continue
		}

		side := game.SideLeft
		if a.settings.MaxHands >= 2 && s.X >= float64(frameWidth)/2 {
			side = game.SideRight
		}

		res.Pointers = append(res.Pointers, a.steer(side, s, frameWidth, frameHeight, gs))
		if side == game.SideRight {
			res.OpponentOverridden = true
		}

		if a.settings.MaxHands < 2 {
			break
		}
	}
	return res
}

// steer maps one sample into the court, smooths it against the side's
// history and moves that side's paddle so its centre follows the fingertip.
func (a *Adapter) steer(side game.Side, s vision.HandSample, frameWidth, frameHeight int, gs *game.GameState) game.Point {
	x := mathutil.MapRange(s.X, 0, float64(frameWidth), 0, a.settings.CourtWidth)
	y := mathutil.MapRange(s.Y, 0, float64(frameHeight), 0, a.settings.CourtHeight)

	prev := &a.playerY
	if side == game.SideRight {
		prev = &a.opponentY
	}

	previous := y
	if *prev != nil {
		previous = **prev
	}
	smoothed := mathutil.Smooth(y, previous, a.settings.SmoothingFactor)
	*prev = &smoothed

	p := gs.GetPaddle(side)
	p.Move(smoothed - p.Height/2)

	return game.Point{X: x, Y: smoothed}
}

// SmoothedY returns the smoothing state for a side, or false before the
// first observation.
func (a *Adapter) SmoothedY(side game.Side) (float64, bool) {
	v := a.playerY
	if side == game.SideRight {
		v = a.opponentY
	}
	if v == nil {
		return 0, false
	}
	return *v, true
}
