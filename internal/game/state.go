package game

import (
	"math/rand"
	"time"
)

// Default court geometry and ball tuning
const (
	DefaultCourtWidth     = 800
	DefaultCourtHeight    = 600
	DefaultPaddleWidth    = 15
	DefaultPaddleHeight   = 120
	DefaultBallSize       = 20
	DefaultBallSpeed      = 4
	DefaultSpeedIncrement = 0.5
	DefaultMaxSpeedFactor = 3.0

	leftPaddleX       = 20 // distance from the left wall
	rightPaddleMargin = 30 // distance from the right wall to the paddle's right edge
)

// Rules holds the geometry and ball tuning of a match.
type Rules struct {
	CourtWidth     float64
	CourtHeight    float64
	PaddleWidth    float64
	PaddleHeight   float64
	BallSize       float64
	BallSpeedX     float64
	BallSpeedY     float64
	SpeedIncrement float64
	MaxSpeedFactor float64 // per-axis cap as a multiple of base speed, 0 = uncapped
}

// DefaultRules returns the classic 800x600 court.
func DefaultRules() Rules {
	return Rules{
		CourtWidth:     DefaultCourtWidth,
		CourtHeight:    DefaultCourtHeight,
		PaddleWidth:    DefaultPaddleWidth,
		PaddleHeight:   DefaultPaddleHeight,
		BallSize:       DefaultBallSize,
		BallSpeedX:     DefaultBallSpeed,
		BallSpeedY:     DefaultBallSpeed,
		SpeedIncrement: DefaultSpeedIncrement,
		MaxSpeedFactor: DefaultMaxSpeedFactor,
	}
}

// GameState manages the complete game state
type GameState struct {
	Rules Rules
	Ball  *Ball
	Left  *Paddle
	Right *Paddle
	Score Score
	Tick  int

	// contact remembers per side whether the ball overlapped the paddle on
	// the previous tick, so a hit is only applied on overlap onset.
	contact [2]bool
	rng     *rand.Rand
}

// NewGameState creates paddles at their home columns and the ball at the
// centre of the court. A nil rng is seeded from the clock.
func NewGameState(rules Rules, rng *rand.Rand) *GameState {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	rightX := rules.CourtWidth - rightPaddleMargin - rules.PaddleWidth
	gs := &GameState{
		Rules: rules,
		Ball:  NewBall(rules.BallSize, rules.BallSpeedX, rules.BallSpeedY),
		Left:  NewPaddle(SideLeft, leftPaddleX, rules.PaddleWidth, rules.PaddleHeight, rules.CourtHeight),
		Right: NewPaddle(SideRight, rightX, rules.PaddleWidth, rules.PaddleHeight, rules.CourtHeight),
		rng:   rng,
	}
	gs.Ball.CenterOn(rules.CourtWidth/2, rules.CourtHeight/2)
	return gs
}

// GetPaddle returns the paddle for the given side
func (gs *GameState) GetPaddle(side Side) *Paddle {
	if side == SideLeft {
		return gs.Left
	}
	return gs.Right
}

// Update runs one game tick
func (gs *GameState) Update() Events {
	gs.Tick++

	var ev Events
	ev.WallBounce = gs.Ball.Step(gs.Rules.CourtHeight)
	ev.PaddleHit = gs.checkPaddleCollisions()
	ev.Scorer, ev.Scored = gs.CheckScore()
	return ev
}

// checkPaddleCollisions bounces the ball off a paddle it has just started to
// overlap and speeds it up. Continued overlap on later ticks is ignored.
func (gs *GameState) checkPaddleCollisions() bool {
	ball := gs.Ball.Rect()
	hit := false

	for _, p := range []*Paddle{gs.Left, gs.Right} {
		overlapping := ball.Overlaps(p.Rect())
		wasTouching := gs.contact[p.Side]
		gs.contact[p.Side] = overlapping

		if !overlapping || wasTouching || hit {
			continue
		}

		gs.Ball.BounceHorizontal()
		gs.Ball.SpeedUp(gs.Rules.SpeedIncrement)
		gs.Ball.Cap(gs.Rules.MaxSpeedFactor)
		hit = true
	}
	return hit
}

// Touching reports whether the ball currently overlaps either paddle.
func (gs *GameState) Touching() bool {
	return gs.contact[SideLeft] || gs.contact[SideRight]
}

// CheckScore awards a point when the ball reaches a side wall and serves a
// new ball from the centre.
func (gs *GameState) CheckScore() (Side, bool) {
	var scorer Side

	switch {
	case gs.Ball.X <= 0:
		gs.Score.Right++
		scorer = SideRight
	case gs.Ball.X+gs.Ball.Size >= gs.Rules.CourtWidth:
		gs.Score.Left++
		scorer = SideLeft
	default:
		return 0, false
	}

	gs.Ball.Reset(gs.Rules.CourtWidth/2, gs.Rules.CourtHeight/2, gs.rng)
	gs.contact = [2]bool{}
	return scorer, true
}
