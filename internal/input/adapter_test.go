package input

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diegok/handpong/internal/game"
	"github.com/diegok/handpong/internal/vision"
)

const (
	frameW = 640
	frameH = 480
)

func newState() *game.GameState {
	return game.NewGameState(game.DefaultRules(), rand.New(rand.NewSource(1)))
}

func singleHand() *Adapter {
	return NewAdapter(Settings{CourtWidth: 800, CourtHeight: 600, SmoothingFactor: SingleHandSmoothing, MaxHands: 1})
}

func dualHand() *Adapter {
	return NewAdapter(Settings{CourtWidth: 800, CourtHeight: 600, SmoothingFactor: DualHandSmoothing, MaxHands: 2})
}

func TestAdapter_SingleHandSeedsAndSmooths(t *testing.T) {
	t.Parallel()
	gs := newState()
	a := singleHand()

	_, ok := a.SmoothedY(game.SideLeft)
	require.False(t, ok, "no smoothing state before the first sample")

	res := a.Apply([]vision.HandSample{{X: 320, Y: 240}}, frameW, frameH, gs)
	require.Len(t, res.Pointers, 1)
	assert.Equal(t, game.Point{X: 400, Y: 300}, res.Pointers[0])
	assert.Equal(t, 240.0, gs.Left.Y, "first sample seeds smoothing, paddle centred on it")
	assert.False(t, res.OpponentOverridden)

	a.Apply([]vision.HandSample{{X: 320, Y: 480}}, frameW, frameH, gs)
	y, ok := a.SmoothedY(game.SideLeft)
	require.True(t, ok)
	assert.InDelta(t, 360.0, y, 1e-9)
	assert.InDelta(t, 300.0, gs.Left.Y, 1e-9)
}

func TestAdapter_SingleHandUsesFirstSampleOnly(t *testing.T) {
	t.Parallel()
	gs := newState()
	a := singleHand()
	rightY := gs.Right.Y

	res := a.Apply([]vision.HandSample{{X: 100, Y: 0}, {X: 600, Y: 480}}, frameW, frameH, gs)

	assert.Len(t, res.Pointers, 1)
	assert.Equal(t, 0.0, gs.Left.Y)
	assert.Equal(t, rightY, gs.Right.Y, "single-hand mode never drives the opponent")
	assert.False(t, res.OpponentOverridden)
}

func TestAdapter_DualHandRouting(t *testing.T) {
	t.Parallel()
	gs := newState()
	a := dualHand()

	res := a.Apply([]vision.HandSample{{X: 100, Y: 120}, {X: 500, Y: 360}}, frameW, frameH, gs)

	assert.True(t, res.OpponentOverridden)
	assert.Len(t, res.Pointers, 2)
	assert.InDelta(t, 90.0, gs.Left.Y, 1e-9)
	assert.InDelta(t, 390.0, gs.Right.Y, 1e-9)
}

func TestAdapter_DualHandIndependentSmoothing(t *testing.T) {
	t.Parallel()
	gs := newState()
	a := dualHand()

	a.Apply([]vision.HandSample{{X: 100, Y: 120}}, frameW, frameH, gs)
	leftBefore, _ := a.SmoothedY(game.SideLeft)

	res := a.Apply([]vision.HandSample{{X: 600, Y: 0}}, frameW, frameH, gs)
	require.True(t, res.OpponentOverridden)

	leftAfter, _ := a.SmoothedY(game.SideLeft)
	assert.Equal(t, leftBefore, leftAfter, "right-hand sample must not touch left smoothing")

	right, ok := a.SmoothedY(game.SideRight)
	require.True(t, ok)
	assert.Equal(t, 0.0, right, "right side seeds from its own first sample")
}

func TestAdapter_LeftHandOnlyDoesNotOverride(t *testing.T) {
	t.Parallel()
	gs := newState()

	res := dualHand().Apply([]vision.HandSample{{X: 50, Y: 200}}, frameW, frameH, gs)

	assert.False(t, res.OpponentOverridden)
}

func TestAdapter_NoSamplesKeepsPaddles(t *testing.T) {
	t.Parallel()
	gs := newState()
	a := dualHand()
	a.Apply([]vision.HandSample{{X: 100, Y: 0}}, frameW, frameH, gs)
	left, right := gs.Left.Y, gs.Right.Y

	res := a.Apply(nil, frameW, frameH, gs)

	assert.False(t, res.OpponentOverridden)
	assert.Empty(t, res.Pointers)
	assert.Equal(t, left, gs.Left.Y)
	assert.Equal(t, right, gs.Right.Y)
}

func TestAdapter_SkipsMalformedSamples(t *testing.T) {
	t.Parallel()
	gs := newState()

	samples := []vision.HandSample{
		{X: math.NaN(), Y: 10},
		{X: 10, Y: math.Inf(1)},
		{X: 320, Y: 480},
	}
	res := singleHand().Apply(samples, frameW, frameH, gs)

	assert.Equal(t, 2, res.Skipped)
	require.Len(t, res.Pointers, 1)
	assert.Equal(t, 480.0, gs.Left.Y)
}

func TestAdapter_OutOfFrameSamplesClamp(t *testing.T) {
	t.Parallel()
	gs := newState()

	singleHand().Apply([]vision.HandSample{{X: -40, Y: 9000}}, frameW, frameH, gs)

	assert.Equal(t, 480.0, gs.Left.Y)
}

func TestAdapter_InvalidFrameSize(t *testing.T) {
	t.Parallel()
	gs := newState()
	before := gs.Left.Y

	res := singleHand().Apply([]vision.HandSample{{X: 1, Y: 1}}, 0, 0, gs)

	assert.Empty(t, res.Pointers)
	assert.Equal(t, before, gs.Left.Y)
}

func TestAdapter_Reset(t *testing.T) {
	t.Parallel()
	gs := newState()
	a := dualHand()
	a.Apply([]vision.HandSample{{X: 100, Y: 100}, {X: 600, Y: 100}}, frameW, frameH, gs)

	a.Reset()

	_, okL := a.SmoothedY(game.SideLeft)
	_, okR := a.SmoothedY(game.SideRight)
	assert.False(t, okL)
	assert.False(t, okR)
}
