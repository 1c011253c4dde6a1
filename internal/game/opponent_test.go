package game

import "testing"

func TestOpponent_Track(t *testing.T) {
	p := NewPaddle(SideRight, 755, 15, 120, 600) // Y=240
	b := NewBall(20, 4, 4)
	b.CenterOn(400, 100) // target top edge 40

	NewOpponent(0.5).Track(p, b)

	if p.Y != 140 {
		t.Errorf("expected halfway to target (140), got %f", p.Y)
	}
}

func TestOpponent_TrackGains(t *testing.T) {
	b := NewBall(20, 4, 4)
	b.CenterOn(400, 500) // target top edge 440

	fast := NewPaddle(SideRight, 755, 15, 120, 600)
	slow := NewPaddle(SideRight, 755, 15, 120, 600)
	NewOpponent(FastOpponentGain).Track(fast, b)
	NewOpponent(HumanOpponentGain).Track(slow, b)

	if fast.Y <= slow.Y {
		t.Errorf("fast gain should close more distance: fast=%f slow=%f", fast.Y, slow.Y)
	}
	if slow.Y <= 240 {
		t.Errorf("slow gain should still move toward the ball, got %f", slow.Y)
	}
}

func TestOpponent_TrackClamped(t *testing.T) {
	p := NewPaddle(SideRight, 755, 15, 120, 600)
	b := NewBall(20, 4, 4)
	b.CenterOn(400, 598)

	NewOpponent(1).Track(p, b)

	if p.Y != 480 {
		t.Errorf("expected paddle clamped to 480, got %f", p.Y)
	}
}
