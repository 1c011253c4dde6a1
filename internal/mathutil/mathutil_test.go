package mathutil

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		value, min, max float64
		want            float64
	}{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tt := range tests {
		got := Clamp(tt.value, tt.min, tt.max)
		if got != tt.want {
			t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.value, tt.min, tt.max, got, tt.want)
		}
	}
}

func TestMapRange_Bounds(t *testing.T) {
	if got := MapRange(0, 0, 640, 0, 800); got != 0 {
		t.Errorf("expected inMin to map to outMin, got %f", got)
	}
	if got := MapRange(640, 0, 640, 0, 800); got != 800 {
		t.Errorf("expected inMax to map to outMax, got %f", got)
	}
	if got := MapRange(320, 0, 640, 0, 800); got != 400 {
		t.Errorf("expected midpoint 400, got %f", got)
	}
}

func TestMapRange_ClampsOutside(t *testing.T) {
	for _, v := range []float64{-1, -100, -1e9} {
		if got, want := MapRange(v, 0, 480, 0, 600), MapRange(0, 0, 480, 0, 600); got != want {
			t.Errorf("MapRange(%v) = %f, want %f (clamped to inMin)", v, got, want)
		}
	}
	for _, v := range []float64{481, 1000, 1e9} {
		if got, want := MapRange(v, 0, 480, 0, 600), MapRange(480, 0, 480, 0, 600); got != want {
			t.Errorf("MapRange(%v) = %f, want %f (clamped to inMax)", v, got, want)
		}
	}
}

func TestMapRange_EmptyInputRange(t *testing.T) {
	got := MapRange(42, 10, 10, 5, 50)
	if got != 5 {
		t.Errorf("expected outMin for empty input range, got %f", got)
	}
	if math.IsNaN(got) || math.IsInf(got, 0) {
		t.Error("empty input range must not produce NaN or Inf")
	}
}

func TestMapRange_ReversedOutput(t *testing.T) {
	if got := MapRange(0, 0, 100, 600, 0); got != 600 {
		t.Errorf("expected 600, got %f", got)
	}
	if got := MapRange(25, 0, 100, 600, 0); got != 450 {
		t.Errorf("expected 450, got %f", got)
	}
}

func TestSmooth(t *testing.T) {
	if got := Smooth(100, 20, 0); got != 20 {
		t.Errorf("factor 0 should keep previous, got %f", got)
	}
	if got := Smooth(100, 20, 1); got != 100 {
		t.Errorf("factor 1 should snap to current, got %f", got)
	}

	for _, f := range []float64{0.1, 0.2, 0.5, 0.6, 0.9} {
		got := Smooth(100, 20, f)
		if got <= 20 || got >= 100 {
			t.Errorf("Smooth(100, 20, %v) = %f, expected strictly between 20 and 100", f, got)
		}
		got = Smooth(20, 100, f)
		if got <= 20 || got >= 100 {
			t.Errorf("Smooth(20, 100, %v) = %f, expected strictly between 20 and 100", f, got)
		}
	}

	if got := Smooth(50, 50, 0.4); got != 50 {
		t.Errorf("equal inputs should stay equal, got %f", got)
	}
}

func TestSmooth_ClampsFactor(t *testing.T) {
	if got := Smooth(100, 20, 2); got != 100 {
		t.Errorf("factor above 1 should behave like 1, got %f", got)
	}
	if got := Smooth(100, 20, -1); got != 20 {
		t.Errorf("factor below 0 should behave like 0, got %f", got)
	}
}

func TestIsFinite(t *testing.T) {
	if !IsFinite(1.5) {
		t.Error("1.5 should be finite")
	}
	if IsFinite(math.NaN()) {
		t.Error("NaN should not be finite")
	}
	if IsFinite(math.Inf(1)) || IsFinite(math.Inf(-1)) {
		t.Error("Inf should not be finite")
	}
}
