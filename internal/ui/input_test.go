package ui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestKeyToDirection(t *testing.T) {
	tests := []struct {
		key  tcell.Key
		rune rune
		want Direction
	}{
		{tcell.KeyUp, 0, DirUp},
		{tcell.KeyDown, 0, DirDown},
		{tcell.KeyRune, 'w', DirUp},
		{tcell.KeyRune, 'W', DirUp},
		{tcell.KeyRune, 's', DirDown},
		{tcell.KeyRune, 'S', DirDown},
		{tcell.KeyRune, 'x', DirNone},
		{tcell.KeyEnter, 0, DirNone},
	}

	for _, tt := range tests {
		got := KeyToDirection(tt.key, tt.rune)
		if got != tt.want {
			t.Errorf("KeyToDirection(%v, %c) = %v, want %v", tt.key, tt.rune, got, tt.want)
		}
	}
}

func TestIsQuitKey(t *testing.T) {
	if !IsQuitKey(tcell.KeyRune, 'q') {
		t.Error("'q' should be quit key")
	}
	if !IsQuitKey(tcell.KeyRune, 'Q') {
		t.Error("'Q' should be quit key")
	}
	if !IsQuitKey(tcell.KeyEscape, 0) {
		t.Error("Escape should be quit key")
	}
	if !IsQuitKey(tcell.KeyCtrlC, 0) {
		t.Error("Ctrl+C should be quit key")
	}
	if IsQuitKey(tcell.KeyRune, 'x') {
		t.Error("'x' should not be quit key")
	}
}
