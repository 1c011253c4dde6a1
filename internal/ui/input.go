package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/diegok/handpong/internal/game"
)

// Direction aliases the game's paddle direction so callers of Poll need not
// import game.
type Direction = game.Direction

const (
	DirNone = game.DirNone
	DirUp   = game.DirUp
	DirDown = game.DirDown
)

// KeyToDirection converts a key event to a movement direction
// For Pong, only up/down movement is allowed
func KeyToDirection(key tcell.Key, r rune) Direction {
	switch key {
	case tcell.KeyUp:
		return DirUp
	case tcell.KeyDown:
		return DirDown
	case tcell.KeyRune:
		switch r {
		case 'w', 'W':
			return DirUp
		case 's', 'S':
			return DirDown
		}
	}
	return DirNone
}

// IsQuitKey returns true if the key should quit the application
func IsQuitKey(key tcell.Key, r rune) bool {
	if key == tcell.KeyEscape || key == tcell.KeyCtrlC {
		return true
	}
	if key == tcell.KeyRune && (r == 'q' || r == 'Q') {
		return true
	}
	return false
}
