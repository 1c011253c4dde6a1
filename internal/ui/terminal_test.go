package ui

import (
	"strings"
	"testing"
)

func TestTerminal_RenderAndMessage(t *testing.T) {
	screen, sim := newSimScreen(t, 80, 26)
	term := NewTerminal(screen)

	cols, rows := term.CourtCells()
	if cols != 80 || rows != 24 {
		t.Errorf("expected 80x24 court cells, got %dx%d", cols, rows)
	}

	term.Render(View{State: newState(), Status: "keyboard"})
	if row := rowText(sim, 25, 80); !strings.HasPrefix(row, "keyboard") {
		t.Errorf("expected status row, got %q", row)
	}

	term.Message("HANDPONG", "Opening camera 1...", "")
	if row := rowText(sim, 13, 80); !strings.Contains(row, "Opening camera 1...") {
		t.Errorf("expected message row, got %q", row)
	}

	term.Close()
	// A second Close must not panic.
	term.Close()
}
