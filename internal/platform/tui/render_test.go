package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/quantum-jumper/internal/core"
)

func TestEveryColorHasStyle(t *testing.T) {
	for c := core.ColorDefault; c <= core.ColorDim; c++ {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("color %d has no style", c)
		}
	}
}

func TestRenderScreenRows(t *testing.T) {
	s := core.NewScreen(12, 2)
	s.DrawTextColor(0, 0, "L1", core.ColorBrightWhite)
	s.DrawTextColor(3, 0, "██", core.ColorMagenta)
	s.DrawTextColor(0, 1, "░░", core.ColorDim)

	out := RenderScreen(s)
	rows := strings.Split(out, "\n")
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	if !strings.Contains(rows[0], "L1") || !strings.Contains(rows[0], "██") {
		t.Errorf("row 0 = %q", rows[0])
	}
	if !strings.Contains(rows[1], "░░") {
		t.Errorf("row 1 = %q", rows[1])
	}
}
