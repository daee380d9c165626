package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tetris2048/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(20, 3)
	s.DrawText(0, 0, "Score 12")
	s.DrawTextColor(2, 1, "2048", core.ColorGold)
	s.DrawTextColor(8, 1, "16", core.ColorBrightRed)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")

	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	for _, want := range []string{"Score 12", "2048", "16"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 20 {
			t.Errorf("line %d width = %d, want 20", i, w)
		}
	}
}

func TestStyleForEveryColor(t *testing.T) {
	for c := core.ColorDefault; c <= core.ColorGold; c++ {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("no style for color %d", c)
		}
	}
	// Unknown colors fall back to the default style.
	if got := styleFor(core.Color(200)).Render("x"); got != colorStyles[core.ColorDefault].Render("x") {
		t.Errorf("unknown color rendered %q", got)
	}
}

func TestTickInterval(t *testing.T) {
	if got, want := tickInterval(0), tickInterval(defaultTickRate); got != want {
		t.Errorf("tickInterval(0) = %v, want %v", got, want)
	}
	if tickInterval(30) <= tickInterval(60) {
		t.Error("lower rate should tick less often")
	}
}
