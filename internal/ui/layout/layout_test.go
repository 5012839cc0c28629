package layout

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
)

func TestIsTooSmall(t *testing.T) {
	if !IsTooSmall(MinWidth-1, MinHeight) {
		t.Error("expected narrow terminal to be too small")
	}
	if !IsTooSmall(MinWidth, MinHeight-1) {
		t.Error("expected short terminal to be too small")
	}
	if IsTooSmall(MinWidth, MinHeight) {
		t.Error("expected minimum size to fit")
	}
}

func TestContentHeight(t *testing.T) {
	if got := ContentHeight(30); got != 24 {
		t.Errorf("ContentHeight(30) = %d, want 24", got)
	}
	if got := ContentHeight(2); got != 0 {
		t.Errorf("ContentHeight(2) = %d, want 0", got)
	}
}

func TestRenderHeader(t *testing.T) {
	header := RenderHeader("Drill", "3 answered", 80)
	for _, want := range []string{"Mathdrill", "Drill", "3 answered"} {
		if !strings.Contains(header, want) {
			t.Errorf("header missing %q", want)
		}
	}
}

func TestRenderFrame(t *testing.T) {
	header := RenderHeader("Home", "", 80)
	footer := RenderFooter([]KeyHint{{Key: "Esc", Description: "Back"}}, 80)
	frame := RenderFrame(header, "body", footer, 80, 24)

	if h := lipgloss.Height(frame); h != 24 {
		t.Errorf("frame height = %d, want 24", h)
	}
	if !strings.Contains(frame, "body") || !strings.Contains(frame, "Back") {
		t.Error("frame missing content or footer")
	}
}
