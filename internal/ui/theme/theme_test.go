package theme

import (
	"image/color"
	"testing"
)

func TestScoreColor(t *testing.T) {
	tests := []struct {
		score float64
		want  color.Color
	}{
		{1, Success},
		{0.5, Accent},
		{0, Error},
	}
	for _, tt := range tests {
		if got := ScoreColor(tt.score); got != tt.want {
			t.Errorf("ScoreColor(%v) = %v, want %v", tt.score, got, tt.want)
		}
	}
}
