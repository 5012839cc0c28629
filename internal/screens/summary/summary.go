// Package summary shows the results of a finished drill.
package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathdrill/internal/diagnosis"
	"github.com/abhisek/mathdrill/internal/router"
	"github.com/abhisek/mathdrill/internal/screen"
	"github.com/abhisek/mathdrill/internal/trainer"
	"github.com/abhisek/mathdrill/internal/ui/components"
	"github.com/abhisek/mathdrill/internal/ui/layout"
	"github.com/abhisek/mathdrill/internal/ui/theme"
)

// SummaryScreen displays the results of one drill.
type SummaryScreen struct {
	tally *trainer.Tally
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(tally *trainer.Tally) *SummaryScreen {
	return &SummaryScreen{tally: tally}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Drill Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Continue"},
		{Key: "Esc", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	t := s.tally
	if t == nil {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(layout.Centered(width, theme.Title, "Drill complete!"))
	b.WriteString("\n\n")

	stats := fmt.Sprintf("Questions: %d        Exactly right: %d        Mean score: %.0f%%",
		t.Asked, t.Perfect, t.Mean()*100)
	b.WriteString(layout.Centered(width, theme.Body, stats))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	b.WriteString(layout.Centered(width, theme.Subtitle, "Mistakes"))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	if len(t.Misses) == 0 {
		b.WriteString(layout.Centered(width, theme.Correct, "None. Well done!"))
		return b.String()
	}

	// Share of questions with a mistake in each dimension.
	var bars []string
	for _, d := range diagnosis.AllDimensions() {
		n := t.Misses[d]
		if n == 0 {
			continue
		}
		bar := components.NewProgressBar(fmt.Sprintf("%-9s %d", d, n), float64(n)/float64(t.Asked), false, 48)
		bar.LabelWidth = 12
		bar.Fill = theme.Error
		bars = append(bars, bar.View())
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(bars, "\n")))
	return b.String()
}
