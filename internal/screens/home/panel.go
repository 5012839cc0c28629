package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathdrill/internal/screens/welcome"
	"github.com/abhisek/mathdrill/internal/trainer"
	"github.com/abhisek/mathdrill/internal/ui/theme"
)

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 22

// contentWidth returns the uniform inner width shared by all sections.
func contentWidth(frameWidth int) int {
	// Frame border (2) + inner padding (4).
	w := frameWidth - 6
	if w > 60 {
		w = 60
	}
	if w < 20 {
		w = 20
	}
	return w
}

func renderTitle(cw int, compact bool) string {
	bannerWidth := cw
	if compact {
		bannerWidth = 0
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(welcome.RenderBanner(bannerWidth))
}

// renderStatsBar shows the running session tally and active constraints.
func renderStatsBar(t trainer.Tally, c trainer.Constraints, cw int) string {
	asked := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	mean := lipgloss.NewStyle().Foreground(theme.ScoreColor(t.Mean())).Bold(true)
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)

	stats := fmt.Sprintf("%s  %s  %s",
		asked.Render(fmt.Sprintf("%d ANSWERED", t.Asked)),
		asked.Render(fmt.Sprintf("✓ %d", t.Perfect)),
		mean.Render(fmt.Sprintf("%.0f%%", t.Mean()*100)),
	)
	if t.Asked == 0 {
		stats = dim.Render("NO ANSWERS YET")
	}
	stats += "\n" + dim.Render(constraintText(c))

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

func constraintText(c trainer.Constraints) string {
	if c.Empty() {
		return "any skills"
	}
	var parts []string
	if !c.Positive.Empty() {
		parts = append(parts, "with "+strings.Join(c.Positive.Strings(), ", "))
	}
	if !c.Negative.Empty() {
		parts = append(parts, "without "+strings.Join(c.Negative.Strings(), ", "))
	}
	return strings.Join(parts, "; ")
}

// renderButtons renders each menu item as a fixed-width button.
func renderButtons(labels []string, selected int, disabled map[int]bool, cw int) string {
	base := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)

	selectedBtn := base.
		Bold(true).
		Foreground(theme.BgCard).
		Background(theme.Accent).
		BorderForeground(theme.Accent)
	normalBtn := base.Foreground(theme.Text)
	disabledBtn := base.Foreground(theme.TextDim)

	var buttons []string
	for i, label := range labels {
		switch {
		case disabled[i]:
			buttons = append(buttons, disabledBtn.Render(label))
		case i == selected:
			buttons = append(buttons, selectedBtn.Render("▸ "+label))
		default:
			buttons = append(buttons, normalBtn.Render(label))
		}
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(buttons, "\n"))
}

// renderFrame wraps content in a double border centered in the area.
func renderFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width - 2).
		Height(height - 2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
