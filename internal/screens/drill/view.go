package drill

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathdrill/internal/ui/components"
	"github.com/abhisek/mathdrill/internal/ui/layout"
	"github.com/abhisek/mathdrill/internal/ui/theme"
)

const barWidth = 40

func renderLoading(width int) string {
	return layout.Centered(width, theme.Hint, "\n\n  Picking a question...")
}

func renderEmpty(width int) string {
	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(layout.Centered(width, theme.Body.Bold(true), "No questions available."))
	b.WriteString("\n\n")
	b.WriteString(layout.Centered(width, theme.Hint,
		"No question in the number range satisfies the skill constraints.\nChange them from the Skills screen."))
	return b.String()
}

func renderError(width int, msg string) string {
	return layout.Centered(width, lipgloss.NewStyle().Foreground(theme.Error),
		fmt.Sprintf("\n\nError: %s", msg))
}

// renderQuestion renders the active question and the answer input.
func (s *DrillScreen) renderQuestion(width int) string {
	var b strings.Builder
	b.WriteString(s.renderSkillLine(width))
	b.WriteString("\n\n")

	b.WriteString(layout.Centered(width, theme.Body.Bold(true),
		fmt.Sprintf("%s = ?", s.current.Question)))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, "Answer: "+s.input.View()))
	if s.hint != "" {
		b.WriteString("\n\n")
		b.WriteString(layout.Centered(width, theme.Hint, s.hint))
	}
	return b.String()
}

// renderFeedback renders the graded breakdown of the last answer.
func (s *DrillScreen) renderFeedback(width int) string {
	res := s.result
	var b strings.Builder
	b.WriteString(s.renderSkillLine(width))
	b.WriteString("\n\n")

	b.WriteString(layout.Centered(width, theme.Body.Bold(true),
		fmt.Sprintf("%s = %d", res.Question, res.Correct.Answer)))
	b.WriteString("\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, "Answer: "+s.input.View()))
	b.WriteString("\n\n")

	var bars []string
	for _, d := range res.Breakdown.Dimensions() {
		e := res.Breakdown[d]
		bar := components.NewProgressBar(string(d), e.Score, true, barWidth)
		bar.LabelWidth = 9
		bar.Fill = theme.ScoreColor(e.Score)
		bars = append(bars, bar.View())
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(bars, "\n")))
	b.WriteString("\n\n")

	style := theme.Incorrect
	if res.Perfect() {
		style = theme.Correct
	}
	for _, msg := range res.Feedback {
		b.WriteString(layout.Centered(width, style, msg))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(layout.Centered(width, lipgloss.NewStyle().Foreground(theme.ScoreColor(res.Overall)).Bold(true),
		fmt.Sprintf("Score: %.0f%%", res.Overall*100)))
	return b.String()
}

// renderSkillLine renders the skill tags of the current question above a
// divider.
func (s *DrillScreen) renderSkillLine(width int) string {
	tags := s.current.Skills.String()
	if tags == "" {
		tags = "none"
	}
	line := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render("  Skills: " + tags)
	divider := lipgloss.NewStyle().
		Foreground(theme.Border).
		Render(strings.Repeat("─", max(width-4, 0)))
	return line + "\n" + divider
}
