package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathdrill/internal/diagnosis"
	"github.com/abhisek/mathdrill/internal/router"
	"github.com/abhisek/mathdrill/internal/screen"
	"github.com/abhisek/mathdrill/internal/store"
	"github.com/abhisek/mathdrill/internal/ui/layout"
	"github.com/abhisek/mathdrill/internal/ui/theme"
)

// recentLimit caps how many attempts the screen lists.
const recentLimit = 50

type historyLoadedMsg struct {
	Attempts []store.Attempt
	Summary  store.Summary
	Err      error
}

// HistoryScreen displays recorded attempts, newest first.
type HistoryScreen struct {
	attemptRepo store.AttemptRepo
	attempts    []store.Attempt
	summary     store.Summary
	selected    int
	expanded    map[int]bool
	loaded      bool
	errMsg      string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(attemptRepo store.AttemptRepo) *HistoryScreen {
	return &HistoryScreen{
		attemptRepo: attemptRepo,
		expanded:    make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		attempts, err := s.attemptRepo.RecentAttempts(ctx, store.QueryOpts{Limit: recentLimit})
		if err != nil {
			return historyLoadedMsg{Err: err}
		}
		summary, err := s.attemptRepo.Summary(ctx)
		if err != nil {
			return historyLoadedMsg{Err: err}
		}
		return historyLoadedMsg{Attempts: attempts, Summary: summary}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.attempts = msg.Attempts
			s.summary = msg.Summary
		}
		s.loaded = true
		return s, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.attempts)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.attempts) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No answers recorded yet. Start practicing!")
	}

	var b strings.Builder
	b.WriteString("\n")
	sum := s.summary
	b.WriteString(layout.Centered(width, theme.Subtitle,
		fmt.Sprintf("%d answers in %d sessions, %d exactly right, mean score %.0f%%",
			sum.Attempts, sum.Sessions, sum.Perfect, sum.MeanScore*100)))
	b.WriteString("\n\n")

	for i, a := range s.attempts {
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}
		line := fmt.Sprintf("%s%s  %-12s answered %-5d %3.0f%%",
			prefix, a.Timestamp.Local().Format("Jan 02 15:04"),
			fmt.Sprintf("%s = %d", a.Question, a.Correct.Answer),
			a.Answer.Answer, a.OverallScore*100)

		style := lipgloss.NewStyle().Foreground(theme.ScoreColor(a.OverallScore))
		if i == s.selected {
			style = style.Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, renderJudgment(a)))
			b.WriteString("\n")
		}
	}
	return b.String()
}

// renderJudgment lists the applicable dimension scores and skills of a.
func renderJudgment(a store.Attempt) string {
	var parts []string
	for _, d := range diagnosis.AllDimensions() {
		score := a.Judgment.Get(d)
		if !score.Applicable() {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s %s", d, score))
	}
	line := "    " + strings.Join(parts, "  ")
	if !a.Skills.Empty() {
		line += "  [" + strings.Join(a.Skills.Strings(), ", ") + "]"
	}
	return theme.Hint.Render(line)
}
