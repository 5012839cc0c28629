// Package skillmap lets the learner choose which skills random questions
// must and must not exercise.
package skillmap

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathdrill/internal/router"
	"github.com/abhisek/mathdrill/internal/screen"
	"github.com/abhisek/mathdrill/internal/skills"
	"github.com/abhisek/mathdrill/internal/trainer"
	"github.com/abhisek/mathdrill/internal/ui/layout"
	"github.com/abhisek/mathdrill/internal/ui/theme"
)

// SkillMapScreen edits the skill constraints of a session in place.
type SkillMapScreen struct {
	session   *trainer.Session
	tags      []skills.Tag
	cursor    int
	available bool
}

var _ screen.Screen = (*SkillMapScreen)(nil)
var _ screen.KeyHintProvider = (*SkillMapScreen)(nil)

// New creates a new SkillMapScreen editing session.Constraints.
func New(session *trainer.Session) *SkillMapScreen {
	s := &SkillMapScreen{
		session: session,
		tags:    skills.AllTags(),
	}
	s.checkAvailable()
	return s
}

func (s *SkillMapScreen) Init() tea.Cmd {
	return nil
}

func (s *SkillMapScreen) Title() string {
	return "Skills"
}

func (s *SkillMapScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Space", Description: "Any / With / Without"},
		{Key: "C", Description: "Clear"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SkillMapScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(s.tags)-1 {
			s.cursor++
		}
	case "space", "enter":
		s.session.Constraints = s.session.Constraints.Cycle(s.tags[s.cursor])
		s.checkAvailable()
	case "c":
		s.session.Constraints = trainer.Constraints{}
		s.checkAvailable()
	case "esc", "q":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return s, nil
}

func (s *SkillMapScreen) View(width, height int) string {
	c := s.session.Constraints

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(layout.Centered(width, theme.Title, "Skill constraints"))
	b.WriteString("\n\n")

	var rows []string
	for i, tag := range s.tags {
		rows = append(rows, s.renderRow(tag, c, i == s.cursor))
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(rows, "\n")))
	b.WriteString("\n\n")

	// Description of the highlighted skill in its current state.
	tag := s.tags[s.cursor]
	desc := "Questions may or may not exercise this skill."
	switch {
	case c.Positive.Has(tag):
		desc, _ = skills.Describe(tag, true)
	case c.Negative.Has(tag):
		desc, _ = skills.Describe(tag, false)
	}
	b.WriteString(layout.Centered(width, theme.Hint, desc))
	b.WriteString("\n\n")

	if s.available {
		b.WriteString(layout.Centered(width, theme.Correct, "Questions available"))
	} else {
		b.WriteString(layout.Centered(width, theme.Incorrect, "No question satisfies these constraints"))
	}
	return b.String()
}

// Available reports whether the last check found a question.
func (s *SkillMapScreen) Available() bool {
	return s.available
}

func (s *SkillMapScreen) renderRow(tag skills.Tag, c trainer.Constraints, selected bool) string {
	badge := lipgloss.NewStyle().Foreground(theme.TextDim).Render("[ any     ]")
	switch {
	case c.Positive.Has(tag):
		badge = lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render("[ with    ]")
	case c.Negative.Has(tag):
		badge = lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render("[ without ]")
	}

	prefix := "   "
	style := theme.Unselected
	if selected {
		prefix = " ▸ "
		style = theme.Selected
	}
	label := fmt.Sprintf("%s%-18s %-12s", prefix, skills.DisplayName(tag), tag)
	return style.Render(label) + " " + badge
}

// checkAvailable samples once under the current constraints.
func (s *SkillMapScreen) checkAvailable() {
	_, ok, err := s.session.Next()
	s.available = ok && err == nil
}
