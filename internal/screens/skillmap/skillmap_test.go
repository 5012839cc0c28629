package skillmap

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathdrill/internal/router"
	"github.com/abhisek/mathdrill/internal/skills"
	"github.com/abhisek/mathdrill/internal/trainer"
)

func press(s string) tea.KeyPressMsg {
	switch s {
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case "space":
		return tea.KeyPressMsg{Code: tea.KeySpace, Text: " "}
	}
	r := []rune(s)[0]
	return tea.KeyPressMsg{Code: r, Text: s}
}

func TestSkillMap_CycleEditsSession(t *testing.T) {
	sess := trainer.NewSession()
	s := New(sess)

	// Second tag is subtract.
	s.Update(press("down"))
	s.Update(press("space"))
	if !sess.Constraints.Positive.Has(skills.Subtract) {
		t.Fatal("expected subtract to be wanted after one press")
	}
	if !strings.Contains(s.View(80, 20), "The question will be a subtraction.") {
		t.Error("expected description of the wanted skill")
	}

	s.Update(press("space"))
	if !sess.Constraints.Negative.Has(skills.Subtract) {
		t.Fatal("expected subtract to be excluded after two presses")
	}

	s.Update(press("space"))
	if !sess.Constraints.Empty() {
		t.Error("expected no constraints after three presses")
	}
}

func TestSkillMap_Availability(t *testing.T) {
	sess := trainer.NewSession()
	s := New(sess)
	if !s.Available() {
		t.Fatal("expected questions without constraints")
	}

	// negative requires subtraction; excluding subtraction leaves nothing.
	sess.Constraints = trainer.Constraints{
		Positive: skills.Of(skills.Negative),
		Negative: skills.Of(skills.Subtract),
	}
	s = New(sess)
	if s.Available() {
		t.Error("expected no questions for negative without subtract")
	}
	if !strings.Contains(s.View(80, 20), "No question satisfies") {
		t.Error("expected unavailability message")
	}

	s.Update(press("c"))
	if !sess.Constraints.Empty() || !s.Available() {
		t.Error("expected clear to reset constraints")
	}
}

func TestSkillMap_Back(t *testing.T) {
	s := New(trainer.NewSession())
	_, cmd := s.Update(press("q"))
	if cmd == nil {
		t.Fatal("expected a command on q")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg on q")
	}
}
