package app

import (
	"fmt"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathdrill/internal/router"
	"github.com/abhisek/mathdrill/internal/screens/drill"
	"github.com/abhisek/mathdrill/internal/trainer"
)

func newTestModel() AppModel {
	m := newAppModel(Options{Session: trainer.NewSession()})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return updated.(AppModel)
}

func viewString(t *testing.T, m AppModel) string {
	t.Helper()
	s, ok := m.View().Content.(fmt.Stringer)
	if !ok {
		t.Fatal("expected string content")
	}
	return s.String()
}

func TestApp_ViewRendersHome(t *testing.T) {
	m := newTestModel()
	content := viewString(t, m)
	if !strings.Contains(content, "Home") {
		t.Error("expected home title in header")
	}
	if !strings.Contains(content, "PRACTICE") {
		t.Error("expected menu in view")
	}
}

func TestApp_SplashReplacedByHome(t *testing.T) {
	m := newAppModel(Options{Session: trainer.NewSession(), Splash: true})
	if m.router.Active().Title() != "" {
		t.Fatal("expected the splash first")
	}
	if m.Init() == nil {
		t.Error("expected the splash to start ticking")
	}

	_, cmd := m.Update(tea.KeyPressMsg{Code: ' ', Text: " "})
	if cmd == nil {
		t.Fatal("expected a command on keypress")
	}
	m.Update(cmd())
	if got := m.router.Active().Title(); got != "Home" {
		t.Errorf("active title = %q, want Home", got)
	}
	if m.router.Depth() != 1 {
		t.Errorf("expected home to replace the splash, depth %d", m.router.Depth())
	}
}

func TestApp_TooSmall(t *testing.T) {
	m := newAppModel(Options{Session: trainer.NewSession()})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 20, Height: 5})
	content := viewString(t, updated.(AppModel))
	if strings.Contains(content, "PRACTICE") {
		t.Error("expected the size message instead of the menu")
	}
}

func TestApp_CtrlCQuits(t *testing.T) {
	m := newTestModel()
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected QuitMsg")
	}
}

func TestApp_StatusFallsBackToTally(t *testing.T) {
	m := newTestModel()
	if got := m.status(m.router.Active()); got != "" {
		t.Errorf("status with no answers = %q, want empty", got)
	}

	m.session.Tally.Asked = 2
	m.session.Tally.ScoreSum = 1.5
	if got := m.status(m.router.Active()); got != "2 answered  75%" {
		t.Errorf("status = %q", got)
	}
}

func TestApp_DrillStatusAndHints(t *testing.T) {
	m := newTestModel()
	m.Update(router.PushScreenMsg{Screen: drill.New(m.session)})
	if m.router.Depth() != 2 {
		t.Fatalf("expected drill on top, depth %d", m.router.Depth())
	}
	if got := m.status(m.router.Active()); got != "Q 1" {
		t.Errorf("drill status = %q, want %q", got, "Q 1")
	}
	hints := m.footerHints(m.router.Active())
	if last := hints[len(hints)-1]; last.Key != "Ctrl+C" {
		t.Errorf("expected quit hint last, got %q", last.Key)
	}

	// esc reaches the drill instead of popping it.
	m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if m.router.Depth() != 2 {
		t.Error("esc should be handled by the drill")
	}
}
