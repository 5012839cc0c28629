package history

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathdrill/internal/diagnosis"
	"github.com/abhisek/mathdrill/internal/problem"
	"github.com/abhisek/mathdrill/internal/router"
	"github.com/abhisek/mathdrill/internal/skills"
	"github.com/abhisek/mathdrill/internal/store"
)

type fakeRepo struct {
	attempts []store.Attempt
	err      error
}

func (f *fakeRepo) AppendAttempt(context.Context, store.AttemptData) (int64, error) {
	return 0, errors.New("read only")
}

func (f *fakeRepo) RecentAttempts(context.Context, store.QueryOpts) ([]store.Attempt, error) {
	return f.attempts, f.err
}

func (f *fakeRepo) Summary(context.Context) (store.Summary, error) {
	return store.Summary{Attempts: len(f.attempts), Sessions: 1, MeanScore: 0.5}, f.err
}

func sampleAttempt() store.Attempt {
	return store.Attempt{
		ID: 1,
		AttemptData: store.AttemptData{
			SessionID: "s1",
			Timestamp: time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC),
			Question:  problem.Question{FirstOperand: 12, SecondOperand: 5, Operator: problem.Subtract},
			Answer:    problem.Answer{Answer: -7},
			Correct:   problem.Answer{Answer: 7},
			Skills:    skills.Of(skills.Subtract, skills.Underflow10),
			Judgment: diagnosis.Judgment{
				Sign:    diagnosis.Scored(0),
				Operand: diagnosis.Scored(1),
				Units:   diagnosis.Scored(1),
			},
			OverallScore: 0.5,
		},
	}
}

func load(t *testing.T, s *HistoryScreen) {
	t.Helper()
	cmd := s.Init()
	if cmd == nil {
		t.Fatal("expected a load command")
	}
	s.Update(cmd())
}

func TestHistory_ListsAttempts(t *testing.T) {
	s := New(&fakeRepo{attempts: []store.Attempt{sampleAttempt()}})
	if !strings.Contains(s.View(100, 30), "Loading") {
		t.Error("expected loading text before data arrives")
	}
	load(t, s)

	view := s.View(100, 30)
	if !strings.Contains(view, "12 - 5 = 7") {
		t.Errorf("expected question in view, got:\n%s", view)
	}
	if !strings.Contains(view, "1 answers in 1 sessions") {
		t.Error("expected summary line")
	}
	if strings.Contains(view, "sign 0") {
		t.Error("details should be collapsed by default")
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	view = s.View(100, 30)
	if !strings.Contains(view, "sign 0") || !strings.Contains(view, "units 1") {
		t.Errorf("expected judgment details after enter, got:\n%s", view)
	}
	if strings.Contains(view, "tens") {
		t.Error("not applicable dimensions should be hidden")
	}
}

func TestHistory_Empty(t *testing.T) {
	s := New(&fakeRepo{})
	load(t, s)
	if !strings.Contains(s.View(100, 30), "No answers recorded yet") {
		t.Error("expected empty message")
	}
}

func TestHistory_Error(t *testing.T) {
	s := New(&fakeRepo{err: errors.New("disk on fire")})
	load(t, s)
	if !strings.Contains(s.View(100, 30), "disk on fire") {
		t.Error("expected error in view")
	}
}

func TestHistory_EscPops(t *testing.T) {
	s := New(&fakeRepo{})
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected a command on esc")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg on esc")
	}
}
