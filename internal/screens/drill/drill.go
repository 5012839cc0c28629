// Package drill implements the question and answer screen.
package drill

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathdrill/internal/problem"
	"github.com/abhisek/mathdrill/internal/problemgen"
	"github.com/abhisek/mathdrill/internal/router"
	"github.com/abhisek/mathdrill/internal/screen"
	"github.com/abhisek/mathdrill/internal/screens/summary"
	"github.com/abhisek/mathdrill/internal/trainer"
	"github.com/abhisek/mathdrill/internal/ui/components"
	"github.com/abhisek/mathdrill/internal/ui/layout"
)

type phase int

const (
	phaseLoading phase = iota
	phaseAsking
	phaseFeedback
	phaseEmpty
)

// DrillScreen asks random questions from a session until the learner
// leaves, showing a graded breakdown after each answer.
type DrillScreen struct {
	session *trainer.Session
	phase   phase
	current problemgen.Generated
	result  *trainer.Result
	tally   trainer.Tally
	input   components.TextInput
	hint    string
	errMsg  string
}

var _ screen.Screen = (*DrillScreen)(nil)
var _ screen.KeyHintProvider = (*DrillScreen)(nil)
var _ screen.StatusProvider = (*DrillScreen)(nil)

// New creates a DrillScreen drawing questions from session.
func New(session *trainer.Session) *DrillScreen {
	return &DrillScreen{
		session: session,
		input:   components.NewTextInput("Type your answer...", true, 8),
	}
}

func (s *DrillScreen) Init() tea.Cmd {
	return tea.Batch(s.nextQuestion(), s.input.Init())
}

func (s *DrillScreen) Title() string {
	return "Drill"
}

func (s *DrillScreen) Status() string {
	if s.tally.Asked == 0 {
		return fmt.Sprintf("Q %d", s.tally.Asked+1)
	}
	return fmt.Sprintf("Q %d  %.0f%%", s.tally.Asked+1, s.tally.Mean()*100)
}

func (s *DrillScreen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseFeedback:
		return []layout.KeyHint{
			{Key: "any key", Description: "Next question"},
			{Key: "Esc", Description: "Finish"},
		}
	case phaseAsking:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Finish"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
		}
	}
}

func (s *DrillScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case questionReadyMsg:
		return s.handleQuestionReady(msg)

	case drillEndMsg:
		return s.handleEnd()

	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}

	if s.phase == phaseAsking {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *DrillScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, s.errMsg)
	}
	switch s.phase {
	case phaseLoading:
		return renderLoading(width)
	case phaseEmpty:
		return renderEmpty(width)
	case phaseFeedback:
		return s.renderFeedback(width)
	default:
		return s.renderQuestion(width)
	}
}

// nextQuestion samples the next question asynchronously.
func (s *DrillScreen) nextQuestion() tea.Cmd {
	sess := s.session
	return func() tea.Msg {
		g, ok, err := sess.Next()
		return questionReadyMsg{Generated: g, OK: ok, Err: err}
	}
}

func (s *DrillScreen) handleQuestionReady(msg questionReadyMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}
	if !msg.OK {
		s.phase = phaseEmpty
		return s, nil
	}
	s.current = msg.Generated
	s.result = nil
	s.hint = ""
	s.phase = phaseAsking
	return s, s.input.Reset()
}

func (s *DrillScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	if msg.String() == "esc" {
		return s, func() tea.Msg { return drillEndMsg{} }
	}

	switch s.phase {
	case phaseAsking:
		if msg.String() == "enter" {
			return s.submitAnswer()
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd

	case phaseFeedback:
		s.phase = phaseLoading
		return s, s.nextQuestion()

	case phaseEmpty:
		return s, func() tea.Msg { return drillEndMsg{} }
	}
	return s, nil
}

// submitAnswer grades and records the typed answer.
func (s *DrillScreen) submitAnswer() (screen.Screen, tea.Cmd) {
	if s.input.Value() == "" {
		return s, nil
	}
	n, err := s.input.NumericValue()
	if err != nil {
		s.hint = "Please enter a whole number."
		return s, nil
	}

	res, err := s.session.Submit(context.Background(), s.current, problem.Answer{Answer: n})
	if err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	s.tally.Add(res)
	s.result = res
	s.input.Model.Blur()
	s.input.Submit(res.Perfect())
	s.phase = phaseFeedback
	return s, nil
}

// handleEnd replaces the drill with its summary, or leaves when nothing
// was answered.
func (s *DrillScreen) handleEnd() (screen.Screen, tea.Cmd) {
	if s.tally.Asked == 0 {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	tally := s.tally
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: summary.New(&tally)}
	}
}
