// Package trainer runs arithmetic drills on a console and grades answers.
package trainer

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/mathdrill/internal/problem"
	"github.com/abhisek/mathdrill/internal/problemgen"
	"github.com/abhisek/mathdrill/internal/store"
	"github.com/abhisek/mathdrill/internal/ui/theme"
)

// Trainer asks questions on out, reads answers from in and prints a graded
// breakdown for each one.
type Trainer struct {
	in   *bufio.Scanner
	out  io.Writer
	sess *Session
}

// Option configures a Trainer.
type Option func(*Session)

// WithGenerator sets the question generator.
func WithGenerator(g *problemgen.Generator) Option {
	return func(s *Session) { s.Generator = g }
}

// WithSettings sets the operand range for random questions.
func WithSettings(st problem.Settings) Option {
	return func(s *Session) { s.Settings = st }
}

// WithConstraints sets the skill constraints for random questions.
func WithConstraints(c Constraints) Option {
	return func(s *Session) { s.Constraints = c }
}

// WithRecorder stores every graded attempt in repo.
func WithRecorder(repo store.AttemptRepo) Option {
	return func(s *Session) { s.Recorder = repo }
}

// WithSessionID overrides the generated session ID.
func WithSessionID(id string) Option {
	return func(s *Session) { s.ID = id }
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Session) { s.Logger = l }
}

// New creates a Trainer reading answers from in and writing to out.
func New(in io.Reader, out io.Writer, opts ...Option) *Trainer {
	return NewWithSession(in, out, NewSession(), opts...)
}

// NewWithSession creates a Trainer over an existing session. Options are
// applied to sess.
func NewWithSession(in io.Reader, out io.Writer, sess *Session, opts ...Option) *Trainer {
	for _, opt := range opts {
		opt(sess)
	}
	return &Trainer{
		in:   bufio.NewScanner(in),
		out:  out,
		sess: sess,
	}
}

// Session returns the trainer's session.
func (t *Trainer) Session() *Session {
	return t.sess
}

// SessionID returns the ID stamped on recorded attempts.
func (t *Trainer) SessionID() string {
	return t.sess.ID
}

// DescribeSkills prints the active constraints.
func (t *Trainer) DescribeSkills() error {
	lines, err := t.sess.Constraints.Describe()
	if err != nil {
		return err
	}
	for i, line := range lines {
		if i == 0 {
			line = theme.Title.UnsetAlign().Render(line)
		}
		t.println(line)
	}
	return nil
}

// AskManual asks a question given by the caller.
func (t *Trainer) AskManual(ctx context.Context, first int, op string, second int) (*Result, error) {
	g, err := problemgen.Manual(first, op, second)
	if err != nil {
		return nil, err
	}
	return t.ask(ctx, g)
}

// Check grades an answer supplied up front, without reading input.
func (t *Trainer) Check(ctx context.Context, first int, op string, second int, given problem.Answer) (*Result, error) {
	g, err := problemgen.Manual(first, op, second)
	if err != nil {
		return nil, err
	}
	t.println(theme.Body.Bold(true).Render(fmt.Sprintf("Question: %s = ?", g.Question)))
	t.println(fmt.Sprintf("Answer: %d", given.Answer))

	res, err := t.sess.Submit(ctx, g, given)
	if err != nil {
		return nil, err
	}
	t.report(res)
	return res, nil
}

// Ask asks one random question under the trainer's constraints. It returns
// nil without error when no question is available.
func (t *Trainer) Ask(ctx context.Context) (*Result, error) {
	g, ok, err := t.sess.Next()
	if err != nil {
		return nil, err
	}
	if !ok {
		t.println(theme.Hint.Render("No questions available."))
		return nil, nil
	}
	return t.ask(ctx, g)
}

// Run asks up to count random questions, or until input ends when count
// is zero, and prints a summary of the session tally.
func (t *Trainer) Run(ctx context.Context, count int) (*Tally, error) {
	tally := &t.sess.Tally
	for asked := 0; count <= 0 || asked < count; asked++ {
		if err := ctx.Err(); err != nil {
			return tally, err
		}
		res, err := t.Ask(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return tally, err
		}
		if res == nil {
			break
		}
		t.println()
	}
	t.printTally(tally)
	return tally, nil
}

func (t *Trainer) ask(ctx context.Context, g problemgen.Generated) (*Result, error) {
	t.println(theme.Body.Bold(true).Render(fmt.Sprintf("Question: %s = ?", g.Question)))

	given, err := t.readAnswer()
	if err != nil {
		return nil, err
	}
	res, err := t.sess.Submit(ctx, g, given)
	if err != nil {
		return nil, err
	}
	t.report(res)
	return res, nil
}

// readAnswer prompts until a whole number is entered. It returns io.EOF
// when input ends.
func (t *Trainer) readAnswer() (problem.Answer, error) {
	for {
		t.print("Answer: ")
		if !t.in.Scan() {
			if err := t.in.Err(); err != nil {
				return problem.Answer{}, fmt.Errorf("read answer: %w", err)
			}
			t.println()
			return problem.Answer{}, io.EOF
		}
		text := strings.TrimSpace(t.in.Text())
		n, err := strconv.Atoi(text)
		if err != nil {
			t.println(theme.Hint.Render("Please enter a whole number."))
			continue
		}
		return problem.Answer{Answer: n}, nil
	}
}

func (t *Trainer) report(res *Result) {
	for _, d := range res.Breakdown.Dimensions() {
		e := res.Breakdown[d]
		t.println(fmt.Sprintf("Score in %s: %s out of %s (%.0f%%)",
			d, formatPoints(e.Points()), formatPoints(e.Weight), e.Score*100))
	}
	style := theme.Incorrect
	if res.Perfect() {
		style = theme.Correct
	}
	for _, msg := range res.Feedback {
		t.println(style.Render(msg))
	}
}

func (t *Trainer) printTally(tally *Tally) {
	if tally.Asked == 0 {
		return
	}
	t.println(theme.Subtitle.UnsetAlign().Render(fmt.Sprintf("Answered %d, %d exactly right, mean score %.0f%%.",
		tally.Asked, tally.Perfect, tally.Mean()*100)))
}

func (t *Trainer) print(s string) {
	lipgloss.Fprint(t.out, s)
}

func (t *Trainer) println(v ...any) {
	lipgloss.Fprintln(t.out, v...)
}

func formatPoints(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
