package trainer

import (
	"bytes"
	"context"
	"io"
	"math/rand/v2"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/abhisek/mathdrill/internal/problem"
	"github.com/abhisek/mathdrill/internal/problemgen"
	"github.com/abhisek/mathdrill/internal/skills"
	"github.com/abhisek/mathdrill/internal/store"
)

func newTestTrainer(t *testing.T, input string, opts ...Option) (*Trainer, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	gen := problemgen.New(problemgen.DefaultConfig(),
		problemgen.WithRand(rand.New(rand.NewPCG(3, 5))),
		problemgen.WithLogger(zaptest.NewLogger(t)))
	base := []Option{WithGenerator(gen), WithLogger(zaptest.NewLogger(t))}
	return New(strings.NewReader(input), &out, append(base, opts...)...), &out
}

func TestAskManual_Correct(t *testing.T) {
	tr, out := newTestTrainer(t, "5\n")

	res, err := tr.AskManual(context.Background(), 2, "+", 3)
	require.NoError(t, err)
	require.NotNil(t, res)

	assert.True(t, res.Perfect())
	assert.Equal(t, 1.0, res.Overall)
	assert.Contains(t, out.String(), "Question: 2 + 3 = ?")
	assert.Contains(t, out.String(), "Score in units: 2 out of 2 (100%)")
	assert.Contains(t, out.String(), "Score in operand: 2 out of 2 (100%)")
	assert.NotContains(t, out.String(), "Score in sign")
	assert.Contains(t, out.String(), "Correct!")
}

func TestAskManual_WrongSign(t *testing.T) {
	tr, out := newTestTrainer(t, "-7\n")

	res, err := tr.AskManual(context.Background(), 12, "-", 5)
	require.NoError(t, err)

	assert.False(t, res.Perfect())
	assert.Less(t, res.Overall, 1.0)
	assert.Contains(t, out.String(), "Score in sign: 0 out of 1 (0%)")
	assert.Contains(t, out.String(), "The sign was wrong.")
}

func TestAskManual_RepromptsOnBadInput(t *testing.T) {
	tr, out := newTestTrainer(t, "seven\n\n7\n")

	res, err := tr.AskManual(context.Background(), 12, "-", 5)
	require.NoError(t, err)

	assert.Equal(t, 7, res.Given.Answer)
	assert.Equal(t, 2, strings.Count(out.String(), "Please enter a whole number."))
}

func TestCheck(t *testing.T) {
	tr, out := newTestTrainer(t, "")

	res, err := tr.Check(context.Background(), 9, "+", 3, problem.Answer{Answer: 2})
	require.NoError(t, err)

	assert.Equal(t, 12, res.Correct.Answer)
	assert.Contains(t, out.String(), "Answer: 2")
	assert.Contains(t, out.String(), "Score in tens: 0 out of 2 (0%)")
	assert.Equal(t, 1, tr.Session().Tally.Asked)

	_, err = tr.Check(context.Background(), 9, "/", 3, problem.Answer{Answer: 3})
	assert.ErrorIs(t, err, problem.ErrUnsupportedOperator)
}

func TestAskManual_EOF(t *testing.T) {
	tr, _ := newTestTrainer(t, "")

	_, err := tr.AskManual(context.Background(), 1, "+", 1)
	assert.ErrorIs(t, err, io.EOF)
}

func TestAskManual_UnsupportedOperator(t *testing.T) {
	tr, _ := newTestTrainer(t, "2\n")

	_, err := tr.AskManual(context.Background(), 1, "*", 2)
	assert.ErrorIs(t, err, problem.ErrUnsupportedOperator)
}

func TestAsk_NoQuestionAvailable(t *testing.T) {
	c := Constraints{Positive: skills.Of(skills.TwoDigit), Negative: skills.Of(skills.TwoDigit)}
	tr, out := newTestTrainer(t, "1\n", WithConstraints(c))

	res, err := tr.Ask(context.Background())
	require.NoError(t, err)
	assert.Nil(t, res)
	assert.Contains(t, out.String(), "No questions available.")
}

func TestAsk_RespectsConstraints(t *testing.T) {
	c := Constraints{Positive: skills.Of(skills.Subtract), Negative: skills.Of(skills.Negative)}
	tr, _ := newTestTrainer(t, "0\n", WithConstraints(c))

	res, err := tr.Ask(context.Background())
	require.NoError(t, err)
	require.NotNil(t, res)

	assert.Equal(t, problem.Subtract, res.Question.Operator)
	assert.True(t, res.Skills.Has(skills.Subtract))
	assert.False(t, res.Skills.Has(skills.Negative))
}

func TestRun_RecordsAttempts(t *testing.T) {
	st, err := store.Open(filepath.Join(t.TempDir(), "trainer.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	tr, out := newTestTrainer(t, "0\n0\n0\n0\n", WithRecorder(st.AttemptRepo()), WithSessionID("s-1"))

	tally, err := tr.Run(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, 3, tally.Asked)
	assert.Contains(t, out.String(), "Answered 3")

	attempts, err := st.AttemptRepo().RecentAttempts(context.Background(), store.QueryOpts{SessionID: "s-1"})
	require.NoError(t, err)
	require.Len(t, attempts, 3)
	for _, a := range attempts {
		assert.Equal(t, 0, a.Answer.Answer)
		assert.Equal(t, "s-1", a.SessionID)
	}
}

func TestRun_StopsAtEOF(t *testing.T) {
	tr, out := newTestTrainer(t, "1\n2\n")

	tally, err := tr.Run(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, 2, tally.Asked)
	assert.Contains(t, out.String(), "Answered 2")
}

func TestRun_Cancelled(t *testing.T) {
	tr, _ := newTestTrainer(t, "1\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	tally, err := tr.Run(ctx, 0)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, tally.Asked)
}

func TestDescribeSkills(t *testing.T) {
	tr, out := newTestTrainer(t, "")
	require.NoError(t, tr.DescribeSkills())
	assert.Contains(t, out.String(), "Asking questions without any constraints.")

	c := Constraints{Positive: skills.Of(skills.Subtract), Negative: skills.Of(skills.Negative)}
	tr, out = newTestTrainer(t, "", WithConstraints(c))
	require.NoError(t, tr.DescribeSkills())
	assert.Contains(t, out.String(), "following constraints:")
	assert.Contains(t, out.String(), " - The question will be a subtraction.")
	assert.Contains(t, out.String(), " - The result will not be negative.")
}

func TestSessionID(t *testing.T) {
	tr, _ := newTestTrainer(t, "")
	assert.Len(t, tr.SessionID(), 36)

	tr, _ = newTestTrainer(t, "", WithSessionID("fixed"))
	assert.Equal(t, "fixed", tr.SessionID())
}
