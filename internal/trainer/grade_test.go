package trainer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathdrill/internal/diagnosis"
	"github.com/abhisek/mathdrill/internal/problem"
	"github.com/abhisek/mathdrill/internal/problemgen"
	"github.com/abhisek/mathdrill/internal/skills"
)

func manual(t *testing.T, first int, op string, second int) problemgen.Generated {
	t.Helper()
	g, err := problemgen.Manual(first, op, second)
	require.NoError(t, err)
	return g
}

func TestGrade(t *testing.T) {
	g := manual(t, 12, "-", 5)

	res, err := Grade(g, problem.Answer{Answer: 7})
	require.NoError(t, err)
	assert.True(t, res.Perfect())
	assert.Equal(t, 1.0, res.Overall)
	assert.Equal(t, []string{"Correct!"}, res.Feedback)

	res, err = Grade(g, problem.Answer{Answer: -7})
	require.NoError(t, err)
	assert.False(t, res.Perfect())
	assert.InDelta(t, 4.0/6.0, res.Overall, 1e-12)
	assert.Contains(t, res.Feedback, "The sign was wrong.")
}

func TestResult_AttemptData(t *testing.T) {
	g := manual(t, 9, "+", 3)
	res, err := Grade(g, problem.Answer{Answer: 2})
	require.NoError(t, err)

	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	data := res.AttemptData("abc", at)
	assert.Equal(t, "abc", data.SessionID)
	assert.Equal(t, at, data.Timestamp)
	assert.Equal(t, 2, data.Answer.Answer)
	assert.Equal(t, 12, data.Correct.Answer)
	assert.True(t, data.Skills.Has(skills.Overflow10))
	assert.Equal(t, res.Overall, data.OverallScore)
}

func TestTally(t *testing.T) {
	var tally Tally
	assert.Equal(t, 0.0, tally.Mean())

	g := manual(t, 12, "-", 5)
	right, err := Grade(g, problem.Answer{Answer: 7})
	require.NoError(t, err)
	wrong, err := Grade(g, problem.Answer{Answer: -7})
	require.NoError(t, err)

	tally.Add(right)
	tally.Add(wrong)

	assert.Equal(t, 2, tally.Asked)
	assert.Equal(t, 1, tally.Perfect)
	assert.InDelta(t, (1+4.0/6.0)/2, tally.Mean(), 1e-12)
	assert.Equal(t, 1, tally.Misses[diagnosis.DimensionSign])
	assert.Equal(t, 1, tally.Misses[diagnosis.DimensionOrdering])
}

func TestParseConstraints(t *testing.T) {
	c, err := ParseConstraints([]string{"subtract"}, []string{"negative"})
	require.NoError(t, err)
	assert.Equal(t, skills.Of(skills.Subtract), c.Positive)
	assert.Equal(t, skills.Of(skills.Negative), c.Negative)
	assert.False(t, c.Empty())
	assert.False(t, c.Contradictory())

	_, err = ParseConstraints([]string{"bogus"}, nil)
	assert.ErrorIs(t, err, skills.ErrUnknownSkill)
	_, err = ParseConstraints(nil, []string{"bogus"})
	assert.ErrorIs(t, err, skills.ErrUnknownSkill)

	c, err = ParseConstraints([]string{"twodigit"}, []string{"twodigit"})
	require.NoError(t, err)
	assert.True(t, c.Contradictory())
}

func TestConstraints_Cycle(t *testing.T) {
	var c Constraints
	assert.True(t, c.Empty())

	c = c.Cycle(skills.Subtract)
	assert.True(t, c.Positive.Has(skills.Subtract))
	assert.False(t, c.Negative.Has(skills.Subtract))

	c = c.Cycle(skills.Subtract)
	assert.False(t, c.Positive.Has(skills.Subtract))
	assert.True(t, c.Negative.Has(skills.Subtract))

	c = c.Cycle(skills.Subtract)
	assert.True(t, c.Empty())
}

func TestConstraints_Describe(t *testing.T) {
	lines, err := Constraints{}.Describe()
	require.NoError(t, err)
	assert.Equal(t, []string{"Asking questions without any constraints."}, lines)

	c := Constraints{Positive: skills.Of(skills.TwoDigit, skills.Overflow10), Negative: skills.Of(skills.Subtract)}
	lines, err = c.Describe()
	require.NoError(t, err)
	assert.Len(t, lines, 4)
	assert.Equal(t, " - The question will be an addition.", lines[3])
}
