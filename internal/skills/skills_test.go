package skills

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathdrill/internal/problem"
)

func classify(t *testing.T, first int, op string, second int) Set {
	t.Helper()
	q, err := problem.NewQuestion(first, op, second)
	require.NoError(t, err)
	correct, err := q.Solve()
	require.NoError(t, err)
	return Classify(q, correct)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		first  int
		op     string
		second int
		want   Set
	}{
		{"single digit addition", 2, "+", 3, 0},
		{"carry", 9, "+", 3, Of(Overflow10)},
		{"two digit carry", 18, "+", 25, Of(TwoDigit, Overflow10)},
		{"two digit no carry", 12, "+", 13, Of(TwoDigit)},
		{"sum leaves two digits", 60, "+", 50, 0},
		{"borrow", 12, "-", 5, Of(Subtract, Underflow10)},
		{"two digit borrow", 42, "-", 17, Of(TwoDigit, Subtract, Underflow10)},
		{"negative", 5, "-", 12, Of(Subtract, Negative)},
		{"two digit negative", 15, "-", 37, Of(TwoDigit, Subtract, Underflow10, Negative)},
		{"zero result", 7, "-", 7, Of(Subtract)},
		{"units equal no borrow", 27, "-", 17, Of(TwoDigit, Subtract)},
		{"negative operands two digit", -15, "+", -12, Of(TwoDigit, Negative)},
		{"negative operands one digit result", -15, "-", -12, Of(Subtract, Negative)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classify(t, tt.first, tt.op, tt.second)
			assert.Equal(t, tt.want.Strings(), got.Strings())
		})
	}
}

func TestClassify_CarryAndBorrowExclusive(t *testing.T) {
	for a := 0; a < 30; a++ {
		for b := 0; b < 30; b++ {
			for _, op := range []string{"+", "-"} {
				s := classify(t, a, op, b)
				if s.Has(Overflow10) && s.Has(Underflow10) {
					t.Fatalf("%d %s %d has both overflow10 and underflow10", a, op, b)
				}
				if s.Has(Overflow10) && op != "+" {
					t.Fatalf("%d %s %d: overflow10 outside addition", a, op, b)
				}
				if (s.Has(Underflow10) || s.Has(Subtract)) && op != "-" {
					t.Fatalf("%d %s %d: subtraction tag on addition", a, op, b)
				}
			}
		}
	}
}

func TestParse(t *testing.T) {
	for _, tag := range AllTags() {
		got, err := Parse(string(tag))
		require.NoError(t, err)
		assert.Equal(t, tag, got)
	}

	_, err := Parse("threedigit")
	assert.True(t, errors.Is(err, ErrUnknownSkill))
}

func TestParseList(t *testing.T) {
	s, err := ParseList([]string{"negative", "subtract"})
	require.NoError(t, err)
	assert.Equal(t, []string{"subtract", "negative"}, s.Strings())

	_, err = ParseList([]string{"subtract", "bogus"})
	assert.ErrorIs(t, err, ErrUnknownSkill)

	s, err = ParseList(nil)
	require.NoError(t, err)
	assert.True(t, s.Empty())
}

func TestSetOperations(t *testing.T) {
	s := Of(TwoDigit, Subtract)
	assert.True(t, s.Has(TwoDigit))
	assert.False(t, s.Has(Negative))
	assert.False(t, s.Has(Tag("bogus")))
	assert.True(t, s.Contains(Of(Subtract)))
	assert.True(t, s.Contains(0))
	assert.False(t, s.Contains(Of(Subtract, Negative)))
	assert.True(t, s.Intersects(Of(Negative, TwoDigit)))
	assert.False(t, s.Intersects(Of(Negative)))
	assert.Equal(t, "twodigit,subtract", s.String())
	assert.Equal(t, Of(Subtract), s.Without(TwoDigit))
	assert.Equal(t, s, s.Without(Negative))
	assert.Equal(t, Of(TwoDigit, Subtract, Negative), s.With(Negative))
}

func TestDescribe(t *testing.T) {
	for _, tag := range AllTags() {
		for _, wanted := range []bool{true, false} {
			text, err := Describe(tag, wanted)
			require.NoError(t, err)
			assert.NotEmpty(t, text)
		}
	}

	_, err := Describe(Tag("bogus"), true)
	assert.ErrorIs(t, err, ErrUnknownSkill)
}
