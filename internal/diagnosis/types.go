package diagnosis

import (
	"strconv"

	"github.com/abhisek/mathdrill/internal/problem"
)

// Dimension is one independent axis along which an answer is judged.
type Dimension string

const (
	DimensionSign     Dimension = "sign"
	DimensionOrdering Dimension = "ordering"
	DimensionOperand  Dimension = "operand"
	DimensionUnits    Dimension = "units"
	DimensionTens     Dimension = "tens"
)

// AllDimensions returns the dimensions in report order.
func AllDimensions() []Dimension {
	return []Dimension{DimensionSign, DimensionOrdering, DimensionOperand, DimensionUnits, DimensionTens}
}

// Score is either a value in [0,1] or not applicable. The zero value is
// not applicable, which is distinct from Scored(0).
type Score struct {
	value      float64
	applicable bool
}

// NotApplicable marks a dimension that cannot be judged for a question.
var NotApplicable = Score{}

// Scored returns an applicable score.
func Scored(v float64) Score {
	return Score{value: v, applicable: true}
}

func pass(ok bool) Score {
	if ok {
		return Scored(1)
	}
	return Scored(0)
}

// Applicable reports whether the dimension was judged.
func (s Score) Applicable() bool { return s.applicable }

// Value returns the score and whether it is applicable.
func (s Score) Value() (float64, bool) { return s.value, s.applicable }

// Failed reports an applicable score below one half.
func (s Score) Failed() bool { return s.applicable && s.value < 0.5 }

// Float returns the score as a pointer, nil when not applicable.
func (s Score) Float() *float64 {
	if !s.applicable {
		return nil
	}
	v := s.value
	return &v
}

func (s Score) String() string {
	if !s.applicable {
		return "n/a"
	}
	return strconv.FormatFloat(s.value, 'f', -1, 64)
}

// Judgment holds the per-dimension scores for one answer.
type Judgment struct {
	Sign     Score
	Ordering Score
	Operand  Score
	Units    Score
	Tens     Score
}

// Get returns the score for d.
func (j Judgment) Get(d Dimension) Score {
	switch d {
	case DimensionSign:
		return j.Sign
	case DimensionOrdering:
		return j.Ordering
	case DimensionOperand:
		return j.Operand
	case DimensionUnits:
		return j.Units
	case DimensionTens:
		return j.Tens
	default:
		return NotApplicable
	}
}

func (j *Judgment) set(d Dimension, s Score) {
	switch d {
	case DimensionSign:
		j.Sign = s
	case DimensionOrdering:
		j.Ordering = s
	case DimensionOperand:
		j.Operand = s
	case DimensionUnits:
		j.Units = s
	case DimensionTens:
		j.Tens = s
	}
}

// Mistakes returns the dimensions with a failing score, in report order.
func (j Judgment) Mistakes() []Dimension {
	var out []Dimension
	for _, d := range AllDimensions() {
		if j.Get(d).Failed() {
			out = append(out, d)
		}
	}
	return out
}

// CheckInput holds the context for judging one answer.
type CheckInput struct {
	Question problem.Question
	Given    problem.Answer
	Correct  problem.Answer
}
