package skills

import "github.com/abhisek/mathdrill/internal/problem"

// Classify returns the tags that hold for q with the given correct answer.
// Carry and borrow are only defined for their own operator, so overflow10
// and underflow10 never appear together.
func Classify(q problem.Question, correct problem.Answer) Set {
	var s Set

	if q.Operator == problem.Subtract {
		s = s.With(Subtract)
	}

	if isTwoDigit(q.FirstOperand) && isTwoDigit(q.SecondOperand) && isTwoDigit(correct.Answer) {
		s = s.With(TwoDigit)
	}

	firstUnits := problem.Units(q.FirstOperand)
	secondUnits := problem.Units(q.SecondOperand)
	switch q.Operator {
	case problem.Add:
		if firstUnits+secondUnits >= 10 {
			s = s.With(Overflow10)
		}
	case problem.Subtract:
		if firstUnits < secondUnits {
			s = s.With(Underflow10)
		}
	}

	if correct.Answer < 0 {
		s = s.With(Negative)
	}

	return s
}

// isTwoDigit checks magnitude, so negative operands and answers count the
// same as their absolute values.
func isTwoDigit(n int) bool {
	n = problem.Abs(n)
	return n >= 10 && n <= 99
}
