package diagnosis

import "github.com/abhisek/mathdrill/internal/problem"

// SignChecker flags answers with the wrong sign. Only subtraction can flip
// the sign of the result, and a zero result has no sign to get wrong.
type SignChecker struct{}

func (c *SignChecker) Dimension() Dimension { return DimensionSign }

func (c *SignChecker) Check(input *CheckInput) Score {
	if input.Question.Operator != problem.Subtract || input.Correct.Answer == 0 {
		return NotApplicable
	}
	return pass(problem.Sign(input.Given.Answer) == problem.Sign(input.Correct.Answer))
}
