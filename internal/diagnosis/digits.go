package diagnosis

import "github.com/abhisek/mathdrill/internal/problem"

// UnitsChecker compares units digits, ignoring sign.
type UnitsChecker struct{}

func (c *UnitsChecker) Dimension() Dimension { return DimensionUnits }

func (c *UnitsChecker) Check(input *CheckInput) Score {
	return pass(problem.Units(input.Given.Answer) == problem.Units(input.Correct.Answer))
}

// TensChecker compares tens digits, ignoring sign. It applies only when the
// correct answer has a tens digit.
type TensChecker struct{}

func (c *TensChecker) Dimension() Dimension { return DimensionTens }

func (c *TensChecker) Check(input *CheckInput) Score {
	if problem.Abs(input.Correct.Answer) < 10 {
		return NotApplicable
	}
	return pass(problem.Tens(input.Given.Answer) == problem.Tens(input.Correct.Answer))
}
