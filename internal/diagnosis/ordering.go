package diagnosis

import "github.com/abhisek/mathdrill/internal/problem"

// OrderingChecker flags a subtraction answered as second - first.
// Addition is commutative, so the order cannot be diagnosed there.
type OrderingChecker struct{}

func (c *OrderingChecker) Dimension() Dimension { return DimensionOrdering }

func (c *OrderingChecker) Check(input *CheckInput) Score {
	q := input.Question
	if q.Operator != problem.Subtract {
		return NotApplicable
	}
	swapped := q.SecondOperand - q.FirstOperand
	return pass(input.Given.Answer != swapped || swapped == input.Correct.Answer)
}
