package diagnosis

// OperandChecker flags answers computed with the opposite operator.
type OperandChecker struct{}

func (c *OperandChecker) Dimension() Dimension { return DimensionOperand }

func (c *OperandChecker) Check(input *CheckInput) Score {
	q := input.Question
	alt, err := q.Operator.Opposite().Apply(q.FirstOperand, q.SecondOperand)
	if err != nil {
		return NotApplicable
	}
	return pass(input.Given.Answer != alt || alt == input.Correct.Answer)
}
