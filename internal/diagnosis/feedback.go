package diagnosis

import (
	"fmt"

	"github.com/abhisek/mathdrill/internal/problem"
)

// Feedback turns a judgment into learner-facing messages, most specific
// first. An exact answer yields a single "Correct!".
func Feedback(q problem.Question, given, correct problem.Answer, j Judgment) []string {
	if given.Answer == correct.Answer {
		return []string{"Correct!"}
	}

	var msgs []string
	if j.Sign.Failed() {
		msgs = append(msgs, "The sign was wrong.")
	}
	if j.Ordering.Failed() {
		msgs = append(msgs, fmt.Sprintf("You mixed up the order of the operands. You answered %d %s %d instead.",
			q.SecondOperand, q.Operator, q.FirstOperand))
	}
	if j.Operand.Failed() {
		msgs = append(msgs, fmt.Sprintf("You used the wrong operator. I asked for %s (%s) and you answered %d %s %d instead.",
			operatorName(q.Operator), q.Operator, q.FirstOperand, q.Operator.Opposite(), q.SecondOperand))
	}

	units, tens := j.Units.Failed(), j.Tens.Failed()
	switch {
	case units && tens:
		msgs = append(msgs, fmt.Sprintf("You gave a wrong answer. The correct answer is %d.", correct.Answer))
	case units && j.Tens.Applicable():
		msgs = append(msgs, fmt.Sprintf("You made a mistake in the units. The correct answer is %d.", correct.Answer))
	case units:
		msgs = append(msgs, fmt.Sprintf("You made a mistake. The correct answer is %d.", correct.Answer))
	case tens:
		msgs = append(msgs, fmt.Sprintf("You made a mistake in the tens. The correct answer is %d.", correct.Answer))
	case len(msgs) == 0:
		// Digits and structure match but the value differs, e.g. an extra hundreds digit.
		msgs = append(msgs, fmt.Sprintf("Almost. The correct answer is %d.", correct.Answer))
	}
	return msgs
}

func operatorName(op problem.Operator) string {
	if op == problem.Add {
		return "ADDITION"
	}
	return "SUBTRACTION"
}
