package problem

import (
	"errors"
	"fmt"
)

// ErrUnsupportedOperator is returned when a question uses anything other
// than addition or subtraction.
var ErrUnsupportedOperator = errors.New("unsupported operator")

// ErrOperandRange is returned when an operand lies outside
// [-MaxOperand, MaxOperand].
var ErrOperandRange = errors.New("operand out of range")

// MaxOperand bounds operand magnitude. Sums and differences of operands in
// range stay within MaxAnswer, so Solve never overflows.
const MaxOperand = 1_000_000_000

// MaxAnswer bounds the magnitude of any correct answer.
const MaxAnswer = 2 * MaxOperand

// InRange reports whether |n| <= MaxOperand.
func InRange(n int) bool {
	return n >= -MaxOperand && n <= MaxOperand
}

// Operator is the arithmetic operation of a question.
type Operator string

const (
	Add      Operator = "+"
	Subtract Operator = "-"
)

// Operators returns the supported operators in sampling order.
func Operators() []Operator {
	return []Operator{Add, Subtract}
}

// ParseOperator validates a raw operator symbol.
func ParseOperator(s string) (Operator, error) {
	switch Operator(s) {
	case Add, Subtract:
		return Operator(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedOperator, s)
	}
}

// Opposite returns the other supported operator.
func (o Operator) Opposite() Operator {
	if o == Add {
		return Subtract
	}
	return Add
}

// Apply evaluates a <op> b.
func (o Operator) Apply(a, b int) (int, error) {
	switch o {
	case Add:
		return a + b, nil
	case Subtract:
		return a - b, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedOperator, string(o))
	}
}

// Question is a two-operand arithmetic problem. Construct with NewQuestion
// so the operator is known to be valid.
type Question struct {
	FirstOperand  int
	SecondOperand int
	Operator      Operator
}

// NewQuestion builds a question, rejecting unsupported operators and
// operands outside [-MaxOperand, MaxOperand].
func NewQuestion(first int, op string, second int) (Question, error) {
	o, err := ParseOperator(op)
	if err != nil {
		return Question{}, err
	}
	q := Question{FirstOperand: first, SecondOperand: second, Operator: o}
	if err := q.checkOperands(); err != nil {
		return Question{}, err
	}
	return q, nil
}

// Validate reports whether the question carries a supported operator and
// in-range operands.
func (q Question) Validate() error {
	if _, err := ParseOperator(string(q.Operator)); err != nil {
		return err
	}
	return q.checkOperands()
}

func (q Question) checkOperands() error {
	for _, n := range []int{q.FirstOperand, q.SecondOperand} {
		if !InRange(n) {
			return fmt.Errorf("%w: %d", ErrOperandRange, n)
		}
	}
	return nil
}

// Solve returns the correct answer for q.
func (q Question) Solve() (Answer, error) {
	if err := q.checkOperands(); err != nil {
		return Answer{}, err
	}
	v, err := q.Operator.Apply(q.FirstOperand, q.SecondOperand)
	if err != nil {
		return Answer{}, err
	}
	return Answer{Answer: v}, nil
}

// String renders the question as "a op b".
func (q Question) String() string {
	return fmt.Sprintf("%d %s %d", q.FirstOperand, q.Operator, q.SecondOperand)
}

// Answer is an integer answer. It holds both learner submissions and the
// authoritative correct value.
type Answer struct {
	Answer int
}

// Abs returns |n|.
func Abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Units returns the units digit of |n|. Digits are taken before the sign
// is dropped so math.MinInt is handled.
func Units(n int) int {
	return Abs(n % 10)
}

// Tens returns the tens digit of |n|.
func Tens(n int) int {
	return Abs(n / 10 % 10)
}

// Sign returns -1, 0 or 1.
func Sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}
