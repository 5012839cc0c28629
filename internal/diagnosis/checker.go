package diagnosis

import "github.com/abhisek/mathdrill/internal/problem"

// Checker judges an answer along a single dimension.
// Returns NotApplicable when the dimension has no meaning for the question.
type Checker interface {
	Dimension() Dimension
	Check(input *CheckInput) Score
}

// DefaultCheckers returns one checker per dimension.
func DefaultCheckers() []Checker {
	return []Checker{
		&SignChecker{},
		&OrderingChecker{},
		&OperandChecker{},
		&UnitsChecker{},
		&TensChecker{},
	}
}

// Judge scores given against correct on every dimension. Each dimension is
// computed independently of the others. Applicability comes from the
// question and correct answer alone, so it takes no skill tags.
func Judge(q problem.Question, given, correct problem.Answer) (Judgment, error) {
	return RunCheckers(DefaultCheckers(), q, given, correct)
}

// RunCheckers executes checkers and collects their scores. Dimensions
// without a checker are left NotApplicable.
func RunCheckers(checkers []Checker, q problem.Question, given, correct problem.Answer) (Judgment, error) {
	if err := q.Validate(); err != nil {
		return Judgment{}, err
	}
	input := &CheckInput{Question: q, Given: given, Correct: correct}

	var j Judgment
	for _, c := range checkers {
		j.set(c.Dimension(), c.Check(input))
	}
	return j, nil
}
