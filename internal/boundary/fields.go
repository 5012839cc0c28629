package boundary

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/abhisek/mathdrill/internal/diagnosis"
	"github.com/abhisek/mathdrill/internal/problem"
)

// ErrInvalidPayload is returned when a caller-supplied mapping is missing a
// field, carries a value of the wrong type or a number out of range.
var ErrInvalidPayload = errors.New("invalid payload")

// Field names are part of the contract with host callers.
const (
	FieldFirstOperand  = "first_operand"
	FieldSecondOperand = "second_operand"
	FieldOperator      = "operator"
	FieldAnswer        = "answer"
	FieldMinNumber     = "min_number"
	FieldMaxNumber     = "max_number"

	FieldScoreInUnits    = "score_in_units"
	FieldScoreInTens     = "score_in_tens"
	FieldScoreInSign     = "score_in_sign"
	FieldScoreInOrdering = "score_in_ordering"
	FieldScoreInOperand  = "score_in_operand"
)

// judgmentFields pairs each judgment field with its dimension, in the
// order host callers expect.
var judgmentFields = []struct {
	name string
	dim  diagnosis.Dimension
}{
	{FieldScoreInUnits, diagnosis.DimensionUnits},
	{FieldScoreInTens, diagnosis.DimensionTens},
	{FieldScoreInSign, diagnosis.DimensionSign},
	{FieldScoreInOrdering, diagnosis.DimensionOrdering},
	{FieldScoreInOperand, diagnosis.DimensionOperand},
}

// SettingsValues converts settings to a name-keyed mapping.
func SettingsValues(s problem.Settings) map[string]any {
	return map[string]any{
		FieldMaxNumber: s.MaxNumber,
		FieldMinNumber: s.MinNumber,
	}
}

// MakeSettings reads settings from a name-keyed mapping.
func MakeSettings(values map[string]any) (problem.Settings, error) {
	maxN, err := intField(values, FieldMaxNumber, problem.MaxOperand)
	if err != nil {
		return problem.Settings{}, err
	}
	minN, err := intField(values, FieldMinNumber, problem.MaxOperand)
	if err != nil {
		return problem.Settings{}, err
	}
	return problem.Settings{MinNumber: minN, MaxNumber: maxN}, nil
}

// QuestionValues converts a question to a name-keyed mapping.
func QuestionValues(q problem.Question) map[string]any {
	return map[string]any{
		FieldFirstOperand:  q.FirstOperand,
		FieldSecondOperand: q.SecondOperand,
		FieldOperator:      string(q.Operator),
	}
}

// MakeQuestion reads a question from a name-keyed mapping. An operator
// other than + or - fails with problem.ErrUnsupportedOperator.
func MakeQuestion(values map[string]any) (problem.Question, error) {
	first, err := intField(values, FieldFirstOperand, problem.MaxOperand)
	if err != nil {
		return problem.Question{}, err
	}
	second, err := intField(values, FieldSecondOperand, problem.MaxOperand)
	if err != nil {
		return problem.Question{}, err
	}
	op, err := stringField(values, FieldOperator)
	if err != nil {
		return problem.Question{}, err
	}
	return problem.NewQuestion(first, op, second)
}

// AnswerValues converts an answer to a name-keyed mapping.
func AnswerValues(a problem.Answer) map[string]any {
	return map[string]any{
		FieldAnswer: a.Answer,
	}
}

// MakeAnswer reads an answer from a name-keyed mapping.
func MakeAnswer(values map[string]any) (problem.Answer, error) {
	n, err := intField(values, FieldAnswer, problem.MaxAnswer)
	if err != nil {
		return problem.Answer{}, err
	}
	return problem.Answer{Answer: n}, nil
}

// JudgmentValues converts a judgment to a name-keyed mapping. Not
// applicable dimensions map to a nil *float64.
func JudgmentValues(j diagnosis.Judgment) map[string]any {
	out := make(map[string]any, len(judgmentFields))
	for _, f := range judgmentFields {
		out[f.name] = j.Get(f.dim).Float()
	}
	return out
}

func lookup(values map[string]any, name string) (any, error) {
	if values == nil {
		return nil, fmt.Errorf("%w: missing mapping for field %q", ErrInvalidPayload, name)
	}
	v, ok := values[name]
	if !ok || v == nil {
		return nil, fmt.Errorf("%w: missing field %q", ErrInvalidPayload, name)
	}
	return v, nil
}

// intField reads an integer field whose magnitude is at most limit.
func intField(values map[string]any, name string, limit int) (int, error) {
	v, err := lookup(values, name)
	if err != nil {
		return 0, err
	}
	var n int64
	switch x := v.(type) {
	case int:
		n = int64(x)
	case int32:
		n = int64(x)
	case int64:
		n = x
	case float64:
		if x != math.Trunc(x) || math.IsInf(x, 0) {
			return 0, fmt.Errorf("%w: field %q is not an integer: %v", ErrInvalidPayload, name, x)
		}
		if math.Abs(x) > float64(limit) {
			return 0, outOfRange(name, x, limit)
		}
		n = int64(x)
	case json.Number:
		i, err := x.Int64()
		if err != nil {
			return 0, fmt.Errorf("%w: field %q: %v", ErrInvalidPayload, name, err)
		}
		n = i
	default:
		return 0, fmt.Errorf("%w: field %q has type %T, want integer", ErrInvalidPayload, name, v)
	}
	if n < -int64(limit) || n > int64(limit) {
		return 0, outOfRange(name, n, limit)
	}
	return int(n), nil
}

func outOfRange(name string, v any, limit int) error {
	return fmt.Errorf("%w: field %q = %v outside [%d, %d]", ErrInvalidPayload, name, v, -limit, limit)
}

func stringField(values map[string]any, name string) (string, error) {
	v, err := lookup(values, name)
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: field %q has type %T, want string", ErrInvalidPayload, name, v)
	}
	return s, nil
}
