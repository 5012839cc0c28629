package boundary

import (
	"encoding/json"
	"fmt"

	"github.com/abhisek/mathdrill/internal/diagnosis"
	"github.com/abhisek/mathdrill/internal/problemgen"
	"github.com/abhisek/mathdrill/internal/scoring"
	"github.com/abhisek/mathdrill/internal/skills"
)

// GenerateResult is an accepted question in name-keyed form. It marshals
// to the JSON triple [question, answer, skills].
type GenerateResult struct {
	Question map[string]any
	Answer   map[string]any
	Skills   []string
}

func (r GenerateResult) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{r.Question, r.Answer, r.Skills})
}

// CheckResult is a graded answer in name-keyed form.
type CheckResult struct {
	OverallScore float64               `json:"overall_score"`
	ScoreDict    map[string][2]float64 `json:"score_dict"`
	Judgment     map[string]any        `json:"judgment"`
}

// Service exposes the grading core to host callers.
type Service struct {
	gen *problemgen.Generator
}

// NewService creates a Service that samples questions with gen.
func NewService(gen *problemgen.Generator) *Service {
	return &Service{gen: gen}
}

// Generate samples a question satisfying the named skill constraints.
// A nil result with a nil error means no question is available.
func (s *Service) Generate(positive, negative []string, settings map[string]any) (*GenerateResult, error) {
	pos, err := skills.ParseList(positive)
	if err != nil {
		return nil, fmt.Errorf("positive_skills: %w", err)
	}
	neg, err := skills.ParseList(negative)
	if err != nil {
		return nil, fmt.Errorf("negative_skills: %w", err)
	}
	st, err := MakeSettings(settings)
	if err != nil {
		return nil, fmt.Errorf("settings: %w", err)
	}

	got, ok, err := s.gen.Generate(pos, neg, st)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return &GenerateResult{
		Question: QuestionValues(got.Question),
		Answer:   AnswerValues(got.Answer),
		Skills:   got.Skills.Strings(),
	}, nil
}

// CheckAnswer judges answer against correctAnswer and scores the result.
// score_dict maps each applicable dimension to [points, weight], where
// points is score times weight.
func CheckAnswer(skillNames []string, answer, correctAnswer, question map[string]any) (*CheckResult, error) {
	if _, err := skills.ParseList(skillNames); err != nil {
		return nil, fmt.Errorf("skills: %w", err)
	}
	q, err := MakeQuestion(question)
	if err != nil {
		return nil, fmt.Errorf("question: %w", err)
	}
	given, err := MakeAnswer(answer)
	if err != nil {
		return nil, fmt.Errorf("answer: %w", err)
	}
	correct, err := MakeAnswer(correctAnswer)
	if err != nil {
		return nil, fmt.Errorf("correct_answer: %w", err)
	}

	j, err := diagnosis.Judge(q, given, correct)
	if err != nil {
		return nil, err
	}
	breakdown := scoring.Aggregate(j)
	overall, err := breakdown.Overall()
	if err != nil {
		return nil, err
	}

	dict := make(map[string][2]float64, len(breakdown))
	for d, e := range breakdown {
		dict[string(d)] = [2]float64{e.Points(), e.Weight}
	}
	return &CheckResult{
		OverallScore: overall,
		ScoreDict:    dict,
		Judgment:     JudgmentValues(j),
	}, nil
}
