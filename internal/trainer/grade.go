package trainer

import (
	"fmt"
	"time"

	"github.com/abhisek/mathdrill/internal/diagnosis"
	"github.com/abhisek/mathdrill/internal/problem"
	"github.com/abhisek/mathdrill/internal/problemgen"
	"github.com/abhisek/mathdrill/internal/scoring"
	"github.com/abhisek/mathdrill/internal/skills"
	"github.com/abhisek/mathdrill/internal/store"
)

// Result is one graded answer.
type Result struct {
	Question  problem.Question
	Given     problem.Answer
	Correct   problem.Answer
	Skills    skills.Set
	Judgment  diagnosis.Judgment
	Breakdown scoring.Breakdown
	Overall   float64
	Feedback  []string
}

// Perfect reports whether the given answer equals the correct one.
func (r *Result) Perfect() bool {
	return r.Given.Answer == r.Correct.Answer
}

// Grade judges given against the generated question and scores it.
func Grade(g problemgen.Generated, given problem.Answer) (*Result, error) {
	j, err := diagnosis.Judge(g.Question, given, g.Answer)
	if err != nil {
		return nil, fmt.Errorf("judge: %w", err)
	}
	breakdown := scoring.Aggregate(j)
	overall, err := breakdown.Overall()
	if err != nil {
		return nil, fmt.Errorf("score: %w", err)
	}
	return &Result{
		Question:  g.Question,
		Given:     given,
		Correct:   g.Answer,
		Skills:    g.Skills,
		Judgment:  j,
		Breakdown: breakdown,
		Overall:   overall,
		Feedback:  diagnosis.Feedback(g.Question, given, g.Answer, j),
	}, nil
}

// AttemptData converts the result into a storable attempt.
func (r *Result) AttemptData(sessionID string, at time.Time) store.AttemptData {
	return store.AttemptData{
		SessionID:    sessionID,
		Timestamp:    at,
		Question:     r.Question,
		Answer:       r.Given,
		Correct:      r.Correct,
		Skills:       r.Skills,
		Judgment:     r.Judgment,
		OverallScore: r.Overall,
	}
}

// Tally accumulates results over a session.
type Tally struct {
	Asked    int
	Perfect  int
	ScoreSum float64
	Misses   map[diagnosis.Dimension]int
}

// Add folds r into the tally.
func (t *Tally) Add(r *Result) {
	if t.Misses == nil {
		t.Misses = make(map[diagnosis.Dimension]int)
	}
	t.Asked++
	t.ScoreSum += r.Overall
	if r.Perfect() {
		t.Perfect++
	}
	for _, d := range r.Judgment.Mistakes() {
		t.Misses[d]++
	}
}

// Mean returns the mean overall score, or 0 before any answer.
func (t *Tally) Mean() float64 {
	if t.Asked == 0 {
		return 0
	}
	return t.ScoreSum / float64(t.Asked)
}
