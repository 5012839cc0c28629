package store

import (
	"context"
	"time"

	"github.com/abhisek/mathdrill/internal/diagnosis"
	"github.com/abhisek/mathdrill/internal/problem"
	"github.com/abhisek/mathdrill/internal/skills"
)

// QueryOpts configures attempt queries.
type QueryOpts struct {
	Limit     int    // max results (0 = unlimited)
	SessionID string // only attempts from this session ("" = all)
}

// QuestionRepo stores standalone questions and answers for host callers
// that keep their own references by primary key.
type QuestionRepo interface {
	// SaveQuestion stores q and returns its primary key.
	SaveQuestion(ctx context.Context, q problem.Question) (int64, error)

	// SaveAnswer stores a and returns its primary key.
	SaveAnswer(ctx context.Context, a problem.Answer) (int64, error)
}

// AttemptData captures one graded answer.
type AttemptData struct {
	SessionID    string
	Timestamp    time.Time
	Question     problem.Question
	Answer       problem.Answer
	Correct      problem.Answer
	Skills       skills.Set
	Judgment     diagnosis.Judgment
	OverallScore float64
}

// Attempt is a stored AttemptData with its primary key.
type Attempt struct {
	ID int64
	AttemptData
}

// SkillSummary aggregates attempts on questions carrying one skill tag.
type SkillSummary struct {
	Attempts  int
	MeanScore float64
}

// Summary aggregates all stored attempts.
type Summary struct {
	Attempts  int
	Sessions  int
	Perfect   int // attempts with overall score 1
	MeanScore float64
	Misses    map[diagnosis.Dimension]int
	BySkill   map[skills.Tag]SkillSummary
}

// AttemptRepo provides append and query access to graded attempts.
type AttemptRepo interface {
	// AppendAttempt records one graded answer.
	AppendAttempt(ctx context.Context, data AttemptData) (int64, error)

	// RecentAttempts returns attempts newest first.
	RecentAttempts(ctx context.Context, opts QueryOpts) ([]Attempt, error)

	// Summary aggregates every stored attempt.
	Summary(ctx context.Context) (Summary, error)
}
