package trainer

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/mathdrill/internal/problem"
	"github.com/abhisek/mathdrill/internal/problemgen"
	"github.com/abhisek/mathdrill/internal/store"
)

// Session holds the state of one practice run: what to ask, where to
// record answers and how the learner is doing so far. A Session is not
// safe for concurrent use.
type Session struct {
	ID          string
	Settings    problem.Settings
	Constraints Constraints
	Tally       Tally
	Generator   *problemgen.Generator
	Recorder    store.AttemptRepo // optional
	Logger      *zap.Logger
	Now         func() time.Time
}

// NewSession creates a session with a fresh ID, the default operand range,
// no constraints and a default generator.
func NewSession() *Session {
	logger := zap.NewNop()
	return &Session{
		ID:        uuid.New().String(),
		Settings:  problem.DefaultSettings(),
		Generator: problemgen.New(problemgen.DefaultConfig(), problemgen.WithLogger(logger)),
		Logger:    logger,
		Now:       time.Now,
	}
}

// Next samples a question under the session's constraints. ok is false
// when no question is available.
func (s *Session) Next() (g problemgen.Generated, ok bool, err error) {
	return s.Generator.Generate(s.Constraints.Positive, s.Constraints.Negative, s.Settings)
}

// Submit grades given, adds the result to the tally and records it. A
// recording failure is logged and does not fail the submission.
func (s *Session) Submit(ctx context.Context, g problemgen.Generated, given problem.Answer) (*Result, error) {
	res, err := Grade(g, given)
	if err != nil {
		return nil, err
	}
	s.Tally.Add(res)
	_ = s.Record(ctx, res)
	return res, nil
}

// Record stores res when the session has a recorder. Failures are logged
// and returned. Record only reads session fields, so it may run
// concurrently with other Record calls.
func (s *Session) Record(ctx context.Context, res *Result) error {
	if s.Recorder == nil {
		return nil
	}
	id, err := s.Recorder.AppendAttempt(ctx, res.AttemptData(s.ID, s.Now()))
	if err != nil {
		s.Logger.Warn("failed to record attempt", zap.Error(err))
		return err
	}
	s.Logger.Debug("recorded attempt",
		zap.Int64("id", id),
		zap.String("session", s.ID),
		zap.Float64("overall", res.Overall))
	return nil
}
