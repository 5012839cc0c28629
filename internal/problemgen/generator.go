package problemgen

import (
	"fmt"
	"math/rand/v2"

	"go.uber.org/zap"

	"github.com/abhisek/mathdrill/internal/problem"
	"github.com/abhisek/mathdrill/internal/skills"
)

// Generated is an accepted question with its correct answer and the full
// set of tags that hold for it.
type Generated struct {
	Question problem.Question
	Answer   problem.Answer
	Skills   skills.Set
}

// Generator samples random questions under skill constraints. It owns its
// random source and is not safe for concurrent use; give each goroutine its
// own Generator.
type Generator struct {
	cfg    Config
	rng    *rand.Rand
	logger *zap.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithRand sets the random source, e.g. a seeded PCG for reproducible runs.
func WithRand(r *rand.Rand) Option {
	return func(g *Generator) {
		g.rng = r
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *zap.Logger) Option {
	return func(g *Generator) {
		g.logger = l
	}
}

// New creates a Generator.
func New(cfg Config, opts ...Option) *Generator {
	g := &Generator{
		cfg:    cfg,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return g
}

// Generate samples up to Config.MaxAttempts candidates and returns the first
// whose tags include every tag in positive and none in negative.
//
// ok is false when no candidate was accepted within the budget; that is a
// normal outcome, not an error. A tag present in both sets can never be
// satisfied and returns ok == false immediately. The only error is an
// invalid Settings.
func (g *Generator) Generate(positive, negative skills.Set, settings problem.Settings) (Generated, bool, error) {
	if err := settings.Validate(); err != nil {
		return Generated{}, false, err
	}

	if positive.Intersects(negative) {
		g.logger.Debug("contradictory skill constraints",
			zap.Stringer("positive", positive),
			zap.Stringer("negative", negative))
		return Generated{}, false, nil
	}

	attempts := g.cfg.maxAttempts()
	for i := 0; i < attempts; i++ {
		cand := g.sample(settings)
		if cand.Skills.Contains(positive) && !cand.Skills.Intersects(negative) {
			g.logger.Debug("question accepted",
				zap.Stringer("question", cand.Question),
				zap.Stringer("skills", cand.Skills),
				zap.Int("attempt", i+1))
			return cand, true, nil
		}
	}

	g.logger.Debug("no question satisfies constraints",
		zap.Stringer("positive", positive),
		zap.Stringer("negative", negative),
		zap.Int("min_number", settings.MinNumber),
		zap.Int("max_number", settings.MaxNumber),
		zap.Int("attempts", attempts))
	return Generated{}, false, nil
}

// sample draws one candidate. settings must be valid.
func (g *Generator) sample(settings problem.Settings) Generated {
	ops := problem.Operators()
	op := ops[g.rng.IntN(len(ops))]
	span := settings.MaxNumber - settings.MinNumber + 1
	q := problem.Question{
		FirstOperand:  settings.MinNumber + g.rng.IntN(span),
		SecondOperand: settings.MinNumber + g.rng.IntN(span),
		Operator:      op,
	}
	// Operators() only yields supported operators.
	correct, _ := q.Solve()
	return Generated{
		Question: q,
		Answer:   correct,
		Skills:   skills.Classify(q, correct),
	}
}

// Manual builds a question from explicit operands and classifies it the
// same way generated questions are.
func Manual(first int, op string, second int) (Generated, error) {
	q, err := problem.NewQuestion(first, op, second)
	if err != nil {
		return Generated{}, fmt.Errorf("manual question: %w", err)
	}
	correct, err := q.Solve()
	if err != nil {
		return Generated{}, err
	}
	return Generated{
		Question: q,
		Answer:   correct,
		Skills:   skills.Classify(q, correct),
	}, nil
}
