package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	"github.com/abhisek/mathdrill/internal/diagnosis"
	"github.com/abhisek/mathdrill/internal/problem"
	"github.com/abhisek/mathdrill/internal/skills"
)

var attemptColumns = []string{
	"session_id",
	"created_at",
	"first_operand",
	"second_operand",
	"operator",
	"answer",
	"correct_answer",
	"skills",
	"score_in_sign",
	"score_in_ordering",
	"score_in_operand",
	"score_in_units",
	"score_in_tens",
	"overall_score",
}

type attemptRepo struct {
	drv *entsql.Driver
}

func (r *attemptRepo) AppendAttempt(ctx context.Context, data AttemptData) (int64, error) {
	if data.SessionID == "" {
		return 0, fmt.Errorf("append attempt: session id is empty")
	}
	if err := data.Question.Validate(); err != nil {
		return 0, fmt.Errorf("append attempt: %w", err)
	}
	ts := data.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	j := data.Judgment

	query, args := entsql.Dialect(dialect.SQLite).
		Insert("attempt").
		Columns(attemptColumns...).
		Values(
			data.SessionID,
			ts.UTC().UnixMilli(),
			data.Question.FirstOperand,
			data.Question.SecondOperand,
			string(data.Question.Operator),
			data.Answer.Answer,
			data.Correct.Answer,
			data.Skills.String(),
			nullable(j.Sign),
			nullable(j.Ordering),
			nullable(j.Operand),
			nullable(j.Units),
			nullable(j.Tens),
			data.OverallScore,
		).
		Query()
	return insert(ctx, r.drv, query, args)
}

func (r *attemptRepo) RecentAttempts(ctx context.Context, opts QueryOpts) ([]Attempt, error) {
	sel := entsql.Dialect(dialect.SQLite).
		Select(append([]string{PrimaryKey}, attemptColumns...)...).
		From(entsql.Table("attempt")).
		OrderBy(entsql.Desc(PrimaryKey))
	if opts.SessionID != "" {
		sel = sel.Where(entsql.EQ("session_id", opts.SessionID))
	}
	if opts.Limit > 0 {
		sel = sel.Limit(opts.Limit)
	}
	query, args := sel.Query()

	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}
	defer rows.Close()

	var out []Attempt
	for rows.Next() {
		a, err := scanAttempt(&rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate attempts: %w", err)
	}
	return out, nil
}

func (r *attemptRepo) Summary(ctx context.Context) (Summary, error) {
	attempts, err := r.RecentAttempts(ctx, QueryOpts{})
	if err != nil {
		return Summary{}, err
	}

	sum := Summary{
		Misses:  make(map[diagnosis.Dimension]int),
		BySkill: make(map[skills.Tag]SkillSummary),
	}
	sessions := make(map[string]struct{})
	var total float64
	skillTotals := make(map[skills.Tag]float64)

	for _, a := range attempts {
		sum.Attempts++
		sessions[a.SessionID] = struct{}{}
		total += a.OverallScore
		if a.OverallScore >= 1 {
			sum.Perfect++
		}
		for _, d := range a.Judgment.Mistakes() {
			sum.Misses[d]++
		}
		for _, tag := range a.Skills.Tags() {
			ss := sum.BySkill[tag]
			ss.Attempts++
			sum.BySkill[tag] = ss
			skillTotals[tag] += a.OverallScore
		}
	}

	sum.Sessions = len(sessions)
	if sum.Attempts > 0 {
		sum.MeanScore = total / float64(sum.Attempts)
	}
	for tag, ss := range sum.BySkill {
		ss.MeanScore = skillTotals[tag] / float64(ss.Attempts)
		sum.BySkill[tag] = ss
	}
	return sum, nil
}

func scanAttempt(rows *entsql.Rows) (Attempt, error) {
	var (
		a                                    Attempt
		createdAt                            int64
		operator, tags                       string
		sign, ordering, operand, units, tens sql.NullFloat64
	)
	err := rows.Scan(
		&a.ID,
		&a.SessionID,
		&createdAt,
		&a.Question.FirstOperand,
		&a.Question.SecondOperand,
		&operator,
		&a.Answer.Answer,
		&a.Correct.Answer,
		&tags,
		&sign, &ordering, &operand, &units, &tens,
		&a.OverallScore,
	)
	if err != nil {
		return Attempt{}, fmt.Errorf("scan attempt: %w", err)
	}

	a.Timestamp = time.UnixMilli(createdAt).UTC()
	a.Question.Operator = problem.Operator(operator)

	set, err := skills.ParseList(splitTags(tags))
	if err != nil {
		return Attempt{}, fmt.Errorf("attempt %d: %w", a.ID, err)
	}
	a.Skills = set

	a.Judgment = diagnosis.Judgment{
		Sign:     score(sign),
		Ordering: score(ordering),
		Operand:  score(operand),
		Units:    score(units),
		Tens:     score(tens),
	}
	return a, nil
}

// nullable maps a not-applicable score to SQL NULL.
func nullable(s diagnosis.Score) any {
	if v, ok := s.Value(); ok {
		return v
	}
	return nil
}

func score(v sql.NullFloat64) diagnosis.Score {
	if !v.Valid {
		return diagnosis.NotApplicable
	}
	return diagnosis.Scored(v.Float64)
}

func splitTags(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}
