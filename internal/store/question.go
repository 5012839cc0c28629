package store

import (
	"context"
	"database/sql"
	"fmt"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	"github.com/abhisek/mathdrill/internal/problem"
)

type questionRepo struct {
	drv *entsql.Driver
}

func (r *questionRepo) SaveQuestion(ctx context.Context, q problem.Question) (int64, error) {
	if err := q.Validate(); err != nil {
		return 0, err
	}
	query, args := entsql.Dialect(dialect.SQLite).
		Insert("question").
		Columns("first_operand", "second_operand", "operator").
		Values(q.FirstOperand, q.SecondOperand, string(q.Operator)).
		Query()
	return insert(ctx, r.drv, query, args)
}

func (r *questionRepo) SaveAnswer(ctx context.Context, a problem.Answer) (int64, error) {
	query, args := entsql.Dialect(dialect.SQLite).
		Insert("answer").
		Columns("answer").
		Values(a.Answer).
		Query()
	return insert(ctx, r.drv, query, args)
}

// insert executes an INSERT and returns the new row's primary key.
func insert(ctx context.Context, drv *entsql.Driver, query string, args []any) (int64, error) {
	var res sql.Result
	if err := drv.Exec(ctx, query, args, &res); err != nil {
		return 0, fmt.Errorf("insert: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}
	return id, nil
}
