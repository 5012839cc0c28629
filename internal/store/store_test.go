package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathdrill/internal/diagnosis"
	"github.com/abhisek/mathdrill/internal/problem"
	"github.com/abhisek/mathdrill/internal/skills"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenCreatesTables(t *testing.T) {
	s := openTestStore(t)

	for _, table := range []string{"question", "answer", "attempt"} {
		var name string
		err := s.DB().QueryRow(
			"SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s: %v", table, err)
		}
	}
}

func TestOpenTwiceIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "twice.db")
	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Close())
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSaveQuestionAndAnswer(t *testing.T) {
	s := openTestStore(t)
	repo := s.QuestionRepo()
	ctx := context.Background()

	q := problem.Question{FirstOperand: 12, SecondOperand: 5, Operator: problem.Subtract}
	id1, err := repo.SaveQuestion(ctx, q)
	require.NoError(t, err)
	id2, err := repo.SaveQuestion(ctx, q)
	require.NoError(t, err)
	assert.Greater(t, id2, id1)

	var first, second int
	var op string
	err = s.DB().QueryRow(
		"SELECT first_operand, second_operand, operator FROM question WHERE id = ?", id1,
	).Scan(&first, &second, &op)
	require.NoError(t, err)
	assert.Equal(t, 12, first)
	assert.Equal(t, 5, second)
	assert.Equal(t, "-", op)

	aid, err := repo.SaveAnswer(ctx, problem.Answer{Answer: -7})
	require.NoError(t, err)
	var got int
	require.NoError(t, s.DB().QueryRow("SELECT answer FROM answer WHERE id = ?", aid).Scan(&got))
	assert.Equal(t, -7, got)
}

func TestSaveQuestion_UnsupportedOperator(t *testing.T) {
	s := openTestStore(t)
	_, err := s.QuestionRepo().SaveQuestion(context.Background(),
		problem.Question{FirstOperand: 1, SecondOperand: 2, Operator: problem.Operator("*")})
	assert.ErrorIs(t, err, problem.ErrUnsupportedOperator)
}

func attempt(t *testing.T, session string, first int, op string, second, given int, overall float64) AttemptData {
	t.Helper()
	q, err := problem.NewQuestion(first, op, second)
	require.NoError(t, err)
	correct, err := q.Solve()
	require.NoError(t, err)
	j, err := diagnosis.Judge(q, problem.Answer{Answer: given}, correct)
	require.NoError(t, err)
	return AttemptData{
		SessionID:    session,
		Timestamp:    time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Question:     q,
		Answer:       problem.Answer{Answer: given},
		Correct:      correct,
		Skills:       skills.Classify(q, correct),
		Judgment:     j,
		OverallScore: overall,
	}
}

func TestAttemptRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.AttemptRepo()
	ctx := context.Background()

	data := attempt(t, "s1", 12, "-", 5, -7, 4.0/6.0)
	id, err := repo.AppendAttempt(ctx, data)
	require.NoError(t, err)

	got, err := repo.RecentAttempts(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, got, 1)

	a := got[0]
	assert.Equal(t, id, a.ID)
	assert.Equal(t, data.SessionID, a.SessionID)
	assert.True(t, data.Timestamp.Equal(a.Timestamp))
	assert.Equal(t, data.Question, a.Question)
	assert.Equal(t, data.Answer, a.Answer)
	assert.Equal(t, data.Correct, a.Correct)
	assert.Equal(t, data.Skills, a.Skills)
	assert.Equal(t, data.Judgment, a.Judgment)
	assert.InDelta(t, data.OverallScore, a.OverallScore, 1e-12)

	// Tens is not applicable for 7 and must come back as such, not as 0.
	assert.False(t, a.Judgment.Tens.Applicable())
}

func TestAppendAttempt_Validation(t *testing.T) {
	s := openTestStore(t)
	repo := s.AttemptRepo()
	ctx := context.Background()

	data := attempt(t, "", 1, "+", 1, 2, 1)
	_, err := repo.AppendAttempt(ctx, data)
	assert.Error(t, err)

	data = attempt(t, "s", 1, "+", 1, 2, 1)
	data.Question.Operator = problem.Operator("%")
	_, err = repo.AppendAttempt(ctx, data)
	assert.ErrorIs(t, err, problem.ErrUnsupportedOperator)
}

func TestRecentAttempts_OrderLimitSession(t *testing.T) {
	s := openTestStore(t)
	repo := s.AttemptRepo()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		session := "a"
		if i%2 == 1 {
			session = "b"
		}
		_, err := repo.AppendAttempt(ctx, attempt(t, session, i, "+", 1, i+1, 1))
		require.NoError(t, err)
	}

	all, err := repo.RecentAttempts(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, all, 5)
	assert.Equal(t, 4, all[0].Question.FirstOperand, "newest first")

	limited, err := repo.RecentAttempts(ctx, QueryOpts{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, limited, 2)

	b, err := repo.RecentAttempts(ctx, QueryOpts{SessionID: "b"})
	require.NoError(t, err)
	require.Len(t, b, 2)
	for _, a := range b {
		assert.Equal(t, "b", a.SessionID)
	}
}

func TestResetAttempts(t *testing.T) {
	s := openTestStore(t)
	repo := s.AttemptRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := repo.AppendAttempt(ctx, attempt(t, "s", i, "+", 2, i+2, 1))
		require.NoError(t, err)
	}

	n, err := s.ResetAttempts(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	left, err := repo.RecentAttempts(ctx, QueryOpts{})
	require.NoError(t, err)
	assert.Empty(t, left)
}

func TestSummary(t *testing.T) {
	s := openTestStore(t)
	repo := s.AttemptRepo()
	ctx := context.Background()

	empty, err := repo.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Attempts)
	assert.Equal(t, 0.0, empty.MeanScore)

	for _, d := range []AttemptData{
		attempt(t, "s1", 12, "-", 5, 7, 1),
		attempt(t, "s1", 12, "-", 5, -7, 0.5),
		attempt(t, "s2", 9, "+", 3, 2, 0.5),
	} {
		_, err := repo.AppendAttempt(ctx, d)
		require.NoError(t, err)
	}

	sum, err := repo.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, sum.Attempts)
	assert.Equal(t, 2, sum.Sessions)
	assert.Equal(t, 1, sum.Perfect)
	assert.InDelta(t, 2.0/3.0, sum.MeanScore, 1e-12)

	assert.Equal(t, 1, sum.Misses[diagnosis.DimensionSign])
	assert.Equal(t, 1, sum.Misses[diagnosis.DimensionOrdering])
	assert.Equal(t, 1, sum.Misses[diagnosis.DimensionTens])
	assert.Equal(t, 0, sum.Misses[diagnosis.DimensionUnits])

	sub := sum.BySkill[skills.Subtract]
	assert.Equal(t, 2, sub.Attempts)
	assert.InDelta(t, 0.75, sub.MeanScore, 1e-12)
	assert.Equal(t, 1, sum.BySkill[skills.Overflow10].Attempts)
}

func TestEnsureDir(t *testing.T) {
	p := filepath.Join(t.TempDir(), "a", "b", "db.sqlite")
	require.NoError(t, EnsureDir(p))
	s, err := Open(p)
	require.NoError(t, err)
	s.Close()
}

func TestDefaultDBPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dir)
	p, err := DefaultDBPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "mathdrill", "mathdrill.db"), p)
}
