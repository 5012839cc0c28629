package trainer

import (
	"fmt"

	"github.com/abhisek/mathdrill/internal/skills"
)

// Constraints are the skills a random question must and must not exercise.
type Constraints struct {
	Positive skills.Set
	Negative skills.Set
}

// ParseConstraints parses skill names for the with and without lists.
func ParseConstraints(with, without []string) (Constraints, error) {
	pos, err := skills.ParseList(with)
	if err != nil {
		return Constraints{}, fmt.Errorf("with: %w", err)
	}
	neg, err := skills.ParseList(without)
	if err != nil {
		return Constraints{}, fmt.Errorf("without: %w", err)
	}
	return Constraints{Positive: pos, Negative: neg}, nil
}

// Empty reports whether no constraint is set.
func (c Constraints) Empty() bool {
	return c.Positive.Empty() && c.Negative.Empty()
}

// Contradictory reports whether a skill is both wanted and excluded.
func (c Constraints) Contradictory() bool {
	return c.Positive.Intersects(c.Negative)
}

// Describe returns one human-readable line per constraint, preceded by a
// heading line.
func (c Constraints) Describe() ([]string, error) {
	if c.Empty() {
		return []string{"Asking questions without any constraints."}, nil
	}
	lines := []string{"The questions are randomized with the following constraints:"}
	for _, group := range []struct {
		set    skills.Set
		wanted bool
	}{{c.Positive, true}, {c.Negative, false}} {
		for _, tag := range group.set.Tags() {
			text, err := skills.Describe(tag, group.wanted)
			if err != nil {
				return nil, err
			}
			lines = append(lines, " - "+text)
		}
	}
	return lines, nil
}

// Cycle advances tag through unconstrained, wanted and excluded, in that
// order.
func (c Constraints) Cycle(tag skills.Tag) Constraints {
	switch {
	case c.Positive.Has(tag):
		c.Positive = c.Positive.Without(tag)
		c.Negative = c.Negative.With(tag)
	case c.Negative.Has(tag):
		c.Negative = c.Negative.Without(tag)
	default:
		c.Positive = c.Positive.With(tag)
	}
	return c
}
