package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
)

// Attempt records one graded answer.
type Attempt struct {
	ent.Schema
}

func (Attempt) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Groups attempts from one practice run"),
		field.Int64("created_at").
			Comment("Unix milliseconds, UTC"),
		field.Int("first_operand"),
		field.Int("second_operand"),
		field.String("operator"),
		field.Int("answer").
			Comment("What the learner entered"),
		field.Int("correct_answer"),
		field.String("skills").
			Comment("Comma-separated skill tags of the question"),
		field.Float("score_in_sign").
			Optional().
			Nillable().
			Comment("NULL when not applicable"),
		field.Float("score_in_ordering").
			Optional().
			Nillable(),
		field.Float("score_in_operand").
			Optional().
			Nillable(),
		field.Float("score_in_units").
			Optional().
			Nillable(),
		field.Float("score_in_tens").
			Optional().
			Nillable(),
		field.Float("overall_score"),
	}
}

func (Attempt) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "attempt"},
	}
}
