package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
)

// Answer is a learner submission or an authoritative correct value.
type Answer struct {
	ent.Schema
}

func (Answer) Fields() []ent.Field {
	return []ent.Field{
		field.Int("answer"),
	}
}

func (Answer) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "answer"},
	}
}
