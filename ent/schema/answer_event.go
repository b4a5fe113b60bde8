package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records a single answer within a quiz session.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Links to SessionEvent"),
		field.String("kind").
			NotEmpty().
			Comment("multiple_choice, true_false, fill_blank, matching, or timed"),
		field.String("question_text").
			NotEmpty().
			Comment("The question shown"),
		field.String("correct_answer").
			NotEmpty().
			Comment("The canonical correct answer"),
		field.String("learner_answer").
			Default("").
			Comment("What the learner entered; empty when time expired"),
		field.Bool("correct").
			Comment("Whether the answer was correct"),
		field.Int("time_ms").
			Default(0).
			Comment("Milliseconds to answer"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("kind"),
		index.Fields("correct"),
	}
}
