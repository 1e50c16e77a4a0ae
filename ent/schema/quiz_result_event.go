package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuizResultEvent records a completed quiz attempt.
type QuizResultEvent struct {
	ent.Schema
}

func (QuizResultEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (QuizResultEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Session the quiz was taken in"),
		field.String("subject_id").
			NotEmpty().
			Comment("Subject of the quiz"),
		field.String("lesson_id").
			NotEmpty().
			Comment("Lesson the quiz was generated from"),
		field.Int("correct").
			Comment("Number of correct answers"),
		field.Int("total").
			Comment("Number of questions"),
		field.Int("duration_secs").
			Default(0).
			Comment("Time from first answer to submission"),
	}
}

func (QuizResultEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("subject_id"),
		index.Fields("lesson_id"),
	}
}
