package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// GradebookEntry is one mark in a teacher's gradebook. Marks use the
// Algerian 0-20 scale in quarter-point steps.
type GradebookEntry struct {
	ent.Schema
}

func (GradebookEntry) Fields() []ent.Field {
	return []ent.Field{
		field.String("student").
			NotEmpty().
			Comment("Student display name"),
		field.String("subject_id").
			NotEmpty(),
		field.String("label").
			NotEmpty().
			Comment("What was graded: exam, quiz, homework title"),
		field.String("kind").
			Default("exam").
			Comment("\"exam\" or \"assessment\" (continuous assessment)"),
		field.Float("mark").
			Comment("Score out of 20, quarter-point steps"),
		field.Int("semester").
			Comment("1, 2 or 3"),
		field.String("notes").
			Default("").
			Comment("Teacher's continuous-assessment remarks"),
		field.Time("recorded_at").
			Default(time.Now).
			Immutable(),
	}
}

func (GradebookEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("student"),
		index.Fields("subject_id"),
		index.Fields("semester"),
	}
}
