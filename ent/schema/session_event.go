package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records navigation milestones: a session starting or ending,
// and a lesson/mode being entered. The trail supports resuming where the
// learner left off and simple usage reporting.
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping events in a session"),
		field.String("action").
			NotEmpty().
			Comment("start, end, or enter-mode"),
		field.String("role").
			Default("").
			Comment("student or teacher"),
		field.String("specialty_id").
			Default("").
			Comment("Selected BAC track"),
		field.String("subject_id").
			Default("").
			Comment("Selected subject (on enter-mode)"),
		field.String("lesson_id").
			Default("").
			Comment("Selected lesson (on enter-mode)"),
		field.String("mode").
			Default("").
			Comment("Study mode entered (on enter-mode)"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("action"),
	}
}
