package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Profile stores the persistent identity chosen on first launch. A student
// profile remembers its track so the curriculum opens pre-filtered; a teacher
// profile has no track and sees everything.
type Profile struct {
	ent.Schema
}

func (Profile) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty().
			Unique().
			Comment("Display name"),
		field.String("role").
			NotEmpty().
			Comment("student or teacher"),
		field.String("specialty_id").
			Default("").
			Comment("BAC track, empty until a teacher picks one"),
		field.String("subject_id").
			Default("").
			Comment("Teaching subject, teachers only"),
		field.Text("program_text").
			Default("").
			Comment("Uploaded yearly program"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (Profile) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("role"),
	}
}
