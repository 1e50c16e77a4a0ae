// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/bacdz/eduai/ent/gradebookentry"
)

// GradebookEntry is the model entity for the GradebookEntry schema.
type GradebookEntry struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Student display name
	Student string `json:"student,omitempty"`
	// SubjectID holds the value of the "subject_id" field.
	SubjectID string `json:"subject_id,omitempty"`
	// What was graded: exam, quiz, homework title
	Label string `json:"label,omitempty"`
	// "exam" or "assessment" (continuous assessment)
	Kind string `json:"kind,omitempty"`
	// Score out of 20, quarter-point steps
	Mark float64 `json:"mark,omitempty"`
	// 1, 2 or 3
	Semester int `json:"semester,omitempty"`
	// Teacher's continuous-assessment remarks
	Notes string `json:"notes,omitempty"`
	// RecordedAt holds the value of the "recorded_at" field.
	RecordedAt   time.Time `json:"recorded_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*GradebookEntry) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case gradebookentry.FieldMark:
			values[i] = new(sql.NullFloat64)
		case gradebookentry.FieldID, gradebookentry.FieldSemester:
			values[i] = new(sql.NullInt64)
		case gradebookentry.FieldStudent, gradebookentry.FieldSubjectID, gradebookentry.FieldLabel, gradebookentry.FieldKind, gradebookentry.FieldNotes:
			values[i] = new(sql.NullString)
		case gradebookentry.FieldRecordedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the GradebookEntry fields.
func (_m *GradebookEntry) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case gradebookentry.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case gradebookentry.FieldStudent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field student", values[i])
			} else if value.Valid {
				_m.Student = value.String
			}
		case gradebookentry.FieldSubjectID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subject_id", values[i])
			} else if value.Valid {
				_m.SubjectID = value.String
			}
		case gradebookentry.FieldLabel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field label", values[i])
			} else if value.Valid {
				_m.Label = value.String
			}
		case gradebookentry.FieldKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field kind", values[i])
			} else if value.Valid {
				_m.Kind = value.String
			}
		case gradebookentry.FieldMark:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field mark", values[i])
			} else if value.Valid {
				_m.Mark = value.Float64
			}
		case gradebookentry.FieldSemester:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field semester", values[i])
			} else if value.Valid {
				_m.Semester = int(value.Int64)
			}
		case gradebookentry.FieldNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field notes", values[i])
			} else if value.Valid {
				_m.Notes = value.String
			}
		case gradebookentry.FieldRecordedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field recorded_at", values[i])
			} else if value.Valid {
				_m.RecordedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the GradebookEntry.
// This includes values selected through modifiers, order, etc.
func (_m *GradebookEntry) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this GradebookEntry.
// Note that you need to call GradebookEntry.Unwrap() before calling this method if this GradebookEntry
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *GradebookEntry) Update() *GradebookEntryUpdateOne {
	return NewGradebookEntryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the GradebookEntry entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *GradebookEntry) Unwrap() *GradebookEntry {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: GradebookEntry is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *GradebookEntry) String() string {
	var builder strings.Builder
	builder.WriteString("GradebookEntry(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("student=")
	builder.WriteString(_m.Student)
	builder.WriteString(", ")
	builder.WriteString("subject_id=")
	builder.WriteString(_m.SubjectID)
	builder.WriteString(", ")
	builder.WriteString("label=")
	builder.WriteString(_m.Label)
	builder.WriteString(", ")
	builder.WriteString("kind=")
	builder.WriteString(_m.Kind)
	builder.WriteString(", ")
	builder.WriteString("mark=")
	builder.WriteString(fmt.Sprintf("%v", _m.Mark))
	builder.WriteString(", ")
	builder.WriteString("semester=")
	builder.WriteString(fmt.Sprintf("%v", _m.Semester))
	builder.WriteString(", ")
	builder.WriteString("notes=")
	builder.WriteString(_m.Notes)
	builder.WriteString(", ")
	builder.WriteString("recorded_at=")
	builder.WriteString(_m.RecordedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// GradebookEntries is a parsable slice of GradebookEntry.
type GradebookEntries []*GradebookEntry
