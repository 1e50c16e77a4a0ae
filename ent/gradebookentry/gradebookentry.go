// Code generated by ent, DO NOT EDIT.

package gradebookentry

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the gradebookentry type in the database.
	Label = "gradebook_entry"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldStudent holds the string denoting the student field in the database.
	FieldStudent = "student"
	// FieldSubjectID holds the string denoting the subject_id field in the database.
	FieldSubjectID = "subject_id"
	// FieldLabel holds the string denoting the label field in the database.
	FieldLabel = "label"
	// FieldKind holds the string denoting the kind field in the database.
	FieldKind = "kind"
	// FieldMark holds the string denoting the mark field in the database.
	FieldMark = "mark"
	// FieldSemester holds the string denoting the semester field in the database.
	FieldSemester = "semester"
	// FieldNotes holds the string denoting the notes field in the database.
	FieldNotes = "notes"
	// FieldRecordedAt holds the string denoting the recorded_at field in the database.
	FieldRecordedAt = "recorded_at"
	// Table holds the table name of the gradebookentry in the database.
	Table = "gradebook_entries"
)

// Columns holds all SQL columns for gradebookentry fields.
var Columns = []string{
	FieldID,
	FieldStudent,
	FieldSubjectID,
	FieldLabel,
	FieldKind,
	FieldMark,
	FieldSemester,
	FieldNotes,
	FieldRecordedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// StudentValidator is a validator for the "student" field. It is called by the builders before save.
	StudentValidator func(string) error
	// SubjectIDValidator is a validator for the "subject_id" field. It is called by the builders before save.
	SubjectIDValidator func(string) error
	// LabelValidator is a validator for the "label" field. It is called by the builders before save.
	LabelValidator func(string) error
	// DefaultKind holds the default value on creation for the "kind" field.
	DefaultKind string
	// DefaultNotes holds the default value on creation for the "notes" field.
	DefaultNotes string
	// DefaultRecordedAt holds the default value on creation for the "recorded_at" field.
	DefaultRecordedAt func() time.Time
)

// OrderOption defines the ordering options for the GradebookEntry queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByStudent orders the results by the student field.
func ByStudent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStudent, opts...).ToFunc()
}

// BySubjectID orders the results by the subject_id field.
func BySubjectID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubjectID, opts...).ToFunc()
}

// ByLabel orders the results by the label field.
func ByLabel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLabel, opts...).ToFunc()
}

// ByKind orders the results by the kind field.
func ByKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKind, opts...).ToFunc()
}

// ByMark orders the results by the mark field.
func ByMark(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMark, opts...).ToFunc()
}

// BySemester orders the results by the semester field.
func BySemester(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSemester, opts...).ToFunc()
}

// ByNotes orders the results by the notes field.
func ByNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNotes, opts...).ToFunc()
}

// ByRecordedAt orders the results by the recorded_at field.
func ByRecordedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecordedAt, opts...).ToFunc()
}
