// Code generated by ent, DO NOT EDIT.

package gradebookentry

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/bacdz/eduai/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.GradebookEntry {
	return predicate.GradebookEntry(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.GradebookEntry {
	return predicate.GradebookEntry(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.GradebookEntry {
	return predicate.GradebookEntry(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.GradebookEntry {
	return predicate.GradebookEntry(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.GradebookEntry {
	return predicate.GradebookEntry(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.GradebookEntry {
	return predicate.GradebookEntry(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.GradebookEntry {
	return predicate.GradebookEntry(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.GradebookEntry {
	return predicate.GradebookEntry(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.GradebookEntry {
	return predicate.GradebookEntry(sql.FieldLTE(FieldID, id))
}

// Student applies equality check predicate on the "student" field. It's identical to StudentEQ.
func Student(v string) predicate.GradebookEntry {
	return predicate.GradebookEntry(sql.FieldEQ(FieldStudent, v))
}

// SubjectID applies equality check predicate on the "subject_id" field. It's identical to SubjectIDEQ.
func SubjectID(v string) predicate.GradebookEntry {
	return predicate.GradebookEntry(sql.FieldEQ(FieldSubjectID, v))
}

// Kind applies equality check predicate on the "kind" field. It's identical to KindEQ.
func Kind(v string) predicate.GradebookEntry {
	return predicate.GradebookEntry(sql.FieldEQ(FieldKind, v))
}

// Mark applies equality check predicate on the "mark" field. It's identical to MarkEQ.
func Mark(v float64) predicate.GradebookEntry {
	return predicate.GradebookEntry(sql.FieldEQ(FieldMark, v))
}

// Semester applies equality check predicate on the "semester" field. It's identical to SemesterEQ.
func Semester(v int) predicate.GradebookEntry {
	return predicate.GradebookEntry(sql.FieldEQ(FieldSemester, v))
}

// Notes applies equality check predicate on the "notes" field. It's identical to NotesEQ.
func Notes(v string) predicate.GradebookEntry {
	return predicate.GradebookEntry(sql.FieldEQ(FieldNotes, v))
}

// RecordedAt applies equality check predicate on the "recorded_at" field. It's identical to RecordedAtEQ.
func RecordedAt(v time.Time) predicate.GradebookEntry {
	return predicate.GradebookEntry(sql.FieldEQ(FieldRecordedAt, v))
}

// StudentEQ applies the EQ predicate on the "student" field.
func StudentEQ(v string) predicate.GradebookEntry {
	return predicate.GradebookEntry(sql.FieldEQ(FieldStudent, v))
}

// StudentNEQ applies the NEQ predicate on the "student" field.
func StudentNEQ(v string) predicate.GradebookEntry {
	return predicate.GradebookEntry(sql.FieldNEQ(FieldStudent, v))
}

// StudentIn applies the In predicate on the "student" field.
func StudentIn(vs ...string) predicate.GradebookEntry {
	return predicate.GradebookEntry(sql.FieldIn(FieldStudent, vs...))
}

// StudentNotIn applies the NotIn predicate on the "student" field.
func StudentNotIn(vs ...string) predicate.GradebookEntry {
	return predicate.GradebookEntry(sql.FieldNotIn(FieldStudent, vs...))
}

// StudentGT applies the GT predicate on the "student" field.
func StudentGT(v string) predicate.GradebookEntry {
	return predicate.GradebookEntry(sql.FieldGT(FieldStudent, v))
}

// StudentGTE applies the GTE predicate on the "student" field.
func StudentGTE(v string) predicate.GradebookEntry {
	return predicate.GradebookEntry(sql.FieldGTE(FieldStudent, v))
}

// StudentLT applies the LT predicate on the "student" field.
func StudentLT(v string) predicate.GradebookEntry {
	return predicate.GradebookEntry(sql.FieldLT(FieldStudent, v))
}

// StudentLTE applies the LTE predicate on the "student" field.
func StudentLTE(v string) predicate.GradebookEntry {
	return predicate.GradebookEntry(sql.FieldLTE(FieldStudent, v))
}

// StudentContains applies the Contains predicate on the "student" field.
func StudentContains(v string) predicate.GradebookEntry {
	return predicate.GradebookEntry(sql.FieldContains(FieldStudent, v))
}

// StudentHasPrefix applies the HasPrefix predicate on the "student" field.
func StudentHasPrefix(v string) predicate.GradebookEntry {
	return predicate.GradebookEntry(sql.FieldHasPrefix(FieldStudent, v))
}

// StudentHasSuffix applies the HasSuffix predicate on the "student" field.
func StudentHasSuffix(v string) predicate.GradebookEntry {
	return predicate.GradebookEntry(sql.FieldHasSuffix(FieldStudent, v))
}

// StudentEqualFold applies the EqualFold predicate on the "student" field.
func StudentEqualFold(v string) predicate.GradebookEntry {
	return predicate.GradebookEntry(sql.FieldEqualFold(FieldStudent, v))
}

// StudentContainsFold applies the ContainsFold predicate on the "student" field.
func StudentContainsFold(v string) predicate.GradebookEntry {
	return predicate.GradebookEntry(sql.FieldContainsFold(FieldStudent, v))
}

// SubjectIDEQ applies the EQ predicate on the "subject_id" field.
func SubjectIDEQ(v string) predicate.GradebookEntry {
	return predicate.GradebookEntry(sql.FieldEQ(FieldSubjectID, v))
}

// SubjectIDNEQ applies the NEQ predicate on the "subject_id" field.
func SubjectIDNEQ(v string) predicate.GradebookEntry {
	return predicate.GradebookEntry(sql.FieldNEQ(FieldSubjectID, v))
}

// SubjectIDIn applies the In predicate on the "subject_id" field.
func SubjectIDIn(vs ...string) predicate.GradebookEntry {
	return predicate.GradebookEntry(sql.FieldIn(FieldSubjectID, vs...))
}

// SubjectIDNotIn applies the NotIn predicate on the "subject_id" field.
func SubjectIDNotIn(vs ...string) predicate.GradebookEntry {
	return predicate.GradebookEntry(sql.FieldNotIn(FieldSubjectID, vs...))
}

// SubjectIDGT applies the GT predicate on the "subject_id" field.
func SubjectIDGT(v string) predicate.GradebookEntry {
	return predicate.GradebookEntry(sql.FieldGT(FieldSubjectID, v))
}

// SubjectIDGTE applies the GTE predicate on the "subject_id" field.
func SubjectIDGTE(v string) predicate.GradebookEntry {
	return predicate.GradebookEntry(sql.FieldGTE(FieldSubjectID, v))
}

// SubjectIDLT applies the LT predicate on the "subject_id" field.
func SubjectIDLT(v string) predicate.GradebookEntry {
	return predicate.GradebookEntry(sql.FieldLT(FieldSubjectID, v))
}

// SubjectIDLTE applies the LTE predicate on the "subject_id" field.
func SubjectIDLTE(v string) predicate.GradebookEntry {
	return predicate.GradebookEntry(sql.FieldLTE(FieldSubjectID, v))
}

// SubjectIDContains applies the Contains predicate on the "subject_id" field.
func SubjectIDContains(v string) predicate.GradebookEntry {
	return predicate.GradebookEntry(sql.FieldContains(FieldSubjectID, v))
}

// SubjectIDHasPrefix applies the HasPrefix predicate on the "subject_id" field.
func SubjectIDHasPrefix(v string) predicate.GradebookEntry {
	return predicate.GradebookEntry(sql.FieldHasPrefix(FieldSubjectID, v))
}

// SubjectIDHasSuffix applies the HasSuffix predicate on the "subject_id" field.
func SubjectIDHasSuffix(v string) predicate.GradebookEntry {
	return predicate.GradebookEntry(sql.FieldHasSuffix(FieldSubjectID, v))
}

// SubjectIDEqualFold applies the EqualFold predicate on the "subject_id" field.
func SubjectIDEqualFold(v string) predicate.GradebookEntry {
	return predicate.GradebookEntry(sql.FieldEqualFold(FieldSubjectID, v))
}

// SubjectIDContainsFold applies the ContainsFold predicate on the "subject_id" field.
func SubjectIDContainsFold(v string) predicate.GradebookEntry {
	return predicate.GradebookEntry(sql.FieldContainsFold(FieldSubjectID, v))
}

// LabelEQ applies the EQ predicate on the "label" field.
func LabelEQ(v string) predicate.GradebookEntry {
	return predicate.GradebookEntry(sql.FieldEQ(FieldLabel, v))
}

// LabelNEQ applies the NEQ predicate on the "label" field.
func LabelNEQ(v string) predicate.GradebookEntry {
	return predicate.GradebookEntry(sql.FieldNEQ(FieldLabel, v))
}

// LabelIn applies the In predicate on the "label" field.
func LabelIn(vs ...string) predicate.GradebookEntry {
	return predicate.GradebookEntry(sql.FieldIn(FieldLabel, vs...))
}

// LabelNotIn applies the NotIn predicate on the "label" field.
func LabelNotIn(vs ...string) predicate.GradebookEntry {
	return predicate.GradebookEntry(sql.FieldNotIn(FieldLabel, vs...))
}

// LabelGT applies the GT predicate on the "label" field.
func LabelGT(v string) predicate.GradebookEntry {
	return predicate.GradebookEntry(sql.FieldGT(FieldLabel, v))
}

// LabelGTE applies the GTE predicate on the "label" field.
func LabelGTE(v string) predicate.GradebookEntry {
	return predicate.GradebookEntry(sql.FieldGTE(FieldLabel, v))
}

// LabelLT applies the LT predicate on the "label" field.
func LabelLT(v string) predicate.GradebookEntry {
	return predicate.GradebookEntry(sql.FieldLT(FieldLabel, v))
}

// LabelLTE applies the LTE predicate on the "label" field.
func LabelLTE(v string) predicate.GradebookEntry {
	return predicate.GradebookEntry(sql.FieldLTE(FieldLabel, v))
}

// LabelContains applies the Contains predicate on the "label" field.
func LabelContains(v string) predicate.GradebookEntry {
	return predicate.GradebookEntry(sql.FieldContains(FieldLabel, v))
}

// LabelHasPrefix applies the HasPrefix predicate on the "label" field.
func LabelHasPrefix(v string) predicate.GradebookEntry {
	return predicate.GradebookEntry(sql.FieldHasPrefix(FieldLabel, v))
}

// LabelHasSuffix applies the HasSuffix predicate on the "label" field.
func LabelHasSuffix(v string) predicate.GradebookEntry {
	return predicate.GradebookEntry(sql.FieldHasSuffix(FieldLabel, v))
}

// LabelEqualFold applies the EqualFold predicate on the "label" field.
func LabelEqualFold(v string) predicate.GradebookEntry {
	return predicate.GradebookEntry(sql.FieldEqualFold(FieldLabel, v))
}

// LabelContainsFold applies the ContainsFold predicate on the "label" field.
func LabelContainsFold(v string) predicate.GradebookEntry {
	return predicate.GradebookEntry(sql.FieldContainsFold(FieldLabel, v))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v string) predicate.GradebookEntry {
	return predicate.GradebookEntry(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v string) predicate.GradebookEntry {
	return predicate.GradebookEntry(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...string) predicate.GradebookEntry {
	return predicate.GradebookEntry(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...string) predicate.GradebookEntry {
	return predicate.GradebookEntry(sql.FieldNotIn(FieldKind, vs...))
}

// KindGT applies the GT predicate on the "kind" field.
func KindGT(v string) predicate.GradebookEntry {
	return predicate.GradebookEntry(sql.FieldGT(FieldKind, v))
}

// KindGTE applies the GTE predicate on the "kind" field.
func KindGTE(v string) predicate.GradebookEntry {
	return predicate.GradebookEntry(sql.FieldGTE(FieldKind, v))
}

// KindLT applies the LT predicate on the "kind" field.
func KindLT(v string) predicate.GradebookEntry {
	return predicate.GradebookEntry(sql.FieldLT(FieldKind, v))
}

// KindLTE applies the LTE predicate on the "kind" field.
func KindLTE(v string) predicate.GradebookEntry {
	return predicate.GradebookEntry(sql.FieldLTE(FieldKind, v))
}

// KindContains applies the Contains predicate on the "kind" field.
func KindContains(v string) predicate.GradebookEntry {
	return predicate.GradebookEntry(sql.FieldContains(FieldKind, v))
}

// KindHasPrefix applies the HasPrefix predicate on the "kind" field.
func KindHasPrefix(v string) predicate.GradebookEntry {
	return predicate.GradebookEntry(sql.FieldHasPrefix(FieldKind, v))
}

// KindHasSuffix applies the HasSuffix predicate on the "kind" field.
func KindHasSuffix(v string) predicate.GradebookEntry {
	return predicate.GradebookEntry(sql.FieldHasSuffix(FieldKind, v))
}

// KindEqualFold applies the EqualFold predicate on the "kind" field.
func KindEqualFold(v string) predicate.GradebookEntry {
	return predicate.GradebookEntry(sql.FieldEqualFold(FieldKind, v))
}

// KindContainsFold applies the ContainsFold predicate on the "kind" field.
func KindContainsFold(v string) predicate.GradebookEntry {
	return predicate.GradebookEntry(sql.FieldContainsFold(FieldKind, v))
}

// MarkEQ applies the EQ predicate on the "mark" field.
func MarkEQ(v float64) predicate.GradebookEntry {
	return predicate.GradebookEntry(sql.FieldEQ(FieldMark, v))
}

// MarkNEQ applies the NEQ predicate on the "mark" field.
func MarkNEQ(v float64) predicate.GradebookEntry {
	return predicate.GradebookEntry(sql.FieldNEQ(FieldMark, v))
}

// MarkIn applies the In predicate on the "mark" field.
func MarkIn(vs ...float64) predicate.GradebookEntry {
	return predicate.GradebookEntry(sql.FieldIn(FieldMark, vs...))
}

// MarkNotIn applies the NotIn predicate on the "mark" field.
func MarkNotIn(vs ...float64) predicate.GradebookEntry {
	return predicate.GradebookEntry(sql.FieldNotIn(FieldMark, vs...))
}

// MarkGT applies the GT predicate on the "mark" field.
func MarkGT(v float64) predicate.GradebookEntry {
	return predicate.GradebookEntry(sql.FieldGT(FieldMark, v))
}

// MarkGTE applies the GTE predicate on the "mark" field.
func MarkGTE(v float64) predicate.GradebookEntry {
	return predicate.GradebookEntry(sql.FieldGTE(FieldMark, v))
}

// MarkLT applies the LT predicate on the "mark" field.
func MarkLT(v float64) predicate.GradebookEntry {
	return predicate.GradebookEntry(sql.FieldLT(FieldMark, v))
}

// MarkLTE applies the LTE predicate on the "mark" field.
func MarkLTE(v float64) predicate.GradebookEntry {
	return predicate.GradebookEntry(sql.FieldLTE(FieldMark, v))
}

// SemesterEQ applies the EQ predicate on the "semester" field.
func SemesterEQ(v int) predicate.GradebookEntry {
	return predicate.GradebookEntry(sql.FieldEQ(FieldSemester, v))
}

// SemesterNEQ applies the NEQ predicate on the "semester" field.
func SemesterNEQ(v int) predicate.GradebookEntry {
	return predicate.GradebookEntry(sql.FieldNEQ(FieldSemester, v))
}

// SemesterIn applies the In predicate on the "semester" field.
func SemesterIn(vs ...int) predicate.GradebookEntry {
	return predicate.GradebookEntry(sql.FieldIn(FieldSemester, vs...))
}

// SemesterNotIn applies the NotIn predicate on the "semester" field.
func SemesterNotIn(vs ...int) predicate.GradebookEntry {
	return predicate.GradebookEntry(sql.FieldNotIn(FieldSemester, vs...))
}

// SemesterGT applies the GT predicate on the "semester" field.
func SemesterGT(v int) predicate.GradebookEntry {
	return predicate.GradebookEntry(sql.FieldGT(FieldSemester, v))
}

// SemesterGTE applies the GTE predicate on the "semester" field.
func SemesterGTE(v int) predicate.GradebookEntry {
	return predicate.GradebookEntry(sql.FieldGTE(FieldSemester, v))
}

// SemesterLT applies the LT predicate on the "semester" field.
func SemesterLT(v int) predicate.GradebookEntry {
	return predicate.GradebookEntry(sql.FieldLT(FieldSemester, v))
}

// SemesterLTE applies the LTE predicate on the "semester" field.
func SemesterLTE(v int) predicate.GradebookEntry {
	return predicate.GradebookEntry(sql.FieldLTE(FieldSemester, v))
}

// NotesEQ applies the EQ predicate on the "notes" field.
func NotesEQ(v string) predicate.GradebookEntry {
	return predicate.GradebookEntry(sql.FieldEQ(FieldNotes, v))
}

// NotesNEQ applies the NEQ predicate on the "notes" field.
func NotesNEQ(v string) predicate.GradebookEntry {
	return predicate.GradebookEntry(sql.FieldNEQ(FieldNotes, v))
}

// NotesIn applies the In predicate on the "notes" field.
func NotesIn(vs ...string) predicate.GradebookEntry {
	return predicate.GradebookEntry(sql.FieldIn(FieldNotes, vs...))
}

// NotesNotIn applies the NotIn predicate on the "notes" field.
func NotesNotIn(vs ...string) predicate.GradebookEntry {
	return predicate.GradebookEntry(sql.FieldNotIn(FieldNotes, vs...))
}

// NotesGT applies the GT predicate on the "notes" field.
func NotesGT(v string) predicate.GradebookEntry {
	return predicate.GradebookEntry(sql.FieldGT(FieldNotes, v))
}

// NotesGTE applies the GTE predicate on the "notes" field.
func NotesGTE(v string) predicate.GradebookEntry {
	return predicate.GradebookEntry(sql.FieldGTE(FieldNotes, v))
}

// NotesLT applies the LT predicate on the "notes" field.
func NotesLT(v string) predicate.GradebookEntry {
	return predicate.GradebookEntry(sql.FieldLT(FieldNotes, v))
}

// NotesLTE applies the LTE predicate on the "notes" field.
func NotesLTE(v string) predicate.GradebookEntry {
	return predicate.GradebookEntry(sql.FieldLTE(FieldNotes, v))
}

// NotesContains applies the Contains predicate on the "notes" field.
func NotesContains(v string) predicate.GradebookEntry {
	return predicate.GradebookEntry(sql.FieldContains(FieldNotes, v))
}

// NotesHasPrefix applies the HasPrefix predicate on the "notes" field.
func NotesHasPrefix(v string) predicate.GradebookEntry {
	return predicate.GradebookEntry(sql.FieldHasPrefix(FieldNotes, v))
}

// NotesHasSuffix applies the HasSuffix predicate on the "notes" field.
func NotesHasSuffix(v string) predicate.GradebookEntry {
	return predicate.GradebookEntry(sql.FieldHasSuffix(FieldNotes, v))
}

// NotesEqualFold applies the EqualFold predicate on the "notes" field.
func NotesEqualFold(v string) predicate.GradebookEntry {
	return predicate.GradebookEntry(sql.FieldEqualFold(FieldNotes, v))
}

// NotesContainsFold applies the ContainsFold predicate on the "notes" field.
func NotesContainsFold(v string) predicate.GradebookEntry {
	return predicate.GradebookEntry(sql.FieldContainsFold(FieldNotes, v))
}

// RecordedAtEQ applies the EQ predicate on the "recorded_at" field.
func RecordedAtEQ(v time.Time) predicate.GradebookEntry {
	return predicate.GradebookEntry(sql.FieldEQ(FieldRecordedAt, v))
}

// RecordedAtNEQ applies the NEQ predicate on the "recorded_at" field.
func RecordedAtNEQ(v time.Time) predicate.GradebookEntry {
	return predicate.GradebookEntry(sql.FieldNEQ(FieldRecordedAt, v))
}

// RecordedAtIn applies the In predicate on the "recorded_at" field.
func RecordedAtIn(vs ...time.Time) predicate.GradebookEntry {
	return predicate.GradebookEntry(sql.FieldIn(FieldRecordedAt, vs...))
}

// RecordedAtNotIn applies the NotIn predicate on the "recorded_at" field.
func RecordedAtNotIn(vs ...time.Time) predicate.GradebookEntry {
	return predicate.GradebookEntry(sql.FieldNotIn(FieldRecordedAt, vs...))
}

// RecordedAtGT applies the GT predicate on the "recorded_at" field.
func RecordedAtGT(v time.Time) predicate.GradebookEntry {
	return predicate.GradebookEntry(sql.FieldGT(FieldRecordedAt, v))
}

// RecordedAtGTE applies the GTE predicate on the "recorded_at" field.
func RecordedAtGTE(v time.Time) predicate.GradebookEntry {
	return predicate.GradebookEntry(sql.FieldGTE(FieldRecordedAt, v))
}

// RecordedAtLT applies the LT predicate on the "recorded_at" field.
func RecordedAtLT(v time.Time) predicate.GradebookEntry {
	return predicate.GradebookEntry(sql.FieldLT(FieldRecordedAt, v))
}

// RecordedAtLTE applies the LTE predicate on the "recorded_at" field.
func RecordedAtLTE(v time.Time) predicate.GradebookEntry {
	return predicate.GradebookEntry(sql.FieldLTE(FieldRecordedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.GradebookEntry) predicate.GradebookEntry {
	return predicate.GradebookEntry(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.GradebookEntry) predicate.GradebookEntry {
	return predicate.GradebookEntry(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.GradebookEntry) predicate.GradebookEntry {
	return predicate.GradebookEntry(sql.NotPredicates(p))
}
