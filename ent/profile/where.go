// Code generated by ent, DO NOT EDIT.

package profile

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/bacdz/eduai/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldName, v))
}

// Role applies equality check predicate on the "role" field. It's identical to RoleEQ.
func Role(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldRole, v))
}

// SpecialtyID applies equality check predicate on the "specialty_id" field. It's identical to SpecialtyIDEQ.
func SpecialtyID(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldSpecialtyID, v))
}

// SubjectID applies equality check predicate on the "subject_id" field. It's identical to SubjectIDEQ.
func SubjectID(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldSubjectID, v))
}

// ProgramText applies equality check predicate on the "program_text" field. It's identical to ProgramTextEQ.
func ProgramText(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldProgramText, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldUpdatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContainsFold(FieldName, v))
}

// RoleEQ applies the EQ predicate on the "role" field.
func RoleEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldRole, v))
}

// RoleNEQ applies the NEQ predicate on the "role" field.
func RoleNEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldRole, v))
}

// RoleIn applies the In predicate on the "role" field.
func RoleIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldRole, vs...))
}

// RoleNotIn applies the NotIn predicate on the "role" field.
func RoleNotIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldRole, vs...))
}

// RoleGT applies the GT predicate on the "role" field.
func RoleGT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldRole, v))
}

// RoleGTE applies the GTE predicate on the "role" field.
func RoleGTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldRole, v))
}

// RoleLT applies the LT predicate on the "role" field.
func RoleLT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldRole, v))
}

// RoleLTE applies the LTE predicate on the "role" field.
func RoleLTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldRole, v))
}

// RoleContains applies the Contains predicate on the "role" field.
func RoleContains(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContains(FieldRole, v))
}

// RoleHasPrefix applies the HasPrefix predicate on the "role" field.
func RoleHasPrefix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasPrefix(FieldRole, v))
}

// RoleHasSuffix applies the HasSuffix predicate on the "role" field.
func RoleHasSuffix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasSuffix(FieldRole, v))
}

// RoleEqualFold applies the EqualFold predicate on the "role" field.
func RoleEqualFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEqualFold(FieldRole, v))
}

// RoleContainsFold applies the ContainsFold predicate on the "role" field.
func RoleContainsFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContainsFold(FieldRole, v))
}

// SpecialtyIDEQ applies the EQ predicate on the "specialty_id" field.
func SpecialtyIDEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldSpecialtyID, v))
}

// SpecialtyIDNEQ applies the NEQ predicate on the "specialty_id" field.
func SpecialtyIDNEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldSpecialtyID, v))
}

// SpecialtyIDIn applies the In predicate on the "specialty_id" field.
func SpecialtyIDIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldSpecialtyID, vs...))
}

// SpecialtyIDNotIn applies the NotIn predicate on the "specialty_id" field.
func SpecialtyIDNotIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldSpecialtyID, vs...))
}

// SpecialtyIDGT applies the GT predicate on the "specialty_id" field.
func SpecialtyIDGT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldSpecialtyID, v))
}

// SpecialtyIDGTE applies the GTE predicate on the "specialty_id" field.
func SpecialtyIDGTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldSpecialtyID, v))
}

// SpecialtyIDLT applies the LT predicate on the "specialty_id" field.
func SpecialtyIDLT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldSpecialtyID, v))
}

// SpecialtyIDLTE applies the LTE predicate on the "specialty_id" field.
func SpecialtyIDLTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldSpecialtyID, v))
}

// SpecialtyIDContains applies the Contains predicate on the "specialty_id" field.
func SpecialtyIDContains(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContains(FieldSpecialtyID, v))
}

// SpecialtyIDHasPrefix applies the HasPrefix predicate on the "specialty_id" field.
func SpecialtyIDHasPrefix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasPrefix(FieldSpecialtyID, v))
}

// SpecialtyIDHasSuffix applies the HasSuffix predicate on the "specialty_id" field.
func SpecialtyIDHasSuffix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasSuffix(FieldSpecialtyID, v))
}

// SpecialtyIDEqualFold applies the EqualFold predicate on the "specialty_id" field.
func SpecialtyIDEqualFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEqualFold(FieldSpecialtyID, v))
}

// SpecialtyIDContainsFold applies the ContainsFold predicate on the "specialty_id" field.
func SpecialtyIDContainsFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContainsFold(FieldSpecialtyID, v))
}

// SubjectIDEQ applies the EQ predicate on the "subject_id" field.
func SubjectIDEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldSubjectID, v))
}

// SubjectIDNEQ applies the NEQ predicate on the "subject_id" field.
func SubjectIDNEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldSubjectID, v))
}

// SubjectIDIn applies the In predicate on the "subject_id" field.
func SubjectIDIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldSubjectID, vs...))
}

// SubjectIDNotIn applies the NotIn predicate on the "subject_id" field.
func SubjectIDNotIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldSubjectID, vs...))
}

// SubjectIDGT applies the GT predicate on the "subject_id" field.
func SubjectIDGT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldSubjectID, v))
}

// SubjectIDGTE applies the GTE predicate on the "subject_id" field.
func SubjectIDGTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldSubjectID, v))
}

// SubjectIDLT applies the LT predicate on the "subject_id" field.
func SubjectIDLT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldSubjectID, v))
}

// SubjectIDLTE applies the LTE predicate on the "subject_id" field.
func SubjectIDLTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldSubjectID, v))
}

// SubjectIDContains applies the Contains predicate on the "subject_id" field.
func SubjectIDContains(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContains(FieldSubjectID, v))
}

// SubjectIDHasPrefix applies the HasPrefix predicate on the "subject_id" field.
func SubjectIDHasPrefix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasPrefix(FieldSubjectID, v))
}

// SubjectIDHasSuffix applies the HasSuffix predicate on the "subject_id" field.
func SubjectIDHasSuffix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasSuffix(FieldSubjectID, v))
}

// SubjectIDEqualFold applies the EqualFold predicate on the "subject_id" field.
func SubjectIDEqualFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEqualFold(FieldSubjectID, v))
}

// SubjectIDContainsFold applies the ContainsFold predicate on the "subject_id" field.
func SubjectIDContainsFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContainsFold(FieldSubjectID, v))
}

// ProgramTextEQ applies the EQ predicate on the "program_text" field.
func ProgramTextEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldProgramText, v))
}

// ProgramTextNEQ applies the NEQ predicate on the "program_text" field.
func ProgramTextNEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldProgramText, v))
}

// ProgramTextIn applies the In predicate on the "program_text" field.
func ProgramTextIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldProgramText, vs...))
}

// ProgramTextNotIn applies the NotIn predicate on the "program_text" field.
func ProgramTextNotIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldProgramText, vs...))
}

// ProgramTextGT applies the GT predicate on the "program_text" field.
func ProgramTextGT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldProgramText, v))
}

// ProgramTextGTE applies the GTE predicate on the "program_text" field.
func ProgramTextGTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldProgramText, v))
}

// ProgramTextLT applies the LT predicate on the "program_text" field.
func ProgramTextLT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldProgramText, v))
}

// ProgramTextLTE applies the LTE predicate on the "program_text" field.
func ProgramTextLTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldProgramText, v))
}

// ProgramTextContains applies the Contains predicate on the "program_text" field.
func ProgramTextContains(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContains(FieldProgramText, v))
}

// ProgramTextHasPrefix applies the HasPrefix predicate on the "program_text" field.
func ProgramTextHasPrefix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasPrefix(FieldProgramText, v))
}

// ProgramTextHasSuffix applies the HasSuffix predicate on the "program_text" field.
func ProgramTextHasSuffix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasSuffix(FieldProgramText, v))
}

// ProgramTextEqualFold applies the EqualFold predicate on the "program_text" field.
func ProgramTextEqualFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEqualFold(FieldProgramText, v))
}

// ProgramTextContainsFold applies the ContainsFold predicate on the "program_text" field.
func ProgramTextContainsFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContainsFold(FieldProgramText, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Profile) predicate.Profile {
	return predicate.Profile(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Profile) predicate.Profile {
	return predicate.Profile(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Profile) predicate.Profile {
	return predicate.Profile(sql.NotPredicates(p))
}
