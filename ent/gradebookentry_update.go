// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/bacdz/eduai/ent/gradebookentry"
	"github.com/bacdz/eduai/ent/predicate"
)

// GradebookEntryUpdate is the builder for updating GradebookEntry entities.
type GradebookEntryUpdate struct {
	config
	hooks    []Hook
	mutation *GradebookEntryMutation
}

// Where appends a list predicates to the GradebookEntryUpdate builder.
func (_u *GradebookEntryUpdate) Where(ps ...predicate.GradebookEntry) *GradebookEntryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStudent sets the "student" field.
func (_u *GradebookEntryUpdate) SetStudent(v string) *GradebookEntryUpdate {
	_u.mutation.SetStudent(v)
	return _u
}

// SetNillableStudent sets the "student" field if the given value is not nil.
func (_u *GradebookEntryUpdate) SetNillableStudent(v *string) *GradebookEntryUpdate {
	if v != nil {
		_u.SetStudent(*v)
	}
	return _u
}

// SetSubjectID sets the "subject_id" field.
func (_u *GradebookEntryUpdate) SetSubjectID(v string) *GradebookEntryUpdate {
	_u.mutation.SetSubjectID(v)
	return _u
}

// SetNillableSubjectID sets the "subject_id" field if the given value is not nil.
func (_u *GradebookEntryUpdate) SetNillableSubjectID(v *string) *GradebookEntryUpdate {
	if v != nil {
		_u.SetSubjectID(*v)
	}
	return _u
}

// SetLabel sets the "label" field.
func (_u *GradebookEntryUpdate) SetLabel(v string) *GradebookEntryUpdate {
	_u.mutation.SetLabel(v)
	return _u
}

// SetNillableLabel sets the "label" field if the given value is not nil.
func (_u *GradebookEntryUpdate) SetNillableLabel(v *string) *GradebookEntryUpdate {
	if v != nil {
		_u.SetLabel(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *GradebookEntryUpdate) SetKind(v string) *GradebookEntryUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *GradebookEntryUpdate) SetNillableKind(v *string) *GradebookEntryUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetMark sets the "mark" field.
func (_u *GradebookEntryUpdate) SetMark(v float64) *GradebookEntryUpdate {
	_u.mutation.ResetMark()
	_u.mutation.SetMark(v)
	return _u
}

// SetNillableMark sets the "mark" field if the given value is not nil.
func (_u *GradebookEntryUpdate) SetNillableMark(v *float64) *GradebookEntryUpdate {
	if v != nil {
		_u.SetMark(*v)
	}
	return _u
}

// AddMark adds value to the "mark" field.
func (_u *GradebookEntryUpdate) AddMark(v float64) *GradebookEntryUpdate {
	_u.mutation.AddMark(v)
	return _u
}

// SetSemester sets the "semester" field.
func (_u *GradebookEntryUpdate) SetSemester(v int) *GradebookEntryUpdate {
	_u.mutation.ResetSemester()
	_u.mutation.SetSemester(v)
	return _u
}

// SetNillableSemester sets the "semester" field if the given value is not nil.
func (_u *GradebookEntryUpdate) SetNillableSemester(v *int) *GradebookEntryUpdate {
	if v != nil {
		_u.SetSemester(*v)
	}
	return _u
}

// AddSemester adds value to the "semester" field.
func (_u *GradebookEntryUpdate) AddSemester(v int) *GradebookEntryUpdate {
	_u.mutation.AddSemester(v)
	return _u
}

// SetNotes sets the "notes" field.
func (_u *GradebookEntryUpdate) SetNotes(v string) *GradebookEntryUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *GradebookEntryUpdate) SetNillableNotes(v *string) *GradebookEntryUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// Mutation returns the GradebookEntryMutation object of the builder.
func (_u *GradebookEntryUpdate) Mutation() *GradebookEntryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GradebookEntryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GradebookEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GradebookEntryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GradebookEntryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GradebookEntryUpdate) check() error {
	if v, ok := _u.mutation.Student(); ok {
		if err := gradebookentry.StudentValidator(v); err != nil {
			return &ValidationError{Name: "student", err: fmt.Errorf(`ent: validator failed for field "GradebookEntry.student": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SubjectID(); ok {
		if err := gradebookentry.SubjectIDValidator(v); err != nil {
			return &ValidationError{Name: "subject_id", err: fmt.Errorf(`ent: validator failed for field "GradebookEntry.subject_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Label(); ok {
		if err := gradebookentry.LabelValidator(v); err != nil {
			return &ValidationError{Name: "label", err: fmt.Errorf(`ent: validator failed for field "GradebookEntry.label": %w`, err)}
		}
	}
	return nil
}

func (_u *GradebookEntryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(gradebookentry.Table, gradebookentry.Columns, sqlgraph.NewFieldSpec(gradebookentry.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Student(); ok {
		_spec.SetField(gradebookentry.FieldStudent, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubjectID(); ok {
		_spec.SetField(gradebookentry.FieldSubjectID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Label(); ok {
		_spec.SetField(gradebookentry.FieldLabel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(gradebookentry.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Mark(); ok {
		_spec.SetField(gradebookentry.FieldMark, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMark(); ok {
		_spec.AddField(gradebookentry.FieldMark, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Semester(); ok {
		_spec.SetField(gradebookentry.FieldSemester, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSemester(); ok {
		_spec.AddField(gradebookentry.FieldSemester, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(gradebookentry.FieldNotes, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{gradebookentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GradebookEntryUpdateOne is the builder for updating a single GradebookEntry entity.
type GradebookEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GradebookEntryMutation
}

// SetStudent sets the "student" field.
func (_u *GradebookEntryUpdateOne) SetStudent(v string) *GradebookEntryUpdateOne {
	_u.mutation.SetStudent(v)
	return _u
}

// SetNillableStudent sets the "student" field if the given value is not nil.
func (_u *GradebookEntryUpdateOne) SetNillableStudent(v *string) *GradebookEntryUpdateOne {
	if v != nil {
		_u.SetStudent(*v)
	}
	return _u
}

// SetSubjectID sets the "subject_id" field.
func (_u *GradebookEntryUpdateOne) SetSubjectID(v string) *GradebookEntryUpdateOne {
	_u.mutation.SetSubjectID(v)
	return _u
}

// SetNillableSubjectID sets the "subject_id" field if the given value is not nil.
func (_u *GradebookEntryUpdateOne) SetNillableSubjectID(v *string) *GradebookEntryUpdateOne {
	if v != nil {
		_u.SetSubjectID(*v)
	}
	return _u
}

// SetLabel sets the "label" field.
func (_u *GradebookEntryUpdateOne) SetLabel(v string) *GradebookEntryUpdateOne {
	_u.mutation.SetLabel(v)
	return _u
}

// SetNillableLabel sets the "label" field if the given value is not nil.
func (_u *GradebookEntryUpdateOne) SetNillableLabel(v *string) *GradebookEntryUpdateOne {
	if v != nil {
		_u.SetLabel(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *GradebookEntryUpdateOne) SetKind(v string) *GradebookEntryUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *GradebookEntryUpdateOne) SetNillableKind(v *string) *GradebookEntryUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetMark sets the "mark" field.
func (_u *GradebookEntryUpdateOne) SetMark(v float64) *GradebookEntryUpdateOne {
	_u.mutation.ResetMark()
	_u.mutation.SetMark(v)
	return _u
}

// SetNillableMark sets the "mark" field if the given value is not nil.
func (_u *GradebookEntryUpdateOne) SetNillableMark(v *float64) *GradebookEntryUpdateOne {
	if v != nil {
		_u.SetMark(*v)
	}
	return _u
}

// AddMark adds value to the "mark" field.
func (_u *GradebookEntryUpdateOne) AddMark(v float64) *GradebookEntryUpdateOne {
	_u.mutation.AddMark(v)
	return _u
}

// SetSemester sets the "semester" field.
func (_u *GradebookEntryUpdateOne) SetSemester(v int) *GradebookEntryUpdateOne {
	_u.mutation.ResetSemester()
	_u.mutation.SetSemester(v)
	return _u
}

// SetNillableSemester sets the "semester" field if the given value is not nil.
func (_u *GradebookEntryUpdateOne) SetNillableSemester(v *int) *GradebookEntryUpdateOne {
	if v != nil {
		_u.SetSemester(*v)
	}
	return _u
}

// AddSemester adds value to the "semester" field.
func (_u *GradebookEntryUpdateOne) AddSemester(v int) *GradebookEntryUpdateOne {
	_u.mutation.AddSemester(v)
	return _u
}

// SetNotes sets the "notes" field.
func (_u *GradebookEntryUpdateOne) SetNotes(v string) *GradebookEntryUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *GradebookEntryUpdateOne) SetNillableNotes(v *string) *GradebookEntryUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// Mutation returns the GradebookEntryMutation object of the builder.
func (_u *GradebookEntryUpdateOne) Mutation() *GradebookEntryMutation {
	return _u.mutation
}

// Where appends a list predicates to the GradebookEntryUpdate builder.
func (_u *GradebookEntryUpdateOne) Where(ps ...predicate.GradebookEntry) *GradebookEntryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GradebookEntryUpdateOne) Select(field string, fields ...string) *GradebookEntryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated GradebookEntry entity.
func (_u *GradebookEntryUpdateOne) Save(ctx context.Context) (*GradebookEntry, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GradebookEntryUpdateOne) SaveX(ctx context.Context) *GradebookEntry {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GradebookEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GradebookEntryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GradebookEntryUpdateOne) check() error {
	if v, ok := _u.mutation.Student(); ok {
		if err := gradebookentry.StudentValidator(v); err != nil {
			return &ValidationError{Name: "student", err: fmt.Errorf(`ent: validator failed for field "GradebookEntry.student": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SubjectID(); ok {
		if err := gradebookentry.SubjectIDValidator(v); err != nil {
			return &ValidationError{Name: "subject_id", err: fmt.Errorf(`ent: validator failed for field "GradebookEntry.subject_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Label(); ok {
		if err := gradebookentry.LabelValidator(v); err != nil {
			return &ValidationError{Name: "label", err: fmt.Errorf(`ent: validator failed for field "GradebookEntry.label": %w`, err)}
		}
	}
	return nil
}

func (_u *GradebookEntryUpdateOne) sqlSave(ctx context.Context) (_node *GradebookEntry, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(gradebookentry.Table, gradebookentry.Columns, sqlgraph.NewFieldSpec(gradebookentry.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "GradebookEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, gradebookentry.FieldID)
		for _, f := range fields {
			if !gradebookentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != gradebookentry.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Student(); ok {
		_spec.SetField(gradebookentry.FieldStudent, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubjectID(); ok {
		_spec.SetField(gradebookentry.FieldSubjectID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Label(); ok {
		_spec.SetField(gradebookentry.FieldLabel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(gradebookentry.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Mark(); ok {
		_spec.SetField(gradebookentry.FieldMark, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMark(); ok {
		_spec.AddField(gradebookentry.FieldMark, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Semester(); ok {
		_spec.SetField(gradebookentry.FieldSemester, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSemester(); ok {
		_spec.AddField(gradebookentry.FieldSemester, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(gradebookentry.FieldNotes, field.TypeString, value)
	}
	_node = &GradebookEntry{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{gradebookentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
