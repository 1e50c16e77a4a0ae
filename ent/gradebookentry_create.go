// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/bacdz/eduai/ent/gradebookentry"
)

// GradebookEntryCreate is the builder for creating a GradebookEntry entity.
type GradebookEntryCreate struct {
	config
	mutation *GradebookEntryMutation
	hooks    []Hook
}

// SetStudent sets the "student" field.
func (_c *GradebookEntryCreate) SetStudent(v string) *GradebookEntryCreate {
	_c.mutation.SetStudent(v)
	return _c
}

// SetSubjectID sets the "subject_id" field.
func (_c *GradebookEntryCreate) SetSubjectID(v string) *GradebookEntryCreate {
	_c.mutation.SetSubjectID(v)
	return _c
}

// SetLabel sets the "label" field.
func (_c *GradebookEntryCreate) SetLabel(v string) *GradebookEntryCreate {
	_c.mutation.SetLabel(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *GradebookEntryCreate) SetKind(v string) *GradebookEntryCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_c *GradebookEntryCreate) SetNillableKind(v *string) *GradebookEntryCreate {
	if v != nil {
		_c.SetKind(*v)
	}
	return _c
}

// SetMark sets the "mark" field.
func (_c *GradebookEntryCreate) SetMark(v float64) *GradebookEntryCreate {
	_c.mutation.SetMark(v)
	return _c
}

// SetSemester sets the "semester" field.
func (_c *GradebookEntryCreate) SetSemester(v int) *GradebookEntryCreate {
	_c.mutation.SetSemester(v)
	return _c
}

// SetNotes sets the "notes" field.
func (_c *GradebookEntryCreate) SetNotes(v string) *GradebookEntryCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *GradebookEntryCreate) SetNillableNotes(v *string) *GradebookEntryCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetRecordedAt sets the "recorded_at" field.
func (_c *GradebookEntryCreate) SetRecordedAt(v time.Time) *GradebookEntryCreate {
	_c.mutation.SetRecordedAt(v)
	return _c
}

// SetNillableRecordedAt sets the "recorded_at" field if the given value is not nil.
func (_c *GradebookEntryCreate) SetNillableRecordedAt(v *time.Time) *GradebookEntryCreate {
	if v != nil {
		_c.SetRecordedAt(*v)
	}
	return _c
}

// Mutation returns the GradebookEntryMutation object of the builder.
func (_c *GradebookEntryCreate) Mutation() *GradebookEntryMutation {
	return _c.mutation
}

// Save creates the GradebookEntry in the database.
func (_c *GradebookEntryCreate) Save(ctx context.Context) (*GradebookEntry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GradebookEntryCreate) SaveX(ctx context.Context) *GradebookEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GradebookEntryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GradebookEntryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *GradebookEntryCreate) defaults() {
	if _, ok := _c.mutation.Kind(); !ok {
		v := gradebookentry.DefaultKind
		_c.mutation.SetKind(v)
	}
	if _, ok := _c.mutation.Notes(); !ok {
		v := gradebookentry.DefaultNotes
		_c.mutation.SetNotes(v)
	}
	if _, ok := _c.mutation.RecordedAt(); !ok {
		v := gradebookentry.DefaultRecordedAt()
		_c.mutation.SetRecordedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GradebookEntryCreate) check() error {
	if _, ok := _c.mutation.Student(); !ok {
		return &ValidationError{Name: "student", err: errors.New(`ent: missing required field "GradebookEntry.student"`)}
	}
	if v, ok := _c.mutation.Student(); ok {
		if err := gradebookentry.StudentValidator(v); err != nil {
			return &ValidationError{Name: "student", err: fmt.Errorf(`ent: validator failed for field "GradebookEntry.student": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SubjectID(); !ok {
		return &ValidationError{Name: "subject_id", err: errors.New(`ent: missing required field "GradebookEntry.subject_id"`)}
	}
	if v, ok := _c.mutation.SubjectID(); ok {
		if err := gradebookentry.SubjectIDValidator(v); err != nil {
			return &ValidationError{Name: "subject_id", err: fmt.Errorf(`ent: validator failed for field "GradebookEntry.subject_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Label(); !ok {
		return &ValidationError{Name: "label", err: errors.New(`ent: missing required field "GradebookEntry.label"`)}
	}
	if v, ok := _c.mutation.Label(); ok {
		if err := gradebookentry.LabelValidator(v); err != nil {
			return &ValidationError{Name: "label", err: fmt.Errorf(`ent: validator failed for field "GradebookEntry.label": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "GradebookEntry.kind"`)}
	}
	if _, ok := _c.mutation.Mark(); !ok {
		return &ValidationError{Name: "mark", err: errors.New(`ent: missing required field "GradebookEntry.mark"`)}
	}
	if _, ok := _c.mutation.Semester(); !ok {
		return &ValidationError{Name: "semester", err: errors.New(`ent: missing required field "GradebookEntry.semester"`)}
	}
	if _, ok := _c.mutation.Notes(); !ok {
		return &ValidationError{Name: "notes", err: errors.New(`ent: missing required field "GradebookEntry.notes"`)}
	}
	if _, ok := _c.mutation.RecordedAt(); !ok {
		return &ValidationError{Name: "recorded_at", err: errors.New(`ent: missing required field "GradebookEntry.recorded_at"`)}
	}
	return nil
}

func (_c *GradebookEntryCreate) sqlSave(ctx context.Context) (*GradebookEntry, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *GradebookEntryCreate) createSpec() (*GradebookEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &GradebookEntry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(gradebookentry.Table, sqlgraph.NewFieldSpec(gradebookentry.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Student(); ok {
		_spec.SetField(gradebookentry.FieldStudent, field.TypeString, value)
		_node.Student = value
	}
	if value, ok := _c.mutation.SubjectID(); ok {
		_spec.SetField(gradebookentry.FieldSubjectID, field.TypeString, value)
		_node.SubjectID = value
	}
	if value, ok := _c.mutation.Label(); ok {
		_spec.SetField(gradebookentry.FieldLabel, field.TypeString, value)
		_node.Label = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(gradebookentry.FieldKind, field.TypeString, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Mark(); ok {
		_spec.SetField(gradebookentry.FieldMark, field.TypeFloat64, value)
		_node.Mark = value
	}
	if value, ok := _c.mutation.Semester(); ok {
		_spec.SetField(gradebookentry.FieldSemester, field.TypeInt, value)
		_node.Semester = value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(gradebookentry.FieldNotes, field.TypeString, value)
		_node.Notes = value
	}
	if value, ok := _c.mutation.RecordedAt(); ok {
		_spec.SetField(gradebookentry.FieldRecordedAt, field.TypeTime, value)
		_node.RecordedAt = value
	}
	return _node, _spec
}

// GradebookEntryCreateBulk is the builder for creating many GradebookEntry entities in bulk.
type GradebookEntryCreateBulk struct {
	config
	err      error
	builders []*GradebookEntryCreate
}

// Save creates the GradebookEntry entities in the database.
func (_c *GradebookEntryCreateBulk) Save(ctx context.Context) ([]*GradebookEntry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*GradebookEntry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GradebookEntryMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *GradebookEntryCreateBulk) SaveX(ctx context.Context) []*GradebookEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GradebookEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GradebookEntryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
