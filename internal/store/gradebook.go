package store

import (
	"context"
	"fmt"

	"github.com/bacdz/eduai/ent"
	"github.com/bacdz/eduai/ent/gradebookentry"
)

// gradebookRepo implements GradebookRepo using the ent client.
type gradebookRepo struct {
	client *ent.Client
}

func (r *gradebookRepo) Add(ctx context.Context, e *GradebookEntry) error {
	if e.Kind == "" {
		e.Kind = KindExam
	}
	created, err := r.client.GradebookEntry.Create().
		SetStudent(e.Student).
		SetSubjectID(e.SubjectID).
		SetLabel(e.Label).
		SetKind(e.Kind).
		SetMark(e.Mark).
		SetSemester(e.Semester).
		SetNotes(e.Notes).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create gradebook entry: %w", err)
	}
	e.ID = created.ID
	e.RecordedAt = created.RecordedAt
	return nil
}

func (r *gradebookRepo) ForStudent(ctx context.Context, student string) ([]*GradebookEntry, error) {
	entries, err := r.client.GradebookEntry.Query().
		Where(gradebookentry.Student(student)).
		Order(ent.Desc(gradebookentry.FieldRecordedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query gradebook for %s: %w", student, err)
	}
	return gradebookEntries(entries), nil
}

func (r *gradebookRepo) All(ctx context.Context) ([]*GradebookEntry, error) {
	entries, err := r.client.GradebookEntry.Query().
		Order(ent.Asc(gradebookentry.FieldStudent), ent.Asc(gradebookentry.FieldRecordedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query gradebook: %w", err)
	}
	return gradebookEntries(entries), nil
}

func (r *gradebookRepo) Remove(ctx context.Context, id int) error {
	if err := r.client.GradebookEntry.DeleteOneID(id).Exec(ctx); err != nil {
		return fmt.Errorf("delete gradebook entry %d: %w", id, err)
	}
	return nil
}

func gradebookEntries(entries []*ent.GradebookEntry) []*GradebookEntry {
	out := make([]*GradebookEntry, len(entries))
	for i, e := range entries {
		out[i] = &GradebookEntry{
			ID:         e.ID,
			Student:    e.Student,
			SubjectID:  e.SubjectID,
			Label:      e.Label,
			Kind:       e.Kind,
			Mark:       e.Mark,
			Semester:   e.Semester,
			Notes:      e.Notes,
			RecordedAt: e.RecordedAt,
		}
	}
	return out
}
