package store

import (
	"context"
	"fmt"

	"github.com/bacdz/eduai/ent"
	"github.com/bacdz/eduai/ent/profile"
)

// profileRepo implements ProfileRepo using the ent client.
type profileRepo struct {
	client *ent.Client
}

func (r *profileRepo) Save(ctx context.Context, p *Profile) error {
	existing, err := r.client.Profile.Query().
		Where(profile.Name(p.Name)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("query profile: %w", err)
	}

	if existing != nil {
		updated, err := existing.Update().
			SetRole(p.Role).
			SetSpecialtyID(p.SpecialtyID).
			SetSubjectID(p.SubjectID).
			SetProgramText(p.ProgramText).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("update profile: %w", err)
		}
		fillProfile(p, updated)
		return nil
	}

	created, err := r.client.Profile.Create().
		SetName(p.Name).
		SetRole(p.Role).
		SetSpecialtyID(p.SpecialtyID).
		SetSubjectID(p.SubjectID).
		SetProgramText(p.ProgramText).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create profile: %w", err)
	}
	fillProfile(p, created)
	return nil
}

func (r *profileRepo) ByName(ctx context.Context, name string) (*Profile, error) {
	p, err := r.client.Profile.Query().
		Where(profile.Name(name)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query profile: %w", err)
	}

	out := &Profile{}
	fillProfile(out, p)
	return out, nil
}

func (r *profileRepo) List(ctx context.Context) ([]*Profile, error) {
	ps, err := r.client.Profile.Query().
		Order(ent.Asc(profile.FieldName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}

	out := make([]*Profile, len(ps))
	for i, p := range ps {
		out[i] = &Profile{}
		fillProfile(out[i], p)
	}
	return out, nil
}

func fillProfile(dst *Profile, src *ent.Profile) {
	dst.ID = src.ID
	dst.Name = src.Name
	dst.Role = src.Role
	dst.SpecialtyID = src.SpecialtyID
	dst.SubjectID = src.SubjectID
	dst.ProgramText = src.ProgramText
	dst.CreatedAt = src.CreatedAt
	dst.UpdatedAt = src.UpdatedAt
}
