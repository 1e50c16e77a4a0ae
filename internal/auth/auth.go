package auth

import (
	"context"
	"fmt"

	"github.com/bacdz/eduai/internal/store"
)

// Role distinguishes the two user kinds.
type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
)

// Identity is the signed-in user for the current session. The specialty,
// subject and program text are the last-used context, restored on sign-in.
type Identity struct {
	Name        string
	Role        Role
	SpecialtyID string
	SubjectID   string // teachers only
	ProgramText string // teachers only
}

// Service resolves identities against the profile store.
type Service struct {
	profiles store.ProfileRepo
}

// NewService creates an auth service backed by the profile store.
func NewService(profiles store.ProfileRepo) *Service {
	return &Service{profiles: profiles}
}

// SignIn loads the named profile, or returns nil when it does not exist.
func (s *Service) SignIn(ctx context.Context, name string) (*Identity, error) {
	p, err := s.profiles.ByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("sign in %q: %w", name, err)
	}
	if p == nil {
		return nil, nil
	}
	return &Identity{
		Name:        p.Name,
		Role:        Role(p.Role),
		SpecialtyID: p.SpecialtyID,
		SubjectID:   p.SubjectID,
		ProgramText: p.ProgramText,
	}, nil
}

// Register creates or updates the named profile and returns its identity.
func (s *Service) Register(ctx context.Context, name string, role Role, specialtyID string) (*Identity, error) {
	if name == "" {
		return nil, fmt.Errorf("profile name is required")
	}
	if role != RoleStudent && role != RoleTeacher {
		return nil, fmt.Errorf("unknown role %q", role)
	}

	p := &store.Profile{Name: name, Role: string(role), SpecialtyID: specialtyID}
	if err := s.profiles.Save(ctx, p); err != nil {
		return nil, fmt.Errorf("register %q: %w", name, err)
	}
	return &Identity{Name: p.Name, Role: role, SpecialtyID: specialtyID}, nil
}

// SaveContext persists the identity's current context so the next sign-in
// resumes where this one left off.
func (s *Service) SaveContext(ctx context.Context, ident *Identity) error {
	p := &store.Profile{
		Name:        ident.Name,
		Role:        string(ident.Role),
		SpecialtyID: ident.SpecialtyID,
		SubjectID:   ident.SubjectID,
		ProgramText: ident.ProgramText,
	}
	if err := s.profiles.Save(ctx, p); err != nil {
		return fmt.Errorf("save context for %q: %w", ident.Name, err)
	}
	return nil
}
