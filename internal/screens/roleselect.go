package screens

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/bacdz/eduai/internal/auth"
	"github.com/bacdz/eduai/internal/i18n"
	"github.com/bacdz/eduai/internal/screen"
	"github.com/bacdz/eduai/internal/ui/components"
	"github.com/bacdz/eduai/internal/ui/layout"
	"github.com/bacdz/eduai/internal/ui/theme"
)

// RoleSelect signs the user in: a name plus the student/teacher choice.
// A known name restores its saved track and subject.
type RoleSelect struct {
	deps      *Deps
	name      components.TextInput
	menu      components.Menu
	menuFocus bool
	errMsg    string
}

var _ screen.Screen = (*RoleSelect)(nil)

// NewRoleSelect creates the sign-in screen.
func NewRoleSelect(deps *Deps) *RoleSelect {
	r := &RoleSelect{
		deps: deps,
		name: components.NewTextInput("", i18n.T("gradebook.student"), 40),
	}
	r.menu = components.NewMenu([]components.MenuItem{
		{Label: i18n.T("role.student"), Action: func() tea.Cmd { return r.choose(auth.RoleStudent) }},
		{Label: i18n.T("role.teacher"), Action: func() tea.Cmd { return r.choose(auth.RoleTeacher) }},
	})
	return r
}

func (r *RoleSelect) Init() tea.Cmd {
	return r.name.Init()
}

func (r *RoleSelect) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "tab":
			r.menuFocus = !r.menuFocus
			if r.menuFocus {
				r.name.Blur()
				return r, nil
			}
			return r, r.name.Focus()
		case "enter":
			if !r.menuFocus {
				r.menuFocus = true
				r.name.Blur()
				return r, nil
			}
		}
	}

	var cmd tea.Cmd
	if r.menuFocus {
		r.menu, cmd = r.menu.Update(msg)
	} else {
		r.name, cmd = r.name.Update(msg)
	}
	return r, cmd
}

// choose resolves the profile for the typed name and enters the session.
func (r *RoleSelect) choose(role auth.Role) tea.Cmd {
	name := strings.TrimSpace(r.name.Value())
	if name == "" {
		r.errMsg = i18n.T("role.title")
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	ident, err := r.deps.Auth.SignIn(ctx, name)
	if err == nil && (ident == nil || ident.Role != role) {
		specialtyID := ""
		if ident != nil {
			specialtyID = ident.SpecialtyID
		}
		ident, err = r.deps.Auth.Register(ctx, name, role, specialtyID)
	}
	if err != nil {
		r.errMsg = err.Error()
		return nil
	}

	*r.deps.Identity = *ident
	s := r.deps.Session
	if err := s.ChooseRole(role); err != nil {
		r.errMsg = err.Error()
		return nil
	}

	// Saved context resumes where the last session stopped.
	switch role {
	case auth.RoleStudent:
		if sp := r.deps.Catalog.SpecialtyByID(ident.SpecialtyID); sp != nil {
			_ = s.PickSpecialty(sp)
		}
	case auth.RoleTeacher:
		s.ProgramText = ident.ProgramText
		sp := r.deps.Catalog.SpecialtyByID(ident.SpecialtyID)
		sub := r.deps.Catalog.SubjectByID(ident.SubjectID)
		if sp != nil && sub != nil {
			_ = s.SetTeacherContext(sp, sub)
		}
	}

	return r.deps.recordSession("start")
}

func (r *RoleSelect) View(width, height int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render(i18n.T("app.title")))
	b.WriteString("\n\n")
	b.WriteString(r.name.View())
	b.WriteString("\n\n")
	b.WriteString(theme.Subtitle.Render(i18n.T("role.title")))
	b.WriteString("\n")
	b.WriteString(r.menu.View())
	if r.errMsg != "" {
		b.WriteString("\n" + theme.Incorrect.Render(r.errMsg))
	}
	return layout.Centered(b.String(), width, height)
}

func (r *RoleSelect) Title() string {
	return i18n.T("role.title")
}

func (r *RoleSelect) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: i18n.T("common.select")},
		{Key: "↑↓", Description: i18n.T("common.select")},
		{Key: "Ctrl+C", Description: i18n.T("common.quit")},
	}
}
