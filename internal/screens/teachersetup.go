package screens

import (
	tea "charm.land/bubbletea/v2"

	"github.com/bacdz/eduai/internal/curriculum"
	"github.com/bacdz/eduai/internal/i18n"
	"github.com/bacdz/eduai/internal/screen"
	"github.com/bacdz/eduai/internal/ui/components"
	"github.com/bacdz/eduai/internal/ui/layout"
	"github.com/bacdz/eduai/internal/ui/theme"
)

// TeacherSetup is the two-stage wizard that binds a teacher to one track and
// one subject before the dashboard opens.
type TeacherSetup struct {
	deps      *Deps
	specialty *curriculum.Specialty
	menu      components.Menu
}

var _ screen.Screen = (*TeacherSetup)(nil)

// NewTeacherSetup starts the wizard at track selection.
func NewTeacherSetup(deps *Deps) *TeacherSetup {
	t := &TeacherSetup{deps: deps}
	t.menu = t.specialtyMenu()
	return t
}

// specialtyMenu lists the teachable tracks. The personal track has no fixed
// subjects and is skipped.
func (t *TeacherSetup) specialtyMenu() components.Menu {
	deps := t.deps
	var items []components.MenuItem
	for i := range deps.Catalog.Specialties {
		sp := &deps.Catalog.Specialties[i]
		if sp.ID == customTrackID {
			continue
		}
		items = append(items, components.MenuItem{
			Label: sp.Icon + "  " + sp.Name,
			Action: func() tea.Cmd {
				t.specialty = sp
				t.menu = t.subjectMenu(sp)
				return nil
			},
		})
	}
	return components.NewMenu(items)
}

func (t *TeacherSetup) subjectMenu(sp *curriculum.Specialty) components.Menu {
	deps := t.deps
	var items []components.MenuItem
	for _, sub := range deps.Catalog.SubjectsFor(sp.ID) {
		sub := sub
		items = append(items, components.MenuItem{
			Label: sub.Icon + "  " + sub.Name,
			Action: func() tea.Cmd {
				if err := deps.Session.SetTeacherContext(sp, sub); err != nil {
					return nil
				}
				deps.Identity.SpecialtyID = sp.ID
				deps.Identity.SubjectID = sub.ID
				return tea.Batch(saveIdentity(deps), deps.recordSession("teacher-setup"))
			},
		})
	}
	return components.NewMenu(items)
}

func (t *TeacherSetup) Init() tea.Cmd {
	return nil
}

func (t *TeacherSetup) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "esc" {
		if t.specialty != nil {
			t.specialty = nil
			t.menu = t.specialtyMenu()
			return t, nil
		}
		t.deps.Session.Logout()
		return t, nil
	}
	var cmd tea.Cmd
	t.menu, cmd = t.menu.Update(msg)
	return t, cmd
}

func (t *TeacherSetup) View(width, height int) string {
	title := theme.Title.Render(i18n.T("teacher.setup.title"))
	if t.specialty == nil {
		title += "\n" + theme.Subtitle.Render(i18n.T("specialty.title"))
	} else {
		title += "\n" + theme.Subtitle.Render(t.specialty.Name+" · "+i18n.T("subject.title"))
	}
	return layout.Centered(title+"\n\n"+t.menu.View(), width, height)
}

func (t *TeacherSetup) Title() string {
	return i18n.T("teacher.setup.title")
}

func (t *TeacherSetup) KeyHints() []layout.KeyHint {
	if t.specialty != nil {
		return selectionHints(i18n.T("common.back"))
	}
	return selectionHints(i18n.T("common.logout"))
}
