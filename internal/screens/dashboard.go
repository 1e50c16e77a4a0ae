package screens

import (
	tea "charm.land/bubbletea/v2"

	"github.com/bacdz/eduai/internal/i18n"
	"github.com/bacdz/eduai/internal/nav"
	"github.com/bacdz/eduai/internal/screen"
	"github.com/bacdz/eduai/internal/ui/components"
	"github.com/bacdz/eduai/internal/ui/layout"
	"github.com/bacdz/eduai/internal/ui/theme"
)

// Dashboard is the teacher's hub: lesson browsing, exam building, the yearly
// program and the gradebook.
type Dashboard struct {
	deps        *Deps
	menu        components.Menu
	pickSubject bool
}

var _ screen.Screen = (*Dashboard)(nil)

// NewDashboard creates the teacher dashboard.
func NewDashboard(deps *Deps) *Dashboard {
	d := &Dashboard{deps: deps}
	d.menu = d.toolsMenu()
	return d
}

func (d *Dashboard) toolsMenu() components.Menu {
	deps := d.deps
	items := []components.MenuItem{
		{Label: i18n.T("teacher.dashboard.tools"), Disabled: true},
		{Label: "📖  " + i18n.T("teacher.dashboard.browse"), Action: func() tea.Cmd {
			_ = deps.Session.BrowseLessons()
			return nil
		}},
		{Label: "📝  " + i18n.T("mode.exam-builder"), Action: func() tea.Cmd {
			if err := deps.Session.EnterMode(nav.ModeExamBuilder); err != nil {
				return nil
			}
			return deps.recordSession("enter-mode")
		}},
		{Label: "📅  " + i18n.T("teacher.dashboard.program"), Action: func() tea.Cmd {
			_ = deps.Session.OpenProgramUpload()
			return nil
		}},
		{Label: "📒  " + i18n.T("teacher.dashboard.gradebook"), Action: func() tea.Cmd {
			_ = deps.Session.OpenGradebook()
			return nil
		}},
		{Label: "🔄  " + i18n.T("common.change-subject"), Action: func() tea.Cmd {
			d.pickSubject = true
			d.menu = d.subjectMenu()
			return nil
		}},
		{Label: "🚪  " + i18n.T("common.logout"), Action: func() tea.Cmd {
			deps.Session.Logout()
			return nil
		}},
	}
	return components.NewMenu(items)
}

// subjectMenu rebinds the teacher to another subject of the same track.
func (d *Dashboard) subjectMenu() components.Menu {
	deps := d.deps
	sp := deps.Session.Specialty
	var items []components.MenuItem
	if sp == nil {
		return components.NewMenu(items)
	}
	for _, sub := range deps.Catalog.SubjectsFor(sp.ID) {
		sub := sub
		items = append(items, components.MenuItem{
			Label: sub.Icon + "  " + sub.Name,
			Action: func() tea.Cmd {
				if err := deps.Session.SetTeacherContext(sp, sub); err != nil {
					return nil
				}
				deps.Identity.SubjectID = sub.ID
				d.pickSubject = false
				d.menu = d.toolsMenu()
				return saveIdentity(deps)
			},
		})
	}
	return components.NewMenu(items)
}

func (d *Dashboard) Init() tea.Cmd {
	return nil
}

func (d *Dashboard) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "esc" {
		if d.pickSubject {
			d.pickSubject = false
			d.menu = d.toolsMenu()
			return d, nil
		}
		d.deps.Session.Logout()
		return d, nil
	}
	var cmd tea.Cmd
	d.menu, cmd = d.menu.Update(msg)
	return d, cmd
}

func (d *Dashboard) View(width, height int) string {
	s := d.deps.Session
	title := theme.Title.Render(i18n.T("teacher.dashboard.title"))
	if s.Specialty != nil && s.Subject != nil {
		title += "\n" + theme.Subtitle.Render(s.Specialty.Name+" · "+s.Subject.Name)
	}
	if d.pickSubject {
		title += "\n" + theme.Subtitle.Render(i18n.T("subject.title"))
	}
	return layout.Centered(title+"\n\n"+d.menu.View(), width, height)
}

func (d *Dashboard) Title() string {
	return i18n.T("teacher.dashboard.title")
}

func (d *Dashboard) KeyHints() []layout.KeyHint {
	if d.pickSubject {
		return selectionHints(i18n.T("common.back"))
	}
	return selectionHints(i18n.T("common.logout"))
}
